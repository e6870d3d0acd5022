package feedback

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindPage Kind = "page"
	KindTest Kind = "test"
)

const (
	MinScore = 0
	MaxScore = 10
	// StateComplete is reached once both page and test surveys are answered.
	StateComplete = 2
)

// NPSRecord tracks time spent and Net Promoter Score answers for one user.
type NPSRecord struct {
	UserID             uuid.UUID  `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	AccumulatedSeconds float64    `gorm:"not null;default:0;column:accumulated_seconds" json:"accumulated_seconds"`
	PageScore          *int       `gorm:"column:page_score" json:"page_score,omitempty"`
	TestScore          *int       `gorm:"column:test_score" json:"test_score,omitempty"`
	State              int        `gorm:"not null;default:0;column:state" json:"state"`
	LastSeenAt         time.Time  `gorm:"column:last_seen_at" json:"last_seen_at"`
	RespondedAt        *time.Time `gorm:"column:responded_at" json:"responded_at,omitempty"`
	CreatedAt          time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"not null" json:"updated_at"`
}

func (NPSRecord) TableName() string { return "user_nps" }
