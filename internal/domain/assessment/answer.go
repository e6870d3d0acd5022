package assessment

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinScore = 1
	MaxScore = 5
)

// Answer is the stored response of one user to one statement.
// (user_id, statement_id) is unique; saving again overwrites score and updated_at.
type Answer struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey;column:user_id" json:"user_id"`
	StatementID uint      `gorm:"primaryKey;autoIncrement:false;column:statement_id" json:"statement_id"`
	Score       int       `gorm:"not null;column:score" json:"score"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (Answer) TableName() string { return "answer" }

// AnswerRow is an answer joined with its statement's category.
type AnswerRow struct {
	StatementID uint
	Category    Category
	Score       int
}
