package advisory

import (
	"time"

	"github.com/google/uuid"
)

const (
	IndexAdvisorSlot = "idx_bookings_advisor_slot"
	IndexUserSlot    = "idx_bookings_user_slot"
)

// Booking reserves one (date, time) slot of an advisor for one user.
// Both (advisor_id, date, time) and (user_id, date, time) are unique at the store level.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AdvisorID uint      `gorm:"not null;column:advisor_id;uniqueIndex:idx_bookings_advisor_slot,priority:1" json:"advisor_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;column:user_id;uniqueIndex:idx_bookings_user_slot,priority:1" json:"user_id"`
	Date      string    `gorm:"type:varchar(10);not null;column:date;uniqueIndex:idx_bookings_advisor_slot,priority:2;uniqueIndex:idx_bookings_user_slot,priority:2" json:"date"`
	Time      string    `gorm:"type:varchar(5);not null;column:time;uniqueIndex:idx_bookings_advisor_slot,priority:3;uniqueIndex:idx_bookings_user_slot,priority:3" json:"time"`
	Link      string    `gorm:"column:link" json:"link"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (Booking) TableName() string { return "booking" }
