package advisory

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// BookingFilter narrows List. Zero fields are ignored.
type BookingFilter struct {
	AdvisorID uint
	UserID    uuid.UUID
	Date      string
	Time      string
	// DateFrom keeps bookings on or after this YYYY-MM-DD date.
	DateFrom string
}

type BookingRepo interface {
	// List returns matching bookings ordered by date, then time.
	List(dbc dbctx.Context, f BookingFilter) ([]*domain.Booking, error)
	Exists(dbc dbctx.Context, f BookingFilter) (bool, error)
	Create(dbc dbctx.Context, b *domain.Booking) error
	// DeleteOwned removes the booking only when it belongs to userID.
	DeleteOwned(dbc dbctx.Context, id uuid.UUID, userID uuid.UUID) (int64, error)
}

type bookingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewBookingRepo(db *gorm.DB, baseLog *logger.Logger) BookingRepo {
	return &bookingRepo{db: db, log: baseLog.With("repo", "BookingRepo")}
}

func (r *bookingRepo) scoped(dbc dbctx.Context, f BookingFilter) *gorm.DB {
	q := dbc.DB(r.db).Model(&domain.Booking{})
	if f.AdvisorID != 0 {
		q = q.Where("advisor_id = ?", f.AdvisorID)
	}
	if f.UserID != uuid.Nil {
		q = q.Where("user_id = ?", f.UserID)
	}
	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}
	if f.Time != "" {
		q = q.Where("time = ?", f.Time)
	}
	if f.DateFrom != "" {
		q = q.Where("date >= ?", f.DateFrom)
	}
	return q
}

func (r *bookingRepo) List(dbc dbctx.Context, f BookingFilter) ([]*domain.Booking, error) {
	var out []*domain.Booking
	if err := r.scoped(dbc, f).Order("date ASC, time ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *bookingRepo) Exists(dbc dbctx.Context, f BookingFilter) (bool, error) {
	var n int64
	if err := r.scoped(dbc, f).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *bookingRepo) Create(dbc dbctx.Context, b *domain.Booking) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return dbc.DB(r.db).Create(b).Error
}

func (r *bookingRepo) DeleteOwned(dbc dbctx.Context, id uuid.UUID, userID uuid.UUID) (int64, error) {
	res := dbc.DB(r.db).Where("id = ? AND user_id = ?", id, userID).Delete(&domain.Booking{})
	return res.RowsAffected, res.Error
}
