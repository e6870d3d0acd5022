package services

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/db"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/events"
	"github.com/yungbote/careerpath-backend/internal/modules/advisory"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

const (
	msgSlotTaken    = "slot already taken"
	msgUserConflict = "user already has a booking at that time"
)

// errBookingRace marks an insert rejected by a unique index, so the
// transaction rolls back before the conflict is classified.
var errBookingRace = errors.New("booking insert lost a race")

type BookingEvent struct {
	BookingID uuid.UUID `json:"booking_id"`
	AdvisorID uint      `json:"advisor_id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      string    `json:"date"`
	Time      string    `json:"time"`
}

type AdvisoryService interface {
	AvailableTimes(ctx context.Context, advisorID uint, date string) ([]string, error)
	// BookedSlots lists taken "YYYY-MM-DD HH:MM" slots from dateFrom (today
	// when empty or earlier) onward. advisorID 0 means every advisor.
	BookedSlots(ctx context.Context, advisorID uint, dateFrom string) ([]string, error)
	Book(ctx context.Context, advisorID uint, userID uuid.UUID, date, hhmm string) (*domain.Booking, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) error
	ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error)
}

type AdvisoryConfig struct {
	Grid      advisory.Grid
	Links     advisory.MeetingLinkProvider
	Publisher events.Publisher
	Metrics   *observability.Metrics
	Now       func() time.Time
}

type advisoryService struct {
	db          *gorm.DB
	log         *logger.Logger
	advisorRepo repos.AdvisorRepo
	bookingRepo repos.BookingRepo
	grid        advisory.Grid
	links       advisory.MeetingLinkProvider
	pub         events.Publisher
	metrics     *observability.Metrics
	now         func() time.Time
}

func NewAdvisoryService(
	db *gorm.DB,
	log *logger.Logger,
	advisorRepo repos.AdvisorRepo,
	bookingRepo repos.BookingRepo,
	cfg AdvisoryConfig,
) (AdvisoryService, error) {
	if cfg.Grid == (advisory.Grid{}) {
		cfg.Grid = advisory.DefaultGrid()
	}
	if err := cfg.Grid.Validate(); err != nil {
		return nil, err
	}
	if cfg.Links == nil {
		links, err := advisory.NewMeetingLinkProvider(advisory.LinkModeStatic, "", "")
		if err != nil {
			return nil, err
		}
		cfg.Links = links
	}
	if cfg.Publisher == nil {
		cfg.Publisher = events.Nop{}
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &advisoryService{
		db:          db,
		log:         log.With("service", "AdvisoryService"),
		advisorRepo: advisorRepo,
		bookingRepo: bookingRepo,
		grid:        cfg.Grid,
		links:       cfg.Links,
		pub:         cfg.Publisher,
		metrics:     cfg.Metrics,
		now:         cfg.Now,
	}, nil
}

func (s *advisoryService) requireAdvisor(ctx context.Context, op string, advisorID uint) error {
	if advisorID == 0 {
		return domain.Validation(op, "advisor_id is required")
	}
	if _, err := s.advisorRepo.GetByID(dbctx.New(ctx), advisorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.NotFound(op, "advisor not found")
		}
		return db.MapError(op, err)
	}
	return nil
}

func (s *advisoryService) AvailableTimes(ctx context.Context, advisorID uint, date string) ([]string, error) {
	const op = "advisory.AvailableTimes"
	day, err := advisory.ParseDate(date)
	if err != nil {
		return nil, domain.Validation(op, err.Error())
	}
	if err := s.requireAdvisor(ctx, op, advisorID); err != nil {
		return nil, err
	}
	booked, err := s.bookingRepo.List(dbctx.New(ctx), repos.BookingFilter{AdvisorID: advisorID, Date: day})
	if err != nil {
		s.log.Error("List bookings failed", "advisor_id", advisorID, "date", day, "error", err)
		return nil, db.MapError(op, err)
	}
	taken := make([]string, 0, len(booked))
	for _, b := range booked {
		taken = append(taken, b.Time)
	}
	return s.grid.Available(taken), nil
}

func (s *advisoryService) BookedSlots(ctx context.Context, advisorID uint, dateFrom string) ([]string, error) {
	const op = "advisory.BookedSlots"
	from := s.now().Format(advisory.DateLayout)
	if dateFrom != "" {
		day, err := advisory.ParseDate(dateFrom)
		if err != nil {
			return nil, domain.Validation(op, err.Error())
		}
		if day > from {
			from = day
		}
	}
	if advisorID != 0 {
		if err := s.requireAdvisor(ctx, op, advisorID); err != nil {
			return nil, err
		}
	}
	rows, err := s.bookingRepo.List(dbctx.New(ctx), repos.BookingFilter{AdvisorID: advisorID, DateFrom: from})
	if err != nil {
		s.log.Error("List booked slots failed", "advisor_id", advisorID, "date_from", from, "error", err)
		return nil, db.MapError(op, err)
	}
	out := make([]string, 0, len(rows))
	for _, b := range rows {
		out = append(out, b.Date+" "+b.Time)
	}
	return out, nil
}

// Book reserves a slot. The pre-checks give precise messages; the unique
// indexes decide when two requests race past them.
func (s *advisoryService) Book(ctx context.Context, advisorID uint, userID uuid.UUID, date, hhmm string) (_ *domain.Booking, err error) {
	const op = "advisory.Book"
	defer func() {
		switch {
		case err == nil:
			s.metrics.IncBooking("created")
		case domain.IsCode(err, domain.CodeConflict):
			s.metrics.IncBooking("conflict")
		default:
			s.metrics.IncBooking("rejected")
		}
	}()

	if userID == uuid.Nil {
		return nil, domain.NewError(domain.CodeUnauthorized, op, "not authenticated", nil)
	}
	day, err := advisory.ParseDate(date)
	if err != nil {
		return nil, domain.Validation(op, err.Error())
	}
	slot, err := advisory.NormalizeTime(hhmm)
	if err != nil {
		return nil, domain.Validation(op, err.Error())
	}
	if !s.grid.Contains(slot) {
		return nil, domain.Validation(op, advisory.ErrOffGrid.Error())
	}
	if err := s.requireAdvisor(ctx, op, advisorID); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ID:        uuid.New(),
		AdvisorID: advisorID,
		UserID:    userID,
		Date:      day,
		Time:      slot,
	}
	b.Link = s.links.Link(b.ID)

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		taken, err := s.bookingRepo.Exists(dbc, repos.BookingFilter{AdvisorID: advisorID, Date: day, Time: slot})
		if err != nil {
			return db.MapError(op, err)
		}
		if taken {
			return domain.Conflict(op, msgSlotTaken)
		}
		busy, err := s.bookingRepo.Exists(dbc, repos.BookingFilter{UserID: userID, Date: day, Time: slot})
		if err != nil {
			return db.MapError(op, err)
		}
		if busy {
			return domain.Conflict(op, msgUserConflict)
		}
		if err := s.bookingRepo.Create(dbc, b); err != nil {
			if db.IsUniqueViolation(err) {
				return errBookingRace
			}
			return db.MapError(op, err)
		}
		return nil
	})
	if errors.Is(txErr, errBookingRace) {
		return nil, s.raceConflict(ctx, op, b)
	}
	if txErr != nil {
		if !domain.IsCode(txErr, domain.CodeConflict) {
			s.log.Error("Booking failed", "advisor_id", advisorID, "user_id", userID, "error", txErr)
		}
		return nil, db.MapError(op, txErr)
	}

	s.log.Info("Booking created", "booking_id", b.ID, "advisor_id", advisorID, "user_id", userID, "date", day, "time", slot)
	s.publish(ctx, events.TypeBookingCreated, b)
	return b, nil
}

// raceConflict picks the message for an insert rejected by a unique index
// by looking at which slot is now occupied.
func (s *advisoryService) raceConflict(ctx context.Context, op string, b *domain.Booking) error {
	dbc := dbctx.New(ctx)
	if ok, err := s.bookingRepo.Exists(dbc, repos.BookingFilter{AdvisorID: b.AdvisorID, Date: b.Date, Time: b.Time}); err == nil && ok {
		return domain.Conflict(op, msgSlotTaken)
	}
	if ok, err := s.bookingRepo.Exists(dbc, repos.BookingFilter{UserID: b.UserID, Date: b.Date, Time: b.Time}); err == nil && ok {
		return domain.Conflict(op, msgUserConflict)
	}
	return domain.Conflict(op, msgSlotTaken)
}

func (s *advisoryService) Cancel(ctx context.Context, bookingID uuid.UUID, userID uuid.UUID) error {
	const op = "advisory.Cancel"
	if bookingID == uuid.Nil {
		return domain.Validation(op, "invalid booking id")
	}
	var removed *domain.Booking
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		rows, err := s.bookingRepo.List(dbc, repos.BookingFilter{UserID: userID})
		if err != nil {
			return err
		}
		for _, r := range rows {
			if r.ID == bookingID {
				removed = r
				break
			}
		}
		n, err := s.bookingRepo.DeleteOwned(dbc, bookingID, userID)
		if err != nil {
			return err
		}
		if n == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(op, "booking not found")
	}
	if err != nil {
		s.log.Error("Cancel booking failed", "booking_id", bookingID, "error", err)
		return db.MapError(op, err)
	}
	s.log.Info("Booking cancelled", "booking_id", bookingID, "user_id", userID)
	if removed != nil {
		s.publish(ctx, events.TypeBookingCancelled, removed)
	}
	return nil
}

func (s *advisoryService) ListUserBookings(ctx context.Context, userID uuid.UUID) ([]*domain.Booking, error) {
	rows, err := s.bookingRepo.List(dbctx.New(ctx), repos.BookingFilter{UserID: userID})
	if err != nil {
		return nil, db.MapError("advisory.ListUserBookings", err)
	}
	if rows == nil {
		rows = []*domain.Booking{}
	}
	return rows, nil
}

func (s *advisoryService) publish(ctx context.Context, typ string, b *domain.Booking) {
	ev, err := events.New(typ, strconv.FormatUint(uint64(b.AdvisorID), 10), BookingEvent{
		BookingID: b.ID,
		AdvisorID: b.AdvisorID,
		UserID:    b.UserID,
		Date:      b.Date,
		Time:      b.Time,
	})
	if err == nil {
		err = s.pub.Publish(ctx, ev)
	}
	if err != nil {
		s.log.Warn("Publish booking event failed", "type", typ, "booking_id", b.ID, "error", err)
	}
}
