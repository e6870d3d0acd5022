package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/db"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/feedback"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

const (
	DefaultNPSPromptInterval = 300 * time.Second
	// MaxNPSUpdateSeconds bounds one time report from a client.
	MaxNPSUpdateSeconds = 3600.0

	ReasonTestNotCompleted = "test_not_completed"
	ReasonNPSCompleted     = "nps_completed"
)

type NPSStatus struct {
	Exists             bool       `json:"exists"`
	AccumulatedSeconds float64    `json:"accumulated_seconds"`
	LastSeenAt         *time.Time `json:"last_seen_at"`
	PageScore          *int       `json:"page_score"`
	TestScore          *int       `json:"test_score"`
	State              int        `json:"state"`
	RespondedAt        *time.Time `json:"responded_at"`
}

type NPSEligibility struct {
	Eligible           bool    `json:"eligible"`
	Reason             string  `json:"reason,omitempty"`
	TestAnswers        int     `json:"test_answers,omitempty"`
	AccumulatedSeconds float64 `json:"accumulated_seconds"`
	State              int     `json:"state"`
	PendingPage        bool    `json:"pending_page"`
	PendingTest        bool    `json:"pending_test"`
}

type NPSTimeUpdate struct {
	AccumulatedSeconds float64 `json:"accumulated_seconds"`
	ShowNPS            bool    `json:"show_nps"`
	State              int     `json:"state"`
}

type NPSSubmitResult struct {
	State     int  `json:"state"`
	Completed bool `json:"completed"`
}

type FeedbackService interface {
	Status(ctx context.Context, userID uuid.UUID) (NPSStatus, error)
	Check(ctx context.Context, userID uuid.UUID) (NPSEligibility, error)
	UpdateTime(ctx context.Context, userID uuid.UUID, seconds float64) (NPSTimeUpdate, error)
	Submit(ctx context.Context, userID uuid.UUID, kind domain.NPSKind, score int) (NPSSubmitResult, error)
}

type FeedbackConfig struct {
	PromptInterval time.Duration
	Now            func() time.Time
}

type feedbackService struct {
	db         *gorm.DB
	log        *logger.Logger
	npsRepo    repos.NPSRepo
	answerRepo repos.AnswerRepo
	catalog    CatalogService
	interval   float64
	now        func() time.Time
}

func NewFeedbackService(
	db *gorm.DB,
	log *logger.Logger,
	npsRepo repos.NPSRepo,
	answerRepo repos.AnswerRepo,
	catalog CatalogService,
	cfg FeedbackConfig,
) FeedbackService {
	if cfg.PromptInterval <= 0 {
		cfg.PromptInterval = DefaultNPSPromptInterval
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &feedbackService{
		db:         db,
		log:        log.With("service", "FeedbackService"),
		npsRepo:    npsRepo,
		answerRepo: answerRepo,
		catalog:    catalog,
		interval:   cfg.PromptInterval.Seconds(),
		now:        cfg.Now,
	}
}

func (s *feedbackService) Status(ctx context.Context, userID uuid.UUID) (NPSStatus, error) {
	rec, err := s.npsRepo.Get(dbctx.New(ctx), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NPSStatus{}, nil
	}
	if err != nil {
		return NPSStatus{}, db.MapError("nps.Status", err)
	}
	st := NPSStatus{
		Exists:             true,
		AccumulatedSeconds: rec.AccumulatedSeconds,
		PageScore:          rec.PageScore,
		TestScore:          rec.TestScore,
		State:              rec.State,
		RespondedAt:        rec.RespondedAt,
	}
	if !rec.LastSeenAt.IsZero() {
		seen := rec.LastSeenAt
		st.LastSeenAt = &seen
	}
	return st, nil
}

// Check reports whether the user should be offered the survey. Users who have
// not finished the questionnaire never are.
func (s *feedbackService) Check(ctx context.Context, userID uuid.UUID) (NPSEligibility, error) {
	const op = "nps.Check"
	statements, err := s.catalog.Statements(ctx)
	if err != nil {
		return NPSEligibility{}, err
	}
	answered, err := s.answerRepo.CountByUser(dbctx.New(ctx), userID)
	if err != nil {
		return NPSEligibility{}, db.MapError(op, err)
	}
	if len(statements) == 0 || int(answered) < len(statements) {
		return NPSEligibility{Reason: ReasonTestNotCompleted, TestAnswers: int(answered)}, nil
	}

	rec, err := s.ensureRecord(ctx, op, userID)
	if err != nil {
		return NPSEligibility{}, err
	}
	if rec.State >= feedback.StateComplete {
		return NPSEligibility{Reason: ReasonNPSCompleted, State: rec.State}, nil
	}
	return NPSEligibility{
		Eligible:           true,
		AccumulatedSeconds: rec.AccumulatedSeconds,
		State:              rec.State,
		PendingPage:        rec.PageScore == nil,
		PendingTest:        rec.TestScore == nil,
	}, nil
}

// UpdateTime adds seconds of page time. ShowNPS is set when the total crosses
// a new multiple of the prompt interval.
func (s *feedbackService) UpdateTime(ctx context.Context, userID uuid.UUID, seconds float64) (NPSTimeUpdate, error) {
	const op = "nps.UpdateTime"
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return NPSTimeUpdate{}, domain.Validation(op, "seconds must be a non-negative number")
	}
	if seconds > MaxNPSUpdateSeconds {
		return NPSTimeUpdate{}, domain.Validation(op, fmt.Sprintf("seconds must not exceed %.0f", MaxNPSUpdateSeconds))
	}
	if _, err := s.ensureRecord(ctx, op, userID); err != nil {
		return NPSTimeUpdate{}, err
	}

	var out NPSTimeUpdate
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		rec, err := s.npsRepo.GetForUpdate(dbc, userID)
		if err != nil {
			return err
		}
		out.State = rec.State
		if rec.State >= feedback.StateComplete {
			out.AccumulatedSeconds = rec.AccumulatedSeconds
			return nil
		}
		prev := rec.AccumulatedSeconds
		next := prev + seconds
		rec.AccumulatedSeconds = next
		rec.LastSeenAt = s.now().UTC()
		if err := s.npsRepo.Save(dbc, rec); err != nil {
			return err
		}
		out.AccumulatedSeconds = next
		out.ShowNPS = next >= s.interval && math.Floor(next/s.interval) > math.Floor(prev/s.interval)
		return nil
	})
	if err != nil {
		s.log.Error("Update NPS time failed", "user_id", userID, "error", err)
		return NPSTimeUpdate{}, db.MapError(op, err)
	}
	return out, nil
}

// Submit stores one survey answer. Each kind can be answered once; the
// record is complete after both.
func (s *feedbackService) Submit(ctx context.Context, userID uuid.UUID, kind domain.NPSKind, score int) (NPSSubmitResult, error) {
	const op = "nps.Submit"
	kind = domain.NPSKind(strings.ToLower(strings.TrimSpace(string(kind))))
	if kind != domain.NPSKindPage && kind != domain.NPSKindTest {
		return NPSSubmitResult{}, domain.Validation(op, `kind must be "page" or "test"`)
	}
	if score < feedback.MinScore || score > feedback.MaxScore {
		return NPSSubmitResult{}, domain.Validation(op, fmt.Sprintf("score must be between %d and %d", feedback.MinScore, feedback.MaxScore))
	}
	if _, err := s.ensureRecord(ctx, op, userID); err != nil {
		return NPSSubmitResult{}, err
	}

	var out NPSSubmitResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		rec, err := s.npsRepo.GetForUpdate(dbc, userID)
		if err != nil {
			return err
		}
		v := score
		switch kind {
		case domain.NPSKindPage:
			if rec.PageScore != nil {
				return domain.Conflict(op, "page survey already answered")
			}
			rec.PageScore = &v
		case domain.NPSKindTest:
			if rec.TestScore != nil {
				return domain.Conflict(op, "test survey already answered")
			}
			rec.TestScore = &v
		}
		now := s.now().UTC()
		rec.State++
		rec.RespondedAt = &now
		if err := s.npsRepo.Save(dbc, rec); err != nil {
			return err
		}
		out = NPSSubmitResult{State: rec.State, Completed: rec.State >= feedback.StateComplete}
		return nil
	})
	if err != nil {
		if !domain.IsCode(err, domain.CodeConflict) {
			s.log.Error("Submit NPS failed", "user_id", userID, "error", err)
		}
		return NPSSubmitResult{}, db.MapError(op, err)
	}
	s.log.Info("NPS answer stored", "user_id", userID, "kind", kind, "score", score, "state", out.State)
	return out, nil
}

// ensureRecord loads the user's record, creating an empty one on first use.
func (s *feedbackService) ensureRecord(ctx context.Context, op string, userID uuid.UUID) (*domain.NPSRecord, error) {
	dbc := dbctx.New(ctx)
	rec, err := s.npsRepo.Get(dbc, userID)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, db.MapError(op, err)
	}
	rec = &domain.NPSRecord{UserID: userID, LastSeenAt: s.now().UTC()}
	if err := s.npsRepo.Create(dbc, rec); err != nil {
		if !db.IsUniqueViolation(err) {
			return nil, db.MapError(op, err)
		}
		// Created concurrently by another request.
		if rec, err = s.npsRepo.Get(dbc, userID); err != nil {
			return nil, db.MapError(op, err)
		}
	}
	return rec, nil
}
