package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/db"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type AnswerInput struct {
	StatementID uint `json:"statement_id"`
	Score       int  `json:"score"`
}

type Progress struct {
	Answered int  `json:"answered"`
	Total    int  `json:"total"`
	Complete bool `json:"complete"`
}

type AssessmentService interface {
	SaveAnswers(ctx context.Context, userID uuid.UUID, answers []AnswerInput) (Progress, error)
	ResetAnswers(ctx context.Context, userID uuid.UUID) error
	Progress(ctx context.Context, userID uuid.UUID) (Progress, error)
}

type assessmentService struct {
	db         *gorm.DB
	log        *logger.Logger
	answerRepo repos.AnswerRepo
	catalog    CatalogService
}

func NewAssessmentService(db *gorm.DB, log *logger.Logger, answerRepo repos.AnswerRepo, catalog CatalogService) AssessmentService {
	return &assessmentService{
		db:         db,
		log:        log.With("service", "AssessmentService"),
		answerRepo: answerRepo,
		catalog:    catalog,
	}
}

// SaveAnswers validates and upserts answers. A later entry for the same
// statement in one request wins.
func (s *assessmentService) SaveAnswers(ctx context.Context, userID uuid.UUID, answers []AnswerInput) (Progress, error) {
	const op = "assessment.SaveAnswers"
	if len(answers) == 0 {
		return Progress{}, domain.Validation(op, "no answers provided")
	}
	statements, err := s.catalog.Statements(ctx)
	if err != nil {
		return Progress{}, err
	}
	known := make(map[uint]struct{}, len(statements))
	for _, st := range statements {
		known[st.ID] = struct{}{}
	}

	byStatement := make(map[uint]int, len(answers))
	order := make([]uint, 0, len(answers))
	for _, a := range answers {
		if a.Score < assessment.MinScore || a.Score > assessment.MaxScore {
			return Progress{}, domain.Validation(op, fmt.Sprintf("score must be between %d and %d", assessment.MinScore, assessment.MaxScore))
		}
		if _, ok := known[a.StatementID]; !ok {
			return Progress{}, domain.Validation(op, fmt.Sprintf("unknown statement %d", a.StatementID))
		}
		if _, seen := byStatement[a.StatementID]; !seen {
			order = append(order, a.StatementID)
		}
		byStatement[a.StatementID] = a.Score
	}

	rows := make([]*domain.Answer, 0, len(order))
	for _, id := range order {
		rows = append(rows, &domain.Answer{UserID: userID, StatementID: id, Score: byStatement[id]})
	}
	if err := s.answerRepo.Upsert(dbctx.New(ctx), rows); err != nil {
		s.log.Error("Upsert answers failed", "user_id", userID, "error", err)
		return Progress{}, db.MapError(op, err)
	}
	return s.progress(ctx, userID, len(statements))
}

func (s *assessmentService) ResetAnswers(ctx context.Context, userID uuid.UUID) error {
	n, err := s.answerRepo.DeleteByUser(dbctx.New(ctx), userID)
	if err != nil {
		s.log.Error("Reset answers failed", "user_id", userID, "error", err)
		return db.MapError("assessment.Reset", err)
	}
	s.log.Info("Answers reset", "user_id", userID, "deleted", n)
	return nil
}

func (s *assessmentService) Progress(ctx context.Context, userID uuid.UUID) (Progress, error) {
	statements, err := s.catalog.Statements(ctx)
	if err != nil {
		return Progress{}, err
	}
	return s.progress(ctx, userID, len(statements))
}

func (s *assessmentService) progress(ctx context.Context, userID uuid.UUID, total int) (Progress, error) {
	n, err := s.answerRepo.CountByUser(dbctx.New(ctx), userID)
	if err != nil {
		return Progress{}, db.MapError("assessment.Progress", err)
	}
	answered := int(n)
	return Progress{
		Answered: answered,
		Total:    total,
		Complete: total > 0 && answered >= total,
	}, nil
}
