package services

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/db"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/modules/recommendation"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// ProfileService computes a user's RIASEC profile from stored answers.
type ProfileService interface {
	Profile(ctx context.Context, userID uuid.UUID) (recommendation.Profile, error)
}

type profileService struct {
	db         *gorm.DB
	log        *logger.Logger
	answerRepo repos.AnswerRepo
}

func NewProfileService(db *gorm.DB, log *logger.Logger, answerRepo repos.AnswerRepo) ProfileService {
	return &profileService{db: db, log: log.With("service", "ProfileService"), answerRepo: answerRepo}
}

func (s *profileService) Profile(ctx context.Context, userID uuid.UUID) (recommendation.Profile, error) {
	rows, err := s.answerRepo.ListByUser(dbctx.New(ctx), userID)
	if err != nil {
		s.log.Error("Load answers failed", "user_id", userID, "error", err)
		return nil, db.MapError("profile.Load", err)
	}
	p, skipped := recommendation.Aggregate(rows)
	if len(skipped) > 0 {
		s.log.Warn("Answers with unknown category ignored", "user_id", userID, "statement_ids", skipped)
	}
	return p, nil
}
