package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type testEnv struct {
	ctx        context.Context
	db         *gorm.DB
	log        *logger.Logger
	answerRepo repos.AnswerRepo
	catalog    CatalogService
	assessment AssessmentService
	profiles   ProfileService
}

// newTestEnv opens a fresh database with the full questionnaire seeded.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	testutil.SeedStatements(t, ctx, db)

	answerRepo := repos.NewAnswerRepo(db, log)
	catalog := NewCatalogService(
		db, log,
		repos.NewOccupationRepo(db, log),
		repos.NewCareerRepo(db, log),
		repos.NewStatementRepo(db, log),
		repos.NewAdvisorRepo(db, log),
		CacheConfig{},
	)
	return &testEnv{
		ctx:        ctx,
		db:         db,
		log:        log,
		answerRepo: answerRepo,
		catalog:    catalog,
		assessment: NewAssessmentService(db, log, answerRepo, catalog),
		profiles:   NewProfileService(db, log, answerRepo),
	}
}

func (e *testEnv) user(t *testing.T, email string) *domain.User {
	t.Helper()
	return testutil.SeedUser(t, e.ctx, e.db, email)
}

// answerAll gives every seeded statement the same score.
func (e *testEnv) answerAll(t *testing.T, userID uuid.UUID, score int) {
	t.Helper()
	in := make([]AnswerInput, 0, 6*testutil.StatementsPerCategory)
	for id := uint(1); id <= 6*testutil.StatementsPerCategory; id++ {
		in = append(in, AnswerInput{StatementID: id, Score: score})
	}
	if _, err := e.assessment.SaveAnswers(e.ctx, userID, in); err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}
}
