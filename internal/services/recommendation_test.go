package services

import (
	"testing"

	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/observability"
)

func seedTwoOccupations(t *testing.T, e *testEnv) {
	t.Helper()
	testutil.SeedOccupation(t, e.ctx, e.db, 1, "Generalist", [6]float64{7, 7, 7, 7, 7, 7}, "Liberal Arts", "Management")
	testutil.SeedOccupation(t, e.ctx, e.db, 2, "Mechanic", [6]float64{7, 1, 1, 1, 1, 1}, "Mechanical Engineering")
}

func newRecommendationService(e *testEnv, topN int) RecommendationService {
	return NewRecommendationService(e.log, e.profiles, e.catalog, RecommendationConfig{TopN: topN, Metrics: observability.NewMetrics()})
}

func TestPredictAllFivesMatchesUniformOccupation(t *testing.T) {
	e := newTestEnv(t)
	seedTwoOccupations(t, e)
	u := e.user(t, "fives@example.com")
	e.answerAll(t, u.ID, 5)

	res, err := newRecommendationService(e, 5).Predict(e.ctx, u.ID)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if res.Occupation.ID != 1 || res.Occupation.Similarity != 1.0 {
		t.Fatalf("Occupation=%+v, want id 1 with similarity 1.0", res.Occupation)
	}
	if len(res.TopOccupations) != 2 || res.TopOccupations[1].ID != 2 {
		t.Fatalf("TopOccupations=%+v, want [1 2]", res.TopOccupations)
	}
	if len(res.SuggestedCareers) != 2 || res.SuggestedCareers[0] != "Liberal Arts" {
		t.Fatalf("SuggestedCareers=%v", res.SuggestedCareers)
	}
	if res.PartialProfile || len(res.DefaultedDimensions) != 0 {
		t.Fatalf("partial=%v defaulted=%v, want full profile", res.PartialProfile, res.DefaultedDimensions)
	}
	for _, c := range assessment.Categories {
		if res.UserProfile[c] != 5 || res.UserProfileScaled[c] != 7 {
			t.Fatalf("profile[%s]=%v scaled=%v, want 5 and 7", c, res.UserProfile[c], res.UserProfileScaled[c])
		}
	}
}

func TestPredictPartialProfileDefaultsMissingCategories(t *testing.T) {
	e := newTestEnv(t)
	seedTwoOccupations(t, e)
	u := e.user(t, "partial@example.com")
	// Statements 1..7 are Realistic.
	in := make([]AnswerInput, 0, testutil.StatementsPerCategory)
	for id := uint(1); id <= testutil.StatementsPerCategory; id++ {
		in = append(in, AnswerInput{StatementID: id, Score: 5})
	}
	if _, err := e.assessment.SaveAnswers(e.ctx, u.ID, in); err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}

	res, err := newRecommendationService(e, 1).Predict(e.ctx, u.ID)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if !res.PartialProfile || len(res.DefaultedDimensions) != 5 {
		t.Fatalf("partial=%v defaulted=%v, want 5 defaulted", res.PartialProfile, res.DefaultedDimensions)
	}
	if _, ok := res.UserProfile[assessment.Conventional]; ok {
		t.Fatalf("UserProfile should only hold measured categories: %v", res.UserProfile)
	}
	if got := res.UserProfileScaled[assessment.Conventional]; got != 4 {
		t.Fatalf("scaled C=%v, want neutral 4", got)
	}
	if len(res.TopOccupations) != 1 {
		t.Fatalf("TopOccupations=%d, want 1", len(res.TopOccupations))
	}
}

func TestPredictFailures(t *testing.T) {
	t.Run("degenerate_profile", func(t *testing.T) {
		e := newTestEnv(t)
		seedTwoOccupations(t, e)
		u := e.user(t, "ones@example.com")
		e.answerAll(t, u.ID, 1)

		_, err := newRecommendationService(e, 5).Predict(e.ctx, u.ID)
		if !domain.IsCode(err, domain.CodeDegenerateVector) {
			t.Fatalf("Predict err=%v, want degenerate_vector", err)
		}
		if got := domain.MessageOf(err); got != "insufficient data, retake the test" {
			t.Fatalf("message=%q", got)
		}
	})
	t.Run("empty_catalog", func(t *testing.T) {
		e := newTestEnv(t)
		u := e.user(t, "empty@example.com")
		e.answerAll(t, u.ID, 4)

		_, err := newRecommendationService(e, 5).Predict(e.ctx, u.ID)
		if !domain.IsCode(err, domain.CodeNotFound) {
			t.Fatalf("Predict err=%v, want not_found", err)
		}
	})
}
