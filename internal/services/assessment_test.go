package services

import (
	"testing"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

func TestSaveAnswersValidation(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "q@example.com")

	cases := []struct {
		name string
		in   []AnswerInput
	}{
		{name: "empty", in: nil},
		{name: "score_low", in: []AnswerInput{{StatementID: 1, Score: 0}}},
		{name: "score_high", in: []AnswerInput{{StatementID: 1, Score: 6}}},
		{name: "unknown_statement", in: []AnswerInput{{StatementID: 999, Score: 3}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := e.assessment.SaveAnswers(e.ctx, u.ID, tc.in); !domain.IsCode(err, domain.CodeValidation) {
				t.Fatalf("SaveAnswers(%v) err=%v, want validation", tc.in, err)
			}
		})
	}
	p, err := e.assessment.Progress(e.ctx, u.ID)
	if err != nil || p.Answered != 0 {
		t.Fatalf("Progress=%+v err=%v, want nothing stored", p, err)
	}
}

func TestSaveAnswersUpsertsAndResets(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "upsert@example.com")

	p, err := e.assessment.SaveAnswers(e.ctx, u.ID, []AnswerInput{
		{StatementID: 1, Score: 2},
		{StatementID: 2, Score: 4},
		{StatementID: 1, Score: 5},
	})
	if err != nil {
		t.Fatalf("SaveAnswers: %v", err)
	}
	if p.Answered != 2 || p.Total != 42 || p.Complete {
		t.Fatalf("Progress=%+v, want 2/42 incomplete", p)
	}

	prof, err := e.profiles.Profile(e.ctx, u.ID)
	if err != nil {
		t.Fatalf("Profile: %v", err)
	}
	if got := prof[assessment.Realistic]; got != 4.5 {
		t.Fatalf("Profile[R]=%v, want 4.5 (later duplicate wins)", got)
	}

	if _, err := e.assessment.SaveAnswers(e.ctx, u.ID, []AnswerInput{{StatementID: 2, Score: 1}}); err != nil {
		t.Fatalf("SaveAnswers(update): %v", err)
	}
	if prof, _ = e.profiles.Profile(e.ctx, u.ID); prof[assessment.Realistic] != 3 {
		t.Fatalf("Profile[R] after update=%v, want 3", prof[assessment.Realistic])
	}

	e.answerAll(t, u.ID, 3)
	if p, _ = e.assessment.Progress(e.ctx, u.ID); !p.Complete {
		t.Fatalf("Progress=%+v, want complete", p)
	}

	if err := e.assessment.ResetAnswers(e.ctx, u.ID); err != nil {
		t.Fatalf("ResetAnswers: %v", err)
	}
	if p, _ = e.assessment.Progress(e.ctx, u.ID); p.Answered != 0 {
		t.Fatalf("Progress after reset=%+v", p)
	}
}
