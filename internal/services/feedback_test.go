package services

import (
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/domain"
)

func newFeedbackService(e *testEnv) FeedbackService {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return NewFeedbackService(e.db, e.log, repos.NewNPSRepo(e.db, e.log), e.answerRepo, e.catalog, FeedbackConfig{
		Now: func() time.Time { return now },
	})
}

func TestNPSEligibility(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "nps@example.com")
	svc := newFeedbackService(e)

	got, err := svc.Check(e.ctx, u.ID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if got.Eligible || got.Reason != ReasonTestNotCompleted {
		t.Fatalf("Check before test=%+v, want test_not_completed", got)
	}
	if st, _ := svc.Status(e.ctx, u.ID); st.Exists {
		t.Fatalf("Status=%+v, want no record before eligibility", st)
	}

	e.answerAll(t, u.ID, 4)
	got, err = svc.Check(e.ctx, u.ID)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if !got.Eligible || !got.PendingPage || !got.PendingTest {
		t.Fatalf("Check after test=%+v, want eligible with both pending", got)
	}
	if st, _ := svc.Status(e.ctx, u.ID); !st.Exists {
		t.Fatalf("Check should create the record")
	}
}

func TestNPSUpdateTimePromptsOnIntervalCrossing(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "time@example.com")
	svc := newFeedbackService(e)

	steps := []struct {
		seconds float64
		total   float64
		show    bool
	}{
		{seconds: 200, total: 200, show: false},
		{seconds: 150, total: 350, show: true},
		{seconds: 100, total: 450, show: false},
		{seconds: 200, total: 650, show: true},
		{seconds: 0, total: 650, show: false},
	}
	for _, s := range steps {
		got, err := svc.UpdateTime(e.ctx, u.ID, s.seconds)
		if err != nil {
			t.Fatalf("UpdateTime(%v): %v", s.seconds, err)
		}
		if got.AccumulatedSeconds != s.total || got.ShowNPS != s.show {
			t.Fatalf("UpdateTime(%v)=%+v, want total %v show %v", s.seconds, got, s.total, s.show)
		}
	}

	for _, bad := range []float64{-1, MaxNPSUpdateSeconds + 1} {
		if _, err := svc.UpdateTime(e.ctx, u.ID, bad); !domain.IsCode(err, domain.CodeValidation) {
			t.Fatalf("UpdateTime(%v) err=%v, want validation", bad, err)
		}
	}
}

func TestNPSSubmit(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "submit@example.com")
	e.answerAll(t, u.ID, 4)
	svc := newFeedbackService(e)

	invalid := []struct {
		kind  domain.NPSKind
		score int
	}{
		{kind: "pagina", score: 5},
		{kind: domain.NPSKindPage, score: -1},
		{kind: domain.NPSKindTest, score: 11},
	}
	for _, tc := range invalid {
		if _, err := svc.Submit(e.ctx, u.ID, tc.kind, tc.score); !domain.IsCode(err, domain.CodeValidation) {
			t.Fatalf("Submit(%q,%d) err=%v, want validation", tc.kind, tc.score, err)
		}
	}

	res, err := svc.Submit(e.ctx, u.ID, domain.NPSKindPage, 9)
	if err != nil || res.State != 1 || res.Completed {
		t.Fatalf("Submit(page)=%+v err=%v, want state 1", res, err)
	}
	if _, err := svc.Submit(e.ctx, u.ID, domain.NPSKindPage, 7); !domain.IsCode(err, domain.CodeConflict) {
		t.Fatalf("Submit(page again) err=%v, want conflict", err)
	}
	res, err = svc.Submit(e.ctx, u.ID, "TEST", 10)
	if err != nil || res.State != 2 || !res.Completed {
		t.Fatalf("Submit(test)=%+v err=%v, want completed", res, err)
	}

	chk, err := svc.Check(e.ctx, u.ID)
	if err != nil || chk.Eligible || chk.Reason != ReasonNPSCompleted {
		t.Fatalf("Check after completion=%+v err=%v", chk, err)
	}
	upd, err := svc.UpdateTime(e.ctx, u.ID, 600)
	if err != nil || upd.ShowNPS || upd.AccumulatedSeconds != 0 {
		t.Fatalf("UpdateTime after completion=%+v err=%v, want unchanged", upd, err)
	}
	st, err := svc.Status(e.ctx, u.ID)
	if err != nil || st.PageScore == nil || *st.PageScore != 9 || st.TestScore == nil || *st.TestScore != 10 {
		t.Fatalf("Status=%+v err=%v", st, err)
	}
}

func TestNPSSubmitConcurrentSameKindStoresOnce(t *testing.T) {
	e := newTestEnv(t)
	u := e.user(t, "race@example.com")
	e.answerAll(t, u.ID, 4)
	svc := newFeedbackService(e)

	const n = 6
	var ok, conflicts atomic.Int32
	var g errgroup.Group
	for i := 0; i < n; i++ {
		score := i + 1
		g.Go(func() error {
			_, err := svc.Submit(e.ctx, u.ID, domain.NPSKindPage, score)
			switch {
			case err == nil:
				ok.Add(1)
			case domain.IsCode(err, domain.CodeConflict):
				conflicts.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok.Load() != 1 || conflicts.Load() != n-1 {
		t.Fatalf("successes=%d conflicts=%d, want 1 and %d", ok.Load(), conflicts.Load(), n-1)
	}
	st, err := svc.Status(e.ctx, u.ID)
	if err != nil || st.State != 1 || st.PageScore == nil {
		t.Fatalf("Status=%+v err=%v, want one stored page score", st, err)
	}
}
