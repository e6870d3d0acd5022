package assessment

import (
	"context"
	"testing"

	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	"github.com/yungbote/careerpath-backend/internal/domain"
	asm "github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
)

func TestStatementRepo(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	seeded := testutil.SeedStatements(t, ctx, db)

	repo := NewStatementRepo(db, testutil.Logger(t))
	dbc := dbctx.New(ctx)

	list, err := repo.List(dbc)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(list) != len(seeded) {
		t.Fatalf("List: got %d statements, want %d", len(list), len(seeded))
	}
	for i := 1; i < len(list); i++ {
		if list[i-1].Position > list[i].Position {
			t.Fatalf("List: not ordered by position at %d", i)
		}
	}

	n, err := repo.Count(dbc)
	if err != nil || n != int64(len(seeded)) {
		t.Fatalf("Count=%d err=%v, want %d", n, err, len(seeded))
	}

	got, err := repo.GetByIDs(dbc, []uint{1, 2, 999})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetByIDs: got %d, want 2", len(got))
	}
}

func TestAnswerRepo(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	testutil.SeedStatements(t, ctx, db)
	u := testutil.SeedUser(t, ctx, db, "answers@example.com")

	repo := NewAnswerRepo(db, testutil.Logger(t))
	dbc := dbctx.New(ctx)

	// statement 1 is R, statement 8 is I
	if err := repo.Upsert(dbc, []*domain.Answer{
		{UserID: u.ID, StatementID: 1, Score: 2},
		{UserID: u.ID, StatementID: 8, Score: 4},
	}); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := repo.Upsert(dbc, []*domain.Answer{{UserID: u.ID, StatementID: 1, Score: 5}}); err != nil {
		t.Fatalf("Upsert(overwrite): %v", err)
	}

	rows, err := repo.ListByUser(dbc, u.ID)
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("ListByUser: got %d rows, want 2", len(rows))
	}
	if rows[0].StatementID != 1 || rows[0].Score != 5 || rows[0].Category != asm.Realistic {
		t.Fatalf("ListByUser[0]=%+v, want statement 1 R score 5", rows[0])
	}
	if rows[1].Category != asm.Investigative || rows[1].Score != 4 {
		t.Fatalf("ListByUser[1]=%+v, want I score 4", rows[1])
	}

	n, err := repo.CountByUser(dbc, u.ID)
	if err != nil || n != 2 {
		t.Fatalf("CountByUser=%d err=%v, want 2", n, err)
	}

	deleted, err := repo.DeleteByUser(dbc, u.ID)
	if err != nil || deleted != 2 {
		t.Fatalf("DeleteByUser=%d err=%v, want 2", deleted, err)
	}
	rows, err = repo.ListByUser(dbc, u.ID)
	if err != nil || len(rows) != 0 {
		t.Fatalf("ListByUser after delete: rows=%v err=%v", rows, err)
	}
}
