package feedback

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
)

func TestNPSRepo(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "nps@example.com")

	repo := NewNPSRepo(db, testutil.Logger(t))
	dbc := dbctx.New(ctx)

	if _, err := repo.Get(dbc, u.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("Get(missing) err=%v, want ErrRecordNotFound", err)
	}

	rec := &domain.NPSRecord{UserID: u.ID, LastSeenAt: time.Now().UTC()}
	if err := repo.Create(dbc, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	score := 9
	rec.PageScore = &score
	rec.State = 1
	rec.AccumulatedSeconds = 320
	if err := repo.Save(dbc, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(dbc, u.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.State != 1 || got.PageScore == nil || *got.PageScore != 9 || got.AccumulatedSeconds != 320 {
		t.Fatalf("Get=%+v, want state 1 page score 9", got)
	}
}

func TestNPSRepoGetForUpdateInTransaction(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "lock@example.com")
	repo := NewNPSRepo(db, testutil.Logger(t))

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		dbc := dbctx.Context{Ctx: ctx, Tx: tx}
		if _, err := repo.GetForUpdate(dbc, u.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("GetForUpdate(missing) err=%v, want ErrRecordNotFound", err)
		}
		if err := repo.Create(dbc, &domain.NPSRecord{UserID: u.ID, LastSeenAt: time.Now().UTC()}); err != nil {
			return err
		}
		rec, err := repo.GetForUpdate(dbc, u.ID)
		if err != nil {
			return err
		}
		rec.State = 1
		return repo.Save(dbc, rec)
	})
	if err != nil {
		t.Fatalf("transaction: %v", err)
	}

	got, err := repo.Get(dbctx.New(ctx), u.ID)
	if err != nil || got.State != 1 {
		t.Fatalf("Get=%+v err=%v, want state 1", got, err)
	}
}
