package services

import (
	"testing"

	"github.com/yungbote/careerpath-backend/internal/data/repos/testutil"
	"github.com/yungbote/careerpath-backend/internal/domain"
)

func TestCatalogCachesUntilInvalidated(t *testing.T) {
	e := newTestEnv(t)
	testutil.SeedOccupation(t, e.ctx, e.db, 2, "Zoologist", [6]float64{4, 6, 2, 3, 2, 3})
	testutil.SeedOccupation(t, e.ctx, e.db, 1, "Architect", [6]float64{4, 5, 6, 2, 3, 3})

	cat, err := e.catalog.Occupations(e.ctx)
	if err != nil {
		t.Fatalf("Occupations: %v", err)
	}
	if cat.Len() != 2 || cat.Occupations[0].Name != "Architect" {
		t.Fatalf("Occupations=%+v, want name order", cat.Occupations)
	}

	testutil.SeedOccupation(t, e.ctx, e.db, 3, "Baker", [6]float64{5, 2, 3, 3, 3, 4})
	if cat, _ = e.catalog.Occupations(e.ctx); cat.Len() != 2 {
		t.Fatalf("cached Occupations len=%d, want 2", cat.Len())
	}

	e.catalog.InvalidateAll(e.ctx)
	if cat, _ = e.catalog.Occupations(e.ctx); cat.Len() != 3 || cat.Occupations[1].Name != "Baker" {
		t.Fatalf("Occupations after invalidate=%+v", cat.Occupations)
	}
}

func TestCatalogCareerLookup(t *testing.T) {
	e := newTestEnv(t)
	testutil.SeedCareer(t, e.ctx, e.db, 7, "Nursing", "care", "biology")

	c, err := e.catalog.Career(e.ctx, 7)
	if err != nil || c.Name != "Nursing" || len(c.Skills) != 2 {
		t.Fatalf("Career(7)=%+v err=%v", c, err)
	}
	if _, err := e.catalog.Career(e.ctx, 8); !domain.IsCode(err, domain.CodeNotFound) {
		t.Fatalf("Career(8) err=%v, want not_found", err)
	}
	st, err := e.catalog.Statements(e.ctx)
	if err != nil || len(st) != 42 || st[0].ID != 1 {
		t.Fatalf("Statements len=%d err=%v", len(st), err)
	}
}

func TestCatalogResultsDoNotAliasCache(t *testing.T) {
	e := newTestEnv(t)
	testutil.SeedCareer(t, e.ctx, e.db, 7, "Nursing", "care", "biology")
	testutil.SeedAdvisor(t, e.ctx, e.db, 3)

	careers, err := e.catalog.Careers(e.ctx)
	if err != nil || len(careers) != 1 {
		t.Fatalf("Careers=%+v err=%v", careers, err)
	}
	careers[0].Name = "changed"
	careers[0].Skills[0] = "changed"

	one, err := e.catalog.Career(e.ctx, 7)
	if err != nil {
		t.Fatalf("Career(7): %v", err)
	}
	one.Skills[1] = "changed"

	st, err := e.catalog.Statements(e.ctx)
	if err != nil {
		t.Fatalf("Statements: %v", err)
	}
	st[0].Text = "changed"

	adv, err := e.catalog.Advisors(e.ctx)
	if err != nil || len(adv) != 1 {
		t.Fatalf("Advisors=%+v err=%v", adv, err)
	}
	adv[0].Name = "changed"

	again, _ := e.catalog.Careers(e.ctx)
	if again[0].Name != "Nursing" || again[0].Skills[0] != "care" || again[0].Skills[1] != "biology" {
		t.Fatalf("cached career mutated: %+v", again[0])
	}
	if st2, _ := e.catalog.Statements(e.ctx); st2[0].Text == "changed" {
		t.Fatalf("cached statement mutated")
	}
	if adv2, _ := e.catalog.Advisors(e.ctx); adv2[0].Name == "changed" {
		t.Fatalf("cached advisor mutated")
	}
}
