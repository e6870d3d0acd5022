package recommendation

import (
	"errors"
	"testing"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

func occ(id uint, name string, v [6]float64) *domain.Occupation {
	return &domain.Occupation{
		ID: id, Name: name,
		Realistic: v[0], Investigative: v[1], Artistic: v[2],
		Social: v[3], Enterprising: v[4], Conventional: v[5],
	}
}

func TestNewCatalogOrder(t *testing.T) {
	cat := NewCatalog([]*domain.Occupation{
		occ(5, "Zoologist", [6]float64{3, 6, 2, 2, 2, 3}),
		occ(2, "Accountant", [6]float64{1, 3, 1, 2, 4, 7}),
		occ(1, "Accountant", [6]float64{1, 3, 1, 2, 4, 7}),
		nil,
	})
	var got []uint
	for _, o := range cat.Occupations {
		got = append(got, o.ID)
	}
	want := []uint{1, 2, 5}
	if len(got) != len(want) {
		t.Fatalf("NewCatalog ids=%v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("NewCatalog ids=%v, want %v", got, want)
		}
	}
	if _, ok := cat.Find(2); !ok {
		t.Fatalf("Find(2) missing")
	}
	if _, ok := cat.Find(9); ok {
		t.Fatalf("Find(9) should be missing")
	}
}

func TestRankAllFivesMatchesTopVector(t *testing.T) {
	cat := NewCatalog([]*domain.Occupation{
		occ(1, "Balanced Generalist", [6]float64{7, 7, 7, 7, 7, 7}),
		occ(2, "Engineer", [6]float64{7, 6, 2, 2, 3, 4}),
		occ(3, "Counselor", [6]float64{1, 3, 3, 7, 4, 2}),
	})
	profile := Profile{}
	for _, c := range assessment.Categories {
		profile[c] = 5
	}
	q := BuildQuery(profile)
	matches, err := Rank(q.Scaled, cat)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if matches[0].Occupation.ID != 1 || matches[0].Similarity != 1.0 {
		t.Fatalf("Rank top=%+v, want id 1 with similarity 1.0", matches[0])
	}
	for i := 1; i < len(matches); i++ {
		if matches[i-1].Similarity < matches[i].Similarity {
			t.Fatalf("Rank not descending at %d", i)
		}
	}
}

func TestRankStableTies(t *testing.T) {
	same := [6]float64{4, 5, 3, 2, 6, 3}
	cat := NewCatalog([]*domain.Occupation{
		occ(30, "Charlie", same),
		occ(10, "Alpha", same),
		occ(20, "Bravo", same),
	})
	q := Vector{4, 5, 3, 2, 6, 3}
	for n := 0; n < 10; n++ {
		matches, err := Rank(q, cat)
		if err != nil {
			t.Fatalf("Rank: %v", err)
		}
		if matches[0].Occupation.ID != 10 || matches[1].Occupation.ID != 20 || matches[2].Occupation.ID != 30 {
			t.Fatalf("Rank ties not in catalog order: %d %d %d",
				matches[0].Occupation.ID, matches[1].Occupation.ID, matches[2].Occupation.ID)
		}
	}
}

func TestRankDegenerate(t *testing.T) {
	cat := NewCatalog([]*domain.Occupation{
		occ(1, "Flat", [6]float64{1, 1, 1, 1, 1, 1}),
		occ(2, "Builder", [6]float64{7, 3, 2, 2, 3, 4}),
	})
	// all answers 1 scale to 1, which normalizes to the zero vector
	if _, err := Rank(Vector{1, 1, 1, 1, 1, 1}, cat); !errors.Is(err, ErrDegenerateVector) {
		t.Fatalf("Rank(zero query) err=%v, want ErrDegenerateVector", err)
	}

	matches, err := Rank(Vector{7, 4, 4, 4, 4, 4}, cat)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	last := matches[len(matches)-1]
	if last.Occupation.ID != 1 || !last.Degenerate || last.Similarity != 0 {
		t.Fatalf("Rank flat occupation=%+v, want degenerate with similarity 0", last)
	}
}

func TestTopNDistinct(t *testing.T) {
	o1 := domain.Occupation{ID: 1}
	o2 := domain.Occupation{ID: 2}
	o3 := domain.Occupation{ID: 3}
	matches := []Match{
		{Occupation: o1, Similarity: 0.9},
		{Occupation: o1, Similarity: 0.9},
		{Occupation: o2, Similarity: 0.8},
		{Occupation: o3, Similarity: 0.7},
	}
	got := TopN(matches, 2)
	if len(got) != 2 || got[0].Occupation.ID != 1 || got[1].Occupation.ID != 2 {
		t.Fatalf("TopN=%+v, want ids 1,2", got)
	}
	if got := TopN(matches, 10); len(got) != 3 {
		t.Fatalf("TopN(10) len=%d, want 3", len(got))
	}
	if got := TopN(matches, 0); len(got) != 0 {
		t.Fatalf("TopN(0) len=%d, want 0", len(got))
	}
}
