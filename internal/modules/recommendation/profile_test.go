package recommendation

import (
	"reflect"
	"testing"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

func TestAggregate(t *testing.T) {
	rows := []assessment.AnswerRow{
		{StatementID: 1, Category: assessment.Realistic, Score: 5},
		{StatementID: 2, Category: assessment.Realistic, Score: 3},
		{StatementID: 8, Category: assessment.Investigative, Score: 2},
		{StatementID: 99, Category: "X", Score: 4},
	}
	p, skipped := Aggregate(rows)
	want := Profile{assessment.Realistic: 4, assessment.Investigative: 2}
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("Aggregate=%v, want %v", p, want)
	}
	if !reflect.DeepEqual(skipped, []uint{99}) {
		t.Fatalf("Aggregate skipped=%v, want [99]", skipped)
	}
	if p.Complete() {
		t.Fatalf("Complete()=true for a partial profile")
	}
}

func TestAggregateEmpty(t *testing.T) {
	p, skipped := Aggregate(nil)
	if len(p) != 0 || len(skipped) != 0 {
		t.Fatalf("Aggregate(nil)=%v,%v, want empty", p, skipped)
	}
}

func TestAggregateDeterministic(t *testing.T) {
	var rows []assessment.AnswerRow
	for i, c := range assessment.Categories {
		for j := 0; j < 7; j++ {
			rows = append(rows, assessment.AnswerRow{
				StatementID: uint(i*7 + j + 1),
				Category:    c,
				Score:       1 + (i+j)%5,
			})
		}
	}
	first, _ := Aggregate(rows)
	for n := 0; n < 20; n++ {
		again, _ := Aggregate(rows)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Aggregate not deterministic: %v vs %v", first, again)
		}
	}
	if !first.Complete() {
		t.Fatalf("Complete()=false with every category answered")
	}
}

func TestBuildQueryDefaults(t *testing.T) {
	q := BuildQuery(Profile{assessment.Realistic: 5, assessment.Social: 1})
	if q.Scaled.Get(assessment.Realistic) != 7 {
		t.Fatalf("Scaled R=%v, want 7", q.Scaled.Get(assessment.Realistic))
	}
	if q.Scaled.Get(assessment.Social) != 1 {
		t.Fatalf("Scaled S=%v, want 1", q.Scaled.Get(assessment.Social))
	}
	if q.Raw.Get(assessment.Artistic) != NeutralScore || q.Scaled.Get(assessment.Artistic) != 4 {
		t.Fatalf("defaulted A raw=%v scaled=%v, want 3 and 4", q.Raw.Get(assessment.Artistic), q.Scaled.Get(assessment.Artistic))
	}
	want := []assessment.Category{assessment.Investigative, assessment.Artistic, assessment.Enterprising, assessment.Conventional}
	if !reflect.DeepEqual(q.Defaulted, want) {
		t.Fatalf("Defaulted=%v, want %v", q.Defaulted, want)
	}
}
