package recommendation

import (
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

// Profile is the mean Likert score per answered category. Categories without
// answers are absent.
type Profile map[assessment.Category]float64

// Complete reports whether every category was measured.
func (p Profile) Complete() bool {
	for _, c := range assessment.Categories {
		if _, ok := p[c]; !ok {
			return false
		}
	}
	return true
}

// Aggregate averages scores per category. Rows whose category is unknown are
// skipped and their statement ids returned.
func Aggregate(rows []assessment.AnswerRow) (Profile, []uint) {
	var sums, counts [6]float64
	var skipped []uint
	for _, r := range rows {
		i := r.Category.Index()
		if i < 0 {
			skipped = append(skipped, r.StatementID)
			continue
		}
		sums[i] += float64(r.Score)
		counts[i]++
	}
	p := Profile{}
	for i, c := range assessment.Categories {
		if counts[i] > 0 {
			p[c] = sums[i] / counts[i]
		}
	}
	return p, skipped
}

// QueryVector is a profile prepared for ranking.
type QueryVector struct {
	// Raw is the 1..5 mean per category, with NeutralScore where defaulted.
	Raw Vector
	// Scaled is Raw mapped onto the 1..7 scale.
	Scaled Vector
	// Defaulted lists categories that had no answers, in vector order.
	Defaulted []assessment.Category
}

func BuildQuery(p Profile) QueryVector {
	q := QueryVector{Defaulted: []assessment.Category{}}
	for i, c := range assessment.Categories {
		raw, ok := p[c]
		if !ok {
			raw = NeutralScore
			q.Defaulted = append(q.Defaulted, c)
		}
		q.Raw[i] = raw
		q.Scaled[i] = ScaleLikert(raw)
	}
	return q
}
