package recommendation

import (
	"sort"

	"github.com/yungbote/careerpath-backend/internal/domain"
)

type Match struct {
	Occupation domain.Occupation
	Similarity float64
	// Degenerate marks catalog entries with a zero normalized vector.
	Degenerate bool
}

// Rank scores every catalog occupation against the scaled query vector and
// returns them by descending similarity. Equal scores keep catalog order.
func Rank(query Vector, cat Catalog) ([]Match, error) {
	q := query.Normalized()
	if q.SquaredNorm() == 0 {
		return nil, ErrDegenerateVector
	}
	out := make([]Match, 0, cat.Len())
	for _, o := range cat.Occupations {
		v := Vector(o.Scores()).Normalized()
		sim, err := Cosine(q, v)
		if err != nil {
			return nil, err
		}
		out = append(out, Match{
			Occupation: o,
			Similarity: sim,
			Degenerate: v.SquaredNorm() == 0,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Similarity > out[j].Similarity
	})
	return out, nil
}

// TopN returns the first n matches with distinct occupation ids.
func TopN(matches []Match, n int) []Match {
	if n <= 0 {
		return []Match{}
	}
	out := make([]Match, 0, n)
	seen := make(map[uint]struct{}, n)
	for _, m := range matches {
		if len(out) == n {
			break
		}
		if _, ok := seen[m.Occupation.ID]; ok {
			continue
		}
		seen[m.Occupation.ID] = struct{}{}
		out = append(out, m)
	}
	return out
}
