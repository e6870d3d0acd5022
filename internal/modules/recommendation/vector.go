package recommendation

import (
	"errors"
	"math"

	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

// Vector holds one value per RIASEC dimension in R, I, A, S, E, C order.
type Vector [6]float64

// ErrDegenerateVector is returned when a query vector has zero norm, making
// cosine similarity undefined.
var ErrDegenerateVector = errors.New("degenerate vector")

const (
	likertMin = 1.0
	// NeutralScore fills categories without any answer.
	NeutralScore = 3.0
	scaleMin     = 1.0
	scaleSpan    = 6.0
)

// ScaleLikert maps a 1..5 mean onto the 1..7 occupation scale (1→1, 3→4, 5→7).
func ScaleLikert(x float64) float64 {
	return x*1.5 - 0.5
}

// Normalize maps a 1..7 value onto 0..1.
func Normalize(x float64) float64 {
	return (x - scaleMin) / scaleSpan
}

func (v Vector) Normalized() Vector {
	var out Vector
	for i, x := range v {
		out[i] = Normalize(x)
	}
	return out
}

func (v Vector) Dot(o Vector) float64 {
	var s float64
	for i := range v {
		s += v[i] * o[i]
	}
	return s
}

func (v Vector) SquaredNorm() float64 { return v.Dot(v) }

func (v Vector) Get(c assessment.Category) float64 {
	if i := c.Index(); i >= 0 {
		return v[i]
	}
	return 0
}

// Map keys the vector by category code.
func (v Vector) Map() map[assessment.Category]float64 {
	out := make(map[assessment.Category]float64, len(v))
	for i, c := range assessment.Categories {
		out[c] = v[i]
	}
	return out
}

// Cosine returns the cosine similarity of q and v, clamped to [-1, 1].
// A zero-norm q yields ErrDegenerateVector; a zero-norm v yields 0.
func Cosine(q, v Vector) (float64, error) {
	qn := q.SquaredNorm()
	if qn == 0 {
		return 0, ErrDegenerateVector
	}
	vn := v.SquaredNorm()
	if vn == 0 {
		return 0, nil
	}
	// sqrt of the product keeps proportional vectors at exactly 1.
	sim := q.Dot(v) / math.Sqrt(qn*vn)
	switch {
	case math.IsNaN(sim):
		return 0, ErrDegenerateVector
	case sim > 1:
		return 1, nil
	case sim < -1:
		return -1, nil
	}
	return sim, nil
}
