package recommendation

import (
	"sort"

	"github.com/yungbote/careerpath-backend/internal/domain"
)

// Catalog is an immutable, name-ordered snapshot of reference occupations.
type Catalog struct {
	Occupations []domain.Occupation `json:"occupations"`
}

// NewCatalog copies occs and orders them by name, then id, so ranking ties
// resolve the same way on every load.
func NewCatalog(occs []*domain.Occupation) Catalog {
	out := make([]domain.Occupation, 0, len(occs))
	for _, o := range occs {
		if o != nil {
			out = append(out, *o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return Catalog{Occupations: out}
}

func (c Catalog) Len() int { return len(c.Occupations) }

func (c Catalog) Find(id uint) (domain.Occupation, bool) {
	for _, o := range c.Occupations {
		if o.ID == id {
			return o, true
		}
	}
	return domain.Occupation{}, false
}
