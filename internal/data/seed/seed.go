package seed

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

//go:embed seed.yaml
var seedFS embed.FS

// Data is the reference content shipped with the service.
type Data struct {
	Statements  []domain.Statement  `yaml:"statements"`
	Occupations []domain.Occupation `yaml:"occupations"`
	Careers     []domain.Career     `yaml:"careers"`
	Advisors    []domain.Advisor    `yaml:"advisors"`
}

// Counts reports rows inserted by Apply. Rows already present are skipped.
type Counts struct {
	Statements  int64
	Occupations int64
	Careers     int64
	Advisors    int64
}

// Load reads path, or the embedded seed when path is empty.
func Load(path string) (*Data, error) {
	var raw []byte
	var err error
	if path = strings.TrimSpace(path); path != "" {
		raw, err = os.ReadFile(path)
	} else {
		raw, err = seedFS.ReadFile("seed.yaml")
	}
	if err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (*Data, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var d Data
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Data) Validate() error {
	ids := map[uint]struct{}{}
	for _, s := range d.Statements {
		if s.ID == 0 || strings.TrimSpace(s.Text) == "" {
			return fmt.Errorf("seed: statement %d needs an id and text", s.ID)
		}
		if !s.Category.Valid() {
			return fmt.Errorf("seed: statement %d has unknown category %q", s.ID, s.Category)
		}
		if _, dup := ids[s.ID]; dup {
			return fmt.Errorf("seed: duplicate statement id %d", s.ID)
		}
		ids[s.ID] = struct{}{}
	}

	ids = map[uint]struct{}{}
	for _, o := range d.Occupations {
		if o.ID == 0 || strings.TrimSpace(o.Name) == "" {
			return fmt.Errorf("seed: occupation %d needs an id and name", o.ID)
		}
		for _, v := range o.Scores() {
			if v < 1 || v > 7 {
				return fmt.Errorf("seed: occupation %d score %v outside 1..7", o.ID, v)
			}
		}
		if _, dup := ids[o.ID]; dup {
			return fmt.Errorf("seed: duplicate occupation id %d", o.ID)
		}
		ids[o.ID] = struct{}{}
	}

	careers := map[uint]struct{}{}
	for _, c := range d.Careers {
		if c.ID == 0 || strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("seed: career %d needs an id and name", c.ID)
		}
		if _, dup := careers[c.ID]; dup {
			return fmt.Errorf("seed: duplicate career id %d", c.ID)
		}
		careers[c.ID] = struct{}{}
	}

	ids = map[uint]struct{}{}
	for _, a := range d.Advisors {
		if a.ID == 0 || strings.TrimSpace(a.Name) == "" {
			return fmt.Errorf("seed: advisor %d needs an id and name", a.ID)
		}
		if a.CareerID != nil {
			if _, ok := careers[*a.CareerID]; !ok {
				return fmt.Errorf("seed: advisor %d references unknown career %d", a.ID, *a.CareerID)
			}
		}
		if _, dup := ids[a.ID]; dup {
			return fmt.Errorf("seed: duplicate advisor id %d", a.ID)
		}
		ids[a.ID] = struct{}{}
	}
	return nil
}

// Apply inserts d in one transaction. Existing rows, matched by primary key,
// are left untouched so repeated runs are no-ops.
func Apply(ctx context.Context, db *gorm.DB, log *logger.Logger, d *Data) (Counts, error) {
	var c Counts
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if c.Statements, err = insertMissing(tx, d.Statements); err != nil {
			return fmt.Errorf("seed statements: %w", err)
		}
		if c.Occupations, err = insertMissing(tx, d.Occupations); err != nil {
			return fmt.Errorf("seed occupations: %w", err)
		}
		if c.Careers, err = insertMissing(tx, d.Careers); err != nil {
			return fmt.Errorf("seed careers: %w", err)
		}
		if c.Advisors, err = insertMissing(tx, d.Advisors); err != nil {
			return fmt.Errorf("seed advisors: %w", err)
		}
		return nil
	})
	if err != nil {
		return Counts{}, err
	}
	if log != nil {
		log.Info("Seed applied",
			"statements", c.Statements,
			"occupations", c.Occupations,
			"careers", c.Careers,
			"advisors", c.Advisors,
		)
	}
	return c, nil
}

func insertMissing[T any](tx *gorm.DB, rows []T) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(rows, 100)
	return res.RowsAffected, res.Error
}
