package catalog

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type OccupationRepo interface {
	// List returns every occupation ordered by name, then id.
	List(dbc dbctx.Context) ([]*domain.Occupation, error)
}

type occupationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOccupationRepo(db *gorm.DB, baseLog *logger.Logger) OccupationRepo {
	return &occupationRepo{db: db, log: baseLog.With("repo", "OccupationRepo")}
}

func (r *occupationRepo) List(dbc dbctx.Context) ([]*domain.Occupation, error) {
	var out []*domain.Occupation
	if err := dbc.DB(r.db).Order("name ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
