package catalog

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type CareerRepo interface {
	List(dbc dbctx.Context) ([]*domain.Career, error)
	GetByID(dbc dbctx.Context, id uint) (*domain.Career, error)
}

type careerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerRepo(db *gorm.DB, baseLog *logger.Logger) CareerRepo {
	return &careerRepo{db: db, log: baseLog.With("repo", "CareerRepo")}
}

func (r *careerRepo) List(dbc dbctx.Context) ([]*domain.Career, error) {
	var out []*domain.Career
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *careerRepo) GetByID(dbc dbctx.Context, id uint) (*domain.Career, error) {
	var c domain.Career
	if err := dbc.DB(r.db).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}
