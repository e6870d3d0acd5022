package advisory

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type AdvisorRepo interface {
	List(dbc dbctx.Context) ([]*domain.Advisor, error)
	GetByID(dbc dbctx.Context, id uint) (*domain.Advisor, error)
}

type advisorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAdvisorRepo(db *gorm.DB, baseLog *logger.Logger) AdvisorRepo {
	return &advisorRepo{db: db, log: baseLog.With("repo", "AdvisorRepo")}
}

func (r *advisorRepo) List(dbc dbctx.Context) ([]*domain.Advisor, error) {
	var out []*domain.Advisor
	if err := dbc.DB(r.db).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *advisorRepo) GetByID(dbc dbctx.Context, id uint) (*domain.Advisor, error) {
	var a domain.Advisor
	if err := dbc.DB(r.db).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}
