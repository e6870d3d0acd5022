package assessment

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type StatementRepo interface {
	List(dbc dbctx.Context) ([]*domain.Statement, error)
	Count(dbc dbctx.Context) (int64, error)
	GetByIDs(dbc dbctx.Context, ids []uint) ([]*domain.Statement, error)
}

type statementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStatementRepo(db *gorm.DB, baseLog *logger.Logger) StatementRepo {
	return &statementRepo{db: db, log: baseLog.With("repo", "StatementRepo")}
}

// List returns statements in questionnaire order.
func (r *statementRepo) List(dbc dbctx.Context) ([]*domain.Statement, error) {
	var out []*domain.Statement
	if err := dbc.DB(r.db).Order("position ASC, id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *statementRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).Model(&domain.Statement{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *statementRepo) GetByIDs(dbc dbctx.Context, ids []uint) ([]*domain.Statement, error) {
	var out []*domain.Statement
	if len(ids) == 0 {
		return out, nil
	}
	if err := dbc.DB(r.db).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
