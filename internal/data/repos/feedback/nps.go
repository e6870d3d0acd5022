package feedback

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type NPSRepo interface {
	// Get returns gorm.ErrRecordNotFound when the user has no record yet.
	Get(dbc dbctx.Context, userID uuid.UUID) (*domain.NPSRecord, error)
	// GetForUpdate is Get with a row lock; call it inside a transaction.
	GetForUpdate(dbc dbctx.Context, userID uuid.UUID) (*domain.NPSRecord, error)
	Create(dbc dbctx.Context, rec *domain.NPSRecord) error
	Save(dbc dbctx.Context, rec *domain.NPSRecord) error
}

type npsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNPSRepo(db *gorm.DB, baseLog *logger.Logger) NPSRepo {
	return &npsRepo{db: db, log: baseLog.With("repo", "NPSRepo")}
}

func (r *npsRepo) Get(dbc dbctx.Context, userID uuid.UUID) (*domain.NPSRecord, error) {
	var rec domain.NPSRecord
	if err := dbc.DB(r.db).Where("user_id = ?", userID).First(&rec).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *npsRepo) GetForUpdate(dbc dbctx.Context, userID uuid.UUID) (*domain.NPSRecord, error) {
	var rec domain.NPSRecord
	err := dbc.DB(r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *npsRepo) Create(dbc dbctx.Context, rec *domain.NPSRecord) error {
	return dbc.DB(r.db).Create(rec).Error
}

func (r *npsRepo) Save(dbc dbctx.Context, rec *domain.NPSRecord) error {
	return dbc.DB(r.db).Save(rec).Error
}
