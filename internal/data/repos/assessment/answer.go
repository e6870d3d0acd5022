package assessment

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type AnswerRepo interface {
	// ListByUser returns the user's answers joined with statement categories.
	ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]domain.AnswerRow, error)
	Upsert(dbc dbctx.Context, answers []*domain.Answer) error
	DeleteByUser(dbc dbctx.Context, userID uuid.UUID) (int64, error)
	CountByUser(dbc dbctx.Context, userID uuid.UUID) (int64, error)
}

type answerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
	return &answerRepo{db: db, log: baseLog.With("repo", "AnswerRepo")}
}

func (r *answerRepo) ListByUser(dbc dbctx.Context, userID uuid.UUID) ([]domain.AnswerRow, error) {
	var rows []domain.AnswerRow
	err := dbc.DB(r.db).
		Table("answer AS a").
		Select("a.statement_id AS statement_id, s.category AS category, a.score AS score").
		Joins("JOIN statement AS s ON s.id = a.statement_id").
		Where("a.user_id = ?", userID).
		Order("a.statement_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// Upsert inserts answers, overwriting score and updated_at for existing
// (user_id, statement_id) pairs.
func (r *answerRepo) Upsert(dbc dbctx.Context, answers []*domain.Answer) error {
	if len(answers) == 0 {
		return nil
	}
	now := time.Now().UTC()
	for _, a := range answers {
		if a.CreatedAt.IsZero() {
			a.CreatedAt = now
		}
		a.UpdatedAt = now
	}
	return dbc.DB(r.db).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "statement_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"score", "updated_at"}),
		}).
		Create(&answers).Error
}

func (r *answerRepo) DeleteByUser(dbc dbctx.Context, userID uuid.UUID) (int64, error) {
	res := dbc.DB(r.db).Where("user_id = ?", userID).Delete(&domain.Answer{})
	return res.RowsAffected, res.Error
}

func (r *answerRepo) CountByUser(dbc dbctx.Context, userID uuid.UUID) (int64, error) {
	var n int64
	if err := dbc.DB(r.db).Model(&domain.Answer{}).Where("user_id = ?", userID).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
