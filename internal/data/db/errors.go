package db

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/domain"
)

// MapError classifies a store error. Unique-constraint violations become
// conflicts, missing rows become not_found, anything else is data_access.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var classified *domain.Error
	if errors.As(err, &classified) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.Wrap(domain.CodeNotFound, op, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.Wrap(domain.CodeConflict, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return domain.Wrap(domain.CodeDataAccess, op, err)
	}
	if IsUniqueViolation(err) {
		return domain.Wrap(domain.CodeConflict, op, err)
	}
	return domain.Wrap(domain.CodeDataAccess, op, err)
}

// IsUniqueViolation reports whether err is a unique-constraint failure on any
// supported driver.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.TrimSpace(pgErr.Code) == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
