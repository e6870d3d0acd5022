package db

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/domain"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want domain.ErrorCode
	}{
		{name: "record_not_found", err: gorm.ErrRecordNotFound, want: domain.CodeNotFound},
		{name: "duplicated_key", err: fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), want: domain.CodeConflict},
		{name: "pg_unique", err: &pgconn.PgError{Code: "23505", ConstraintName: "idx_bookings_user_slot"}, want: domain.CodeConflict},
		{name: "sqlite_unique", err: errors.New("UNIQUE constraint failed: booking.advisor_id, booking.date, booking.time"), want: domain.CodeConflict},
		{name: "canceled", err: context.Canceled, want: domain.CodeDataAccess},
		{name: "other", err: errors.New("connection refused"), want: domain.CodeDataAccess},
		{name: "already_classified", err: domain.Validation("op", "bad"), want: domain.CodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := MapError("op", tc.err)
			if code := domain.CodeOf(got); code != tc.want {
				t.Fatalf("MapError(%v) code=%q, want %q", tc.err, code, tc.want)
			}
		})
	}
	if MapError("op", nil) != nil {
		t.Fatalf("MapError(nil) should be nil")
	}
}
