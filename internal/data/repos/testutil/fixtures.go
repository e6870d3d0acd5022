package testutil

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
)

// StatementsPerCategory matches the shipped questionnaire.
const StatementsPerCategory = 7

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.User {
	tb.Helper()
	u := &domain.User{
		ID:        uuid.New(),
		Email:     email,
		Password:  "pw",
		FirstName: "A",
		LastName:  "B",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

// SeedStatements inserts StatementsPerCategory statements for every category.
// Ids are assigned category by category starting at 1.
func SeedStatements(tb testing.TB, ctx context.Context, tx *gorm.DB) []*domain.Statement {
	tb.Helper()
	out := make([]*domain.Statement, 0, len(assessment.Categories)*StatementsPerCategory)
	id := uint(1)
	for _, cat := range assessment.Categories {
		for i := 0; i < StatementsPerCategory; i++ {
			out = append(out, &domain.Statement{
				ID:       id,
				Text:     fmt.Sprintf("%s statement %d", cat.Name(), i+1),
				Category: cat,
				Position: int(id),
			})
			id++
		}
	}
	if err := tx.WithContext(ctx).Create(&out).Error; err != nil {
		tb.Fatalf("seed statements: %v", err)
	}
	return out
}

func SeedOccupation(tb testing.TB, ctx context.Context, tx *gorm.DB, id uint, name string, scores [6]float64, programs ...string) *domain.Occupation {
	tb.Helper()
	o := &domain.Occupation{
		ID:            id,
		Name:          name,
		Realistic:     scores[0],
		Investigative: scores[1],
		Artistic:      scores[2],
		Social:        scores[3],
		Enterprising:  scores[4],
		Conventional:  scores[5],
		Programs:      datatypes.JSONSlice[string](programs),
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed occupation: %v", err)
	}
	return o
}

func SeedCareer(tb testing.TB, ctx context.Context, tx *gorm.DB, id uint, name string, skills ...string) *domain.Career {
	tb.Helper()
	c := &domain.Career{
		ID:          id,
		Name:        name,
		Description: name + " description",
		Area:        "general",
		Skills:      datatypes.JSONSlice[string](skills),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed career: %v", err)
	}
	return c
}

func SeedAdvisor(tb testing.TB, ctx context.Context, tx *gorm.DB, id uint) *domain.Advisor {
	tb.Helper()
	a := &domain.Advisor{
		ID:      id,
		Name:    fmt.Sprintf("Advisor%d", id),
		Surname: "Test",
	}
	if err := tx.WithContext(ctx).Create(a).Error; err != nil {
		tb.Fatalf("seed advisor: %v", err)
	}
	return a
}

func SeedBooking(tb testing.TB, ctx context.Context, tx *gorm.DB, advisorID uint, userID uuid.UUID, date, hhmm string) *domain.Booking {
	tb.Helper()
	b := &domain.Booking{
		ID:        uuid.New(),
		AdvisorID: advisorID,
		UserID:    userID,
		Date:      date,
		Time:      hhmm,
		Link:      "https://meet.example.com/test",
	}
	if err := tx.WithContext(ctx).Create(b).Error; err != nil {
		tb.Fatalf("seed booking: %v", err)
	}
	return b
}
