package domain

import (
	"github.com/yungbote/careerpath-backend/internal/domain/advisory"
	"github.com/yungbote/careerpath-backend/internal/domain/assessment"
	"github.com/yungbote/careerpath-backend/internal/domain/catalog"
	"github.com/yungbote/careerpath-backend/internal/domain/feedback"
	"github.com/yungbote/careerpath-backend/internal/domain/user"
)

type User = user.User

type Category = assessment.Category
type Statement = assessment.Statement
type Answer = assessment.Answer
type AnswerRow = assessment.AnswerRow

type Occupation = catalog.Occupation
type Career = catalog.Career

type Advisor = advisory.Advisor
type Booking = advisory.Booking

type NPSRecord = feedback.NPSRecord
type NPSKind = feedback.Kind

const (
	NPSKindPage = feedback.KindPage
	NPSKindTest = feedback.KindTest
)

// Models lists every persisted record, in migration order.
func Models() []any {
	return []any{
		&User{},
		&Statement{},
		&Answer{},
		&Occupation{},
		&Career{},
		&Advisor{},
		&Booking{},
		&NPSRecord{},
	}
}
