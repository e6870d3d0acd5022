package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/repos/advisory"
	"github.com/yungbote/careerpath-backend/internal/data/repos/assessment"
	"github.com/yungbote/careerpath-backend/internal/data/repos/catalog"
	"github.com/yungbote/careerpath-backend/internal/data/repos/feedback"
	"github.com/yungbote/careerpath-backend/internal/data/repos/user"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type UserRepo = user.UserRepo

type StatementRepo = assessment.StatementRepo
type AnswerRepo = assessment.AnswerRepo

type OccupationRepo = catalog.OccupationRepo
type CareerRepo = catalog.CareerRepo

type AdvisorRepo = advisory.AdvisorRepo
type BookingRepo = advisory.BookingRepo
type BookingFilter = advisory.BookingFilter

type NPSRepo = feedback.NPSRepo

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo { return user.NewUserRepo(db, baseLog) }

func NewStatementRepo(db *gorm.DB, baseLog *logger.Logger) StatementRepo {
	return assessment.NewStatementRepo(db, baseLog)
}
func NewAnswerRepo(db *gorm.DB, baseLog *logger.Logger) AnswerRepo {
	return assessment.NewAnswerRepo(db, baseLog)
}

func NewOccupationRepo(db *gorm.DB, baseLog *logger.Logger) OccupationRepo {
	return catalog.NewOccupationRepo(db, baseLog)
}
func NewCareerRepo(db *gorm.DB, baseLog *logger.Logger) CareerRepo {
	return catalog.NewCareerRepo(db, baseLog)
}

func NewAdvisorRepo(db *gorm.DB, baseLog *logger.Logger) AdvisorRepo {
	return advisory.NewAdvisorRepo(db, baseLog)
}
func NewBookingRepo(db *gorm.DB, baseLog *logger.Logger) BookingRepo {
	return advisory.NewBookingRepo(db, baseLog)
}

func NewNPSRepo(db *gorm.DB, baseLog *logger.Logger) NPSRepo { return feedback.NewNPSRepo(db, baseLog) }
