package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type Repos struct {
	User       repos.UserRepo
	Statement  repos.StatementRepo
	Answer     repos.AnswerRepo
	Occupation repos.OccupationRepo
	Career     repos.CareerRepo
	Advisor    repos.AdvisorRepo
	Booking    repos.BookingRepo
	NPS        repos.NPSRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:       repos.NewUserRepo(db, log),
		Statement:  repos.NewStatementRepo(db, log),
		Answer:     repos.NewAnswerRepo(db, log),
		Occupation: repos.NewOccupationRepo(db, log),
		Career:     repos.NewCareerRepo(db, log),
		Advisor:    repos.NewAdvisorRepo(db, log),
		Booking:    repos.NewBookingRepo(db, log),
		NPS:        repos.NewNPSRepo(db, log),
	}
}
