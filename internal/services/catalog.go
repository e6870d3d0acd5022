package services

import (
	"context"
	"slices"
	"time"

	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/data/db"
	"github.com/yungbote/careerpath-backend/internal/data/repos"
	"github.com/yungbote/careerpath-backend/internal/domain"
	"github.com/yungbote/careerpath-backend/internal/modules/recommendation"
	"github.com/yungbote/careerpath-backend/internal/platform/cache"
	"github.com/yungbote/careerpath-backend/internal/platform/dbctx"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

const allKey = "all"

// CatalogService serves reference data through explicit caches. Slices and
// records are copies the caller may modify; the occupation catalog is a shared
// read-only snapshot.
type CatalogService interface {
	Occupations(ctx context.Context) (recommendation.Catalog, error)
	Careers(ctx context.Context) ([]domain.Career, error)
	Career(ctx context.Context, id uint) (*domain.Career, error)
	Statements(ctx context.Context) ([]domain.Statement, error)
	Advisors(ctx context.Context) ([]domain.Advisor, error)
	// InvalidateAll clears every cache, including the shared store.
	InvalidateAll(ctx context.Context)
	// InvalidateLocal clears only this process's caches.
	InvalidateLocal()
}

type CacheConfig struct {
	TTL      time.Duration
	Capacity int
	Remote   cache.Remote
}

type catalogService struct {
	db  *gorm.DB
	log *logger.Logger

	occupationRepo repos.OccupationRepo
	careerRepo     repos.CareerRepo
	statementRepo  repos.StatementRepo
	advisorRepo    repos.AdvisorRepo

	occupations *cache.Cache[recommendation.Catalog]
	careers     *cache.Cache[[]domain.Career]
	statements  *cache.Cache[[]domain.Statement]
	advisors    *cache.Cache[[]domain.Advisor]
}

func NewCatalogService(
	db *gorm.DB,
	log *logger.Logger,
	occupationRepo repos.OccupationRepo,
	careerRepo repos.CareerRepo,
	statementRepo repos.StatementRepo,
	advisorRepo repos.AdvisorRepo,
	cfg CacheConfig,
) CatalogService {
	serviceLog := log.With("service", "CatalogService")
	opts := func(name string) cache.Options {
		return cache.Options{Name: name, Capacity: cfg.Capacity, TTL: cfg.TTL, Remote: cfg.Remote, Log: serviceLog}
	}
	return &catalogService{
		db:             db,
		log:            serviceLog,
		occupationRepo: occupationRepo,
		careerRepo:     careerRepo,
		statementRepo:  statementRepo,
		advisorRepo:    advisorRepo,
		occupations:    cache.New[recommendation.Catalog](opts("occupations")),
		careers:        cache.New[[]domain.Career](opts("careers")),
		statements:     cache.New[[]domain.Statement](opts("statements")),
		advisors:       cache.New[[]domain.Advisor](opts("advisors")),
	}
}

func (s *catalogService) Occupations(ctx context.Context) (recommendation.Catalog, error) {
	return s.occupations.GetOrLoad(ctx, allKey, func(ctx context.Context) (recommendation.Catalog, error) {
		rows, err := s.occupationRepo.List(dbctx.New(ctx))
		if err != nil {
			s.log.Error("Load occupations failed", "error", err)
			return recommendation.Catalog{}, db.MapError("catalog.Occupations", err)
		}
		return recommendation.NewCatalog(rows), nil
	})
}

func (s *catalogService) Careers(ctx context.Context) ([]domain.Career, error) {
	all, err := s.cachedCareers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Career, len(all))
	for i := range all {
		out[i] = cloneCareer(all[i])
	}
	return out, nil
}

func (s *catalogService) cachedCareers(ctx context.Context) ([]domain.Career, error) {
	return s.careers.GetOrLoad(ctx, allKey, func(ctx context.Context) ([]domain.Career, error) {
		rows, err := s.careerRepo.List(dbctx.New(ctx))
		if err != nil {
			s.log.Error("Load careers failed", "error", err)
			return nil, db.MapError("catalog.Careers", err)
		}
		return derefAll(rows), nil
	})
}

func (s *catalogService) Career(ctx context.Context, id uint) (*domain.Career, error) {
	all, err := s.cachedCareers(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == id {
			c := cloneCareer(all[i])
			return &c, nil
		}
	}
	return nil, domain.NotFound("catalog.Career", "career not found")
}

func (s *catalogService) Statements(ctx context.Context) ([]domain.Statement, error) {
	all, err := s.statements.GetOrLoad(ctx, allKey, func(ctx context.Context) ([]domain.Statement, error) {
		rows, err := s.statementRepo.List(dbctx.New(ctx))
		if err != nil {
			s.log.Error("Load statements failed", "error", err)
			return nil, db.MapError("catalog.Statements", err)
		}
		return derefAll(rows), nil
	})
	if err != nil {
		return nil, err
	}
	return slices.Clone(all), nil
}

func (s *catalogService) Advisors(ctx context.Context) ([]domain.Advisor, error) {
	all, err := s.advisors.GetOrLoad(ctx, allKey, func(ctx context.Context) ([]domain.Advisor, error) {
		rows, err := s.advisorRepo.List(dbctx.New(ctx))
		if err != nil {
			s.log.Error("Load advisors failed", "error", err)
			return nil, db.MapError("catalog.Advisors", err)
		}
		return derefAll(rows), nil
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Advisor, len(all))
	for i, a := range all {
		if a.CareerID != nil {
			id := *a.CareerID
			a.CareerID = &id
		}
		out[i] = a
	}
	return out, nil
}

func (s *catalogService) InvalidateAll(ctx context.Context) {
	s.occupations.InvalidateAll(ctx)
	s.careers.InvalidateAll(ctx)
	s.statements.InvalidateAll(ctx)
	s.advisors.InvalidateAll(ctx)
	s.log.Info("Reference caches invalidated")
}

func (s *catalogService) InvalidateLocal() {
	s.occupations.InvalidateLocal()
	s.careers.InvalidateLocal()
	s.statements.InvalidateLocal()
	s.advisors.InvalidateLocal()
}

func cloneCareer(c domain.Career) domain.Career {
	c.Skills = slices.Clone(c.Skills)
	return c
}

func derefAll[T any](rows []*T) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if r != nil {
			out = append(out, *r)
		}
	}
	return out
}
