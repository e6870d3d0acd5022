package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/clients/redis"
	"github.com/yungbote/careerpath-backend/internal/modules/advisory"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/cache"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/services"
)

type Services struct {
	Auth            services.AuthService
	Catalog         services.CatalogService
	Assessment      services.AssessmentService
	Profiles        services.ProfileService
	Recommendations services.RecommendationService
	Advisory        services.AdvisoryService
	Feedback        services.FeedbackService
	Invalidator     services.CacheInvalidator
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos, clients *Clients, metrics *observability.Metrics) (Services, error) {
	log.Info("Wiring services...")

	var remote cache.Remote
	if clients.Redis != nil {
		remote = redis.NewCacheStore(clients.Redis, cfg.RedisCachePrefix)
	}
	catalog := services.NewCatalogService(db, log, r.Occupation, r.Career, r.Statement, r.Advisor, services.CacheConfig{
		TTL:      cfg.CacheTTL,
		Capacity: cfg.CacheCapacity,
		Remote:   remote,
	})
	profiles := services.NewProfileService(db, log, r.Answer)

	links, err := advisory.NewMeetingLinkProvider(cfg.MeetingLinkMode, cfg.MeetingLink, cfg.MeetingLinkBase)
	if err != nil {
		return Services{}, err
	}
	advisorySvc, err := services.NewAdvisoryService(db, log, r.Advisor, r.Booking, services.AdvisoryConfig{
		Grid:      cfg.Grid,
		Links:     links,
		Publisher: clients.Events,
		Metrics:   metrics,
	})
	if err != nil {
		return Services{}, fmt.Errorf("init advisory service: %w", err)
	}

	return Services{
		Auth: services.NewAuthService(db, log, r.User, services.AuthConfig{
			JWTSecretKey: cfg.JWTSecretKey,
			AccessTTL:    cfg.AccessTokenTTL,
		}),
		Catalog:    catalog,
		Assessment: services.NewAssessmentService(db, log, r.Answer, catalog),
		Profiles:   profiles,
		Recommendations: services.NewRecommendationService(log, profiles, catalog, services.RecommendationConfig{
			TopN:    cfg.RecommendationTopN,
			Metrics: metrics,
		}),
		Advisory: advisorySvc,
		Feedback: services.NewFeedbackService(db, log, r.NPS, r.Answer, catalog, services.FeedbackConfig{
			PromptInterval: cfg.NPSPromptInterval,
		}),
		Invalidator: services.NewCacheInvalidator(log, catalog, clients.invalidationPublisher(), metrics),
	}, nil
}
