package app

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/careerpath-backend/internal/http"
	httpH "github.com/yungbote/careerpath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/careerpath-backend/internal/http/middleware"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health     *httpH.HealthHandler
	Auth       *httpH.AuthHandler
	Assessment *httpH.AssessmentHandler
	Prediction *httpH.PredictionHandler
	Catalog    *httpH.CatalogHandler
	Advisory   *httpH.AdvisoryHandler
	NPS        *httpH.NPSHandler
	Admin      *httpH.AdminHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, clients *Clients, services Services) Handlers {
	log.Info("Wiring handlers...")
	checks := map[string]httpH.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if clients.Redis != nil {
		checks["redis"] = func(ctx context.Context) error { return clients.Redis.Ping(ctx).Err() }
	}
	return Handlers{
		Health:     httpH.NewHealthHandler(checks),
		Auth:       httpH.NewAuthHandler(services.Auth),
		Assessment: httpH.NewAssessmentHandler(services.Assessment, services.Profiles, services.Catalog),
		Prediction: httpH.NewPredictionHandler(services.Recommendations),
		Catalog:    httpH.NewCatalogHandler(services.Catalog),
		Advisory:   httpH.NewAdvisoryHandler(services.Advisory),
		NPS:        httpH.NewNPSHandler(services.Feedback),
		Admin:      httpH.NewAdminHandler(services.Invalidator),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func routerConfig(log *logger.Logger, cfg Config, metrics *observability.Metrics, handlers Handlers, middleware Middleware) http.RouterConfig {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return http.RouterConfig{
		Log:               log,
		ServiceName:       serviceName,
		CORSOrigins:       cfg.CORSOrigins,
		AdminAPIKey:       cfg.AdminAPIKey,
		Metrics:           metrics,
		AuthHandler:       handlers.Auth,
		AuthMiddleware:    middleware.Auth,
		AssessmentHandler: handlers.Assessment,
		PredictionHandler: handlers.Prediction,
		CatalogHandler:    handlers.Catalog,
		AdvisoryHandler:   handlers.Advisory,
		NPSHandler:        handlers.NPS,
		AdminHandler:      handlers.Admin,
		HealthHandler:     handlers.Health,
	}
}
