package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/careerpath-backend/internal/http/handlers"
	httpMW "github.com/yungbote/careerpath-backend/internal/http/middleware"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	AdminAPIKey string
	Metrics     *observability.Metrics

	AuthHandler       *httpH.AuthHandler
	AuthMiddleware    *httpMW.AuthMiddleware
	AssessmentHandler *httpH.AssessmentHandler
	PredictionHandler *httpH.PredictionHandler
	CatalogHandler    *httpH.CatalogHandler
	AdvisoryHandler   *httpH.AdvisoryHandler
	NPSHandler        *httpH.NPSHandler
	AdminHandler      *httpH.AdminHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapF(cfg.Metrics.WriteHTTP))
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/auth/register", cfg.AuthHandler.Register)
			api.POST("/auth/login", cfg.AuthHandler.Login)
		}

		// Reference data (public)
		if cfg.AssessmentHandler != nil {
			api.GET("/test/statements", cfg.AssessmentHandler.Statements)
		}
		if cfg.CatalogHandler != nil {
			api.GET("/occupations", cfg.CatalogHandler.Occupations)
			api.GET("/careers", cfg.CatalogHandler.Careers)
			api.GET("/careers/:id", cfg.CatalogHandler.Career)
			api.GET("/advisors", cfg.CatalogHandler.Advisors)
		}
		if cfg.AdvisoryHandler != nil {
			api.GET("/available-times", cfg.AdvisoryHandler.AvailableTimes)
			api.GET("/booked-slots", cfg.AdvisoryHandler.BookedSlots)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.GET("/me", cfg.AuthHandler.GetMe)
		}

		// Questionnaire
		if cfg.AssessmentHandler != nil {
			protected.POST("/test/answers", cfg.AssessmentHandler.SaveAnswers)
			protected.DELETE("/test/answers", cfg.AssessmentHandler.ResetAnswers)
			protected.GET("/test/progress", cfg.AssessmentHandler.Progress)
			protected.GET("/test/profile", cfg.AssessmentHandler.Profile)
		}

		if cfg.PredictionHandler != nil {
			protected.POST("/predict-careers", cfg.PredictionHandler.Predict)
		}

		// Advisory
		if cfg.AdvisoryHandler != nil {
			protected.POST("/advisory-submit", cfg.AdvisoryHandler.Submit)
			protected.GET("/bookings", cfg.AdvisoryHandler.ListBookings)
			protected.DELETE("/bookings/:id", cfg.AdvisoryHandler.Cancel)
		}

		// NPS
		if cfg.NPSHandler != nil {
			protected.GET("/nps/status", cfg.NPSHandler.Status)
			protected.GET("/nps/check", cfg.NPSHandler.Check)
			protected.POST("/nps/update-time", cfg.NPSHandler.UpdateTime)
			protected.POST("/nps/submit", cfg.NPSHandler.Submit)
		}
	}

	if cfg.AdminHandler != nil {
		admin := api.Group("/admin", httpMW.RequireAdminKey(cfg.AdminAPIKey))
		admin.POST("/cache/invalidate", cfg.AdminHandler.InvalidateCaches)
	}

	return r
}
