package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/careerpath-backend/internal/data/db"
	"github.com/yungbote/careerpath-backend/internal/http/middleware"
	"github.com/yungbote/careerpath-backend/internal/modules/advisory"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/envutil"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
	"github.com/yungbote/careerpath-backend/internal/services"
)

const (
	EventsNone  = "none"
	EventsRedis = "redis"
	EventsKafka = "kafka"
)

type Config struct {
	LogMode string
	Port    string

	DB db.Config

	JWTSecretKey   string
	AccessTokenTTL time.Duration

	Grid            advisory.Grid
	MeetingLinkMode string
	MeetingLink     string
	MeetingLinkBase string

	RecommendationTopN int
	NPSPromptInterval  time.Duration

	CacheTTL         time.Duration
	CacheCapacity    int
	RedisAddr        string
	RedisCachePrefix string

	EventsBackend string
	RedisChannel  string
	KafkaBrokers  []string
	KafkaTopic    string

	CORSOrigins    []string
	AdminAPIKey    string
	SeedOnStart    bool
	SeedPath       string
	MetricsEnabled bool

	Otel observability.OtelConfig
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		LogMode: envutil.String("LOG_MODE", "development"),
		Port:    envutil.String("PORT", "8080"),
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverPostgres),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost"),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432"),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres"),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", ""),
			PostgresName:     envutil.String("POSTGRES_NAME", "careerpath"),
			PostgresSSLMode:  envutil.String("POSTGRES_SSLMODE", "disable"),
			SQLitePath:       envutil.String("SQLITE_PATH", "careerpath.db"),
			MaxOpenConns:     envutil.Int("POSTGRES_MAX_OPEN_CONNS", 20),
			SlowQuery:        envutil.Duration("DB_SLOW_QUERY", time.Second),
		},
		JWTSecretKey:   envutil.String("JWT_SECRET_KEY", ""),
		AccessTokenTTL: envutil.Duration("ACCESS_TOKEN_TTL", 24*time.Hour),
		Grid: advisory.Grid{
			StartHour: envutil.Int("ADVISORY_START_HOUR", 9),
			EndHour:   envutil.Int("ADVISORY_END_HOUR", 17),
			Interval:  time.Duration(envutil.Int("ADVISORY_INTERVAL_MINUTES", 30)) * time.Minute,
		},
		MeetingLinkMode:    strings.ToLower(envutil.String("MEETING_LINK_MODE", advisory.LinkModeStatic)),
		MeetingLink:        envutil.String("MEETING_LINK", advisory.DefaultMeetingLink),
		MeetingLinkBase:    envutil.String("MEETING_LINK_BASE", ""),
		RecommendationTopN: envutil.Int("RECOMMENDATION_TOP_N", services.DefaultTopN),
		NPSPromptInterval:  envutil.Duration("NPS_PROMPT_INTERVAL_SECONDS", services.DefaultNPSPromptInterval),
		CacheTTL:           envutil.Duration("CACHE_TTL", 10*time.Minute),
		CacheCapacity:      envutil.Int("CACHE_CAPACITY", 256),
		RedisAddr:          envutil.String("REDIS_ADDR", ""),
		RedisCachePrefix:   envutil.String("REDIS_CACHE_PREFIX", "careerpath:cache:"),
		EventsBackend:      strings.ToLower(envutil.String("EVENTS_BACKEND", EventsNone)),
		RedisChannel:       envutil.String("REDIS_CHANNEL", "careerpath.events"),
		KafkaBrokers:       envutil.List("KAFKA_BROKERS", nil),
		KafkaTopic:         envutil.String("KAFKA_TOPIC", "careerpath.bookings"),
		CORSOrigins:        envutil.List("CORS_ORIGINS", middleware.DefaultAllowedOrigins),
		AdminAPIKey:        envutil.String("ADMIN_API_KEY", ""),
		SeedOnStart:        envutil.Bool("SEED_ON_START", true),
		SeedPath:           envutil.String("SEED_PATH", ""),
		MetricsEnabled:     envutil.Bool("METRICS_ENABLED", true),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "careerpath"),
			Environment: envutil.String("OTEL_ENVIRONMENT", envutil.String("LOG_MODE", "development")),
			Version:     envutil.String("OTEL_SERVICE_VERSION", ""),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "")),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: float64(envutil.Int("OTEL_SAMPLE_PERCENT", 100)) / 100,
		},
	}
	if cfg.JWTSecretKey == "" {
		cfg.JWTSecretKey = "defaultsecret"
		if log != nil {
			log.Warn("JWT_SECRET_KEY not set, using an insecure default")
		}
	}
	return cfg
}

// Validate rejects combinations that would only fail later at wiring time.
func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("advisory grid: %w", err)
	}
	if c.RecommendationTopN <= 0 {
		return fmt.Errorf("RECOMMENDATION_TOP_N must be positive")
	}
	switch c.EventsBackend {
	case EventsNone:
	case EventsRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("EVENTS_BACKEND=redis requires REDIS_ADDR")
		}
	case EventsKafka:
		if len(c.KafkaBrokers) == 0 {
			return fmt.Errorf("EVENTS_BACKEND=kafka requires KAFKA_BROKERS")
		}
	default:
		return fmt.Errorf("unsupported EVENTS_BACKEND %q", c.EventsBackend)
	}
	if _, err := advisory.NewMeetingLinkProvider(c.MeetingLinkMode, c.MeetingLink, c.MeetingLinkBase); err != nil {
		return fmt.Errorf("meeting links: %w", err)
	}
	return nil
}
