package app

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/yungbote/careerpath-backend/internal/modules/advisory"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")
	t.Setenv("EVENTS_BACKEND", "")
	t.Setenv("MEETING_LINK_MODE", "")
	cfg := LoadConfig(logger.Nop())

	if cfg.Grid != advisory.DefaultGrid() {
		t.Fatalf("Grid=%+v, want %+v", cfg.Grid, advisory.DefaultGrid())
	}
	if cfg.EventsBackend != EventsNone {
		t.Fatalf("EventsBackend=%q, want %q", cfg.EventsBackend, EventsNone)
	}
	if cfg.JWTSecretKey == "" {
		t.Fatalf("JWTSecretKey should fall back to a default")
	}
	if cfg.NPSPromptInterval != 300*time.Second {
		t.Fatalf("NPSPromptInterval=%v, want 5m", cfg.NPSPromptInterval)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate(defaults)=%v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("ADVISORY_START_HOUR", "8")
	t.Setenv("ADVISORY_END_HOUR", "12")
	t.Setenv("ADVISORY_INTERVAL_MINUTES", "60")
	t.Setenv("NPS_PROMPT_INTERVAL_SECONDS", "120")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("EVENTS_BACKEND", "KAFKA")
	cfg := LoadConfig(logger.Nop())

	if want := (advisory.Grid{StartHour: 8, EndHour: 12, Interval: time.Hour}); cfg.Grid != want {
		t.Fatalf("Grid=%+v, want %+v", cfg.Grid, want)
	}
	if cfg.NPSPromptInterval != 2*time.Minute {
		t.Fatalf("NPSPromptInterval=%v, want 2m", cfg.NPSPromptInterval)
	}
	if want := []string{"https://app.example.com", "https://admin.example.com"}; !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Fatalf("CORSOrigins=%v, want %v", cfg.CORSOrigins, want)
	}
	if cfg.EventsBackend != EventsKafka || len(cfg.KafkaBrokers) != 2 {
		t.Fatalf("events=%q brokers=%v", cfg.EventsBackend, cfg.KafkaBrokers)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate=%v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Grid:               advisory.DefaultGrid(),
			RecommendationTopN: 5,
			EventsBackend:      EventsNone,
			MeetingLinkMode:    advisory.LinkModeStatic,
		}
	}
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "inverted_grid", mutate: func(c *Config) { c.Grid.StartHour, c.Grid.EndHour = 17, 9 }, wantErr: "advisory grid"},
		{name: "zero_top_n", mutate: func(c *Config) { c.RecommendationTopN = 0 }, wantErr: "RECOMMENDATION_TOP_N"},
		{name: "redis_without_addr", mutate: func(c *Config) { c.EventsBackend = EventsRedis }, wantErr: "REDIS_ADDR"},
		{name: "kafka_without_brokers", mutate: func(c *Config) { c.EventsBackend = EventsKafka }, wantErr: "KAFKA_BROKERS"},
		{name: "unknown_backend", mutate: func(c *Config) { c.EventsBackend = "nats" }, wantErr: "unsupported"},
		{name: "unique_links_without_base", mutate: func(c *Config) { c.MeetingLinkMode = advisory.LinkModeUnique }, wantErr: "meeting links"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate=%v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("Validate=%v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}
