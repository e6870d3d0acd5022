package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/yungbote/careerpath-backend/internal/data/db"
	"github.com/yungbote/careerpath-backend/internal/data/seed"
	"github.com/yungbote/careerpath-backend/internal/events"
	"github.com/yungbote/careerpath-backend/internal/http"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/envutil"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	DB       *db.Service
	Server   *http.Server
	Cfg      Config
	Repos    Repos
	Services Services
	Clients  Clients
	Metrics  *observability.Metrics

	shutdownOtel func(context.Context) error
	cancel       context.CancelFunc
}

// New builds the application from the environment.
func New(ctx context.Context) (*App, error) {
	log, err := logger.New(envutil.String("LOG_MODE", "development"))
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	log.Info("Loading environment variables...")
	return Build(ctx, log, LoadConfig(log))
}

// Build wires every layer from cfg. On error everything opened so far is closed.
func Build(ctx context.Context, log *logger.Logger, cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	shutdownOtel := observability.InitOTel(ctx, log, cfg.Otel)

	store, err := db.Open(cfg.DB, log)
	if err != nil {
		_ = shutdownOtel(ctx)
		return nil, fmt.Errorf("init database: %w", err)
	}
	if err := db.AutoMigrateAll(store.DB()); err != nil {
		_ = store.Close()
		_ = shutdownOtel(ctx)
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	if cfg.SeedOnStart {
		data, err := seed.Load(cfg.SeedPath)
		if err == nil {
			_, err = seed.Apply(ctx, store.DB(), log, data)
		}
		if err != nil {
			_ = store.Close()
			_ = shutdownOtel(ctx)
			return nil, fmt.Errorf("seed: %w", err)
		}
	}

	clients, err := wireClients(ctx, log, cfg)
	if err != nil {
		_ = store.Close()
		_ = shutdownOtel(ctx)
		return nil, err
	}

	var metrics *observability.Metrics
	if cfg.MetricsEnabled {
		metrics = observability.NewMetrics()
	}

	reposet := wireRepos(store.DB(), log)
	serviceset, err := wireServices(store.DB(), log, cfg, reposet, &clients, metrics)
	if err != nil {
		clients.Close()
		_ = store.Close()
		_ = shutdownOtel(ctx)
		return nil, err
	}
	handlerset := wireHandlers(log, store.DB(), &clients, serviceset)
	middleware := wireMiddleware(log, serviceset)
	server := http.NewServer(":"+cfg.Port, routerConfig(log, cfg, metrics, handlerset, middleware))

	return &App{
		Log:          log,
		DB:           store,
		Server:       server,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Clients:      clients,
		Metrics:      metrics,
		shutdownOtel: shutdownOtel,
	}, nil
}

// Start launches background work: pool statistics and the invalidation
// forwarder. It returns once both are running.
func (a *App) Start(ctx context.Context) error {
	if a == nil || a.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(ctx)
	a.cancel = cancel

	a.Metrics.StartDBCollector(ctx, a.Log, a.DB.DB(), 0)

	if a.Clients.Bus != nil {
		err := a.Clients.Bus.StartForwarder(ctx, func(ev events.Event) {
			if ev.Type == events.TypeCacheInvalidated {
				a.Services.Invalidator.HandleEvent(ev)
			}
		})
		if err != nil {
			return fmt.Errorf("start event forwarder: %w", err)
		}
	}
	return nil
}

// Run serves HTTP until Shutdown.
func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port)
	return a.Server.Run()
}

// Shutdown drains HTTP, stops background work and closes clients in reverse
// wiring order.
func (a *App) Shutdown(ctx context.Context) error {
	if a == nil {
		return nil
	}
	var errs []error
	if a.Server != nil {
		if err := a.Server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("http shutdown: %w", err))
		}
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.Clients.Close()
	if a.DB != nil {
		if err := a.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("db close: %w", err))
		}
	}
	if a.shutdownOtel != nil {
		if err := a.shutdownOtel(ctx); err != nil {
			errs = append(errs, fmt.Errorf("otel shutdown: %w", err))
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
	return errors.Join(errs...)
}
