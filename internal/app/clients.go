package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/careerpath-backend/internal/clients/kafka"
	"github.com/yungbote/careerpath-backend/internal/clients/redis"
	"github.com/yungbote/careerpath-backend/internal/events"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type Clients struct {
	Redis *goredis.Client
	// Bus carries cache invalidations between replicas. Nil without Redis.
	Bus redis.Bus
	// Events receives booking lifecycle events.
	Events events.Publisher
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	if cfg.RedisAddr != "" {
		rdb, err := redis.NewClient(ctx, cfg.RedisAddr)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis: %w", err)
		}
		out.Redis = rdb
		bus, err := redis.NewBus(log, rdb, cfg.RedisChannel, false)
		if err != nil {
			out.Close()
			return Clients{}, fmt.Errorf("init redis bus: %w", err)
		}
		out.Bus = bus
	}

	switch cfg.EventsBackend {
	case EventsRedis:
		if out.Bus == nil {
			return Clients{}, fmt.Errorf("EVENTS_BACKEND=redis requires REDIS_ADDR")
		}
		out.Events = out.Bus
	case EventsKafka:
		pub, err := kafka.NewPublisher(log, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			out.Close()
			return Clients{}, fmt.Errorf("init kafka publisher: %w", err)
		}
		out.Events = pub
	default:
		out.Events = events.Nop{}
	}
	return out, nil
}

// invalidationPublisher is the bus when one exists, otherwise a no-op.
func (c *Clients) invalidationPublisher() events.Publisher {
	if c.Bus != nil {
		return c.Bus
	}
	return events.Nop{}
}

func (c *Clients) Close() {
	if c == nil {
		return
	}
	if c.Events != nil && c.Events != events.Publisher(c.Bus) {
		_ = c.Events.Close()
	}
	if c.Bus != nil {
		_ = c.Bus.Close()
	}
	if c.Redis != nil {
		_ = c.Redis.Close()
	}
}
