package redis

import (
	"context"
	"encoding/json"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/careerpath-backend/internal/events"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// Bus publishes events on a Redis pub/sub channel and forwards received ones.
type Bus interface {
	events.Publisher
	StartForwarder(ctx context.Context, onMsg func(ev events.Event)) error
}

type bus struct {
	log     *logger.Logger
	rdb     goredis.UniversalClient
	channel string
	owned   bool
}

// NewBus wraps rdb. When owned is true Close also closes the client.
func NewBus(log *logger.Logger, rdb goredis.UniversalClient, channel string, owned bool) (Bus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if rdb == nil {
		return nil, fmt.Errorf("redis client required")
	}
	if channel == "" {
		channel = "careerpath.events"
	}
	return &bus{
		log:     log.With("service", "RedisEventBus"),
		rdb:     rdb,
		channel: channel,
		owned:   owned,
	}, nil
}

func (b *bus) Publish(ctx context.Context, ev events.Event) error {
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

func (b *bus) StartForwarder(ctx context.Context, onMsg func(ev events.Event)) error {
	if onMsg == nil {
		return fmt.Errorf("onMsg callback required")
	}

	sub := b.rdb.Subscribe(ctx, b.channel)

	// ensures subscription actually started
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return fmt.Errorf("redis subscribe: %w", err)
	}

	go func() {
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-ch:
				if !ok || m == nil {
					_ = sub.Close()
					return
				}
				var ev events.Event
				if err := json.Unmarshal([]byte(m.Payload), &ev); err != nil {
					b.log.Warn("bad redis event payload", "error", err)
					continue
				}
				onMsg(ev)
			}
		}
	}()

	return nil
}

func (b *bus) Close() error {
	if !b.owned {
		return nil
	}
	return b.rdb.Close()
}
