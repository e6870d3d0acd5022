package services

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/yungbote/careerpath-backend/internal/events"
	"github.com/yungbote/careerpath-backend/internal/observability"
	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

type cacheInvalidatedPayload struct {
	Origin string `json:"origin"`
}

// CacheInvalidator clears the reference caches on explicit request and tells
// other replicas to drop their local copies.
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) error
	// HandleEvent applies an invalidation broadcast by another replica.
	HandleEvent(ev events.Event)
}

type cacheInvalidator struct {
	log      *logger.Logger
	catalog  CatalogService
	pub      events.Publisher
	metrics  *observability.Metrics
	instance string
}

func NewCacheInvalidator(log *logger.Logger, catalog CatalogService, pub events.Publisher, metrics *observability.Metrics) CacheInvalidator {
	if pub == nil {
		pub = events.Nop{}
	}
	return &cacheInvalidator{
		log:      log.With("service", "CacheInvalidator"),
		catalog:  catalog,
		pub:      pub,
		metrics:  metrics,
		instance: uuid.NewString(),
	}
}

func (c *cacheInvalidator) InvalidateAll(ctx context.Context) error {
	c.catalog.InvalidateAll(ctx)
	c.metrics.IncCacheInvalidation()
	ev, err := events.New(events.TypeCacheInvalidated, "", cacheInvalidatedPayload{Origin: c.instance})
	if err != nil {
		return err
	}
	if err := c.pub.Publish(ctx, ev); err != nil {
		c.log.Warn("Broadcast cache invalidation failed", "error", err)
	}
	return nil
}

func (c *cacheInvalidator) HandleEvent(ev events.Event) {
	if ev.Type != events.TypeCacheInvalidated {
		return
	}
	var p cacheInvalidatedPayload
	if len(ev.Payload) > 0 {
		if err := json.Unmarshal(ev.Payload, &p); err != nil {
			c.log.Warn("Bad cache invalidation payload", "error", err)
		}
	}
	if p.Origin == c.instance {
		return
	}
	c.catalog.InvalidateLocal()
	c.log.Info("Local caches invalidated by peer", "origin", p.Origin)
}
