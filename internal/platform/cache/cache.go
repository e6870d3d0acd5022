package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yungbote/careerpath-backend/internal/platform/logger"
)

// Remote is an optional shared second-level store. Values are JSON encoded.
type Remote interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

type Options struct {
	Name string
	// Capacity bounds the number of local entries; the oldest entry is
	// evicted first. Zero means unbounded.
	Capacity int
	// TTL expires entries; zero keeps them until invalidated.
	TTL    time.Duration
	Remote Remote
	Log    *logger.Logger
	Now    func() time.Time
}

type entry[V any] struct {
	val      V
	storedAt time.Time
}

// Cache is a named in-process cache with single-flight fills. Invalidation
// bumps an epoch so a fill that started before it is never stored.
type Cache[V any] struct {
	name     string
	capacity int
	ttl      time.Duration
	remote   Remote
	log      *logger.Logger
	now      func() time.Time

	mu      sync.Mutex
	epoch   uint64
	gens    map[string]uint64
	entries map[string]entry[V]

	sf singleflight.Group
}

func New[V any](opts Options) *Cache[V] {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	return &Cache[V]{
		name:     opts.Name,
		capacity: opts.Capacity,
		ttl:      opts.TTL,
		remote:   opts.Remote,
		log:      log.With("cache", opts.Name),
		now:      now,
		gens:     map[string]uint64{},
		entries:  map[string]entry[V]{},
	}
}

func (c *Cache[V]) Name() string { return c.name }

func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getLocked(key)
}

func (c *Cache[V]) getLocked(key string) (V, bool) {
	var zero V
	e, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.ttl > 0 && c.now().Sub(e.storedAt) >= c.ttl {
		delete(c.entries, key)
		return zero, false
	}
	return e.val, true
}

func (c *Cache[V]) Set(key string, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setLocked(key, val)
}

func (c *Cache[V]) setLocked(key string, val V) {
	if _, exists := c.entries[key]; !exists && c.capacity > 0 && len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}
	c.entries[key] = entry[V]{val: val, storedAt: c.now()}
}

func (c *Cache[V]) evictOldestLocked() {
	var oldestKey string
	var oldest time.Time
	first := true
	for k, e := range c.entries {
		if first || e.storedAt.Before(oldest) {
			oldestKey, oldest, first = k, e.storedAt, false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

// GetOrLoad returns the cached value or fills it with load. Concurrent misses
// for the same key share one load. The fill keeps ctx values but not its
// cancellation, since other callers may be waiting on it.
func (c *Cache[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	c.mu.Lock()
	if v, ok := c.getLocked(key); ok {
		c.mu.Unlock()
		return v, nil
	}
	epoch, gen := c.epoch, c.gens[key]
	c.mu.Unlock()

	fillCtx := context.WithoutCancel(ctx)
	res, err, _ := c.sf.Do(fmt.Sprintf("%d:%d:%s", epoch, gen, key), func() (any, error) {
		if v, ok := c.loadRemote(fillCtx, key); ok {
			c.storeIfCurrent(key, v, epoch, gen)
			return v, nil
		}
		v, err := load(fillCtx)
		if err != nil {
			return v, err
		}
		if c.storeIfCurrent(key, v, epoch, gen) {
			c.storeRemote(fillCtx, key, v)
		}
		return v, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return res.(V), nil
}

func (c *Cache[V]) storeIfCurrent(key string, val V, epoch, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch != epoch || c.gens[key] != gen {
		return false
	}
	c.setLocked(key, val)
	return true
}

// Invalidate drops one key locally and remotely.
func (c *Cache[V]) Invalidate(ctx context.Context, key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.gens[key]++
	c.mu.Unlock()
	if c.remote != nil {
		if err := c.remote.Delete(ctx, c.remoteKey(key)); err != nil {
			c.log.Warn("remote cache invalidate failed", "key", key, "error", err)
		}
	}
}

// InvalidateAll drops every entry locally and remotely.
func (c *Cache[V]) InvalidateAll(ctx context.Context) {
	c.InvalidateLocal()
	if c.remote != nil {
		if err := c.remote.DeletePrefix(ctx, c.remoteKey("")); err != nil {
			c.log.Warn("remote cache invalidate failed", "error", err)
		}
	}
}

// InvalidateLocal drops every local entry, leaving the remote store alone.
func (c *Cache[V]) InvalidateLocal() {
	c.mu.Lock()
	c.epoch++
	c.entries = map[string]entry[V]{}
	c.gens = map[string]uint64{}
	c.mu.Unlock()
}

func (c *Cache[V]) remoteKey(key string) string {
	return "cache:" + c.name + ":" + key
}

func (c *Cache[V]) loadRemote(ctx context.Context, key string) (V, bool) {
	var zero V
	if c.remote == nil {
		return zero, false
	}
	raw, ok, err := c.remote.Get(ctx, c.remoteKey(key))
	if err != nil {
		c.log.Warn("remote cache get failed", "key", key, "error", err)
		return zero, false
	}
	if !ok {
		return zero, false
	}
	var v V
	if err := json.Unmarshal(raw, &v); err != nil {
		c.log.Warn("remote cache decode failed", "key", key, "error", err)
		return zero, false
	}
	return v, true
}

func (c *Cache[V]) storeRemote(ctx context.Context, key string, val V) {
	if c.remote == nil {
		return
	}
	raw, err := json.Marshal(val)
	if err != nil {
		c.log.Warn("remote cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.remote.Set(ctx, c.remoteKey(key), raw, c.ttl); err != nil {
		c.log.Warn("remote cache set failed", "key", key, "error", err)
	}
}
