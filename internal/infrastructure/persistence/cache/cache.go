package cache

import (
	"context"
	"encoding/json"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ugla-hub/proftafla/internal/domain/exam"
	"github.com/ugla-hub/proftafla/pkg/logger"
)

// Cache wraps a Store with the serialization and error discipline of
// the lookup path: results are stored as JSON text under
// "<prefix>:<slug>" keys, and store trouble never reaches the caller.
type Cache struct {
	store  Store
	prefix string
	ttl    time.Duration
	log    *logger.Logger
}

// New creates a Cache over the given store.
func New(store Store, prefix string, ttl time.Duration, log *logger.Logger) *Cache {
	return &Cache{
		store:  store,
		prefix: prefix,
		ttl:    ttl,
		log:    log.With(logger.Component("cache")),
	}
}

// Key returns the namespaced cache key for a division slug.
func (c *Cache) Key(slug string) string {
	return c.prefix + ":" + slug
}

// GetResult fetches a cached division result. Any store error or decode
// failure is downgraded to a miss and logged.
func (c *Cache) GetResult(ctx context.Context, key string) (*exam.DivisionResult, bool) {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if err != ErrNotFound {
			c.log.Warn("cache read failed, treating as miss",
				logger.CacheKey(key), logger.Err(err))
		}
		return nil, false
	}

	var res exam.DivisionResult
	if err := json.Unmarshal([]byte(raw), &res); err != nil {
		c.log.Warn("cached value is not decodable, treating as miss",
			logger.CacheKey(key), logger.Err(err))
		return nil, false
	}

	return &res, true
}

// SetResult stores a division result best-effort. A failed write is a
// logged no-op; the caller proceeds as if caching succeeded.
func (c *Cache) SetResult(ctx context.Context, key string, res *exam.DivisionResult) {
	data, err := json.Marshal(res)
	if err != nil {
		c.log.Warn("cache encode failed, skipping write",
			logger.CacheKey(key), logger.Err(err))
		return
	}

	if err := c.store.Set(ctx, key, string(data), c.ttl); err != nil {
		c.log.Warn("cache write failed",
			logger.CacheKey(key), logger.Err(err))
	}
}

// Clear deletes every key under the configured prefix. All deletes are
// issued concurrently. Returns false if listing or any delete fails;
// partial deletion is possible and not reported further.
func (c *Cache) Clear(ctx context.Context) bool {
	keys, err := c.store.Keys(ctx, c.prefix+":*")
	if err != nil {
		c.log.Warn("cache key listing failed", logger.Err(err))
		return false
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, key := range keys {
		key := key
		g.Go(func() error {
			return c.store.Del(ctx, key)
		})
	}

	if err := g.Wait(); err != nil {
		c.log.Warn("cache clear incomplete", logger.Err(err))
		return false
	}

	c.log.Info("cache cleared", logger.Int("keys", len(keys)))
	return true
}
