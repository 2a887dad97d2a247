package regions

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const rebuildTimeout = 10 * time.Second

// Source lists the regions served by the commerce backend.
type Source interface {
	ListRegions(ctx context.Context) ([]Region, error)
}

// Cache holds the country -> region map and rebuilds it from Source
// when it is empty or older than ttl. A failed rebuild keeps serving the
// previous map (possibly empty) and leaves its timestamp untouched.
type Cache struct {
	source Source
	ttl    time.Duration
	now    func() time.Time
	logger *zap.Logger

	mu      sync.RWMutex
	current *Map
	builtAt time.Time

	group singleflight.Group
}

type CacheOption func(*Cache)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

func WithLogger(logger *zap.Logger) CacheOption {
	return func(c *Cache) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewCache(source Source, ttl time.Duration, opts ...CacheOption) *Cache {
	c := &Cache{
		source:  source,
		ttl:     ttl,
		now:     time.Now,
		logger:  zap.NewNop(),
		current: BuildMap(nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Lookup returns the current map, rebuilding it first when needed.
// It never fails; upstream errors are logged and the stale map returned.
func (c *Cache) Lookup(ctx context.Context) *Map {
	c.mu.RLock()
	current, builtAt := c.current, c.builtAt
	c.mu.RUnlock()

	if current.Len() > 0 && c.now().Sub(builtAt) < c.ttl {
		return current
	}

	// Shared by every waiter: detached from the starting request's cancellation.
	v, _, _ := c.group.Do("regions", func() (interface{}, error) {
		rctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rebuildTimeout)
		defer cancel()
		return c.rebuild(rctx), nil
	})
	return v.(*Map)
}

func (c *Cache) rebuild(ctx context.Context) *Map {
	list, err := c.source.ListRegions(ctx)
	if err != nil {
		c.logger.Warn("region map rebuild failed, serving stale map", zap.Error(err))
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.current
	}

	m := BuildMap(list)
	c.mu.Lock()
	c.current = m
	c.builtAt = c.now()
	c.mu.Unlock()
	return m
}
