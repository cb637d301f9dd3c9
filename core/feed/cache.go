package feed

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL is how long a built index is served before a rebuild.
const DefaultTTL = time.Hour

// Cache owns the current feed index and rebuilds it when it ages out. It is
// an explicit handle (not package state) so the orchestrator decides its
// lifetime; a zero TTL disables caching and rebuilds on every fetch.
type Cache struct {
	source Source
	ttl    time.Duration

	mu    sync.RWMutex
	index *Index
	built time.Time

	sf singleflight.Group
}

// NewCache creates a cache over the given source. A negative ttl falls back
// to DefaultTTL; zero keeps caching off.
func NewCache(source Source, ttl time.Duration) *Cache {
	if ttl < 0 {
		ttl = DefaultTTL
	}
	return &Cache{source: source, ttl: ttl}
}

// FetchOrBuild returns the cached index while it is younger than the TTL,
// otherwise rebuilds from the source. Concurrent callers share a single
// rebuild via singleflight.
func (c *Cache) FetchOrBuild(ctx context.Context) (*Index, error) {
	c.mu.RLock()
	index, built := c.index, c.built
	c.mu.RUnlock()

	if index != nil && time.Since(built) < c.ttl {
		return index, nil
	}

	result, err, _ := c.sf.Do("index", func() (any, error) {
		// Double-check after winning the singleflight slot.
		c.mu.RLock()
		index, built := c.index, c.built
		c.mu.RUnlock()
		if index != nil && time.Since(built) < c.ttl {
			return index, nil
		}

		rows, err := c.source.Rows(ctx)
		if err != nil {
			return nil, err
		}
		records := NormalizeAll(rows)
		if len(records) == 0 {
			return nil, ErrFeedUnavailable
		}
		fresh := BuildIndex(records)

		c.mu.Lock()
		c.index = fresh
		c.built = time.Now()
		c.mu.Unlock()

		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Index), nil
}

// Invalidate drops the cached index unconditionally. The next FetchOrBuild
// rebuilds from the source.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.index = nil
	c.built = time.Time{}
	c.mu.Unlock()
}

// Age reports how old the cached index is, or zero when nothing is cached.
func (c *Cache) Age() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.index == nil {
		return 0
	}
	return time.Since(c.built)
}
