package shop

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// LocationCache memoizes the primary location id behind a TTL. Resolving the
// location is a network call, so the applier resolves it once per run; the
// cache is invalidated at run start like the feed index.
type LocationCache struct {
	client Client
	ttl    time.Duration

	mu       sync.RWMutex
	id       string
	resolved time.Time

	sf singleflight.Group
}

// NewLocationCache creates a location cache. A non-positive ttl defaults to
// one hour.
func NewLocationCache(client Client, ttl time.Duration) *LocationCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &LocationCache{client: client, ttl: ttl}
}

// Get returns the cached location id, resolving it via the client when the
// cache is empty or aged out.
func (c *LocationCache) Get(ctx context.Context) (string, error) {
	c.mu.RLock()
	id, resolved := c.id, c.resolved
	c.mu.RUnlock()

	if id != "" && time.Since(resolved) < c.ttl {
		return id, nil
	}

	result, err, _ := c.sf.Do("location", func() (any, error) {
		c.mu.RLock()
		id, resolved := c.id, c.resolved
		c.mu.RUnlock()
		if id != "" && time.Since(resolved) < c.ttl {
			return id, nil
		}

		fresh, err := c.client.PrimaryLocation(ctx)
		if err != nil {
			return "", err
		}

		c.mu.Lock()
		c.id = fresh
		c.resolved = time.Now()
		c.mu.Unlock()

		return fresh, nil
	})
	if err != nil {
		return "", err
	}
	return result.(string), nil
}

// Invalidate drops the cached id unconditionally.
func (c *LocationCache) Invalidate() {
	c.mu.Lock()
	c.id = ""
	c.resolved = time.Time{}
	c.mu.Unlock()
}
