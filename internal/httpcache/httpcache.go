// Package httpcache is a small in-memory TTL cache for proxied response
// bodies. Entries are keyed by the normalized upstream query so repeated
// proxy hits inside the TTL never reach the upstream API.
package httpcache

import (
	"sync"
	"time"
)

// DefaultTTL matches the s-maxage the proxy advertises downstream.
const DefaultTTL = 5 * time.Minute

type entry struct {
	body      []byte
	fetchedAt time.Time
}

// Cache stores response bodies with a fixed TTL. The zero value is not
// usable; construct with New.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

// New returns a cache with the given TTL. Non-positive TTLs fall back to
// DefaultTTL.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached body for key when the entry is still fresh.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.fetchedAt) >= c.ttl {
		return nil, false
	}
	return e.body, true
}

// Set stores body under key, replacing any prior entry.
func (c *Cache) Set(key string, body []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{body: body, fetchedAt: c.now()}
}

// Invalidate drops every entry. Called when the catalog is refreshed so
// proxied responses never lag a newer snapshot.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports how many entries are held, fresh or stale.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
