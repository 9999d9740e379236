package middleware

import (
	"sync"
	"time"
)

// reservation is the outcome of idempotencyCache.Reserve.
type reservation int

const (
	// reserved means the caller owns the key and must Complete or Release it.
	reserved reservation = iota
	// replay means a finished response is stored for the key.
	replay
	// inFlight means another request holding the key has not finished yet.
	inFlight
)

// cacheEntry is either pending (resp nil) or a finished response.
type cacheEntry struct {
	resp    *cachedResponse
	created time.Time
}

// idempotencyCache tracks in-flight and finished idempotent requests.
type idempotencyCache struct {
	mu    sync.Mutex
	items map[string]*cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// newIdempotencyCache creates a cache and starts its cleanup loop.
func newIdempotencyCache(ttl time.Duration) *idempotencyCache {
	c := &idempotencyCache{
		items: make(map[string]*cacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
	go c.startCleanup()
	return c
}

// Reserve claims key for the caller unless a live entry already holds it.
func (c *idempotencyCache) Reserve(key string) (*cachedResponse, reservation) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if e, ok := c.items[key]; ok && !c.expired(e, now) {
		if e.resp == nil {
			return nil, inFlight
		}
		return e.resp, replay
	}

	c.items[key] = &cacheEntry{created: now}
	return nil, reserved
}

// Complete stores the response of a reserved key, stamping it with the current time.
func (c *idempotencyCache) Complete(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	resp.Timestamp = now
	c.items[key] = &cacheEntry{resp: resp, created: now}
}

// Release drops a reservation so the request can be retried.
func (c *idempotencyCache) Release(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.items[key]; ok && e.resp == nil {
		delete(c.items, key)
	}
}

// Len returns the number of entries, pending or finished, expired or not.
func (c *idempotencyCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// expired reports whether e outlived the TTL. Pending entries expire too, so a
// request that never finished cannot block its key forever.
func (c *idempotencyCache) expired(e *cacheEntry, now time.Time) bool {
	return now.Sub(e.created) > c.ttl
}

func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		c.cleanup()
	}
}

func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, e := range c.items {
		if c.expired(e, now) {
			delete(c.items, key)
		}
	}
}
