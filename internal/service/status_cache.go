package service

import (
	"sync"
	"time"
)

// StatusCache remembers the last backend health probe result for a
// short window so /status and pre-flight checks don't hammer the
// backend.
type StatusCache struct {
	mu       sync.RWMutex
	healthy  bool
	checked  bool
	cachedAt time.Time
	ttl      time.Duration
}

func NewStatusCache(ttl time.Duration) *StatusCache {
	return &StatusCache{ttl: ttl}
}

// Get returns the cached health flag and whether it is still fresh.
func (c *StatusCache) Get() (healthy, fresh bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.checked || time.Since(c.cachedAt) > c.ttl {
		return false, false
	}
	return c.healthy, true
}

func (c *StatusCache) Set(healthy bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.healthy = healthy
	c.checked = true
	c.cachedAt = time.Now()
}
