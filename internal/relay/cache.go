package relay

import (
	"sync"
	"time"
)

type cacheEntry struct {
	data       interface{}
	expiration time.Time
}

// directoryCache memoizes directory listings (projects, channels) for a
// short TTL. Entries expire lazily on read; Invalidate serves as the
// manual refresh trigger.
type directoryCache struct {
	mu   sync.RWMutex
	data map[string]cacheEntry
	ttl  time.Duration
}

func newDirectoryCache(ttl time.Duration) *directoryCache {
	return &directoryCache{
		data: make(map[string]cacheEntry),
		ttl:  ttl,
	}
}

func (c *directoryCache) set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = cacheEntry{
		data:       value,
		expiration: time.Now().Add(c.ttl),
	}
}

func (c *directoryCache) get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, exists := c.data[key]
	c.mu.RUnlock()
	if !exists || time.Now().After(entry.expiration) {
		return nil, false
	}
	return entry.data, true
}

func (c *directoryCache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
}
