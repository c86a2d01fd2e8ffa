package server

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"sync"
	"time"
)

// cacheEntry is a cached response with its insertion time
type cacheEntry struct {
	value     any
	timestamp time.Time
}

// resultCache caches analysis responses keyed by a fingerprint of the
// request. Entries expire after a TTL and the oldest are evicted when
// the cache grows past maxEntries.
type resultCache struct {
	mutex      sync.RWMutex
	entries    map[string]cacheEntry
	ttl        time.Duration
	maxEntries int
	done       chan struct{}
	closeOnce  sync.Once
}

func newResultCache(ttl time.Duration, maxEntries int) *resultCache {
	c := &resultCache{
		entries:    make(map[string]cacheEntry),
		ttl:        ttl,
		maxEntries: maxEntries,
		done:       make(chan struct{}),
	}

	go c.periodicCleanup()

	return c
}

// cacheKey builds a fingerprint over the request fields that determine
// the analysis result
func cacheKey(parts ...string) string {
	h := sha256.New()
	for _, part := range parts {
		h.Write([]byte(part))
		h.Write([]byte{0}) // Field separator so ("ab","c") != ("a","bc")
	}
	return hex.EncodeToString(h.Sum(nil))
}

func (c *resultCache) get(key string) (any, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.entries[key]
	if !exists || time.Since(entry.timestamp) > c.ttl {
		return nil, false
	}
	return entry.value, true
}

func (c *resultCache) put(key string, value any) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[key] = cacheEntry{value: value, timestamp: time.Now()}
}

// len reports the current number of entries, expired or not
func (c *resultCache) len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// periodicCleanup removes expired entries until the cache is closed
func (c *resultCache) periodicCleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.done:
			return
		}
	}
}

// cleanup removes expired entries and ensures the size limit
func (c *resultCache) cleanup() {
	now := time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key, entry := range c.entries {
		if now.Sub(entry.timestamp) > c.ttl {
			delete(c.entries, key)
		}
	}

	// If still over size limit, remove oldest entries
	if len(c.entries) > c.maxEntries {
		entries := make([]struct {
			key       string
			timestamp time.Time
		}, 0, len(c.entries))

		for key, entry := range c.entries {
			entries = append(entries, struct {
				key       string
				timestamp time.Time
			}{key, entry.timestamp})
		}

		sort.Slice(entries, func(i, j int) bool {
			return entries[i].timestamp.Before(entries[j].timestamp)
		})

		for i := 0; i < len(entries)-c.maxEntries; i++ {
			delete(c.entries, entries[i].key)
		}
	}
}

func (c *resultCache) close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}
