// Package cache provides the process-local response cache.
package cache

import (
	"sort"
	"sync"
	"time"

	"github.com/halmos/timely/internal/domain"
	"github.com/halmos/timely/internal/ports"
)

// DefaultTTL is how long a lookup outcome stays valid.
const DefaultTTL = 24 * time.Hour

// MemoryCache keeps lookup outcomes in memory for the lifetime of the
// process. Expiry is checked on read; there is no eviction beyond TTL, which
// is fine given the small key space (language x category x month x day).
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]domain.CacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache builds a cache with the given TTL. A non-positive ttl falls
// back to DefaultTTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		entries: make(map[string]domain.CacheEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Get retrieves a live entry. Expired entries are dropped on read and
// reported as a miss.
func (c *MemoryCache) Get(key string) (domain.CacheEntry, bool) {
	if key == "" {
		return domain.CacheEntry{}, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return domain.CacheEntry{}, false
	}
	if c.now().Sub(entry.CreatedAt) > c.ttl {
		delete(c.entries, key)
		return domain.CacheEntry{}, false
	}
	return entry, true
}

// Set stores an entry. The last outcome for a key wins, successful or not.
func (c *MemoryCache) Set(entry domain.CacheEntry) {
	if entry.Key == "" {
		return
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = c.now()
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[entry.Key] = entry
}

// Entries lists live entries sorted by key.
func (c *MemoryCache) Entries() []domain.CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.CacheEntry, 0, len(c.entries))
	for _, entry := range c.entries {
		if c.now().Sub(entry.CreatedAt) > c.ttl {
			continue
		}
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

// Clear drops all entries.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]domain.CacheEntry)
}

// Settings exposes the cache policy.
func (c *MemoryCache) Settings() domain.CacheSettings {
	return domain.CacheSettings{TTL: c.ttl}
}

var _ ports.CacheRepository = (*MemoryCache)(nil)
