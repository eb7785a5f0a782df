package cache

import (
	"strings"
	"sync"
	"time"
)

type promptEntry struct {
	ImageURL string
	StoredAt time.Time
}

// PromptCache remembers recent generation results so repeating the same
// prompt does not burn another API call. Entries expire after the TTL.
type PromptCache struct {
	mu      sync.RWMutex
	entries map[string]promptEntry
	ttl     time.Duration
	hits    int64
	misses  int64
}

func NewPromptCache(ttl time.Duration) *PromptCache {
	return &PromptCache{
		entries: make(map[string]promptEntry),
		ttl:     ttl,
	}
}

// normalizeKey collapses case and surrounding whitespace so trivially
// re-typed prompts still hit.
func normalizeKey(prompt string) string {
	return strings.ToLower(strings.TrimSpace(prompt))
}

// Get returns the cached image URL for a prompt if present and fresh.
func (c *PromptCache) Get(prompt string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[normalizeKey(prompt)]
	if !ok || time.Since(entry.StoredAt) > c.ttl {
		c.misses++
		return "", false
	}
	c.hits++
	return entry.ImageURL, true
}

// Put stores a generation result, replacing any previous entry.
func (c *PromptCache) Put(prompt, imageURL string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[normalizeKey(prompt)] = promptEntry{
		ImageURL: imageURL,
		StoredAt: time.Now(),
	}
}

// Purge drops expired entries and returns how many were removed.
func (c *PromptCache) Purge() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, entry := range c.entries {
		if time.Since(entry.StoredAt) > c.ttl {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Stats reports cache size and hit counters for the stats endpoint.
func (c *PromptCache) Stats() map[string]interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return map[string]interface{}{
		"entries":     len(c.entries),
		"hits":        c.hits,
		"misses":      c.misses,
		"ttl_seconds": int(c.ttl.Seconds()),
	}
}
