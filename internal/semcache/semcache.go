package semcache

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache stores full generated answers keyed by a stable hash of the
// lower-cased customer message. Two different messages hashing equal is an
// accepted approximation of "same question", not an error. Entries are
// short-lived (1h in the default config) because generated answers go stale
// faster than template facts.
type Cache struct {
	lru *expirable.LRU[string, string]
}

// New builds a Cache with the given capacity and TTL.
func New(maxEntries int, ttl time.Duration) *Cache {
	return &Cache{
		lru: expirable.NewLRU[string, string](maxEntries, nil, ttl),
	}
}

// Key returns the cache key for a message. xxhash is stable across runs,
// unlike the runtime's seeded map hash, so keys survive restarts when the
// cache is ever moved to an external backend.
func Key(restaurantID, message string) string {
	sum := xxhash.Sum64String(strings.ToLower(strings.TrimSpace(message)))
	return fmt.Sprintf("semantic:%s:%x", restaurantID, sum)
}

// Get returns the cached answer for a message, if any.
func (c *Cache) Get(restaurantID, message string) (string, bool) {
	return c.lru.Get(Key(restaurantID, message))
}

// Set stores a generated answer for a message.
func (c *Cache) Set(restaurantID, message, response string) {
	c.lru.Add(Key(restaurantID, message), response)
}

// InvalidateRestaurant removes every cached answer for a restaurant. Called
// when the menu or the AI config changes.
func (c *Cache) InvalidateRestaurant(restaurantID string) {
	prefix := fmt.Sprintf("semantic:%s:", restaurantID)
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
