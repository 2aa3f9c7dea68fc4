package knowledge

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"restaurant-ai-service/internal/chat/classify"
	"restaurant-ai-service/internal/model"
	"restaurant-ai-service/pkg/log"
)

// Cache holds deterministic template answers keyed by
// (restaurant, question type, item). Entries expire after the configured
// TTL; menu edits invalidate eagerly through the hooks below.
type Cache struct {
	l   log.Logger
	lru *expirable.LRU[string, string]
}

// NewCache builds a Cache. ttl is how long a generated answer stays valid
// without an explicit invalidation (24h in the default config).
func NewCache(l log.Logger, maxEntries int, ttl time.Duration) *Cache {
	return &Cache{
		l:   l,
		lru: expirable.NewLRU[string, string](maxEntries, nil, ttl),
	}
}

func (c *Cache) key(restaurantID string, qtype classify.QuestionType, itemID string) string {
	return fmt.Sprintf("knowledge:%s:%s:%s", restaurantID, qtype, itemID)
}

// Lookup classifies the message, resolves the item against the menu and
// returns the deterministic answer, generating and caching it on a miss.
// Returns ok=false when the message is not a classifiable menu question or
// the item cannot be resolved; both fall through to the next tier.
func (c *Cache) Lookup(ctx context.Context, restaurantID string, items []model.MenuItem, message string) (string, bool) {
	qtype, candidate, ok := classify.Classify(message)
	if !ok {
		return "", false
	}

	item, ok := ResolveItem(items, candidate)
	if !ok {
		return "", false
	}

	key := c.key(restaurantID, qtype, item.ID)
	if resp, hit := c.lru.Get(key); hit {
		c.l.Debugf(ctx, "knowledge.Cache.Lookup: hit %s", key)
		return resp, true
	}

	resp, ok := Answer(qtype, item)
	if !ok {
		return "", false
	}
	c.lru.Add(key, resp)
	return resp, true
}

// InvalidateItem removes the cached answers for every question type of one
// item. Called by the menu collaborator on item edit or delete.
func (c *Cache) InvalidateItem(restaurantID, itemID string) {
	for _, qtype := range classify.QuestionTypes() {
		c.lru.Remove(c.key(restaurantID, qtype, itemID))
	}
}

// InvalidateRestaurant removes every cached answer for a restaurant.
func (c *Cache) InvalidateRestaurant(restaurantID string) {
	prefix := fmt.Sprintf("knowledge:%s:", restaurantID)
	for _, key := range c.lru.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.lru.Remove(key)
		}
	}
}
