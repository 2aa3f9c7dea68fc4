package aiconfig

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"restaurant-ai-service/pkg/log"
)

// Repository persists per-restaurant configurations.
type Repository interface {
	Get(ctx context.Context, restaurantID string) (Config, bool, error)
	Save(ctx context.Context, restaurantID string, cfg Config) error
}

// Service serves per-restaurant AI configuration with a short-lived
// in-process cache in front of the repository.
type Service struct {
	l     log.Logger
	repo  Repository
	cache *expirable.LRU[string, Config]
}

// NewService builds a Service. Cached entries expire after ttl so external
// edits to the repository are picked up without a restart.
func NewService(l log.Logger, repo Repository, ttl time.Duration, maxEntries int) *Service {
	return &Service{
		l:     l,
		repo:  repo,
		cache: expirable.NewLRU[string, Config](maxEntries, nil, ttl),
	}
}

// Get returns the restaurant's configuration. A missing row or a repository
// failure yields the default configuration; reads never fail.
func (s *Service) Get(ctx context.Context, restaurantID string) Config {
	if cfg, ok := s.cache.Get(restaurantID); ok {
		return cfg
	}

	cfg, found, err := s.repo.Get(ctx, restaurantID)
	if err != nil {
		s.l.Warnf(ctx, "aiconfig.Service.Get: falling back to defaults for %s: %v", restaurantID, err)
		return Default()
	}
	if !found {
		cfg = Default()
	}

	s.cache.Add(restaurantID, cfg)
	return cfg
}

// Update validates and persists a new configuration, then refreshes the
// cache so the next read sees it immediately.
func (s *Service) Update(ctx context.Context, restaurantID string, cfg Config) (Config, error) {
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	if err := s.repo.Save(ctx, restaurantID, cfg); err != nil {
		s.l.Errorf(ctx, "aiconfig.Service.Update: %v", err)
		return Config{}, err
	}

	s.cache.Add(restaurantID, cfg)
	return cfg, nil
}

// Invalidate drops the cached configuration for a restaurant.
func (s *Service) Invalidate(restaurantID string) {
	s.cache.Remove(restaurantID)
}
