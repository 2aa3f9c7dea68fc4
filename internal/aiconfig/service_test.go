package aiconfig

import (
	"context"
	"errors"
	"testing"
	"time"

	"restaurant-ai-service/pkg/log"
)

type fakeRepo struct {
	configs map[string]Config
	getErr  error
	saveErr error
	gets    int
}

func (f *fakeRepo) Get(_ context.Context, restaurantID string) (Config, bool, error) {
	f.gets++
	if f.getErr != nil {
		return Config{}, false, f.getErr
	}
	cfg, ok := f.configs[restaurantID]
	return cfg, ok, nil
}

func (f *fakeRepo) Save(_ context.Context, restaurantID string, cfg Config) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.configs == nil {
		f.configs = map[string]Config{}
	}
	f.configs[restaurantID] = cfg
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(log.NewNop(), repo, time.Hour, 16)
}

func TestServiceGet(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Row Returns Defaults", func(t *testing.T) {
		svc := newTestService(&fakeRepo{})
		cfg := svc.Get(ctx, "rest-1")
		if cfg.Mode != ModeTextOnly || cfg.Model.MaxTokens != 150 {
			t.Fatalf("expected default config, got %+v", cfg)
		}
	})

	t.Run("Repository Failure Returns Defaults", func(t *testing.T) {
		svc := newTestService(&fakeRepo{getErr: errors.New("disk gone")})
		cfg := svc.Get(ctx, "rest-1")
		if cfg.Mode != ModeTextOnly {
			t.Fatalf("expected default config on repo failure, got %+v", cfg)
		}
	})

	t.Run("Second Read Served From Cache", func(t *testing.T) {
		repo := &fakeRepo{configs: map[string]Config{"rest-1": Hybrid()}}
		svc := newTestService(repo)

		first := svc.Get(ctx, "rest-1")
		second := svc.Get(ctx, "rest-1")
		if first.Mode != ModeHybrid || second.Mode != ModeHybrid {
			t.Fatalf("expected hybrid config, got %s / %s", first.Mode, second.Mode)
		}
		if repo.gets != 1 {
			t.Fatalf("expected one repository read, got %d", repo.gets)
		}
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Invalid Config Rejected Before Save", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		bad := Default()
		bad.Model.Temperature = 5
		if _, err := svc.Update(ctx, "rest-1", bad); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("expected ErrInvalidConfig, got %v", err)
		}
		if len(repo.configs) != 0 {
			t.Fatal("invalid config must not be persisted")
		}
	})

	t.Run("Save Failure Propagates", func(t *testing.T) {
		svc := newTestService(&fakeRepo{saveErr: errors.New("locked")})
		if _, err := svc.Update(ctx, "rest-1", Default()); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("Update Refreshes Cache", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := newTestService(repo)

		// Prime the cache with defaults.
		_ = svc.Get(ctx, "rest-1")

		want := SpeechEnabled()
		if _, err := svc.Update(ctx, "rest-1", want); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got := svc.Get(ctx, "rest-1")
		if got.Mode != ModeSpeechEnabled {
			t.Fatalf("expected updated config from cache, got %s", got.Mode)
		}
	})

	t.Run("Invalidate Forces Repository Read", func(t *testing.T) {
		repo := &fakeRepo{configs: map[string]Config{"rest-1": Hybrid()}}
		svc := newTestService(repo)

		_ = svc.Get(ctx, "rest-1")
		svc.Invalidate("rest-1")
		_ = svc.Get(ctx, "rest-1")
		if repo.gets != 2 {
			t.Fatalf("expected two repository reads, got %d", repo.gets)
		}
	})
}
