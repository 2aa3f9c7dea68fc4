package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"restaurant-ai-service/internal/aiconfig"
)

// Get loads the stored configuration for a restaurant. The second return
// value is false when no row exists.
func (r *implRepository) Get(ctx context.Context, restaurantID string) (aiconfig.Config, bool, error) {
	const query = `SELECT config_json FROM restaurant_ai_configs WHERE restaurant_id = ?`

	var raw string
	err := r.db.QueryRowContext(ctx, query, restaurantID).Scan(&raw)
	if err == sql.ErrNoRows {
		return aiconfig.Config{}, false, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Get"), err)
		return aiconfig.Config{}, false, fmt.Errorf("get ai config: %w", err)
	}

	// Decode on top of defaults so rows written by older versions keep sane
	// values for fields they did not know about.
	cfg := aiconfig.Default()
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		r.l.Errorf(ctx, "%s: decode: %v", r.dsn("Get"), err)
		return aiconfig.Config{}, false, fmt.Errorf("decode ai config: %w", err)
	}
	return cfg, true, nil
}

// Save upserts the configuration for a restaurant.
func (r *implRepository) Save(ctx context.Context, restaurantID string, cfg aiconfig.Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode ai config: %w", err)
	}

	const query = `
		INSERT INTO restaurant_ai_configs (restaurant_id, config_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(restaurant_id) DO UPDATE SET
			config_json = excluded.config_json,
			updated_at  = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, restaurantID, string(raw), time.Now().UTC()); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("Save"), err)
		return fmt.Errorf("save ai config: %w", err)
	}
	return nil
}
