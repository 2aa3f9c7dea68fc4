package sqlite

import (
	"database/sql"
	"fmt"

	"restaurant-ai-service/internal/aiconfig"
	"restaurant-ai-service/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS restaurant_ai_configs (
	restaurant_id TEXT PRIMARY KEY,
	config_json   TEXT NOT NULL,
	updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed aiconfig.Repository and ensures its table
// exists.
func New(db *sql.DB, l log.Logger) (aiconfig.Repository, error) {
	if db == nil {
		panic("aiconfig/repository/sqlite: db is required")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("aiconfig/repository/sqlite: init schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("aiconfig/repository/sqlite.%s", method)
}
