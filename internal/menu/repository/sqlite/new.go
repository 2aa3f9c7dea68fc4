package sqlite

import (
	"database/sql"
	"fmt"

	"restaurant-ai-service/internal/menu/repository"
	"restaurant-ai-service/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS restaurants (
	id           TEXT PRIMARY KEY,
	slug         TEXT NOT NULL UNIQUE,
	name         TEXT NOT NULL,
	cuisine_type TEXT NOT NULL DEFAULT '',
	description  TEXT NOT NULL DEFAULT '',
	is_active    INTEGER NOT NULL DEFAULT 1,
	avatar_json  TEXT NOT NULL DEFAULT '{}'
);

CREATE TABLE IF NOT EXISTS menu_categories (
	id            TEXT PRIMARY KEY,
	restaurant_id TEXT NOT NULL REFERENCES restaurants(id),
	name          TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	display_order INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS menu_items (
	id               TEXT PRIMARY KEY,
	restaurant_id    TEXT NOT NULL REFERENCES restaurants(id),
	category_id      TEXT NOT NULL DEFAULT '',
	name             TEXT NOT NULL,
	description      TEXT NOT NULL DEFAULT '',
	price            REAL NOT NULL DEFAULT 0,
	ingredients_json TEXT NOT NULL DEFAULT '[]',
	allergens_json   TEXT NOT NULL DEFAULT '[]',
	is_signature     INTEGER NOT NULL DEFAULT 0,
	is_available     INTEGER NOT NULL DEFAULT 1,
	preparation_mins INTEGER NOT NULL DEFAULT 0,
	display_order    INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_menu_items_restaurant ON menu_items(restaurant_id, is_available, display_order);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed menu Repository and ensures its tables exist.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("menu/repository/sqlite: db is required")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("menu/repository/sqlite: init schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("menu/repository/sqlite.%s", method)
}
