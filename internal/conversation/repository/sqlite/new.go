package sqlite

import (
	"database/sql"
	"fmt"

	"restaurant-ai-service/internal/conversation/repository"
	"restaurant-ai-service/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS conversations (
	id            TEXT PRIMARY KEY,
	restaurant_id TEXT NOT NULL,
	session_id    TEXT NOT NULL,
	context_json  TEXT NOT NULL DEFAULT '{}',
	last_activity TIMESTAMP NOT NULL,
	created_at    TIMESTAMP NOT NULL,
	UNIQUE(restaurant_id, session_id)
);

CREATE TABLE IF NOT EXISTS messages (
	id              TEXT PRIMARY KEY,
	conversation_id TEXT NOT NULL REFERENCES conversations(id),
	sender          TEXT NOT NULL,
	content         TEXT NOT NULL,
	metadata_json   TEXT NOT NULL DEFAULT '{}',
	seq             INTEGER NOT NULL,
	created_at      TIMESTAMP NOT NULL,
	UNIQUE(conversation_id, seq)
);

CREATE TABLE IF NOT EXISTS analytics_events (
	id              TEXT PRIMARY KEY,
	restaurant_id   TEXT NOT NULL,
	conversation_id TEXT NOT NULL,
	event_type      TEXT NOT NULL,
	branch          TEXT NOT NULL,
	data_json       TEXT NOT NULL DEFAULT '{}',
	created_at      TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_messages_conversation ON messages(conversation_id, seq);
CREATE INDEX IF NOT EXISTS idx_analytics_restaurant ON analytics_events(restaurant_id, created_at);
`

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a SQLite-backed conversation Repository and ensures its
// tables exist.
func New(db *sql.DB, l log.Logger) (repository.Repository, error) {
	if db == nil {
		panic("conversation/repository/sqlite: db is required")
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("conversation/repository/sqlite: init schema: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/sqlite.%s", method)
}
