package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"restaurant-ai-service/internal/conversation/repository"
	"restaurant-ai-service/internal/model"
)

// GetOrCreateConversation returns the conversation for
// (restaurant, session), creating it on first contact. The UNIQUE
// constraint makes the create race-safe: a concurrent insert loses and
// falls back to the read.
func (r *implRepository) GetOrCreateConversation(ctx context.Context, restaurantID, sessionID string) (model.Conversation, error) {
	conv, err := r.getConversation(ctx, restaurantID, sessionID)
	if err != nil {
		return model.Conversation{}, err
	}
	if conv.ID != "" {
		return conv, nil
	}

	now := time.Now().UTC()
	const insert = `
		INSERT INTO conversations (id, restaurant_id, session_id, context_json, last_activity, created_at)
		VALUES (?, ?, ?, '{}', ?, ?)
		ON CONFLICT(restaurant_id, session_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, insert, uuid.NewString(), restaurantID, sessionID, now, now); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOrCreateConversation"), err)
		return model.Conversation{}, repository.ErrFailedToInsert
	}
	return r.getConversation(ctx, restaurantID, sessionID)
}

func (r *implRepository) getConversation(ctx context.Context, restaurantID, sessionID string) (model.Conversation, error) {
	const query = `
		SELECT id, restaurant_id, session_id, context_json, last_activity, created_at
		FROM conversations
		WHERE restaurant_id = ? AND session_id = ?`

	var (
		conv        model.Conversation
		contextJSON string
	)
	err := r.db.QueryRowContext(ctx, query, restaurantID, sessionID).Scan(
		&conv.ID, &conv.RestaurantID, &conv.SessionID, &contextJSON, &conv.LastActivity, &conv.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return model.Conversation{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("getConversation"), err)
		return model.Conversation{}, repository.ErrFailedToGet
	}
	_ = json.Unmarshal([]byte(contextJSON), &conv.Context)
	return conv, nil
}

// AppendMessage stores a message with the next sequence number in its
// conversation and bumps the conversation's last activity.
func (r *implRepository) AppendMessage(ctx context.Context, msg model.Message) (model.Message, error) {
	metadata := "{}"
	if msg.Metadata != nil {
		raw, err := json.Marshal(msg.Metadata)
		if err == nil {
			metadata = string(raw)
		}
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}

	const insert = `
		INSERT INTO messages (id, conversation_id, sender, content, metadata_json, seq, created_at)
		VALUES (?, ?, ?, ?, ?,
			(SELECT COALESCE(MAX(seq), 0) + 1 FROM messages WHERE conversation_id = ?),
			?)
		RETURNING seq`

	err := r.db.QueryRowContext(ctx, insert,
		msg.ID, msg.ConversationID, string(msg.Sender), msg.Content, metadata, msg.ConversationID, msg.CreatedAt,
	).Scan(&msg.Seq)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("AppendMessage"), err)
		return model.Message{}, repository.ErrFailedToInsert
	}

	const touch = `UPDATE conversations SET last_activity = ? WHERE id = ?`
	if _, err := r.db.ExecContext(ctx, touch, msg.CreatedAt, msg.ConversationID); err != nil {
		r.l.Warnf(ctx, "%s: touch last_activity: %v", r.dsn("AppendMessage"), err)
	}
	return msg, nil
}

// History returns up to limit of the most recent messages, newest first.
func (r *implRepository) History(ctx context.Context, conversationID string, limit int) ([]model.Message, error) {
	if limit <= 0 {
		limit = 10
	}

	const query = `
		SELECT id, conversation_id, sender, content, metadata_json, seq, created_at
		FROM messages
		WHERE conversation_id = ?
		ORDER BY seq DESC
		LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, conversationID, limit)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("History"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var (
			msg          model.Message
			sender       string
			metadataJSON string
		)
		if err := rows.Scan(&msg.ID, &msg.ConversationID, &sender, &msg.Content, &metadataJSON, &msg.Seq, &msg.CreatedAt); err != nil {
			return nil, repository.ErrFailedToList
		}
		msg.Sender = model.SenderType(sender)
		_ = json.Unmarshal([]byte(metadataJSON), &msg.Metadata)
		msgs = append(msgs, msg)
	}
	return msgs, rows.Err()
}
