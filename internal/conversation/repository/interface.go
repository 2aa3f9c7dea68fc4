package repository

import (
	"context"
	"time"

	"restaurant-ai-service/internal/model"
)

// Repository persists conversations, messages and analytics events.
type Repository interface {
	// GetOrCreateConversation returns the conversation for
	// (restaurant, session), creating it on first contact.
	GetOrCreateConversation(ctx context.Context, restaurantID, sessionID string) (model.Conversation, error)

	// AppendMessage stores a message, assigning the next sequence number
	// within its conversation, and bumps the conversation's last activity.
	AppendMessage(ctx context.Context, msg model.Message) (model.Message, error)

	// History returns up to limit of the most recent messages for a
	// conversation, newest first. Callers needing chronological order
	// reverse it themselves.
	History(ctx context.Context, conversationID string, limit int) ([]model.Message, error)

	// RecordEvent stores one analytics event.
	RecordEvent(ctx context.Context, event model.AnalyticsEvent) error

	// Summary aggregates analytics events for a restaurant since a point
	// in time.
	Summary(ctx context.Context, restaurantID string, since time.Time) (AnalyticsSummary, error)
}

// AnalyticsSummary is the aggregate view served by the analytics endpoint.
type AnalyticsSummary struct {
	TotalEvents   int            `json:"total_events"`
	ByBranch      map[string]int `json:"by_branch"`
	Conversations int            `json:"conversations"`
}
