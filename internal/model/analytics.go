package model

import (
	"time"

	"github.com/google/uuid"
)

// ResponseBranch names the pipeline tier that produced a response.
type ResponseBranch string

const (
	BranchInstant   ResponseBranch = "instant"
	BranchKnowledge ResponseBranch = "knowledge"
	BranchSemantic  ResponseBranch = "semantic"
	BranchGenerated ResponseBranch = "generated"
	BranchFallback  ResponseBranch = "fallback"
)

// Analytics event types.
const (
	EventChatMessage  = "chat_message"
	EventChatStream   = "chat_stream"
	EventChatFeedback = "chat_feedback"
)

// AnalyticsEvent records one chat interaction outcome.
type AnalyticsEvent struct {
	ID             string
	RestaurantID   string
	ConversationID string
	EventType      string
	Branch         ResponseBranch
	Data           map[string]any
	CreatedAt      time.Time
}

// NewAnalyticsEvent builds an unpersisted analytics event.
func NewAnalyticsEvent(restaurantID, conversationID, eventType string, branch ResponseBranch, data map[string]any) AnalyticsEvent {
	return AnalyticsEvent{
		ID:             uuid.NewString(),
		RestaurantID:   restaurantID,
		ConversationID: conversationID,
		EventType:      eventType,
		Branch:         branch,
		Data:           data,
		CreatedAt:      time.Now().UTC(),
	}
}
