package chat

import (
	"time"

	"restaurant-ai-service/internal/model"
)

// ChatInput is one customer turn.
type ChatInput struct {
	RestaurantID string
	SessionID    string
	Message      string
	Context      map[string]any
}

// ChatOutput is the completed answer for a turn.
type ChatOutput struct {
	Message         string
	Suggestions     []string
	Recommendations []string
	ConversationID  string
	MessageID       string
	FromCache       bool
	Branch          model.ResponseBranch
}

// StreamEventType tags one streaming envelope.
type StreamEventType string

const (
	StreamEventToken StreamEventType = "token"
	StreamEventDone  StreamEventType = "done"
	StreamEventError StreamEventType = "error"
)

// StreamEvent is one line-delimited envelope of a streamed answer.
type StreamEvent struct {
	Type    StreamEventType `json:"type"`
	Content string          `json:"content,omitempty"`
}

// EmitFunc delivers one stream event to the client. A non-nil return stops
// the turn; the partial answer is discarded.
type EmitFunc func(event StreamEvent) error

// AnalyticsInput selects the analytics window.
type AnalyticsInput struct {
	RestaurantID string
	Since        time.Time
}

// AnalyticsOutput is the aggregate view for the analytics endpoint.
type AnalyticsOutput struct {
	TotalEvents   int
	ByBranch      map[string]int
	Conversations int
}
