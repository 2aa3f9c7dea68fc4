package model

import (
	"time"

	"github.com/google/uuid"
)

// SenderType identifies who produced a message.
type SenderType string

const (
	SenderCustomer  SenderType = "customer"
	SenderAssistant SenderType = "assistant"
)

// Conversation is one chat session between a customer and a restaurant
// assistant. Unique per (restaurant, session id).
type Conversation struct {
	ID           string
	RestaurantID string
	SessionID    string
	Context      map[string]any
	LastActivity time.Time
	CreatedAt    time.Time
}

// Message is a single turn in a conversation. Immutable once created; Seq is
// assigned by the store and increases monotonically within a conversation.
type Message struct {
	ID             string
	ConversationID string
	Sender         SenderType
	Content        string
	Metadata       map[string]any
	Seq            int64
	CreatedAt      time.Time
}

// NewMessage builds an unpersisted message with a fresh ID.
func NewMessage(conversationID string, sender SenderType, content string, metadata map[string]any) Message {
	return Message{
		ID:             uuid.NewString(),
		ConversationID: conversationID,
		Sender:         sender,
		Content:        content,
		Metadata:       metadata,
		CreatedAt:      time.Now().UTC(),
	}
}
