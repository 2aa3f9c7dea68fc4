package http

import (
	"time"

	"restaurant-ai-service/internal/chat"
)

// --- Request DTOs ---

type chatReq struct {
	Message   string         `json:"message"    binding:"required,min=1,max=2000"`
	SessionID string         `json:"session_id" binding:"required,min=1,max=100"`
	Context   map[string]any `json:"context"`
}

func (r chatReq) toInput(restaurantID string) chat.ChatInput {
	return chat.ChatInput{
		RestaurantID: restaurantID,
		SessionID:    r.SessionID,
		Message:      r.Message,
		Context:      r.Context,
	}
}

type suggestionsReq struct {
	Message string `form:"message" binding:"omitempty,max=2000"`
}

type analyticsReq struct {
	Since string `form:"since"`
	Days  int    `form:"days"`
}

// window resolves the analytics start time. Explicit since wins; days counts
// back from now; the default is seven days.
func (r analyticsReq) window() (time.Time, error) {
	if r.Since != "" {
		return time.Parse(time.RFC3339, r.Since)
	}
	days := r.Days
	if days <= 0 {
		days = 7
	}
	return time.Now().UTC().AddDate(0, 0, -days), nil
}

type invalidateReq struct {
	ItemID string `json:"item_id"`
}

type synthesizeReq struct {
	Text  string `json:"text"  binding:"required,min=1,max=4000"`
	Voice string `json:"voice" binding:"omitempty,max=32"`
}

// --- Response DTOs ---

type chatResp struct {
	Message         string   `json:"message"`
	Suggestions     []string `json:"suggestions,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	ConversationID  string   `json:"conversation_id,omitempty"`
	MessageID       string   `json:"message_id,omitempty"`
	FromCache       bool     `json:"from_cache"`
	Branch          string   `json:"branch"`
}

func newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Message:         out.Message,
		Suggestions:     out.Suggestions,
		Recommendations: out.Recommendations,
		ConversationID:  out.ConversationID,
		MessageID:       out.MessageID,
		FromCache:       out.FromCache,
		Branch:          string(out.Branch),
	}
}

type suggestionsResp struct {
	Suggestions []string `json:"suggestions"`
}

type analyticsResp struct {
	TotalEvents   int            `json:"total_events"`
	ByBranch      map[string]int `json:"by_branch"`
	Conversations int            `json:"conversations"`
}

func newAnalyticsResp(out chat.AnalyticsOutput) analyticsResp {
	return analyticsResp{
		TotalEvents:   out.TotalEvents,
		ByBranch:      out.ByBranch,
		Conversations: out.Conversations,
	}
}

type transcribeResp struct {
	Text string `json:"text"`
}
