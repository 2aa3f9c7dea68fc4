package usecase

import (
	"context"
	"strings"

	"restaurant-ai-service/internal/aiconfig"
	"restaurant-ai-service/internal/chat"
	"restaurant-ai-service/internal/chat/classify"
	"restaurant-ai-service/internal/knowledge"
	"restaurant-ai-service/internal/model"
	"restaurant-ai-service/pkg/llmprovider"
)

// turn carries the per-request state shared by the chat and stream paths.
type turn struct {
	restaurant model.Restaurant
	conv       model.Conversation
	cfg        aiconfig.Config
	items      []model.MenuItem
	history    []model.Message // newest first, fetched before the new message lands
	message    string
}

// beginTurn validates the input and loads everything the pipeline needs,
// then persists the customer message. Storage failures degrade: the turn
// proceeds without persistence rather than failing the request.
func (uc *implUseCase) beginTurn(ctx context.Context, input chat.ChatInput, historyLimit int) (*turn, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, chat.ErrEmptyMessage
	}

	rest, err := uc.getRestaurant(ctx, input.RestaurantID)
	if err != nil {
		return nil, err
	}

	t := &turn{
		restaurant: rest,
		cfg:        uc.configs.Get(ctx, rest.ID),
		items:      uc.listItems(ctx, rest.ID),
		message:    message,
	}

	conv, err := uc.convRepo.GetOrCreateConversation(ctx, rest.ID, input.SessionID)
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.beginTurn: conversation unavailable: %v", err)
		return t, nil
	}
	t.conv = conv

	limit := historyLimit
	if limit <= 0 {
		limit = t.cfg.Model.ContextMessages
	}
	history, err := uc.convRepo.History(ctx, conv.ID, limit)
	if err != nil {
		uc.l.Warnf(ctx, "chat/usecase.beginTurn: history unavailable: %v", err)
	}
	t.history = history

	uc.persistMessage(ctx, t, model.SenderCustomer, message, nil)
	return t, nil
}

func (uc *implUseCase) persistMessage(ctx context.Context, t *turn, sender model.SenderType, content string, metadata map[string]any) string {
	if t.conv.ID == "" {
		return ""
	}
	msg, err := uc.convRepo.AppendMessage(ctx, model.NewMessage(t.conv.ID, sender, content, metadata))
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.persistMessage: %v", err)
		return ""
	}
	return msg.ID
}

func (uc *implUseCase) recordAnalytics(ctx context.Context, t *turn, eventType string, branch model.ResponseBranch, fromCache bool) {
	if t.conv.ID == "" {
		return
	}
	event := model.NewAnalyticsEvent(t.restaurant.ID, t.conv.ID, eventType, branch, map[string]any{
		"from_cache":     fromCache,
		"message_length": len(t.message),
	})
	if err := uc.convRepo.RecordEvent(ctx, event); err != nil {
		uc.l.Warnf(ctx, "chat/usecase.recordAnalytics: %v", err)
	}
}

// finishTurn persists the assistant message, records analytics and shapes
// the output.
func (uc *implUseCase) finishTurn(ctx context.Context, t *turn, answer string, branch model.ResponseBranch, fromCache bool) chat.ChatOutput {
	messageID := uc.persistMessage(ctx, t, model.SenderAssistant, answer, map[string]any{
		"branch":     string(branch),
		"from_cache": fromCache,
	})
	uc.recordAnalytics(ctx, t, model.EventChatMessage, branch, fromCache)

	return chat.ChatOutput{
		Message:         answer,
		Suggestions:     defaultSuggestions(t.message),
		Recommendations: recommendations(t.items),
		ConversationID:  t.conv.ID,
		MessageID:       messageID,
		FromCache:       fromCache,
		Branch:          branch,
	}
}

func (uc *implUseCase) generateParams(t *turn) llmprovider.GenerateParams {
	return llmprovider.GenerateParams{
		Model:         t.cfg.Model.Model,
		MaxTokens:     t.cfg.Model.MaxTokens,
		Temperature:   t.cfg.Model.Temperature,
		Timeout:       uc.timeout,
		RateKey:       t.restaurant.ID,
		RatePerMinute: t.cfg.Performance.RateLimitPerMinute,
		Fallback:      fallbackResponse(t.restaurant),
	}
}

// Chat runs one turn through the response ladder: instant table, then
// deterministic knowledge, then the semantic cache, then generation. The
// first tier that produces an answer wins.
func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	t, err := uc.beginTurn(ctx, input, 0)
	if err != nil {
		return chat.ChatOutput{}, err
	}

	if resp, ok := knowledge.InstantResponse(t.restaurant, t.message); ok {
		return uc.finishTurn(ctx, t, resp, model.BranchInstant, true), nil
	}

	if resp, ok := uc.knowledge.Lookup(ctx, t.restaurant.ID, t.items, t.message); ok {
		return uc.finishTurn(ctx, t, resp, model.BranchKnowledge, true), nil
	}

	if t.cfg.Performance.CacheResponses {
		if resp, ok := uc.semantic.Get(t.restaurant.ID, t.message); ok {
			return uc.finishTurn(ctx, t, resp, model.BranchSemantic, true), nil
		}
	}

	params := uc.generateParams(t)
	answer := uc.generator.Generate(ctx, uc.systemPrompt(ctx, t), uc.assembleTurn(t), params)

	branch := model.BranchGenerated
	if answer == params.Fallback {
		branch = model.BranchFallback
	}
	if branch == model.BranchGenerated && t.cfg.Performance.CacheResponses {
		uc.semantic.Set(t.restaurant.ID, t.message, answer)
	}
	return uc.finishTurn(ctx, t, answer, branch, false), nil
}

func (uc *implUseCase) systemPrompt(ctx context.Context, t *turn) string {
	categories, err := uc.menuRepo.ListCategories(ctx, t.restaurant.ID)
	if err != nil {
		uc.l.Warnf(ctx, "chat/usecase.systemPrompt: categories unavailable: %v", err)
	}
	return buildSystemPrompt(t.restaurant, categories, t.items, t.cfg.Model.SystemPromptOverride)
}

func (uc *implUseCase) assembleTurn(t *turn) []llmprovider.Message {
	intent := classify.DetectIntent(t.message, recentContents(t.history))
	return assembleMessages(t.history, t.message, intent)
}
