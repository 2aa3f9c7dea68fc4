package usecase

import (
	"context"
	"strings"

	"restaurant-ai-service/internal/chat"
	"restaurant-ai-service/internal/knowledge"
	"restaurant-ai-service/internal/model"
)

// ChatStream runs one turn in streaming mode. Non-generative tiers emit
// their complete answer as a single token. A client disconnect (emit
// error) abandons the turn: the partial answer is neither persisted nor
// cached.
func (uc *implUseCase) ChatStream(ctx context.Context, input chat.ChatInput, emit chat.EmitFunc) error {
	t, err := uc.beginTurn(ctx, input, streamHistoryLimit)
	if err != nil {
		return err
	}

	if resp, ok := knowledge.InstantResponse(t.restaurant, t.message); ok {
		return uc.emitComplete(ctx, t, resp, model.BranchInstant, emit)
	}

	if resp, ok := uc.knowledge.Lookup(ctx, t.restaurant.ID, t.items, t.message); ok {
		return uc.emitComplete(ctx, t, resp, model.BranchKnowledge, emit)
	}

	if t.cfg.Performance.CacheResponses {
		if resp, ok := uc.semantic.Get(t.restaurant.ID, t.message); ok {
			return uc.emitComplete(ctx, t, resp, model.BranchSemantic, emit)
		}
	}

	return uc.streamGenerated(ctx, t, emit)
}

// emitComplete delivers a tier-complete answer through the streaming
// contract: one token, then done.
func (uc *implUseCase) emitComplete(ctx context.Context, t *turn, answer string, branch model.ResponseBranch, emit chat.EmitFunc) error {
	if err := emit(chat.StreamEvent{Type: chat.StreamEventToken, Content: answer}); err != nil {
		return nil // client gone; nothing to persist beyond the customer message
	}
	if err := emit(chat.StreamEvent{Type: chat.StreamEventDone}); err != nil {
		return nil
	}
	uc.persistMessage(ctx, t, model.SenderAssistant, answer, map[string]any{
		"branch":     string(branch),
		"from_cache": true,
	})
	uc.recordAnalytics(ctx, t, model.EventChatStream, branch, true)
	return nil
}

func (uc *implUseCase) streamGenerated(ctx context.Context, t *turn, emit chat.EmitFunc) error {
	params := uc.generateParams(t)
	stream := uc.generator.Stream(ctx, uc.systemPrompt(ctx, t), uc.assembleTurn(t), params)
	defer stream.Close()

	var full strings.Builder
	for token := range stream.Tokens() {
		if err := emit(chat.StreamEvent{Type: chat.StreamEventToken, Content: token}); err != nil {
			// Client disconnected: stop emission, discard the partial
			// answer, keep it out of every cache.
			uc.l.Debugf(ctx, "chat/usecase.streamGenerated: client disconnected, discarding partial")
			return nil
		}
		full.WriteString(token)
	}

	answer := full.String()

	if err := stream.Err(); err != nil {
		uc.l.Warnf(ctx, "chat/usecase.streamGenerated: stream failed: %v", err)
		// The partial text is unusable; deliver the fallback instead.
		if emitErr := emit(chat.StreamEvent{Type: chat.StreamEventError, Content: params.Fallback}); emitErr != nil {
			return nil
		}
		uc.persistMessage(ctx, t, model.SenderAssistant, params.Fallback, map[string]any{
			"branch":     string(model.BranchFallback),
			"from_cache": false,
		})
		uc.recordAnalytics(ctx, t, model.EventChatStream, model.BranchFallback, false)
		return nil
	}

	if answer == "" {
		// Clean finish with no content still owes the client an answer.
		answer = params.Fallback
		if err := emit(chat.StreamEvent{Type: chat.StreamEventToken, Content: answer}); err != nil {
			return nil
		}
	}
	if err := emit(chat.StreamEvent{Type: chat.StreamEventDone}); err != nil {
		return nil
	}

	branch := model.BranchGenerated
	if answer == params.Fallback {
		branch = model.BranchFallback
	}
	if branch == model.BranchGenerated && t.cfg.Performance.CacheResponses {
		uc.semantic.Set(t.restaurant.ID, t.message, answer)
	}
	uc.persistMessage(ctx, t, model.SenderAssistant, answer, map[string]any{
		"branch":     string(branch),
		"from_cache": false,
	})
	uc.recordAnalytics(ctx, t, model.EventChatStream, branch, false)
	return nil
}
