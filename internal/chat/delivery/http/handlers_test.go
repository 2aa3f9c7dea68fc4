package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-ai-service/internal/aiconfig"
	"restaurant-ai-service/internal/chat"
	"restaurant-ai-service/internal/model"
	"restaurant-ai-service/pkg/llmprovider"
	"restaurant-ai-service/pkg/log"
)

type fakeUseCase struct {
	output     chat.ChatOutput
	events     []chat.StreamEvent
	err        error
	lastInput  chat.ChatInput
	itemID     string
	restaurant string
}

func (f *fakeUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	f.lastInput = input
	return f.output, f.err
}

func (f *fakeUseCase) ChatStream(ctx context.Context, input chat.ChatInput, emit chat.EmitFunc) error {
	f.lastInput = input
	if f.err != nil {
		return f.err
	}
	for _, e := range f.events {
		if err := emit(e); err != nil {
			return nil
		}
	}
	return nil
}

func (f *fakeUseCase) Suggestions(ctx context.Context, restaurantID, message string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []string{"Would you like to hear about our signature dishes?"}, nil
}

func (f *fakeUseCase) Analytics(ctx context.Context, input chat.AnalyticsInput) (chat.AnalyticsOutput, error) {
	if f.err != nil {
		return chat.AnalyticsOutput{}, f.err
	}
	return chat.AnalyticsOutput{TotalEvents: 5, ByBranch: map[string]int{"generated": 5}, Conversations: 2}, nil
}

func (f *fakeUseCase) Transcribe(ctx context.Context, restaurantID string, audio []byte, filename string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "hello", nil
}

func (f *fakeUseCase) Synthesize(ctx context.Context, restaurantID, text, voice string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte("mp3"), nil
}

func (f *fakeUseCase) InvalidateItem(ctx context.Context, restaurantID, itemID string) error {
	f.restaurant, f.itemID = restaurantID, itemID
	return f.err
}

func (f *fakeUseCase) InvalidateRestaurant(ctx context.Context, restaurantID string) error {
	f.restaurant = restaurantID
	return f.err
}

type memConfigRepo struct {
	configs map[string]aiconfig.Config
}

func (m *memConfigRepo) Get(ctx context.Context, restaurantID string) (aiconfig.Config, bool, error) {
	cfg, ok := m.configs[restaurantID]
	return cfg, ok, nil
}

func (m *memConfigRepo) Save(ctx context.Context, restaurantID string, cfg aiconfig.Config) error {
	if m.configs == nil {
		m.configs = map[string]aiconfig.Config{}
	}
	m.configs[restaurantID] = cfg
	return nil
}

type staticProvider struct{}

func (staticProvider) GenerateText(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	return &llmprovider.Response{}, nil
}

func (staticProvider) StreamText(ctx context.Context, req *llmprovider.Request) (llmprovider.TextStream, error) {
	return nil, nil
}

func (staticProvider) GenerateSpeech(ctx context.Context, req *llmprovider.SpeechRequest) ([]byte, error) {
	return nil, nil
}

func (staticProvider) TranscribeAudio(ctx context.Context, audio []byte, filename string) (string, error) {
	return "", nil
}

func (staticProvider) Name() string  { return "openai" }
func (staticProvider) Model() string { return "gpt-4o-mini" }

func newTestRouter(uc chat.UseCase) (*gin.Engine, *aiconfig.Service) {
	gin.SetMode(gin.TestMode)
	configs := aiconfig.NewService(log.NewNop(), &memConfigRepo{}, time.Hour, 64)
	h := New(log.NewNop(), uc, configs, staticProvider{})

	engine := gin.New()
	RegisterRoutes(engine.Group("/api/v1"), h)
	return engine, configs
}

func postJSON(t *testing.T, engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		uc := &fakeUseCase{output: chat.ChatOutput{
			Message:   "The OG costs $4.49.",
			Branch:    model.BranchKnowledge,
			FromCache: true,
		}}
		engine, _ := newTestRouter(uc)

		w := postJSON(t, engine, "/api/v1/restaurants/rest-1/chat", gin.H{
			"message":    "how much is the OG",
			"session_id": "sess-1",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		if uc.lastInput.RestaurantID != "rest-1" || uc.lastInput.SessionID != "sess-1" {
			t.Fatalf("input = %+v", uc.lastInput)
		}
		if !strings.Contains(w.Body.String(), `"branch":"knowledge"`) {
			t.Fatalf("body = %s", w.Body.String())
		}
	})

	t.Run("Missing Message Rejected", func(t *testing.T) {
		engine, _ := newTestRouter(&fakeUseCase{})
		w := postJSON(t, engine, "/api/v1/restaurants/rest-1/chat", gin.H{
			"session_id": "sess-1",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("Oversized Message Rejected", func(t *testing.T) {
		engine, _ := newTestRouter(&fakeUseCase{})
		w := postJSON(t, engine, "/api/v1/restaurants/rest-1/chat", gin.H{
			"message":    strings.Repeat("a", 2001),
			"session_id": "sess-1",
		})
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("Unknown Restaurant Is 404", func(t *testing.T) {
		engine, _ := newTestRouter(&fakeUseCase{err: chat.ErrRestaurantNotFound})
		w := postJSON(t, engine, "/api/v1/restaurants/nope/chat", gin.H{
			"message":    "hello",
			"session_id": "sess-1",
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestChatStreamEndpoint(t *testing.T) {
	t.Run("NDJSON Lines", func(t *testing.T) {
		uc := &fakeUseCase{events: []chat.StreamEvent{
			{Type: chat.StreamEventToken, Content: "We "},
			{Type: chat.StreamEventToken, Content: "have cookies."},
			{Type: chat.StreamEventDone},
		}}
		engine, _ := newTestRouter(uc)

		w := postJSON(t, engine, "/api/v1/restaurants/rest-1/chat/stream", gin.H{
			"message":    "what do you sell",
			"session_id": "sess-1",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "application/x-ndjson" {
			t.Fatalf("content type = %q", got)
		}

		lines := strings.Split(strings.TrimSpace(w.Body.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d lines: %q", len(lines), w.Body.String())
		}
		var last chat.StreamEvent
		if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
			t.Fatalf("parse last line: %v", err)
		}
		if last.Type != chat.StreamEventDone {
			t.Fatalf("last event = %+v", last)
		}
	})

	t.Run("Failure Before First Event Is JSON Error", func(t *testing.T) {
		engine, _ := newTestRouter(&fakeUseCase{err: chat.ErrRestaurantNotFound})
		w := postJSON(t, engine, "/api/v1/restaurants/nope/chat/stream", gin.H{
			"message":    "hello",
			"session_id": "sess-1",
		})
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestAnalyticsEndpoint(t *testing.T) {
	engine, _ := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/rest-1/chat/analytics?days=30", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"total_events":5`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestConfigEndpoints(t *testing.T) {
	t.Run("Get Returns Defaults", func(t *testing.T) {
		engine, _ := newTestRouter(&fakeUseCase{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/rest-1/ai/config", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"mode":"text_only"`) {
			t.Fatalf("body = %s", w.Body.String())
		}
	})

	t.Run("Partial Update Keeps Other Fields", func(t *testing.T) {
		engine, configs := newTestRouter(&fakeUseCase{})

		raw := []byte(`{"model":{"max_tokens":500}}`)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/restaurants/rest-1/ai/config", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
		}
		cfg := configs.Get(context.Background(), "rest-1")
		if cfg.Model.MaxTokens != 500 {
			t.Fatalf("max tokens = %d", cfg.Model.MaxTokens)
		}
		if cfg.Model.Model != aiconfig.Default().Model.Model {
			t.Fatalf("model overwritten: %q", cfg.Model.Model)
		}
	})

	t.Run("Invalid Update Rejected", func(t *testing.T) {
		engine, _ := newTestRouter(&fakeUseCase{})

		raw := []byte(`{"model":{"max_tokens":999999}}`)
		req := httptest.NewRequest(http.MethodPut, "/api/v1/restaurants/rest-1/ai/config", bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("Frontend View Masks Speech In Text Only Mode", func(t *testing.T) {
		engine, _ := newTestRouter(&fakeUseCase{})
		req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/rest-1/ai/config/frontend", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"speech_synthesis_enabled":false`) {
			t.Fatalf("body = %s", w.Body.String())
		}
	})
}

func TestInvalidateEndpoint(t *testing.T) {
	t.Run("With Item Scope", func(t *testing.T) {
		uc := &fakeUseCase{}
		engine, _ := newTestRouter(uc)
		w := postJSON(t, engine, "/api/v1/restaurants/rest-1/chat/cache/invalidate", gin.H{"item_id": "item-9"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if uc.itemID != "item-9" || uc.restaurant != "rest-1" {
			t.Fatalf("uc called with restaurant=%q item=%q", uc.restaurant, uc.itemID)
		}
	})

	t.Run("Whole Restaurant", func(t *testing.T) {
		uc := &fakeUseCase{}
		engine, _ := newTestRouter(uc)
		w := postJSON(t, engine, "/api/v1/restaurants/rest-1/chat/cache/invalidate", gin.H{})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if uc.itemID != "" || uc.restaurant != "rest-1" {
			t.Fatalf("uc called with restaurant=%q item=%q", uc.restaurant, uc.itemID)
		}
	})
}

func TestSpeechEndpoints(t *testing.T) {
	t.Run("Synthesize Returns Audio", func(t *testing.T) {
		engine, _ := newTestRouter(&fakeUseCase{})
		w := postJSON(t, engine, "/api/v1/restaurants/rest-1/speech/synthesize", gin.H{"text": "Hello!"})
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		if got := w.Header().Get("Content-Type"); got != "audio/mpeg" {
			t.Fatalf("content type = %q", got)
		}
	})

	t.Run("Speech Disabled Is 403", func(t *testing.T) {
		engine, _ := newTestRouter(&fakeUseCase{err: chat.ErrSpeechDisabled})
		w := postJSON(t, engine, "/api/v1/restaurants/rest-1/speech/synthesize", gin.H{"text": "Hello!"})
		if w.Code != http.StatusForbidden {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestAIEndpoints(t *testing.T) {
	engine, _ := newTestRouter(&fakeUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/rest-1/ai/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"provider":"openai"`) {
		t.Fatalf("health status=%d body=%s", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/restaurants/rest-1/ai/voices", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "nova") {
		t.Fatalf("voices status=%d body=%s", w.Code, w.Body.String())
	}
}
