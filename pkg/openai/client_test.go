package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{APIKey: "test-key", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNew(t *testing.T) {
	t.Run("Requires API Key", func(t *testing.T) {
		if _, err := New(Config{}); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("Defaults Applied", func(t *testing.T) {
		c, err := New(Config{APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Model() != DefaultModel {
			t.Errorf("model = %q, want %q", c.Model(), DefaultModel)
		}
		if c.baseURL != DefaultBaseURL {
			t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/chat/completions" {
				t.Errorf("path = %s", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
				t.Errorf("auth header = %q", got)
			}

			var req Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if req.Model != DefaultModel {
				t.Errorf("model = %q", req.Model)
			}
			if req.Stream {
				t.Error("stream must be false")
			}

			json.NewEncoder(w).Encode(Response{
				ID:      "cmpl-1",
				Choices: []Choice{{Message: Message{Role: "assistant", Content: "Try the OG!"}}},
			})
		})

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "what's good"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Choices[0].Message.Content != "Try the OG!" {
			t.Fatalf("got %q", resp.Choices[0].Message.Content)
		}
	})

	t.Run("API Error Decoded", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			fmt.Fprint(w, `{"error":{"message":"rate limit exceeded","type":"rate_limit"}}`)
		})

		_, err := client.GenerateContent(context.Background(), &Request{})
		if err == nil || !strings.Contains(err.Error(), "rate limit exceeded") {
			t.Fatalf("got %v", err)
		}
	})

	t.Run("Context Cancelled", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		if _, err := client.GenerateContent(ctx, &Request{}); err == nil {
			t.Fatal("expected timeout error")
		}
	})
}

func TestStreamContent(t *testing.T) {
	t.Run("Fragments In Order", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			var req Request
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if !req.Stream {
				t.Error("stream must be true")
			}

			w.Header().Set("Content-Type", "text/event-stream")
			flusher := w.(http.Flusher)
			for _, chunk := range []string{"Try", " the", " OG!"} {
				fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", chunk)
				flusher.Flush()
			}
			fmt.Fprint(w, "data: [DONE]\n\n")
			flusher.Flush()
		})

		stream, err := client.StreamContent(context.Background(), &Request{
			Messages: []Message{{Role: "user", Content: "what's good"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer stream.Close()

		var sb strings.Builder
		for token := range stream.Tokens() {
			sb.WriteString(token)
		}
		if stream.Err() != nil {
			t.Fatalf("stream error: %v", stream.Err())
		}
		if sb.String() != "Try the OG!" {
			t.Fatalf("got %q", sb.String())
		}
	})

	t.Run("Malformed Chunks Skipped", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, "data: not-json\n\n")
			fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"ok\"}}]}\n\n")
			fmt.Fprint(w, "data: [DONE]\n\n")
		})

		stream, err := client.StreamContent(context.Background(), &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer stream.Close()

		var sb strings.Builder
		for token := range stream.Tokens() {
			sb.WriteString(token)
		}
		if sb.String() != "ok" {
			t.Fatalf("got %q", sb.String())
		}
	})

	t.Run("Body Ends Without Terminator", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			fmt.Fprint(w, "data: {\"choices\":[{\"delta\":{\"content\":\"Try the\"}}]}\n\n")
			// Connection drops here, no [DONE].
		})

		stream, err := client.StreamContent(context.Background(), &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer stream.Close()

		var sb strings.Builder
		for token := range stream.Tokens() {
			sb.WriteString(token)
		}
		if sb.String() != "Try the" {
			t.Fatalf("got %q", sb.String())
		}
		if !errors.Is(stream.Err(), ErrTruncated) {
			t.Fatalf("err = %v, want ErrTruncated", stream.Err())
		}
	})

	t.Run("Error Status Before Stream", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":{"message":"bad key","type":"auth"}}`)
		})

		if _, err := client.StreamContent(context.Background(), &Request{}); err == nil {
			t.Fatal("expected error")
		}
	})

	t.Run("Close Mid Stream", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/event-stream")
			flusher := w.(http.Flusher)
			for i := 0; i < 1000; i++ {
				fmt.Fprintf(w, "data: {\"choices\":[{\"delta\":{\"content\":\"x%d\"}}]}\n\n", i)
				flusher.Flush()
			}
			fmt.Fprint(w, "data: [DONE]\n\n")
		})

		stream, err := client.StreamContent(context.Background(), &Request{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		<-stream.Tokens()
		stream.Close()

		// The channel must still close so consumers don't hang.
		for range stream.Tokens() {
		}
	})
}

func TestGenerateSpeech(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/speech" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req SpeechRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != DefaultSpeechModel || req.Voice != "nova" {
			t.Errorf("defaults not applied: %+v", req)
		}
		w.Write([]byte("audio-bytes"))
	})

	audio, err := client.GenerateSpeech(context.Background(), &SpeechRequest{Input: "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(audio) != "audio-bytes" {
		t.Fatalf("got %q", audio)
	}
}

func TestTranscribeAudio(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/audio/transcriptions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parse form: %v", err)
		}
		if got := r.FormValue("model"); got != DefaultTranscribeModel {
			t.Errorf("model = %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		if header.Filename != "voice.webm" {
			t.Errorf("filename = %q", header.Filename)
		}
		fmt.Fprint(w, `{"text":"how much is the OG"}`)
	})

	text, err := client.TranscribeAudio(context.Background(), []byte("fake-audio"), "voice.webm")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "how much is the OG" {
		t.Fatalf("got %q", text)
	}
}
