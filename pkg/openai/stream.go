package openai

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrTruncated reports a stream whose body ended before the terminator
// arrived, so the received text may be incomplete.
var ErrTruncated = errors.New("openai: stream ended before terminator")

// ChatStream is an ordered, finite sequence of text fragments from a
// streamed completion. Tokens() is closed after the final fragment; Err()
// is non-nil if the stream ended abnormally. Not restartable.
type ChatStream struct {
	tokens chan string
	done   chan struct{}
	once   sync.Once
	body   io.ReadCloser

	mu  sync.Mutex
	err error
}

func newChatStream(body io.ReadCloser) *ChatStream {
	s := &ChatStream{
		tokens: make(chan string, 16),
		done:   make(chan struct{}),
		body:   body,
	}
	go s.consume()
	return s
}

// Tokens returns the fragment channel. It is closed exactly once, after
// the terminator arrives or the stream fails.
func (s *ChatStream) Tokens() <-chan string {
	return s.tokens
}

// Err reports why the stream ended, nil for a clean finish. Valid after
// Tokens() is closed.
func (s *ChatStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close abandons the stream and releases the connection. Safe to call
// concurrently with consumption and more than once.
func (s *ChatStream) Close() {
	s.once.Do(func() {
		close(s.done)
		s.body.Close()
	})
}

func (s *ChatStream) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *ChatStream) consume() {
	defer close(s.tokens)
	defer s.Close()

	scanner := bufio.NewScanner(s.body)
	scanner.Buffer(make([]byte, 0, 64*1024), 512*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			return
		}

		var delta streamDelta
		if err := json.Unmarshal([]byte(data), &delta); err != nil {
			// Skip malformed keep-alive chunks rather than kill the stream.
			continue
		}
		if len(delta.Choices) == 0 {
			continue
		}
		text := delta.Choices[0].Delta.Content
		if text == "" {
			continue
		}

		select {
		case s.tokens <- text:
		case <-s.done:
			return
		}
	}

	// Reaching here means the body ended without [DONE]. Unless the
	// consumer abandoned the stream, whatever was received is suspect.
	select {
	case <-s.done:
	default:
		if err := scanner.Err(); err != nil {
			s.setErr(err)
		} else {
			s.setErr(ErrTruncated)
		}
	}
}
