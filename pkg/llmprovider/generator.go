package llmprovider

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"restaurant-ai-service/pkg/log"
)

// GenerateParams carries the per-call settings resolved from the
// restaurant's AI config, plus the identity fallback used when anything
// goes wrong.
type GenerateParams struct {
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration

	// RateKey and RatePerMinute budget provider calls per restaurant.
	// Zero RatePerMinute disables the budget.
	RateKey       string
	RatePerMinute int

	// Fallback is returned whenever the provider fails. Built from
	// restaurant and avatar identity only; never contains error text.
	Fallback string
}

// Generator invokes the provider with a timeout and a per-restaurant call
// budget, and converts every failure into the static fallback. Callers
// never see a provider error.
type Generator struct {
	l        log.Logger
	provider Provider
	limiters *expirable.LRU[string, *rate.Limiter]
}

// NewGenerator builds a Generator around the active provider.
func NewGenerator(l log.Logger, provider Provider) *Generator {
	return &Generator{
		l:        l,
		provider: provider,
		limiters: expirable.NewLRU[string, *rate.Limiter](1000, nil, 5*time.Minute),
	}
}

// allow consumes one token from the restaurant's call budget. The limiter
// key embeds the configured rate so a config change rebuilds the limiter.
func (g *Generator) allow(p GenerateParams) bool {
	if p.RatePerMinute <= 0 || p.RateKey == "" {
		return true
	}

	key := fmt.Sprintf("%s:%d", p.RateKey, p.RatePerMinute)
	limiter, ok := g.limiters.Get(key)
	if !ok {
		burst := p.RatePerMinute / 10
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(float64(p.RatePerMinute)/60.0), burst)
		g.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

func (g *Generator) request(messages []Message, systemPrompt string, p GenerateParams) *Request {
	return &Request{
		SystemPrompt: systemPrompt,
		Messages:     messages,
		Model:        p.Model,
		MaxTokens:    p.MaxTokens,
		Temperature:  p.Temperature,
	}
}

// Generate returns the provider's answer, or the fallback on any failure.
func (g *Generator) Generate(ctx context.Context, systemPrompt string, messages []Message, p GenerateParams) string {
	if !g.allow(p) {
		g.l.Warnf(ctx, "llmprovider.Generator.Generate: %v for %s", ErrProviderRateLimited, p.RateKey)
		return p.Fallback
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	resp, err := g.provider.GenerateText(ctx, g.request(messages, systemPrompt, p))
	if err != nil {
		g.l.Warnf(ctx, "llmprovider.Generator.Generate: %v", err)
		return p.Fallback
	}
	if resp.Content == "" {
		g.l.Warnf(ctx, "llmprovider.Generator.Generate: empty completion from %s", resp.ProviderName)
		return p.Fallback
	}
	return resp.Content
}

// Stream returns the provider's token stream, or a single-fragment stream
// carrying the fallback when the call cannot start. Mid-stream failures
// surface through TextStream.Err; the caller decides whether the partial
// text is usable.
func (g *Generator) Stream(ctx context.Context, systemPrompt string, messages []Message, p GenerateParams) TextStream {
	if !g.allow(p) {
		g.l.Warnf(ctx, "llmprovider.Generator.Stream: %v for %s", ErrProviderRateLimited, p.RateKey)
		return newStaticStream(p.Fallback)
	}

	ctx, cancel := context.WithTimeout(ctx, p.Timeout)

	stream, err := g.provider.StreamText(ctx, g.request(messages, systemPrompt, p))
	if err != nil {
		cancel()
		g.l.Warnf(ctx, "llmprovider.Generator.Stream: %v", err)
		return newStaticStream(p.Fallback)
	}
	return &cancelStream{TextStream: stream, cancel: cancel}
}

// cancelStream ties the timeout context to the stream's lifetime.
type cancelStream struct {
	TextStream
	cancel context.CancelFunc
}

func (s *cancelStream) Close() {
	s.cancel()
	s.TextStream.Close()
}

// staticStream emits one fragment and finishes cleanly. Used to deliver
// the fallback through the streaming contract.
type staticStream struct {
	tokens chan string
}

func newStaticStream(text string) *staticStream {
	s := &staticStream{tokens: make(chan string, 1)}
	s.tokens <- text
	close(s.tokens)
	return s
}

func (s *staticStream) Tokens() <-chan string { return s.tokens }
func (s *staticStream) Err() error            { return nil }
func (s *staticStream) Close()                {}
