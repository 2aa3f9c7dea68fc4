package llmprovider

import "context"

// Provider is the capability set a text-generation backend must offer.
// Implementations are selected by config; callers never see a concrete
// client.
type Provider interface {
	// GenerateText sends a generation request and returns the full response.
	GenerateText(ctx context.Context, req *Request) (*Response, error)

	// StreamText sends a generation request and returns a token stream.
	StreamText(ctx context.Context, req *Request) (TextStream, error)

	// GenerateSpeech synthesizes audio for text.
	GenerateSpeech(ctx context.Context, req *SpeechRequest) ([]byte, error)

	// TranscribeAudio converts audio bytes to text.
	TranscribeAudio(ctx context.Context, audio []byte, filename string) (string, error)

	// Name returns the provider name (e.g. "openai", "groq", "grok").
	Name() string

	// Model returns the default model being used.
	Model() string
}

// TextStream is an ordered, finite, non-restartable sequence of text
// fragments. Tokens() closes after the last fragment; concatenating the
// fragments in emission order reconstructs the full text.
type TextStream interface {
	Tokens() <-chan string
	Err() error
	Close()
}

// Request is a normalized generation request.
type Request struct {
	SystemPrompt string
	Messages     []Message
	Model        string
	MaxTokens    int
	Temperature  float64
}

// Message is one conversation turn.
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Response is a normalized generation response.
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// SpeechRequest is a normalized speech synthesis request.
type SpeechRequest struct {
	Text  string
	Voice string
}
