package openai

import "context"

// IOpenAI defines the operations the client exposes. Groq and Grok serve
// the same wire protocol, so one client covers all three providers.
type IOpenAI interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	StreamContent(ctx context.Context, req *Request) (*ChatStream, error)
	GenerateSpeech(ctx context.Context, req *SpeechRequest) ([]byte, error)
	TranscribeAudio(ctx context.Context, audio []byte, filename string) (string, error)
	Model() string
}
