package llmprovider

import (
	"context"

	"restaurant-ai-service/pkg/openai"
)

// OpenAIAdapter adapts pkg/openai to the Provider interface. The same
// adapter serves OpenAI, Groq and Grok since they share a wire protocol;
// only the name and base URL differ.
type OpenAIAdapter struct {
	client openai.IOpenAI
	name   string
}

// NewOpenAIAdapter creates an adapter for an OpenAI-compatible client.
func NewOpenAIAdapter(client openai.IOpenAI, name string) *OpenAIAdapter {
	return &OpenAIAdapter{client: client, name: name}
}

func (a *OpenAIAdapter) buildRequest(req *Request) *openai.Request {
	messages := make([]openai.Message, 0, len(req.Messages)+1)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.Message{Role: "system", Content: req.SystemPrompt})
	}
	for _, m := range req.Messages {
		messages = append(messages, openai.Message{Role: m.Role, Content: m.Content})
	}
	return &openai.Request{
		Model:       req.Model,
		Messages:    messages,
		MaxTokens:   req.MaxTokens,
		Temperature: req.Temperature,
	}
}

// GenerateText implements Provider.
func (a *OpenAIAdapter) GenerateText(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, a.buildRequest(req))
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Provider: a.name, Err: ErrMalformedResponse}
	}

	return &Response{
		Content:      resp.Choices[0].Message.Content,
		ProviderName: a.name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// StreamText implements Provider.
func (a *OpenAIAdapter) StreamText(ctx context.Context, req *Request) (TextStream, error) {
	stream, err := a.client.StreamContent(ctx, a.buildRequest(req))
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}
	return stream, nil
}

// GenerateSpeech implements Provider.
func (a *OpenAIAdapter) GenerateSpeech(ctx context.Context, req *SpeechRequest) ([]byte, error) {
	audio, err := a.client.GenerateSpeech(ctx, &openai.SpeechRequest{
		Input: req.Text,
		Voice: req.Voice,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.name, Err: err}
	}
	return audio, nil
}

// TranscribeAudio implements Provider.
func (a *OpenAIAdapter) TranscribeAudio(ctx context.Context, audio []byte, filename string) (string, error) {
	text, err := a.client.TranscribeAudio(ctx, audio, filename)
	if err != nil {
		return "", &ProviderError{Provider: a.name, Err: err}
	}
	return text, nil
}

// Name implements Provider.
func (a *OpenAIAdapter) Name() string {
	return a.name
}

// Model implements Provider.
func (a *OpenAIAdapter) Model() string {
	return a.client.Model()
}
