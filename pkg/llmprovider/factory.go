package llmprovider

import (
	"fmt"
	"strings"
	"time"

	"restaurant-ai-service/pkg/openai"
)

// FactoryConfig selects and configures the active provider.
type FactoryConfig struct {
	Provider string // openai | groq | grok
	APIKey   string
	Model    string
	BaseURL  string // optional override
	Timeout  time.Duration
}

// New builds the Provider named by cfg.Provider. All supported providers
// speak the OpenAI wire protocol, differing only in endpoint and model
// naming.
func New(cfg FactoryConfig) (Provider, error) {
	name := strings.ToLower(strings.TrimSpace(cfg.Provider))

	baseURL := cfg.BaseURL
	if baseURL == "" {
		switch name {
		case "openai":
			baseURL = openai.DefaultBaseURL
		case "groq":
			baseURL = openai.GroqBaseURL
		case "grok":
			baseURL = openai.GrokBaseURL
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
		}
	}

	client, err := openai.New(openai.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: baseURL,
		Timeout: cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("initialize %s client: %w", name, err)
	}
	return NewOpenAIAdapter(client, name), nil
}
