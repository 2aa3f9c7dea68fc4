package aiconfig

import "fmt"

// Mode controls which interaction features a restaurant exposes.
type Mode string

const (
	ModeTextOnly      Mode = "text_only"
	ModeSpeechEnabled Mode = "speech_enabled"
	ModeHybrid        Mode = "hybrid"
)

// SpeechConfig holds speech synthesis and recognition settings.
type SpeechConfig struct {
	SynthesisEnabled      bool   `json:"synthesis_enabled"`
	RecognitionEnabled    bool   `json:"recognition_enabled"`
	DefaultVoice          string `json:"default_voice"`
	VoiceSelectionEnabled bool   `json:"voice_selection_enabled"`
	AutoPlay              bool   `json:"auto_play"`
}

// ModelConfig holds the generation parameters for a restaurant.
type ModelConfig struct {
	Model                string  `json:"model"`
	MaxTokens            int     `json:"max_tokens"`
	Temperature          float64 `json:"temperature"`
	SystemPromptOverride string  `json:"system_prompt_override,omitempty"`
	ContextMessages      int     `json:"context_messages"`
}

// PerformanceConfig holds cost and throughput settings.
type PerformanceConfig struct {
	StreamingEnabled   bool    `json:"streaming_enabled"`
	CacheResponses     bool    `json:"cache_responses"`
	MaxDailyRequests   int     `json:"max_daily_requests"`
	MaxDailyCostUSD    float64 `json:"max_daily_cost_usd"`
	RateLimitPerMinute int     `json:"rate_limit_per_minute"`
}

// Config is the complete per-restaurant AI configuration.
type Config struct {
	Mode           Mode              `json:"mode"`
	Speech         SpeechConfig      `json:"speech"`
	Model          ModelConfig       `json:"model"`
	Performance    PerformanceConfig `json:"performance"`
	CustomFeatures map[string]any    `json:"custom_features,omitempty"`
}

// FrontendConfig is the client-safe projection of a Config. Speech flags are
// forced off when the mode does not allow speech, so clients never need to
// combine mode and feature flags themselves.
type FrontendConfig struct {
	Mode                     Mode   `json:"mode"`
	SpeechSynthesisEnabled   bool   `json:"speech_synthesis_enabled"`
	SpeechRecognitionEnabled bool   `json:"speech_recognition_enabled"`
	VoiceSelectionEnabled    bool   `json:"voice_selection_enabled"`
	DefaultVoice             string `json:"default_voice"`
	StreamingEnabled         bool   `json:"streaming_enabled"`
	AutoPlay                 bool   `json:"auto_play"`
	MaxTokens                int    `json:"max_tokens"`
}

// Default returns the configuration new restaurants start with: text only,
// speech fully off, conservative generation limits.
func Default() Config {
	return Config{
		Mode: ModeTextOnly,
		Speech: SpeechConfig{
			DefaultVoice: "nova",
		},
		Model: ModelConfig{
			Model:           "gpt-4o-mini",
			MaxTokens:       150,
			Temperature:     0.7,
			ContextMessages: 10,
		},
		Performance: PerformanceConfig{
			StreamingEnabled:   true,
			CacheResponses:     true,
			MaxDailyRequests:   1000,
			MaxDailyCostUSD:    10.0,
			RateLimitPerMinute: 60,
		},
	}
}

// SpeechEnabled returns the default configuration with all speech features on.
func SpeechEnabled() Config {
	cfg := Default()
	cfg.Mode = ModeSpeechEnabled
	cfg.Speech.SynthesisEnabled = true
	cfg.Speech.RecognitionEnabled = true
	cfg.Speech.VoiceSelectionEnabled = true
	cfg.Speech.AutoPlay = true
	return cfg
}

// Hybrid returns the speech-enabled configuration in hybrid mode, where the
// customer can toggle speech on and off.
func Hybrid() Config {
	cfg := SpeechEnabled()
	cfg.Mode = ModeHybrid
	return cfg
}

// Validate checks the configuration against accepted ranges.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeTextOnly, ModeSpeechEnabled, ModeHybrid:
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Model.MaxTokens < 10 || c.Model.MaxTokens > 4000 {
		return fmt.Errorf("%w: max_tokens must be between 10 and 4000", ErrInvalidConfig)
	}
	if c.Model.Temperature < 0 || c.Model.Temperature > 2 {
		return fmt.Errorf("%w: temperature must be between 0 and 2", ErrInvalidConfig)
	}
	if c.Model.ContextMessages < 1 || c.Model.ContextMessages > 50 {
		return fmt.Errorf("%w: context_messages must be between 1 and 50", ErrInvalidConfig)
	}
	if c.Performance.MaxDailyCostUSD < 0 {
		return fmt.Errorf("%w: max_daily_cost_usd must be positive", ErrInvalidConfig)
	}
	if c.Performance.MaxDailyRequests < 1 {
		return fmt.Errorf("%w: max_daily_requests must be at least 1", ErrInvalidConfig)
	}
	if c.Performance.RateLimitPerMinute < 1 {
		return fmt.Errorf("%w: rate_limit_per_minute must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// IsSpeechEnabled reports whether any speech feature is active.
func (c Config) IsSpeechEnabled() bool {
	if c.Mode != ModeSpeechEnabled && c.Mode != ModeHybrid {
		return false
	}
	return c.Speech.SynthesisEnabled || c.Speech.RecognitionEnabled
}

// FrontendView projects the configuration for client consumption.
func (c Config) FrontendView() FrontendConfig {
	speechMode := c.Mode != ModeTextOnly
	return FrontendConfig{
		Mode:                     c.Mode,
		SpeechSynthesisEnabled:   speechMode && c.Speech.SynthesisEnabled,
		SpeechRecognitionEnabled: speechMode && c.Speech.RecognitionEnabled,
		VoiceSelectionEnabled:    c.IsSpeechEnabled() && c.Speech.VoiceSelectionEnabled,
		DefaultVoice:             c.Speech.DefaultVoice,
		StreamingEnabled:         c.Performance.StreamingEnabled,
		AutoPlay:                 c.Speech.AutoPlay,
		MaxTokens:                c.Model.MaxTokens,
	}
}
