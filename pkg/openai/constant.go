package openai

const (
	// DefaultBaseURL is the OpenAI API endpoint.
	DefaultBaseURL = "https://api.openai.com/v1"

	// GroqBaseURL is the OpenAI-compatible Groq endpoint.
	GroqBaseURL = "https://api.groq.com/openai/v1"

	// GrokBaseURL is the OpenAI-compatible xAI endpoint.
	GrokBaseURL = "https://api.x.ai/v1"

	// DefaultModel is the default chat model.
	DefaultModel = "gpt-4o-mini"

	// DefaultSpeechModel is the default text-to-speech model.
	DefaultSpeechModel = "tts-1"

	// DefaultTranscribeModel is the default speech-to-text model.
	DefaultTranscribeModel = "whisper-1"
)

// Voices are the synthesis voices the speech endpoint accepts.
var Voices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}
