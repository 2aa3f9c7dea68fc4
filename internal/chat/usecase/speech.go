package usecase

import (
	"context"
	"fmt"

	"restaurant-ai-service/internal/chat"
	"restaurant-ai-service/pkg/llmprovider"
)

// Transcribe converts customer audio to text. Refused when the
// restaurant's mode or recognition flag disables speech.
func (uc *implUseCase) Transcribe(ctx context.Context, restaurantID string, audio []byte, filename string) (string, error) {
	rest, err := uc.getRestaurant(ctx, restaurantID)
	if err != nil {
		return "", err
	}

	cfg := uc.configs.Get(ctx, rest.ID)
	if !cfg.IsSpeechEnabled() || !cfg.Speech.RecognitionEnabled {
		return "", chat.ErrSpeechDisabled
	}

	text, err := uc.provider.TranscribeAudio(ctx, audio, filename)
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.Transcribe: %v", err)
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	return text, nil
}

// Synthesize converts assistant text to audio. Refused when the
// restaurant's mode or synthesis flag disables speech.
func (uc *implUseCase) Synthesize(ctx context.Context, restaurantID, text, voice string) ([]byte, error) {
	rest, err := uc.getRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	cfg := uc.configs.Get(ctx, rest.ID)
	if !cfg.IsSpeechEnabled() || !cfg.Speech.SynthesisEnabled {
		return nil, chat.ErrSpeechDisabled
	}

	if voice == "" {
		voice = cfg.Speech.DefaultVoice
	}
	audio, err := uc.provider.GenerateSpeech(ctx, &llmprovider.SpeechRequest{Text: text, Voice: voice})
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.Synthesize: %v", err)
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	return audio, nil
}
