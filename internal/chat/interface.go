package chat

import "context"

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Chat runs one conversational turn through the response pipeline and
	// returns the complete answer.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ChatStream runs one turn in streaming mode. emit is called once per
	// token and once for the terminal event; it must not be called after
	// the terminal event.
	ChatStream(ctx context.Context, input ChatInput, emit EmitFunc) error

	// Suggestions returns follow-up prompts for the customer's last message.
	Suggestions(ctx context.Context, restaurantID, message string) ([]string, error)

	// Analytics aggregates chat analytics for a restaurant.
	Analytics(ctx context.Context, input AnalyticsInput) (AnalyticsOutput, error)

	// Transcribe converts customer audio to text, honoring the
	// restaurant's speech configuration.
	Transcribe(ctx context.Context, restaurantID string, audio []byte, filename string) (string, error)

	// Synthesize converts assistant text to audio, honoring the
	// restaurant's speech configuration.
	Synthesize(ctx context.Context, restaurantID, text, voice string) ([]byte, error)

	// InvalidateItem drops cached answers for one menu item. Called by
	// the menu collaborator on item edit or delete.
	InvalidateItem(ctx context.Context, restaurantID, itemID string) error

	// InvalidateRestaurant drops every cached answer for a restaurant.
	InvalidateRestaurant(ctx context.Context, restaurantID string) error
}
