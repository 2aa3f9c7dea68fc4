package usecase

import (
	"context"

	"restaurant-ai-service/internal/chat"
)

// Suggestions returns follow-up prompts for the customer's last message.
func (uc *implUseCase) Suggestions(ctx context.Context, restaurantID, message string) ([]string, error) {
	if _, err := uc.getRestaurant(ctx, restaurantID); err != nil {
		return nil, err
	}
	return defaultSuggestions(message), nil
}

// Analytics aggregates chat analytics for a restaurant.
func (uc *implUseCase) Analytics(ctx context.Context, input chat.AnalyticsInput) (chat.AnalyticsOutput, error) {
	rest, err := uc.getRestaurant(ctx, input.RestaurantID)
	if err != nil {
		return chat.AnalyticsOutput{}, err
	}

	summary, err := uc.convRepo.Summary(ctx, rest.ID, input.Since)
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.Analytics: %v", err)
		return chat.AnalyticsOutput{}, err
	}
	return chat.AnalyticsOutput{
		TotalEvents:   summary.TotalEvents,
		ByBranch:      summary.ByBranch,
		Conversations: summary.Conversations,
	}, nil
}
