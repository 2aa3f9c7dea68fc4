package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant-ai-service/internal/chat"
	"restaurant-ai-service/internal/model"
)

// getRestaurant loads an active restaurant by ID, falling back to slug so
// both address forms work in the URL. Inactive restaurants are treated as
// absent.
func (uc *implUseCase) getRestaurant(ctx context.Context, idOrSlug string) (model.Restaurant, error) {
	rest, err := uc.menuRepo.GetRestaurant(ctx, idOrSlug)
	if err != nil {
		uc.l.Errorf(ctx, "chat/usecase.getRestaurant: %v", err)
		return model.Restaurant{}, chat.ErrRestaurantNotFound
	}
	if rest.ID == "" {
		rest, err = uc.menuRepo.GetRestaurantBySlug(ctx, idOrSlug)
		if err != nil {
			uc.l.Errorf(ctx, "chat/usecase.getRestaurant: %v", err)
			return model.Restaurant{}, chat.ErrRestaurantNotFound
		}
	}
	if rest.ID == "" || !rest.IsActive {
		return model.Restaurant{}, chat.ErrRestaurantNotFound
	}
	return rest, nil
}

// fallbackResponse is the identity-only answer used when generation fails.
func fallbackResponse(rest model.Restaurant) string {
	return fmt.Sprintf("Hi! I'm %s and I work here at %s. What can I help you with today?", rest.AvatarName(), rest.Name)
}

// recommendations lists up to three signature items to surface alongside
// the answer.
func recommendations(items []model.MenuItem) []string {
	var recs []string
	for _, item := range items {
		if !item.IsSignature {
			continue
		}
		recs = append(recs, item.Name)
		if len(recs) == 3 {
			break
		}
	}
	return recs
}

// listItems loads the menu, degrading to an empty menu on storage failure
// so the turn still completes.
func (uc *implUseCase) listItems(ctx context.Context, restaurantID string) []model.MenuItem {
	items, err := uc.menuRepo.ListItems(ctx, restaurantID)
	if err != nil {
		uc.l.Warnf(ctx, "chat/usecase.listItems: degrading to empty menu: %v", err)
		return nil
	}
	return items
}

// defaultSuggestions builds follow-up prompts from keywords in the
// customer's message, falling back to generic prompts.
func defaultSuggestions(message string) []string {
	lower := strings.ToLower(message)
	contains := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(lower, w) {
				return true
			}
		}
		return false
	}

	var suggestions []string
	if contains("spicy", "hot", "heat") {
		suggestions = append(suggestions,
			"What's your spice tolerance level?",
			"Would you like to see our mildest options?",
		)
	}
	if contains("vegetarian", "vegan", "plant") {
		suggestions = append(suggestions,
			"Do you have any other dietary restrictions?",
			"Are you interested in our vegetarian specialties?",
		)
	}
	if contains("allergy", "allergic", "allergen") {
		suggestions = append(suggestions,
			"Which specific allergens should I help you avoid?",
			"Would you like me to recommend allergen-free options?",
		)
	}

	if len(suggestions) == 0 {
		suggestions = []string{
			"Would you like to hear about our signature dishes?",
			"Are you looking for something specific?",
			"Would you like to know about today's specials?",
		}
	}
	if len(suggestions) > 3 {
		suggestions = suggestions[:3]
	}
	return suggestions
}
