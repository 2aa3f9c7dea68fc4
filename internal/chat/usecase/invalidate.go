package usecase

import "context"

// InvalidateItem drops cached answers touching one menu item: every
// deterministic entry for the item, plus the restaurant's semantic cache
// since generated answers may reference the item too.
func (uc *implUseCase) InvalidateItem(ctx context.Context, restaurantID, itemID string) error {
	uc.knowledge.InvalidateItem(restaurantID, itemID)
	uc.semantic.InvalidateRestaurant(restaurantID)
	uc.l.Infof(ctx, "chat/usecase.InvalidateItem: cleared caches for item %s of %s", itemID, restaurantID)
	return nil
}

// InvalidateRestaurant drops every cached answer and the cached AI config
// for a restaurant.
func (uc *implUseCase) InvalidateRestaurant(ctx context.Context, restaurantID string) error {
	uc.knowledge.InvalidateRestaurant(restaurantID)
	uc.semantic.InvalidateRestaurant(restaurantID)
	uc.configs.Invalidate(restaurantID)
	uc.l.Infof(ctx, "chat/usecase.InvalidateRestaurant: cleared caches for %s", restaurantID)
	return nil
}
