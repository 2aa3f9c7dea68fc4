package repository

import (
	"context"

	"restaurant-ai-service/internal/model"
)

// Repository is read-only menu and restaurant access. Menu data is owned by
// the menu-management service; this side never writes it.
type Repository interface {
	// GetRestaurant returns the restaurant by ID. Zero value (ID == "")
	// when not found, no error.
	GetRestaurant(ctx context.Context, id string) (model.Restaurant, error)

	// GetRestaurantBySlug returns the restaurant by URL slug. Zero value
	// when not found.
	GetRestaurantBySlug(ctx context.Context, slug string) (model.Restaurant, error)

	// ListCategories returns the restaurant's categories in display order.
	ListCategories(ctx context.Context, restaurantID string) ([]model.MenuCategory, error)

	// ListItems returns the restaurant's available items in display order.
	ListItems(ctx context.Context, restaurantID string) ([]model.MenuItem, error)
}
