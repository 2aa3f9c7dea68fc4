package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"

	"restaurant-ai-service/internal/menu/repository"
	"restaurant-ai-service/internal/model"
)

const restaurantCols = `id, slug, name, cuisine_type, description, is_active, avatar_json`

func (r *implRepository) scanRestaurant(row *sql.Row) (model.Restaurant, error) {
	var (
		rest       model.Restaurant
		avatarJSON string
	)
	err := row.Scan(&rest.ID, &rest.Slug, &rest.Name, &rest.CuisineType, &rest.Description, &rest.IsActive, &avatarJSON)
	if err != nil {
		return model.Restaurant{}, err
	}
	if avatarJSON != "" {
		// A malformed avatar blob degrades to the default persona.
		_ = json.Unmarshal([]byte(avatarJSON), &rest.Avatar)
	}
	return rest, nil
}

// GetRestaurant returns the restaurant by ID. Zero value when not found.
func (r *implRepository) GetRestaurant(ctx context.Context, id string) (model.Restaurant, error) {
	query := `SELECT ` + restaurantCols + ` FROM restaurants WHERE id = ?`
	rest, err := r.scanRestaurant(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return model.Restaurant{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRestaurant"), err)
		return model.Restaurant{}, repository.ErrFailedToGet
	}
	return rest, nil
}

// GetRestaurantBySlug returns the restaurant by slug. Zero value when not found.
func (r *implRepository) GetRestaurantBySlug(ctx context.Context, slug string) (model.Restaurant, error) {
	query := `SELECT ` + restaurantCols + ` FROM restaurants WHERE slug = ?`
	rest, err := r.scanRestaurant(r.db.QueryRowContext(ctx, query, slug))
	if err == sql.ErrNoRows {
		return model.Restaurant{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRestaurantBySlug"), err)
		return model.Restaurant{}, repository.ErrFailedToGet
	}
	return rest, nil
}

// ListCategories returns the restaurant's categories in display order.
func (r *implRepository) ListCategories(ctx context.Context, restaurantID string) ([]model.MenuCategory, error) {
	const query = `
		SELECT id, restaurant_id, name, description, display_order
		FROM menu_categories
		WHERE restaurant_id = ?
		ORDER BY display_order, name`

	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var categories []model.MenuCategory
	for rows.Next() {
		var c model.MenuCategory
		if err := rows.Scan(&c.ID, &c.RestaurantID, &c.Name, &c.Description, &c.DisplayOrder); err != nil {
			return nil, repository.ErrFailedToList
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// ListItems returns the restaurant's available items in display order.
func (r *implRepository) ListItems(ctx context.Context, restaurantID string) ([]model.MenuItem, error) {
	const query = `
		SELECT id, restaurant_id, category_id, name, description, price,
		       ingredients_json, allergens_json, is_signature, is_available,
		       preparation_mins, display_order
		FROM menu_items
		WHERE restaurant_id = ? AND is_available = 1
		ORDER BY display_order, name`

	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	var items []model.MenuItem
	for rows.Next() {
		var (
			item            model.MenuItem
			ingredientsJSON string
			allergensJSON   string
		)
		err := rows.Scan(
			&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name, &item.Description, &item.Price,
			&ingredientsJSON, &allergensJSON, &item.IsSignature, &item.IsAvailable,
			&item.PreparationMins, &item.DisplayOrder,
		)
		if err != nil {
			return nil, repository.ErrFailedToList
		}
		_ = json.Unmarshal([]byte(ingredientsJSON), &item.Ingredients)
		_ = json.Unmarshal([]byte(allergensJSON), &item.Allergens)
		items = append(items, item)
	}
	return items, rows.Err()
}
