package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"restaurant-ai-service/internal/menu/repository"
	"restaurant-ai-service/pkg/log"
	"restaurant-ai-service/pkg/sqlite"
)

func newTestRepo(t *testing.T) (repository.Repository, *sql.DB) {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo, err := New(db, log.NewNop())
	if err != nil {
		t.Fatalf("new repo: %v", err)
	}
	return repo, db
}

func seedRestaurant(t *testing.T, db *sql.DB) {
	t.Helper()
	_, err := db.Exec(`
		INSERT INTO restaurants (id, slug, name, cuisine_type, description, is_active, avatar_json)
		VALUES ('rest-1', 'cookie-jar', 'The Cookie Jar', 'bakery', 'Fresh cookies daily', 1,
			'{"Name":"Baker Betty","Tone":"warm","Greeting":"Welcome!"}')`)
	if err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}

	_, err = db.Exec(`
		INSERT INTO menu_items (id, restaurant_id, name, description, price, ingredients_json, allergens_json, is_signature, is_available, preparation_mins, display_order)
		VALUES
			('item-1', 'rest-1', 'OG', 'The classic', 4.49, '["flour","butter"]', '["gluten"]', 1, 1, 12, 1),
			('item-2', 'rest-1', 'Boneless', 'Buttery favorite', 3.99, '[]', '[]', 0, 1, 10, 2),
			('item-3', 'rest-1', 'Retired Special', 'Gone', 2.99, '[]', '[]', 0, 0, 5, 3)`)
	if err != nil {
		t.Fatalf("seed items: %v", err)
	}
}

func TestGetRestaurant(t *testing.T) {
	ctx := context.Background()
	repo, db := newTestRepo(t)
	seedRestaurant(t, db)

	t.Run("By ID", func(t *testing.T) {
		rest, err := repo.GetRestaurant(ctx, "rest-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if rest.Name != "The Cookie Jar" || rest.Avatar.Name != "Baker Betty" {
			t.Fatalf("got %+v", rest)
		}
	})

	t.Run("By Slug", func(t *testing.T) {
		rest, err := repo.GetRestaurantBySlug(ctx, "cookie-jar")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if rest.ID != "rest-1" {
			t.Fatalf("got %+v", rest)
		}
	})

	t.Run("Not Found Zero Value", func(t *testing.T) {
		rest, err := repo.GetRestaurant(ctx, "nope")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if rest.ID != "" {
			t.Fatalf("expected zero value, got %+v", rest)
		}
	})
}

func TestListItems(t *testing.T) {
	ctx := context.Background()
	repo, db := newTestRepo(t)
	seedRestaurant(t, db)

	items, err := repo.ListItems(ctx, "rest-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2 (unavailable excluded)", len(items))
	}
	if items[0].Name != "OG" || items[1].Name != "Boneless" {
		t.Fatalf("wrong display order: %s, %s", items[0].Name, items[1].Name)
	}
	if len(items[0].Ingredients) != 2 || items[0].Ingredients[0] != "flour" {
		t.Fatalf("ingredients not decoded: %+v", items[0].Ingredients)
	}
	if !items[0].IsSignature {
		t.Fatal("signature flag lost")
	}
}
