package model

// MenuItem is a single orderable item, owned by the menu-management service.
// The chat core reads these fields verbatim when building deterministic
// answers; it never infers values that are not present.
type MenuItem struct {
	ID              string
	RestaurantID    string
	CategoryID      string
	Name            string
	Description     string
	Price           float64
	Ingredients     []string // ordered, menu display order
	Allergens       []string
	IsSignature     bool
	IsAvailable     bool
	PreparationMins int // 0 means unknown
	DisplayOrder    int
}

// MenuCategory groups menu items for display.
type MenuCategory struct {
	ID           string
	RestaurantID string
	Name         string
	Description  string
	DisplayOrder int
}
