package ports

import (
	"context"

	"delify/internal/core/domain/model/catalog"
	"delify/internal/core/domain/model/kernel"
)

// RestaurantRepository defines the contract against the external catalog
// store: restaurant and menu lookups for the catalog endpoints and for
// resolving display fields on notification payloads. Owner resolution stays
// on the query side in raw SQL.
type RestaurantRepository interface {
	// Add persists a new restaurant. Present for store seeding and tests.
	Add(ctx context.Context, restaurant *catalog.Restaurant) error

	// AddMenuItem persists a new menu item. Present for store seeding and tests.
	AddMenuItem(ctx context.Context, item *catalog.MenuItem) error

	// Get retrieves a restaurant by id.
	Get(ctx context.Context, id kernel.UUID) (*catalog.Restaurant, error)

	// GetAll retrieves every restaurant in the catalog.
	GetAll(ctx context.Context) ([]*catalog.Restaurant, error)

	// MenuItems retrieves all menu items of one restaurant.
	MenuItems(ctx context.Context, restaurantID kernel.UUID) ([]*catalog.MenuItem, error)
}
