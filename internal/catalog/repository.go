package catalog

import "context"

// Repository defines all database operations for the menu catalog
type Repository interface {

	// Full menu for one request. Fresh read every time, no caching.
	Snapshot(ctx context.Context) (*MenuSnapshot, error)

	// Case-insensitive substring match on name OR description,
	// returned in catalog order.
	SearchSpecials(ctx context.Context, query string) ([]Special, error)

	// Case-insensitive substring match on name, catalog order.
	SearchToppings(ctx context.Context, query string) ([]Topping, error)
}
