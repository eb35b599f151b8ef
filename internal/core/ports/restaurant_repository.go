package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// RestaurantRepository keeps the ordering service's view of restaurants:
// whether a restaurant is active and its confirmed menu.
type RestaurantRepository interface {
	// Save inserts the restaurant or replaces its activity flag and whole menu.
	Save(ctx context.Context, restaurant *order.Restaurant) error

	// Get retrieves a restaurant with all of its products.
	// Returns errs.ObjectNotFoundError when the restaurant is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Restaurant, error)
}
