// Package ports defines the contracts between the ordering core and its
// infrastructure: repositories, the unit of work and the event publisher.
package ports

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Add and Update together save an order; an order is always written with all
// of its items and its failure messages.
type OrderRepository interface {
	// Add persists a newly initialized order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the new status and failure messages of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier. Inside a transaction the order row
	// stays locked until commit or rollback, so at most one transaction mutates
	// a given order at a time.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindByTrackingID retrieves an order by its customer-facing tracking id.
	FindByTrackingID(ctx context.Context, trackingID kernel.UUID) (*order.Order, error)

	// GetPendingCreatedBefore returns Pending orders created before cutoff, oldest
	// first, locking them like Get does.
	//
	// Example:
	//   orders, err := repo.GetPendingCreatedBefore(ctx, time.Now().Add(-15*time.Minute))
	//   if err != nil {
	//       return fmt.Errorf("failed to get expired orders: %w", err)
	//   }
	GetPendingCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
