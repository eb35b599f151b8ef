package ports

import (
	"context"

	"ordering/internal/core/domain/model/order"
)

// EventPublisher hands order events to the other participants of the order
// saga: payment for OrderCreated and OrderCancelled, restaurant approval for
// OrderPaid. Events are published after the transaction that raised them commits.
type EventPublisher interface {
	Publish(ctx context.Context, event order.Event) error
}
