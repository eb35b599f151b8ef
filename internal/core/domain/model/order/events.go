package order

import "time"

// EventType names what happened to an order.
type EventType string

const (
	// OrderCreated follows a successful validate-and-initialize; it requests payment.
	OrderCreated EventType = "ORDER_CREATED"

	// OrderPaid follows Pay; it requests restaurant approval.
	OrderPaid EventType = "ORDER_PAID"

	// OrderCancelled follows InitCancel; it requests the payment to be refunded.
	OrderCancelled EventType = "ORDER_CANCELLED"
)

// Event is a fact about an order, raised by the domain service and published by
// the application layer once the transaction that produced it has committed.
type Event struct {
	Type      EventType
	Order     *Order
	CreatedAt time.Time
}

func newEvent(eventType EventType, o *Order, createdAt time.Time) Event {
	return Event{
		Type:      eventType,
		Order:     o,
		CreatedAt: createdAt.UTC(),
	}
}

// NewOrderCreatedEvent records that o was validated and initialized.
func NewOrderCreatedEvent(o *Order, createdAt time.Time) Event {
	return newEvent(OrderCreated, o, createdAt)
}

// NewOrderPaidEvent records that o was paid.
func NewOrderPaidEvent(o *Order, createdAt time.Time) Event {
	return newEvent(OrderPaid, o, createdAt)
}

// NewOrderCancelledEvent records that cancellation of the paid order o started.
func NewOrderCancelledEvent(o *Order, createdAt time.Time) Event {
	return newEvent(OrderCancelled, o, createdAt)
}
