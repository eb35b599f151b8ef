// Package rabbitmq publishes order events as requests to the payment and
// restaurant services.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// messagePublisher is satisfied by *rabbitmq.Client.
type messagePublisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// Queues names the destination of each request kind.
type Queues struct {
	PaymentRequest            string
	RestaurantApprovalRequest string
}

// EventPublisher implements ports.EventPublisher on RabbitMQ:
//   - OrderCreated becomes a PENDING payment request
//   - OrderPaid becomes a restaurant approval request
//   - OrderCancelled becomes a CANCELLED payment request
//
// The order id doubles as the saga id.
type EventPublisher struct {
	publisher messagePublisher
	queues    Queues
	newUUID   kernel.UUIDGenerator
}

func NewEventPublisher(publisher messagePublisher, queues Queues, newUUID kernel.UUIDGenerator) *EventPublisher {
	return &EventPublisher{
		publisher: publisher,
		queues:    queues,
		newUUID:   newUUID,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, event order.Event) error {
	if err := event.Order.Validate(); err != nil {
		return err
	}

	var (
		queue   string
		message any
	)
	switch event.Type {
	case order.OrderCreated:
		queue, message = p.queues.PaymentRequest, p.paymentRequest(event, PaymentOrderPending)
	case order.OrderCancelled:
		queue, message = p.queues.PaymentRequest, p.paymentRequest(event, PaymentOrderCancelled)
	case order.OrderPaid:
		queue, message = p.queues.RestaurantApprovalRequest, p.restaurantApprovalRequest(event)
	default:
		return fmt.Errorf("unsupported event type %q", event.Type)
	}

	body, err := json.Marshal(message)
	if err != nil {
		return err
	}

	if err = p.publisher.Publish(ctx, queue, body); err != nil {
		return fmt.Errorf("failed to publish %s for order %s: %w", event.Type, event.Order.ID(), err)
	}
	return nil
}

func (p *EventPublisher) paymentRequest(event order.Event, status PaymentOrderStatus) PaymentRequest {
	o := event.Order
	return PaymentRequest{
		ID:                 p.newUUID().String(),
		SagaID:             o.ID().String(),
		OrderID:            o.ID().String(),
		CustomerID:         o.CustomerID().String(),
		Price:              o.Price().String(),
		CreatedAt:          event.CreatedAt,
		PaymentOrderStatus: status,
	}
}

func (p *EventPublisher) restaurantApprovalRequest(event order.Event) RestaurantApprovalRequest {
	o := event.Order

	items := o.Items()
	products := make([]ProductLine, 0, len(items))
	for _, item := range items {
		products = append(products, ProductLine{
			ID:       item.Product().ID().String(),
			Quantity: item.Quantity(),
		})
	}

	return RestaurantApprovalRequest{
		ID:                    p.newUUID().String(),
		SagaID:                o.ID().String(),
		OrderID:               o.ID().String(),
		RestaurantID:          o.RestaurantID().String(),
		RestaurantOrderStatus: RestaurantOrderPaid,
		Products:              products,
		Price:                 o.Price().String(),
		CreatedAt:             event.CreatedAt,
	}
}
