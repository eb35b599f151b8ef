package services

import (
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// OrderDomainService is the single entry point the application layer uses to
// change an order. It checks cross-aggregate rules (the restaurant must be active
// and its menu confirms what the customer sent) and turns successful transitions
// into domain events.
//
// Business rules:
//   - an order is validated before it is initialized, never after
//   - events carry the order state as it is after the transition
//   - a refused transition leaves status and failure messages unchanged
//
// Example usage:
//
//	service := services.NewOrderDomainService()
//	event, err := service.ValidateAndInitiateOrder(o, restaurant, kernel.NewUUID, time.Now())
//	if errors.Is(err, errs.ErrDomainRuleViolation) {
//	    // reject the request and drop the order, it stays uninitialized
//	    return
//	}
//	if err != nil {
//	    return
//	}
//	publisher.Publish(ctx, event)
type OrderDomainService struct{}

// NewOrderDomainService creates a new OrderDomainService instance.
func NewOrderDomainService() OrderDomainService {
	return OrderDomainService{}
}

// ValidateAndInitiateOrder accepts a freshly created order for the restaurant.
//
// Parameters:
//   - o: an order in its pre-initialization state
//   - restaurant: the restaurant the order is placed at, with its current menu
//   - newUUID: source of the order id and tracking id
//   - now: timestamp of the resulting event
//
// Returns:
//   - order.Event: OrderCreated event for the now Pending order
//   - error: a domain rule violation when the restaurant is inactive, the menu does
//     not match or the prices do not add up
func (s OrderDomainService) ValidateAndInitiateOrder(
	o *order.Order,
	restaurant *order.Restaurant,
	newUUID kernel.UUIDGenerator,
	now time.Time,
) (order.Event, error) {
	if err := o.Validate(); err != nil {
		return order.Event{}, err
	}

	if err := s.validateRestaurant(restaurant); err != nil {
		return order.Event{}, err
	}

	if err := o.ApplyRestaurantMenu(restaurant); err != nil {
		return order.Event{}, err
	}

	if err := o.ValidateOrder(); err != nil {
		return order.Event{}, err
	}

	if err := o.InitializeOrder(newUUID); err != nil {
		return order.Event{}, err
	}

	return order.NewOrderCreatedEvent(o, now), nil
}

// PayOrder records a completed payment and asks for restaurant approval.
func (s OrderDomainService) PayOrder(o *order.Order, now time.Time) (order.Event, error) {
	if err := o.Validate(); err != nil {
		return order.Event{}, err
	}

	if err := o.Pay(); err != nil {
		return order.Event{}, err
	}

	return order.NewOrderPaidEvent(o, now), nil
}

// ApproveOrder records the restaurant's approval. Nothing is published: the
// order's lifecycle ends here.
func (s OrderDomainService) ApproveOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.Approve()
}

// CancelOrderPayment starts compensation of a paid order the restaurant rejected.
// The returned event asks the payment side to refund.
func (s OrderDomainService) CancelOrderPayment(
	o *order.Order,
	failureMessages []string,
	now time.Time,
) (order.Event, error) {
	if err := o.Validate(); err != nil {
		return order.Event{}, err
	}

	if err := o.InitCancel(failureMessages); err != nil {
		return order.Event{}, err
	}

	return order.NewOrderCancelledEvent(o, now), nil
}

// CancelOrder cancels an order whose payment failed or was refunded.
func (s OrderDomainService) CancelOrder(o *order.Order, failureMessages []string) error {
	if err := o.Validate(); err != nil {
		return err
	}

	return o.Cancel(failureMessages)
}

func (s OrderDomainService) validateRestaurant(restaurant *order.Restaurant) error {
	if err := restaurant.Validate(); err != nil {
		return err
	}

	if !restaurant.IsActive() {
		return errs.NewDomainRuleViolationError(
			fmt.Sprintf("Restaurant with id %s is currently not active!", restaurant.ID()),
		)
	}

	return nil
}
