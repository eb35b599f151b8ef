package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// CreateOrderResponse is what the customer gets back for a placed order.
type CreateOrderResponse struct {
	TrackingID kernel.UUID
	Status     order.Status
	Message    string
}

// CreateOrderCommandHandler accepts a new order: the restaurant menu confirms the
// products, the order is validated, initialized and stored, and payment is
// requested with an OrderCreated event.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, publisher, kernel.NewUUID, time.Now)
//	resp, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrDomainRuleViolation) {
//	    // the order was rejected, nothing was stored
//	}
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	newUUID    kernel.UUIDGenerator
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation.
// newUUID supplies order, tracking and address identifiers; now stamps events.
func NewCreateOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	newUUID kernel.UUIDGenerator,
	now func() time.Time,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		newUUID:    newUUID,
		now:        now,
	}
}

// Handle processes the order creation command inside one transaction.
// The OrderCreated event is published only after the commit succeeded.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResponse{}, err
	}

	o, err := h.buildOrder(cmd)
	if err != nil {
		return CreateOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurant, err := uow.RestaurantRepository().Get(ctx, cmd.RestaurantID())
	if err != nil {
		return CreateOrderResponse{}, err
	}

	event, err := services.NewOrderDomainService().ValidateAndInitiateOrder(o, restaurant, h.newUUID, h.now())
	if err != nil {
		return CreateOrderResponse{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return CreateOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResponse{}, err
	}

	if err = h.publisher.Publish(ctx, event); err != nil {
		return CreateOrderResponse{}, err
	}

	return CreateOrderResponse{
		TrackingID: o.TrackingID(),
		Status:     o.Status(),
		Message:    "Order created successfully",
	}, nil
}

func (h CreateOrderCommandHandler) buildOrder(cmd CreateOrderCommand) (*order.Order, error) {
	address, err := order.NewStreetAddress(
		h.newUUID(),
		cmd.Address().Street,
		cmd.Address().PostalCode,
		cmd.Address().City,
	)
	if err != nil {
		return nil, err
	}

	inputs := cmd.Items()
	items := make([]*order.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		product, productErr := order.NewProduct(in.ProductID, "", kernel.Zero)
		if productErr != nil {
			return nil, productErr
		}

		item, itemErr := order.NewOrderItem(product, in.Quantity, in.Price, in.SubTotal)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.NewOrder(cmd.CustomerID(), cmd.RestaurantID(), address, cmd.Price(), items)
}
