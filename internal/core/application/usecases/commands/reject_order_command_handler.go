package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// RejectOrderCommandHandler starts compensation of a paid order the restaurant
// refused: the order moves to Cancelling and an OrderCancelled event asks the
// payment side for a refund.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewRejectOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	now func() time.Time,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle moves the order to Cancelling and publishes OrderCancelled after commit.
// An order that is already Cancelling gets its OrderCancelled event published
// again without any write, so a redelivered rejection repeats the refund request.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if o.Status() == order.Cancelling {
		return h.publisher.Publish(ctx, order.NewOrderCancelledEvent(o, h.now()))
	}

	event, err := services.NewOrderDomainService().CancelOrderPayment(o, cmd.FailureMessages(), h.now())
	if err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.publisher.Publish(ctx, event)
}
