package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
)

// CompletePaymentCommandHandler moves a Pending order to Paid and asks the
// restaurant for approval with an OrderPaid event.
type CompletePaymentCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewCompletePaymentCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	now func() time.Time,
) CompletePaymentCommandHandler {
	return CompletePaymentCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        now,
	}
}

// Handle pays the order within a transaction and publishes OrderPaid after commit.
//
// An order that is already Paid gets its OrderPaid event published again without
// any write. A response redelivered after a failed publish thereby still reaches
// the restaurant. Orders past Paid refuse the payment with a domain rule violation.
func (h CompletePaymentCommandHandler) Handle(ctx context.Context, cmd CompletePaymentCommand) error {
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

	if o.Status() == order.Paid {
		return h.publisher.Publish(ctx, order.NewOrderPaidEvent(o, h.now()))
	}

	event, err := services.NewOrderDomainService().PayOrder(o, h.now())
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
