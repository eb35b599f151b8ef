package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// CancelPaymentCommandHandler cancels a Pending order whose payment failed, or
// finishes the compensation of a Cancelling order. Nothing is published: the
// saga ends here.
type CancelPaymentCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelPaymentCommandHandler(uowFactory OrderUoWFactory) CancelPaymentCommandHandler {
	return CancelPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelPaymentCommandHandler) Handle(ctx context.Context, cmd CancelPaymentCommand) error {
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

	if err = services.NewOrderDomainService().CancelOrder(o, cmd.FailureMessages()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
