package commands

import (
	"context"

	"ordering/internal/core/domain/services"
)

// ExpirePendingOrdersCommandHandler cancels orders whose payment outcome never
// arrived. All expired orders are cancelled in one transaction.
//
// Example:
//
//	cmd, _ := NewExpirePendingOrdersCommand(time.Now().Add(-15 * time.Minute))
//	expired, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	log.Printf("%d orders cancelled", expired)
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewExpirePendingOrdersCommandHandler(uowFactory OrderUoWFactory) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of orders it cancelled.
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetPendingCreatedBefore(ctx, cmd.CreatedBefore())
	if err != nil {
		return 0, err
	}
	if len(orders) == 0 {
		return 0, nil
	}

	service := services.NewOrderDomainService()
	for _, o := range orders {
		if err = service.CancelOrder(o, []string{PaymentTimedOutMessage}); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(orders), nil
}
