package amqp

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/pkg/errs"
)

type approveOrderHandler interface {
	Handle(ctx context.Context, cmd commands.ApproveOrderCommand) error
}

type rejectOrderHandler interface {
	Handle(ctx context.Context, cmd commands.RejectOrderCommand) error
}

// RestaurantApprovalResponseHandler approves the order on APPROVED and starts
// its cancellation on REJECTED.
type RestaurantApprovalResponseHandler struct {
	approveOrder approveOrderHandler
	rejectOrder  rejectOrderHandler
}

func NewRestaurantApprovalResponseHandler(
	approveOrder approveOrderHandler,
	rejectOrder rejectOrderHandler,
) RestaurantApprovalResponseHandler {
	return RestaurantApprovalResponseHandler{
		approveOrder: approveOrder,
		rejectOrder:  rejectOrder,
	}
}

// NewRestaurantApprovalResponseConsumer consumes queue with a
// RestaurantApprovalResponseHandler.
func NewRestaurantApprovalResponseConsumer(
	source deliverySource,
	queue string,
	handler RestaurantApprovalResponseHandler,
	logger *slog.Logger,
) *Consumer {
	return newConsumer(source, queue, handler, logger)
}

func (h RestaurantApprovalResponseHandler) Handle(ctx context.Context, body []byte) error {
	var response RestaurantApprovalResponse
	if err := decode(body, &response); err != nil {
		return err
	}

	orderID, err := parseID("order id", response.OrderID)
	if err != nil {
		return err
	}

	switch response.OrderApprovalStatus {
	case OrderApproved:
		cmd, err := commands.NewApproveOrderCommand(orderID)
		if err != nil {
			return err
		}
		return h.approveOrder.Handle(ctx, cmd)

	case OrderRejected:
		cmd, err := commands.NewRejectOrderCommand(orderID, response.FailureMessages)
		if err != nil {
			return err
		}
		return h.rejectOrder.Handle(ctx, cmd)

	default:
		return errs.NewValueIsInvalidError("order approval status " + string(response.OrderApprovalStatus))
	}
}
