package amqp

import (
	"context"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

type completePaymentHandler interface {
	Handle(ctx context.Context, cmd commands.CompletePaymentCommand) error
}

type cancelPaymentHandler interface {
	Handle(ctx context.Context, cmd commands.CancelPaymentCommand) error
}

// PaymentResponseHandler pays the order on COMPLETED and cancels it on
// CANCELLED or FAILED.
type PaymentResponseHandler struct {
	completePayment completePaymentHandler
	cancelPayment   cancelPaymentHandler
}

func NewPaymentResponseHandler(
	completePayment completePaymentHandler,
	cancelPayment cancelPaymentHandler,
) PaymentResponseHandler {
	return PaymentResponseHandler{
		completePayment: completePayment,
		cancelPayment:   cancelPayment,
	}
}

// NewPaymentResponseConsumer consumes queue with a PaymentResponseHandler.
func NewPaymentResponseConsumer(
	source deliverySource,
	queue string,
	handler PaymentResponseHandler,
	logger *slog.Logger,
) *Consumer {
	return newConsumer(source, queue, handler, logger)
}

func (h PaymentResponseHandler) Handle(ctx context.Context, body []byte) error {
	var response PaymentResponse
	if err := decode(body, &response); err != nil {
		return err
	}

	orderID, err := parseID("order id", response.OrderID)
	if err != nil {
		return err
	}

	switch response.PaymentStatus {
	case PaymentCompleted:
		cmd, err := commands.NewCompletePaymentCommand(orderID)
		if err != nil {
			return err
		}
		return h.completePayment.Handle(ctx, cmd)

	case PaymentCancelled, PaymentFailed:
		cmd, err := commands.NewCancelPaymentCommand(orderID, response.FailureMessages)
		if err != nil {
			return err
		}
		return h.cancelPayment.Handle(ctx, cmd)

	default:
		return errs.NewValueIsInvalidError("payment status " + string(response.PaymentStatus))
	}
}

func parseID(name, value string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(value)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}
