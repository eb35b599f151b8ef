package commands

import (
	"errors"
	"slices"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCancelPaymentCommandIsNotConstructed = errors.New(
	"CancelPaymentCommand must be created via NewCancelPaymentCommand constructor",
)

// CancelPaymentCommand records that the payment of an order failed, or that the
// payment of a cancelling order has been refunded. Either way the order ends
// up Cancelled.
type CancelPaymentCommand struct {
	orderID         kernel.UUID
	failureMessages []string

	guard guard.ConstructorGuard
}

func NewCancelPaymentCommand(orderID kernel.UUID, failureMessages []string) (CancelPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelPaymentCommand{}, err
	}

	return CancelPaymentCommand{
		orderID:         orderID,
		failureMessages: slices.Clone(failureMessages),
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelPaymentCommand) Validate() error {
	return c.guard.Validate(ErrCancelPaymentCommandIsNotConstructed)
}

func (c CancelPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CancelPaymentCommand) FailureMessages() []string {
	return slices.Clone(c.failureMessages)
}
