package commands

import (
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/guard"
)

var ErrCompletePaymentCommandIsNotConstructed = errors.New(
	"CompletePaymentCommand must be created via NewCompletePaymentCommand constructor",
)

// CompletePaymentCommand records that the customer's payment for an order went through.
type CompletePaymentCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCompletePaymentCommand(orderID kernel.UUID) (CompletePaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompletePaymentCommand{}, err
	}

	return CompletePaymentCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePaymentCommand) Validate() error {
	return c.guard.Validate(ErrCompletePaymentCommandIsNotConstructed)
}

func (c CompletePaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}
