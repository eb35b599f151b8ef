package commands

import (
	"errors"
	"time"

	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

// PaymentTimedOutMessage is recorded on orders cancelled because payment never arrived.
const PaymentTimedOutMessage = "payment timed out"

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand cancels every Pending order created before the cutoff.
type ExpirePendingOrdersCommand struct {
	createdBefore time.Time

	guard guard.ConstructorGuard
}

func NewExpirePendingOrdersCommand(createdBefore time.Time) (ExpirePendingOrdersCommand, error) {
	if createdBefore.IsZero() {
		return ExpirePendingOrdersCommand{}, errs.NewValueIsRequiredError("createdBefore")
	}

	return ExpirePendingOrdersCommand{
		createdBefore: createdBefore,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}

func (c ExpirePendingOrdersCommand) CreatedBefore() time.Time {
	return c.createdBefore
}
