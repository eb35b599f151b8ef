package order

import (
	"fmt"

	"ordering/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Unknown ──initialize──> Pending ──pay──> Paid ──approve──> Approved
//	                           │               │
//	                           │           initCancel
//	                           │               v
//	                           └──cancel──> Cancelled <──cancel── Cancelling
//
// Unknown is the unset marker of an order that has not been initialized yet; no
// transition leads back to it. Approved and Cancelled are terminal.
type Status int

const (
	// Unknown is the zero value: the order has not been initialized.
	Unknown Status = iota

	// Pending orders wait for the payment outcome.
	Pending

	// Paid orders wait for the restaurant approval outcome.
	Paid

	// Approved is terminal: the restaurant accepted a paid order.
	Approved

	// Cancelling orders were paid and wait for the payment to be compensated.
	Cancelling

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Pending:    "PENDING",
		Paid:       "PAID",
		Approved:   "APPROVED",
		Cancelling: "CANCELLING",
		Cancelled:  "CANCELLED",
	}
}

// Validate accepts only statuses an initialized order can be in.
func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer. Out-of-range values render as UNKNOWN.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// Initialize moves an unset status to Pending.
func (s Status) Initialize() (Status, error) {
	if s != Unknown {
		return 0, errs.NewDomainRuleViolationErrorWithCause(
			"Order is not in correct state for initialization!",
			fmt.Errorf("%s is already set", s),
		)
	}
	return Pending, nil
}

// Pay moves Pending to Paid.
func (s Status) Pay() (Status, error) {
	if s != Pending {
		return 0, wrongState("pay", s)
	}
	return Paid, nil
}

// Approve moves Paid to Approved.
func (s Status) Approve() (Status, error) {
	if s != Paid {
		return 0, wrongState("approve", s)
	}
	return Approved, nil
}

// InitCancel moves Paid to Cancelling: the payment has to be compensated first.
func (s Status) InitCancel() (Status, error) {
	if s != Paid {
		return 0, wrongState("initCancel", s)
	}
	return Cancelling, nil
}

// Cancel moves Pending (never paid) or Cancelling (payment compensated) to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending && s != Cancelling {
		return 0, wrongState("cancel", s)
	}
	return Cancelled, nil
}

func wrongState(operation string, current Status) error {
	return errs.NewDomainRuleViolationErrorWithCause(
		fmt.Sprintf("Order is not in correct state for %s operation!", operation),
		fmt.Errorf("%s is not a valid status to %s", current, operation),
	)
}
