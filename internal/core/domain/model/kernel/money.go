package kernel

import (
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Zero is the canonical zero amount and the seed for folding subtotals.
var Zero = Money{amount: decimal.Zero}

// Money is an exact decimal monetary amount. Arithmetic never rounds, so folding
// any set of amounts with Add yields the same result in any order, and equality
// is value equality on the decimal (10.0 equals 10.00).
//
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps an exact decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromString parses a decimal literal such as "10.50".
//
// Example:
//
//	price, err := kernel.NewMoneyFromString("30.00")
//	if err != nil {
//	    return err
//	}
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: d}, nil
}

// Amount returns the underlying decimal.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsGreaterThanZero compares against an exact zero.
func (m Money) IsGreaterThanZero() bool {
	return m.amount.IsPositive()
}

// IsEqual reports exact value equality.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Multiply returns m * multiplier.
func (m Money) Multiply(multiplier int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(multiplier)))}
}

// String renders the exact amount with at least two fractional digits, e.g.
// "30.00" or "10.004". It never rounds.
func (m Money) String() string {
	places := int32(2)
	if exp := -m.amount.Exponent(); exp > places {
		places = exp
	}
	return m.amount.StringFixed(places)
}
