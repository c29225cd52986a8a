package kernel

import (
	"fmt"
	"strings"

	"github.com/mgdmdev/mgpay-test/internal/pkg/errs"
	"github.com/mgdmdev/mgpay-test/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNotConstructed indicates that a Money value was not created
// through NewMoney or MoneyFromString.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney or MoneyFromString")

// subunitFactor converts a major-unit amount to the provider's minor unit
// (e.g. cedis to pesewas).
var subunitFactor = decimal.NewFromInt(100)

// Money is a value object holding a payment amount. Amounts are strictly
// positive; zero and negative values are rejected on construction.
//
// Money is immutable. The zero value is invalid and fails Validate.
type Money struct {
	amount decimal.Decimal

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from a decimal amount.
// Returns a validation error when the amount is not strictly greater than zero.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%s is not greater than 0", amount))
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// MoneyFromString parses a decimal amount from external input, such as a
// request body. Non-numeric input and non-positive amounts are rejected.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(amount)
}

// Validate ensures the Money value was created through a constructor function.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the decimal amount in major units.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Subunits returns the amount in the provider's minor unit (major unit x 100),
// the representation payment APIs expect.
func (m Money) Subunits() int64 {
	return m.amount.Mul(subunitFactor).IntPart()
}

// IsEqual compares two Money values by amount.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the decimal string representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
