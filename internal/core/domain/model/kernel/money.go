package kernel

import (
	"fmt"

	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object for exact monetary amounts. It wraps an
// arbitrary-precision decimal so that arithmetic on prices and totals never
// drifts the way floating point does.
//
// The zero value of Money is a valid zero amount. Money does not enforce sign
// rules; whether a negative amount is acceptable depends on the owning entity
// (an item price must not be negative, a correction amount might be), so sign
// checks live with the entities that construct Money values.
//
// Example usage:
//
//	price, err := kernel.MoneyFromString("9.99")
//	if err != nil {
//	    // handle error
//	}
//	subtotal := price.Mul(3) // 29.97
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates a Money value from a decimal amount.
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// MoneyFromString parses a decimal string ("9.99") into a Money value.
// Returns an error for input that is not a valid decimal number.
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a valid decimal: %w", s, err))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns the zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Add returns the sum of the two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul returns the amount multiplied by an integer quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsNegative reports whether the amount is less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two amounts by numeric value, so "9.9" equals "9.90".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value for persistence and arithmetic
// outside the domain.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the plain decimal representation of the amount.
func (m Money) String() string {
	return m.amount.String()
}
