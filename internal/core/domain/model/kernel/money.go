package kernel

import (
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is an exact, non-negative decimal amount.
//
// Money wraps github.com/shopspring/decimal so that prices and revenue are
// accumulated without floating point drift: 2.50 + 1.00 + 8.00 is exactly 11.50.
// The zero value is a valid amount of 0.
//
// Example:
//
//	surcharge := kernel.MustMoney("2.50")
//	price := kernel.MustMoney("8.00").Add(surcharge)
//	fmt.Println(price) // "10.50"
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{}
}

// NewMoney creates Money from a decimal amount.
//
// Returns:
//   - Money: The amount if it is not negative
//   - error: ValueIsInvalidError if the amount is negative
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses an amount such as "12.00".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustMoney parses an amount and panics if it is invalid.
// It is meant for package-level catalog constants only.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// DivInt divides m by n. A non-positive n yields zero.
func (m Money) DivInt(n int) Money {
	if n <= 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Div(decimal.NewFromInt(int64(n)))}
}

// Equal reports whether both amounts are numerically equal (8.0 equals 8.00).
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal returns the underlying decimal amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Float64 returns the nearest float64, for presentation layers that need a JSON number.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String renders the amount with two decimals, e.g. "11.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
