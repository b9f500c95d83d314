package shared

import (
	"fmt"
	"math"
	"strconv"
)

// Money is an exact decimal amount stored in cents. Integer arithmetic
// keeps penalty computations free of floating-point drift.
type Money struct {
	cents int64
}

// NewMoney creates Money from an amount in cents.
func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

// MoneyFromFloat converts a request-level decimal to Money, rounding to
// the nearest cent.
func MoneyFromFloat(value float64) Money {
	return Money{cents: int64(math.Round(value * 100))}
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 { return m.cents }

// Float64 returns the amount as a decimal number of currency units.
func (m Money) Float64() float64 { return float64(m.cents) / 100 }

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool { return m.cents > 0 }

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyPercent returns percent% of the amount. Sub-cent results are
// rounded half-up to the nearest cent, so 10.99 at 10% yields 1.10.
func (m Money) MultiplyPercent(percent int64) Money {
	product := m.cents * percent
	if product >= 0 {
		return Money{cents: (product + 50) / 100}
	}
	return Money{cents: (product - 50) / 100}
}

// Equals compares by value.
func (m Money) Equals(other interface{}) bool {
	o, ok := other.(Money)
	return ok && m.cents == o.cents
}

// String renders the canonical decimal form, e.g. "10.00".
func (m Money) String() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}

// MarshalJSON renders Money as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number, rounding to cents.
func (m *Money) UnmarshalJSON(data []byte) error {
	value, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("invalid money value %q: %w", string(data), err)
	}
	m.cents = int64(math.Round(value * 100))
	return nil
}

var _ ValueObject = Money{}
