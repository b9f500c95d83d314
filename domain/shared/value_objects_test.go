package shared

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyArithmetic(t *testing.T) {
	price := NewMoney(1000)

	assert.Equal(t, int64(300), price.MultiplyPercent(30).Cents())
	assert.Equal(t, int64(1500), price.Add(NewMoney(500)).Cents())
	// Sub-cent results round half-up: 10.99 at 10% is 1.099 -> 1.10.
	assert.Equal(t, int64(110), NewMoney(1099).MultiplyPercent(10).Cents())
	assert.Equal(t, int64(-110), NewMoney(-1099).MultiplyPercent(10).Cents())
	assert.True(t, price.IsPositive())
	assert.False(t, NewMoney(0).IsPositive())
	assert.False(t, NewMoney(-1).IsPositive())
}

func TestMoneyString(t *testing.T) {
	assert.Equal(t, "10.00", NewMoney(1000).String())
	assert.Equal(t, "3.00", NewMoney(300).String())
	assert.Equal(t, "0.05", NewMoney(5).String())
	assert.Equal(t, "-1.25", NewMoney(-125).String())
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(NewMoney(1050))
	require.NoError(t, err)
	assert.Equal(t, "10.50", string(data), "money renders as a plain number")

	var m Money
	require.NoError(t, json.Unmarshal([]byte("10.5"), &m))
	assert.Equal(t, int64(1050), m.Cents())

	assert.Error(t, json.Unmarshal([]byte(`"ten"`), &m))
}

func TestMoneyFromFloat(t *testing.T) {
	assert.Equal(t, int64(1000), MoneyFromFloat(10.00).Cents())
	assert.Equal(t, int64(1), MoneyFromFloat(0.01).Cents())
	// Rounds, never truncates: 0.1 + 0.2 style float noise must not lose a cent.
	assert.Equal(t, int64(30), MoneyFromFloat(0.1+0.2).Cents())
}

func TestDateDaysSince(t *testing.T) {
	d := NewDate(2025, time.March, 1)

	assert.Equal(t, int64(3), d.AddDays(3).DaysSince(d))
	assert.Equal(t, int64(0), d.DaysSince(d))
	assert.Equal(t, int64(-2), d.DaysSince(d.AddDays(2)))
}

func TestDateComparisons(t *testing.T) {
	a := NewDate(2025, time.March, 1)
	b := a.AddDays(1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(NewDate(2025, time.March, 1)))
	assert.True(t, a.Equals(NewDate(2025, time.March, 1)))
}

func TestDateJSON(t *testing.T) {
	d, err := ParseDate("2025-03-01")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2025-03-01"`, string(data))

	var zero Date
	data, err = json.Marshal(zero)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data), "unset dates render as null")

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2025-03-01"`), &parsed))
	assert.True(t, parsed.Equal(d))

	_, err = ParseDate("01/03/2025")
	assert.Error(t, err)
}

func TestDomainErrorChain(t *testing.T) {
	err := NewValidationError("customer", "email", "email must be valid")

	assert.ErrorIs(t, err, ErrInvalidInput)

	var domainErr *DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "customer", domainErr.Entity)
	assert.Equal(t, "email", domainErr.Field)
	assert.NotEmpty(t, domainErr.Stack(), "creation point stack is captured")
}
