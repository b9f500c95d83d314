package rental

import (
	"testing"
	"time"

	"videorental/domain/customer"
	"videorental/domain/film"
	"videorental/domain/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRental(t *testing.T, rentalDate, expected shared.Date, priceCents int64) *Rental {
	t.Helper()
	r, err := NewRental(customer.NewID(), film.NewID(), rentalDate, expected, shared.NewMoney(priceCents))
	require.NoError(t, err)
	return r
}

func TestNewRental(t *testing.T) {
	d := shared.NewDate(2025, time.March, 1)

	r := newTestRental(t, d, d.AddDays(7), 1000)

	assert.Equal(t, StatusActive, r.Status())
	assert.Equal(t, int64(0), r.Penalty().Cents())
	assert.False(t, r.RentalID().IsZero())
	assert.True(t, r.ReturnDate().IsZero())
}

func TestNewRentalEqualDatesAllowed(t *testing.T) {
	d := shared.NewDate(2025, time.March, 1)
	_, err := NewRental(customer.NewID(), film.NewID(), d, d, shared.NewMoney(1000))
	assert.NoError(t, err)
}

func TestNewRentalInvalidDates(t *testing.T) {
	d := shared.NewDate(2025, time.March, 1)
	_, err := NewRental(customer.NewID(), film.NewID(), d, d.AddDays(-1), shared.NewMoney(1000))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestNewRentalInvalidPrice(t *testing.T) {
	d := shared.NewDate(2025, time.March, 1)

	_, err := NewRental(customer.NewID(), film.NewID(), d, d.AddDays(7), shared.NewMoney(0))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = NewRental(customer.NewID(), film.NewID(), d, d.AddDays(7), shared.NewMoney(-100))
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}

func TestReturnOnTime(t *testing.T) {
	d := shared.NewDate(2025, time.March, 1)
	r := newTestRental(t, d, d.AddDays(7), 1000)

	events, err := r.Return(d.AddDays(7))
	require.NoError(t, err)

	assert.Equal(t, StatusReturned, r.Status())
	assert.Equal(t, int64(0), r.Penalty().Cents(), "no penalty on the expected date")
	assert.True(t, r.ReturnDate().Equal(d.AddDays(7)))

	require.Len(t, events, 1)
	returned, ok := events[0].(*ReturnedEvent)
	require.True(t, ok)
	assert.Equal(t, r.RentalID(), returned.RentalID())
	assert.Equal(t, r.CustomerID(), returned.CustomerID())
	assert.Equal(t, r.FilmID(), returned.FilmID())
}

func TestReturnLateComputesPenalty(t *testing.T) {
	d := shared.NewDate(2025, time.March, 1)
	// Price 10.00, three days late: 10.00 x 3 x 0.10 = 3.00 exactly.
	r := newTestRental(t, d, d.AddDays(7), 1000)

	_, err := r.Return(d.AddDays(10))
	require.NoError(t, err)

	assert.Equal(t, int64(300), r.Penalty().Cents())
	assert.Equal(t, "3.00", r.Penalty().String())
}

func TestReturnPenaltyIsLinearAndUncapped(t *testing.T) {
	d := shared.NewDate(2025, time.March, 1)
	r := newTestRental(t, d, d, 2550)

	_, err := r.Return(d.AddDays(30))
	require.NoError(t, err)

	// 25.50 x 30 x 0.10 = 76.50
	assert.Equal(t, int64(7650), r.Penalty().Cents())
}

func TestReturnRequiresActive(t *testing.T) {
	d := shared.NewDate(2025, time.March, 1)

	r := newTestRental(t, d, d.AddDays(7), 1000)
	_, err := r.Return(d.AddDays(7))
	require.NoError(t, err)

	_, err = r.Return(d.AddDays(8))
	assert.ErrorIs(t, err, shared.ErrIllegalState)

	canceled := newTestRental(t, d, d.AddDays(7), 1000)
	require.NoError(t, canceled.Cancel())
	_, err = canceled.Return(d.AddDays(7))
	assert.ErrorIs(t, err, shared.ErrIllegalState)
}

func TestCancel(t *testing.T) {
	d := shared.NewDate(2025, time.March, 1)
	r := newTestRental(t, d, d.AddDays(7), 1000)

	require.NoError(t, r.Cancel())
	assert.Equal(t, StatusCanceled, r.Status())

	assert.ErrorIs(t, r.Cancel(), shared.ErrIllegalState)
}

func TestMarkLate(t *testing.T) {
	past := shared.Today().AddDays(-10)
	r := newTestRental(t, past, past.AddDays(3), 1000)

	r.MarkLate()
	assert.Equal(t, StatusLate, r.Status())

	// Idempotent: a second call is a no-op.
	r.MarkLate()
	assert.Equal(t, StatusLate, r.Status())
}

func TestMarkLateNoOpWhenNotOverdue(t *testing.T) {
	today := shared.Today()
	r := newTestRental(t, today, today.AddDays(7), 1000)

	r.MarkLate()
	assert.Equal(t, StatusActive, r.Status())

	// Expected date reached but not yet past: still a no-op.
	due := newTestRental(t, today.AddDays(-3), today, 1000)
	due.MarkLate()
	assert.Equal(t, StatusActive, due.Status())
}

func TestMarkLateNoOpOnTerminalStatus(t *testing.T) {
	past := shared.Today().AddDays(-10)
	r := newTestRental(t, past, past.AddDays(3), 1000)
	require.NoError(t, r.Cancel())

	r.MarkLate()
	assert.Equal(t, StatusCanceled, r.Status())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"ACTIVE", "RETURNED", "LATE", "CANCELED"} {
		got, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), got)
	}

	_, err := ParseStatus("PENDING")
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
