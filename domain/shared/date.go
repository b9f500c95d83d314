package shared

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the ISO calendar form used on the wire and in storage.
const DateLayout = "2006-01-02"

// Date is a calendar day without time-of-day. Rental dates, expected and
// actual return dates are plain days; arithmetic on them is in whole days.
type Date struct {
	t time.Time
}

// NewDate builds a Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time.Time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses the ISO form "2006-01-02".
func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return Date{t: t}, nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

// After reports whether d is a later calendar day than other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether both values are the same calendar day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// DaysSince returns the whole-day difference d - other, the epoch-day
// subtraction the late-return penalty is defined on.
func (d Date) DaysSince(other Date) int64 {
	return int64(d.t.Sub(other.t) / (24 * time.Hour))
}

// AddDays returns the date n days later.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Time returns the underlying UTC midnight instant, for storage.
func (d Date) Time() time.Time { return d.t }

// Equals implements ValueObject.
func (d Date) Equals(other interface{}) bool {
	o, ok := other.(Date)
	return ok && d.Equal(o)
}

// String renders the ISO form.
func (d Date) String() string { return d.t.Format(DateLayout) }

// MarshalJSON renders the ISO form as a JSON string.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON accepts the ISO form or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

var _ ValueObject = Date{}
