package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	apperrors "fluxo/internal/errors"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
	// middayHour keeps month arithmetic away from midnight so daylight-saving
	// shifts can never move a date to the previous day.
	middayHour = 12
)

// Date is a calendar date without a time component. It is held at midday
// UTC and serializes as YYYY-MM-DD.
type Date struct {
	t time.Time
}

// NewDate returns the date y-m-d. Out-of-range days roll over the way
// time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, middayHour, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, apperrors.Wrap(apperrors.ErrInvalidDate, err)
	}
	return DateOf(t), nil
}

// AddMonths adds n calendar months. A day that does not exist in the target
// month rolls over into the next one (Jan 31 + 1 month = Mar 2 or 3).
func (d Date) AddMonths(n int) Date {
	return Date{t: d.t.AddDate(0, n, 0)}
}

// Month returns the YYYY-MM month the date falls in.
func (d Date) Month() Month {
	return Month(d.t.Format(monthLayout))
}

// Year returns the calendar year.
func (d Date) Year() int { return d.t.Year() }

// Time returns the date as a time.Time at midday UTC.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// Before reports whether d is strictly before o.
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// Compare returns -1, 0 or +1 like time.Time.Compare.
func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }

// String returns the YYYY-MM-DD form.
func (d Date) String() string {
	if d.t.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = parsed
	return nil
}

// Month is a calendar month in YYYY-MM form.
type Month string

// MonthOf returns the month t falls in, in t's own location.
func MonthOf(t time.Time) Month {
	return Month(t.Format(monthLayout))
}

// ParseMonth validates a YYYY-MM string.
func ParseMonth(s string) (Month, error) {
	if _, err := time.Parse(monthLayout, s); err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidDate, "months must use the YYYY-MM format")
	}
	return Month(s), nil
}

// Year returns the first four characters of the month, its year prefix.
func (m Month) Year() string {
	if len(m) < 4 {
		return string(m)
	}
	return string(m[:4])
}

// FirstDay returns the YYYY-MM-01 date string of the month.
func (m Month) FirstDay() string {
	return string(m) + "-01"
}

// Add returns the month n months after m. An unparseable month is returned as is.
func (m Month) Add(n int) Month {
	t, err := time.Parse(monthLayout, string(m))
	if err != nil {
		return m
	}
	return MonthOf(time.Date(t.Year(), t.Month()+time.Month(n), 1, middayHour, 0, 0, 0, time.UTC))
}

// Contains reports whether the YYYY-MM-DD date string falls in m. An empty
// month contains every date.
func (m Month) Contains(date string) bool {
	return len(date) >= len(m) && date[:len(m)] == string(m)
}
