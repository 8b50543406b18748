package types

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar date without a time component.
type Date time.Time

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the calendar date of t in the given location.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.UTC
	}

	year, month, day := t.In(loc).Date()
	return NewDate(year, month, day)
}

// ParseDate parses a date in "2006-01-02" format.
func ParseDate(s string) (Date, error) {
	if !datePattern.MatchString(s) {
		return Date{}, fmt.Errorf("date %q is not in YYYY-MM-DD format", s)
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}

	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	return time.Time(d).Format("2006-01-02")
}

func (d Date) Year() int {
	return time.Time(d).Year()
}

func (d Date) Month() time.Month {
	return time.Time(d).Month()
}

func (d Date) Day() int {
	return time.Time(d).Day()
}

// IsZero reports if the date is unset.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e are the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// MonthOf returns the month the date is in.
func (d Date) MonthOf() Month {
	return NewMonth(d.Year(), d.Month())
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Besides "2006-01-02", RFC3339 timestamps are accepted. Their time of day
// is dropped.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	if datePattern.MatchString(value) {
		parsed, err := ParseDate(value)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return err
	}

	*d = NewDate(t.Year(), t.Month(), t.Day())
	return nil
}
