// Package types implements calendar types for the budget tracker.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	monthPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}$`)
	datePattern  = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

// Month is a month in a specific year.
//
// It is always stored as 00:00 UTC on the first day of the month, which
// makes it usable as a canonical archive key.
type Month time.Time

// NewMonth returns a new Month.
func NewMonth(year int, month time.Month) Month {
	return Month(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC))
}

// String returns the month formatted as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", time.Time(m).Year(), time.Time(m).Month())
}

// Year returns the year of the month.
func (m Month) Year() int {
	return time.Time(m).Year()
}

// Month returns the calendar month.
func (m Month) Month() time.Month {
	return time.Time(m).Month()
}

// MarshalJSON implements the json.Marshaler interface.
// The output is the result of m.String().
func (m Month) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
//
// Accepted formats are "2006-01", "2006-01-02" and RFC3339. From the parsed
// value, everything is ignored except the year and month.
func (m *Month) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`) // get rid of "
	if value == "" || value == "null" {
		return nil
	}

	pattern := time.RFC3339
	if monthPattern.MatchString(value) {
		pattern = "2006-01"
	} else if datePattern.MatchString(value) {
		pattern = "2006-01-02"
	}

	t, err := time.Parse(pattern, value)
	if err != nil {
		return err
	}

	*m = NewMonth(t.Year(), t.Month())
	return nil
}

// MonthOf returns the Month in which a time occurs in the given location.
func MonthOf(t time.Time, loc *time.Location) Month {
	if loc == nil {
		loc = time.UTC
	}

	year, month, _ := t.In(loc).Date()
	return NewMonth(year, month)
}

// ParseMonth parses a "YYYY-MM" string and returns the Month value it represents.
func ParseMonth(s string) (Month, error) {
	if !monthPattern.MatchString(s) {
		return Month{}, fmt.Errorf("month %q is not in YYYY-MM format", s)
	}

	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, err
	}

	return NewMonth(t.Year(), t.Month()), nil
}

// IsZero reports if the month is the zero value.
func (m Month) IsZero() bool {
	return time.Time(m).IsZero()
}

// AddDate adds a specified amount of years and months.
func (m Month) AddDate(years, months int) Month {
	return Month(time.Time(m).AddDate(years, months, 0))
}

// Before reports whether the month instant m is before n.
func (m Month) Before(n Month) bool {
	return time.Time(m).Before(time.Time(n))
}

// After reports whether the month instant m is after n.
func (m Month) After(n Month) bool {
	return time.Time(m).After(time.Time(n))
}

// Equal reports whether m and n represent the same month.
func (m Month) Equal(n Month) bool {
	return time.Time(m).Equal(time.Time(n))
}

// Contains reports whether the date is in the month.
func (m Month) Contains(d Date) bool {
	return d.Year() == m.Year() && d.Month() == m.Month()
}
