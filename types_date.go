package fifolot

import (
	"fmt"
	"strings"
	"time"
)

// DateFormat is the format used to represent dates in trade files (DD/MM/YYYY).
const DateFormat = "02/01/2006"

const readDateFormat = "2/1/2006" // permissive read format (allows single-digit day/month)

// Date represents a trade date with day-level granularity, no time component.
type Date struct {
	y int
	m time.Month
	d int
}

// NewDate returns a normalized Date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	d := Date{year, month, day}
	d.y, d.m, d.d = d.time().Date()
	return d
}

// ParseDate parses a Date from a string in DD/MM/YYYY format, the format trade
// files use. It also accepts ISO dates (2006-01-02) as a fallback.
func ParseDate(str string) (Date, error) {
	str = strings.TrimSpace(str)
	if str == "" {
		return Date{}, fmt.Errorf("empty date")
	}
	on, err := time.Parse(readDateFormat, str)
	if err != nil {
		// permissive ISO fallback, supports 2025-7-1
		on, err = time.Parse("2006-1-2", str)
	}
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, DateFormat, err)
	}
	return NewDate(on.Date()), nil
}

// MustParseDate is like ParseDate but panics on error.
func MustParseDate(str string) Date {
	d, err := ParseDate(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// String formats the date in DD/MM/YYYY, consistent with the trade files.
func (d Date) String() string { return d.time().Format(DateFormat) }

// ISO formats the date in ISO-8601 (2006-01-02).
func (d Date) ISO() string { return d.time().Format("2006-01-02") }

// IsZero returns true if the date is the zero value.
func (d Date) IsZero() bool { return d.y == 0 && d.m == 0 && d.d == 0 }

// Before reports whether the day d is before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether the day d is after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// time returns a time.Time that is a canonical representation of that day (at midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }
