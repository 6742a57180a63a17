package domain

import (
	"strings"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD calendar date. time.Parse rejects
// out-of-range days such as 2023-02-29.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(s))
}

// NewDate builds a UTC midnight date. Out-of-range values are normalised by
// time.Date, so callers validate before calling.
func NewDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// TruncateToDate drops the clock part and location of t.
func TruncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}
