package domain

import (
	"fmt"
	"time"
)

// Period is a calendar month, the key of a balance summary.
type Period struct {
	Year  int
	Month time.Month
}

// NewPeriod validates year and month.
func NewPeriod(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("month must be between 1 and 12, got %d", month)
	}
	if year < 1 || year > 9999 {
		return Period{}, fmt.Errorf("year must be between 1 and 9999, got %d", year)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// PeriodOf returns the month containing d.
func PeriodOf(d time.Time) Period {
	return Period{Year: d.Year(), Month: d.Month()}
}

// FirstDay is the first calendar day of the period.
func (p Period) FirstDay() time.Time {
	return NewDate(p.Year, p.Month, 1)
}

// LastDay is the last calendar day of the period.
func (p Period) LastDay() time.Time {
	return NewDate(p.Year, p.Month+1, 0)
}

// Contains reports whether d falls within the period, both ends inclusive.
func (p Period) Contains(d time.Time) bool {
	return d.Year() == p.Year && d.Month() == p.Month
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return NewDate(year, month+1, 0).Day()
}

// WithMonth moves date to the given year and month, keeping its day of month.
// The day is clamped to the target month, so Jan 31 becomes Feb 28/29.
func WithMonth(date time.Time, year int, month time.Month) time.Time {
	day := date.Day()
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return NewDate(year, month, day)
}
