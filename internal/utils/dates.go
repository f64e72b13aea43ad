package utils

import (
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/constants"
)

// DaysInMonth returns the number of calendar days in the given month,
// leap-year aware. It is computed as day 0 of the following month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfMonth returns the first calendar day of the month containing t,
// at midnight in t's location.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last calendar day of the month containing t,
// at midnight in t's location.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day. Only the
// year/month/day components are compared, never raw instants, so an
// hour-level drift between two "now" reads during a session cannot flip
// the result.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// FormatDay renders t as a timezone-naive calendar day (YYYY-MM-DD).
func FormatDay(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDay parses a calendar day string (YYYY-MM-DD) at midnight UTC.
func ParseDay(day string) (time.Time, error) {
	return time.Parse(constants.DateFormat, day)
}

// DayOfMonth builds the day string for a specific day number inside the
// month containing monthRef.
func DayOfMonth(monthRef time.Time, day int) string {
	return FormatDay(time.Date(monthRef.Year(), monthRef.Month(), day, 0, 0, 0, 0, time.UTC))
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}
