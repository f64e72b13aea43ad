package utils

import (
	"testing"
	"time"
)

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  int
	}{
		{"January", 2025, time.January, 31},
		{"April", 2025, time.April, 30},
		{"February non-leap", 2025, time.February, 28},
		{"February leap", 2024, time.February, 29},
		{"February century non-leap", 1900, time.February, 28},
		{"February 400-year leap", 2000, time.February, 29},
		{"December", 2025, time.December, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysInMonth(tt.year, tt.month); got != tt.want {
				t.Errorf("DaysInMonth(%d, %v) = %d, want %d", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestMonthBoundaries(t *testing.T) {
	ref := time.Date(2025, time.June, 15, 14, 30, 45, 0, time.UTC)

	start := StartOfMonth(ref)
	if start.Year() != 2025 || start.Month() != time.June || start.Day() != 1 {
		t.Errorf("StartOfMonth = %v, want 2025-06-01", start)
	}
	if start.Hour() != 0 || start.Minute() != 0 {
		t.Errorf("StartOfMonth must be midnight, got %v", start)
	}

	end := EndOfMonth(ref)
	if end.Day() != 30 || end.Month() != time.June {
		t.Errorf("EndOfMonth = %v, want 2025-06-30", end)
	}

	dec := time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC)
	if EndOfMonth(dec).Day() != 31 {
		t.Errorf("EndOfMonth(December) = %v, want day 31", EndOfMonth(dec))
	}
}

func TestSameDay(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{
			"same day different hours",
			time.Date(2025, time.June, 15, 0, 1, 0, 0, time.UTC),
			time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC),
			true,
		},
		{
			"adjacent days",
			time.Date(2025, time.June, 15, 23, 59, 0, 0, time.UTC),
			time.Date(2025, time.June, 16, 0, 1, 0, 0, time.UTC),
			false,
		},
		{
			"same day different years",
			time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC),
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameDay(tt.a, tt.b); got != tt.want {
				t.Errorf("SameDay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayRoundTrip(t *testing.T) {
	day := "2025-06-15"
	parsed, err := ParseDay(day)
	if err != nil {
		t.Fatalf("ParseDay(%q) failed: %v", day, err)
	}
	if got := FormatDay(parsed); got != day {
		t.Errorf("FormatDay(ParseDay(%q)) = %q", day, got)
	}

	if _, err := ParseDay("15/06/2025"); err == nil {
		t.Error("ParseDay accepted a non-ISO date")
	}
}

func TestDayOfMonth(t *testing.T) {
	ref := time.Date(2025, time.June, 20, 10, 0, 0, 0, time.UTC)
	if got := DayOfMonth(ref, 5); got != "2025-06-05" {
		t.Errorf("DayOfMonth = %q, want 2025-06-05", got)
	}
}

func TestValidateTimezone(t *testing.T) {
	tests := []struct {
		timezone string
		want     bool
	}{
		{"", true},
		{"Local", true},
		{"UTC", true},
		{"America/New_York", true},
		{"Not/AZone", false},
	}

	for _, tt := range tests {
		if got := ValidateTimezone(tt.timezone); got != tt.want {
			t.Errorf("ValidateTimezone(%q) = %v, want %v", tt.timezone, got, tt.want)
		}
	}
}
