package analytics

import (
	"testing"
	"time"

	"github.com/tallyhq/tally/internal/models"
)

func completion(habitID, day string) models.Completion {
	return models.Completion{ID: habitID + "-" + day, HabitID: habitID, Day: day}
}

func TestMonthlyCount(t *testing.T) {
	monthRef := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	completions := []models.Completion{
		completion("h1", "2025-06-01"),
		completion("h1", "2025-06-15"),
		completion("h1", "2025-06-30"),
		completion("h1", "2025-05-31"), // previous month
		completion("h1", "2025-07-01"), // next month
		completion("h2", "2025-06-10"), // different habit
	}

	if got := MonthlyCount("h1", completions, monthRef); got != 3 {
		t.Errorf("MonthlyCount(h1) = %d, want 3", got)
	}
	if got := MonthlyCount("h2", completions, monthRef); got != 1 {
		t.Errorf("MonthlyCount(h2) = %d, want 1", got)
	}
	if got := MonthlyCount("missing", completions, monthRef); got != 0 {
		t.Errorf("MonthlyCount(missing) = %d, want 0", got)
	}
}

func TestMonthlyCountDeduplicates(t *testing.T) {
	monthRef := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	completions := []models.Completion{
		completion("h1", "2025-06-01"),
		completion("h1", "2025-06-01"),
	}
	if got := MonthlyCount("h1", completions, monthRef); got != 1 {
		t.Errorf("MonthlyCount with duplicate day = %d, want 1", got)
	}
}

func TestTotalMonthly(t *testing.T) {
	monthRef := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	completions := []models.Completion{
		completion("h1", "2025-06-01"),
		completion("h2", "2025-06-01"),
		completion("h1", "2025-06-02"),
		completion("h1", "2025-05-01"),
	}
	if got := TotalMonthly(completions, monthRef); got != 3 {
		t.Errorf("TotalMonthly = %d, want 3", got)
	}
	if got := TotalMonthly(nil, monthRef); got != 0 {
		t.Errorf("TotalMonthly(nil) = %d, want 0", got)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		goal      int
		want      int
	}{
		{"zero goal never divides", 5, 0, 0},
		{"zero of ten", 0, 10, 0},
		{"half", 5, 10, 50},
		{"rounds up", 1, 3, 33},
		{"rounds nearest", 2, 3, 67},
		{"over goal exceeds 100", 15, 10, 150},
		{"negative goal treated as untracked", 5, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percentage(tt.completed, tt.goal); got != tt.want {
				t.Errorf("Percentage(%d, %d) = %d, want %d", tt.completed, tt.goal, got, tt.want)
			}
		})
	}
}

func TestActivityMatrix(t *testing.T) {
	monthRef := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC) // 30-day month
	habits := []models.Habit{
		{ID: "h1", Name: "Reading"},
		{ID: "h2", Name: "Running"},
	}
	completions := []models.Completion{
		completion("h1", "2025-06-01"),
		completion("h1", "2025-06-30"),
		completion("h2", "2025-06-15"),
		completion("h2", "2025-05-15"), // outside month, ignored
	}

	rows := ActivityMatrix(habits, completions, monthRef)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	h1 := rows[0]
	if h1.Habit.ID != "h1" {
		t.Errorf("rows are not in habit order: first row is %s", h1.Habit.ID)
	}
	if len(h1.Days) != 31 {
		t.Fatalf("row width = %d, want 31", len(h1.Days))
	}
	if !h1.Days[0] || !h1.Days[29] {
		t.Errorf("expected day 1 and day 30 set for h1: %v", h1.Days)
	}
	if h1.Days[30] {
		t.Error("slot 31 must stay false in a 30-day month")
	}
	if h1.Count != 2 {
		t.Errorf("h1.Count = %d, want 2", h1.Count)
	}

	h2 := rows[1]
	if !h2.Days[14] || h2.Count != 1 {
		t.Errorf("h2 row = %+v, want only day 15 set", h2)
	}
}

// Every true cell must correspond to exactly one completion record within
// the month, and every in-month completion must light exactly one cell.
func TestActivityMatrixRoundTrip(t *testing.T) {
	monthRef := time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC) // 28-day month
	habits := []models.Habit{{ID: "h1"}}
	completions := []models.Completion{
		completion("h1", "2025-02-01"),
		completion("h1", "2025-02-14"),
		completion("h1", "2025-02-28"),
	}

	rows := ActivityMatrix(habits, completions, monthRef)
	cells := 0
	for _, set := range rows[0].Days {
		if set {
			cells++
		}
	}
	if cells != len(completions) {
		t.Errorf("true cells = %d, want %d", cells, len(completions))
	}
	for d := 28; d < 31; d++ {
		if rows[0].Days[d] {
			t.Errorf("slot %d set beyond February's day count", d+1)
		}
	}
}

func TestCrossHabitStreak(t *testing.T) {
	now := time.Date(2025, time.June, 15, 9, 0, 0, 0, time.UTC)
	monthRef := now

	tests := []struct {
		name        string
		completions []models.Completion
		want        int
	}{
		{"no completions", nil, 0},
		{
			"any habit counts per day",
			[]models.Completion{
				completion("h1", "2025-06-15"),
				completion("h2", "2025-06-14"),
				completion("h1", "2025-06-13"),
			},
			3,
		},
		{
			"gap breaks the walk",
			[]models.Completion{
				completion("h1", "2025-06-15"),
				completion("h1", "2025-06-13"),
			},
			1,
		},
		{
			"bounded at start of month",
			func() []models.Completion {
				var cs []models.Completion
				d := now
				for i := 0; i < 20; i++ {
					cs = append(cs, completion("h1", d.Format("2006-01-02")))
					d = d.AddDate(0, 0, -1)
				}
				return cs
			}(),
			15, // June 15 back through June 1
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CrossHabitStreak(tt.completions, monthRef, now); got != tt.want {
				t.Errorf("CrossHabitStreak = %d, want %d", got, tt.want)
			}
		})
	}
}
