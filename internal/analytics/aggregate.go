package analytics

import (
	"math"
	"time"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
)

// HabitActivity is one row of the monthly activity grid: a fixed-width
// per-day completion vector for a single habit plus the month's count.
type HabitActivity struct {
	Habit models.Habit `json:"habit"`
	Days  []bool       `json:"days"`  // ActivityGridWidth slots; slots past the month length stay false
	Count int          `json:"count"` // completions within the real month
}

// inMonth reports whether a day string falls inside the month containing
// monthRef. Day strings are YYYY-MM-DD, so lexical comparison is date order.
func inMonth(day string, monthRef time.Time) bool {
	start := utils.FormatDay(utils.StartOfMonth(monthRef))
	end := utils.FormatDay(utils.EndOfMonth(monthRef))
	return day >= start && day <= end
}

// MonthlyCount returns the number of distinct days the habit was completed
// in the month containing monthRef.
func MonthlyCount(habitID string, completions []models.Completion, monthRef time.Time) int {
	seen := make(map[string]bool)
	for _, c := range completions {
		if c.HabitID == habitID && inMonth(c.Day, monthRef) {
			seen[c.Day] = true
		}
	}
	return len(seen)
}

// TotalMonthly returns the number of completions across all habits in the
// month containing monthRef.
func TotalMonthly(completions []models.Completion, monthRef time.Time) int {
	seen := make(map[string]bool)
	for _, c := range completions {
		if inMonth(c.Day, monthRef) {
			seen[c.HabitID+"|"+c.Day] = true
		}
	}
	return len(seen)
}

// Percentage returns the completion percentage against a monthly goal,
// rounded to the nearest integer. A goal of 0 means untracked: the result
// is 0 and the division never happens. Callers that want an "∞" label for
// untracked habits must branch on the goal themselves.
func Percentage(completed, goal int) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(goal) * 100))
}

// ActivityMatrix builds the per-habit, per-day completion grid for the month
// containing monthRef. Rows keep the habits' given order; each row has
// ActivityGridWidth slots so grid rendering stays fixed-width regardless of
// month length.
func ActivityMatrix(habits []models.Habit, completions []models.Completion, monthRef time.Time) []HabitActivity {
	byKey := make(map[string]bool, len(completions))
	for _, c := range completions {
		byKey[c.HabitID+"|"+c.Day] = true
	}

	numDays := utils.DaysInMonth(monthRef.Year(), monthRef.Month())
	rows := make([]HabitActivity, 0, len(habits))
	for _, h := range habits {
		row := HabitActivity{Habit: h, Days: make([]bool, constants.ActivityGridWidth)}
		for d := 1; d <= numDays; d++ {
			if byKey[h.ID+"|"+utils.DayOfMonth(monthRef, d)] {
				row.Days[d-1] = true
				row.Count++
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// CrossHabitStreak counts consecutive days ending at now's calendar day on
// which at least one habit (any habit) has a completion. The walk stops at
// the start of the month containing monthRef; this is the dashboard's
// "days in a row this month" figure, distinct from per-habit streaks.
func CrossHabitStreak(completions []models.Completion, monthRef time.Time, now time.Time) int {
	daysDone := make(map[string]bool, len(completions))
	for _, c := range completions {
		daysDone[c.Day] = true
	}

	start := time.Date(monthRef.Year(), monthRef.Month(), 1, 0, 0, 0, 0, time.UTC)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	streak := 0
	for streak < constants.StreakScanLimit && !day.Before(start) && daysDone[utils.FormatDay(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}
