package models

import "time"

// Habit represents a recurring practice tracked against a monthly goal
type Habit struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Goal      int       `json:"goal"` // target completions per month; 0 means untracked
	CreatedAt time.Time `json:"created_at"`
}

// Completion records that a habit was done on a specific calendar day.
// There is at most one completion per (habit, day); a day is either done
// or not, there is no count.
type Completion struct {
	ID        string    `json:"id"`
	HabitID   string    `json:"habit_id"`
	Day       string    `json:"day"` // YYYY-MM-DD format
	CreatedAt time.Time `json:"created_at"`
}

// HabitStats is the derived per-habit bundle the UI layers consume.
// It is computed on demand, never stored.
type HabitStats struct {
	HabitID            string `json:"habit_id"`
	CompletedThisMonth int    `json:"completed_this_month"`
	Percentage         int    `json:"percentage"` // 0 when Goal is 0; callers label that case separately
	CurrentStreak      int    `json:"current_streak"`
	LongestStreak      int    `json:"longest_streak"`
	ActiveDays         int    `json:"active_days"`
}
