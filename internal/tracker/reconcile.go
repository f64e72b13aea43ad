package tracker

import (
	"strings"

	"github.com/tallyhq/tally/internal/models"
)

// namesMatch reports whether two names refer to the same activity: a
// case-insensitive substring match in either direction, so the task "Read"
// matches the habit "Daily Reading" and vice versa. Empty names never match.
func namesMatch(a, b string) bool {
	a = strings.ToLower(strings.TrimSpace(a))
	b = strings.ToLower(strings.TrimSpace(b))
	if a == "" || b == "" {
		return false
	}
	return strings.Contains(a, b) || strings.Contains(b, a)
}

// MatchHabit returns the first habit whose name matches the task title.
// First match in habit order wins; the match is recomputed on every call and
// never stored.
func MatchHabit(taskTitle string, habits []models.Habit) (models.Habit, bool) {
	for _, h := range habits {
		if namesMatch(taskTitle, h.Name) {
			return h, true
		}
	}
	return models.Habit{}, false
}

// MatchTask returns the first task whose title matches the habit name.
func MatchTask(habitName string, tasks []models.Task) (models.Task, bool) {
	for _, t := range tasks {
		if namesMatch(habitName, t.Title) {
			return t, true
		}
	}
	return models.Task{}, false
}
