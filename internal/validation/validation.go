// Package validation holds the input checks shared by the CLI and TUI forms.
package validation

import (
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
)

// HabitName requires a non-blank name.
func HabitName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("habit name cannot be empty")
	}
	return nil
}

// Goal requires a non-negative monthly goal; 0 means untracked.
func Goal(goal int) error {
	if goal < 0 {
		return fmt.Errorf("goal must be 0 or greater")
	}
	return nil
}

// Day requires a YYYY-MM-DD date string.
func Day(day string) error {
	if _, err := utils.ParseDay(day); err != nil {
		return fmt.Errorf("invalid date %q: expected YYYY-MM-DD", day)
	}
	return nil
}

// TaskTitle requires a non-blank title.
func TaskTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	return nil
}

// TaskStatus requires one of the known task statuses.
func TaskStatus(status string) error {
	switch models.TaskStatus(status) {
	case models.TaskPending, models.TaskInProgress, models.TaskCompleted, models.TaskOverdue:
		return nil
	}
	return fmt.Errorf("invalid status %q: must be pending, in_progress, completed, or overdue", status)
}
