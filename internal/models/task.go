package models

import "time"

type TaskStatus string

const (
	TaskPending    TaskStatus = "pending"
	TaskInProgress TaskStatus = "in_progress"
	TaskCompleted  TaskStatus = "completed"
	TaskOverdue    TaskStatus = "overdue"
)

// Task is a one-off to-do, independent from habits. Any link to a habit is
// behavioral only: the tracker re-matches by name on every toggle and never
// stores a relationship.
type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	DueDate     string     `json:"due_date,omitempty"` // YYYY-MM-DD format
	Status      TaskStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Completed reports whether the task is in the completed state.
func (t Task) Completed() bool {
	return t.Status == TaskCompleted
}
