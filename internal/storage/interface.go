package storage

import "github.com/tallyhq/tally/internal/models"

// Provider is the persistence boundary. The analytics layer treats every
// read as an immutable snapshot; all derived values are recomputed from
// these lists.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Habits
	AddHabit(models.Habit) error
	GetHabit(id string) (models.Habit, error)
	GetHabitByName(name string) (models.Habit, error)
	GetAllHabits() ([]models.Habit, error)
	UpdateHabit(models.Habit) error
	// DeleteHabit removes the habit and every one of its completions in a
	// single transaction. There is no soft delete and no orphaned
	// completion is ever left behind.
	DeleteHabit(id string) error

	// Completions
	AddCompletion(models.Completion) error
	GetCompletion(habitID, day string) (models.Completion, error)
	GetCompletionsForHabit(habitID string) ([]models.Completion, error)
	GetCompletionsForDay(day string) ([]models.Completion, error)
	GetAllCompletions() ([]models.Completion, error)
	DeleteCompletion(habitID, day string) error

	// Tasks
	AddTask(models.Task) error
	GetTask(id string) (models.Task, error)
	GetAllTasks() ([]models.Task, error)
	UpdateTask(models.Task) error
	UpdateTaskStatus(id string, status models.TaskStatus) error
	DeleteTask(id string) error

	// Utils
	GetConfigPath() string
}
