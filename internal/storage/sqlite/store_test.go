package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tallyhq/tally/internal/models"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store := New(filepath.Join(t.TempDir(), "tally.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestHabitCRUD(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      "Morning meditation",
		Goal:      20,
		CreatedAt: time.Now(),
	}

	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	retrieved, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get habit: %v", err)
	}
	if retrieved.Name != habit.Name || retrieved.Goal != 20 {
		t.Errorf("got %+v, want name %q goal 20", retrieved, habit.Name)
	}

	byName, err := store.GetHabitByName("morning MEDITATION")
	if err != nil {
		t.Fatalf("failed to get habit by name: %v", err)
	}
	if byName.ID != habit.ID {
		t.Errorf("expected ID %q, got %q", habit.ID, byName.ID)
	}

	habit.Goal = 25
	if err := store.UpdateHabit(habit); err != nil {
		t.Fatalf("failed to update habit: %v", err)
	}
	updated, err := store.GetHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to get updated habit: %v", err)
	}
	if updated.Goal != 25 {
		t.Errorf("expected updated goal 25, got %d", updated.Goal)
	}
}

func TestCompletionToggleCycle(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{ID: uuid.New().String(), Name: "Running", CreatedAt: time.Now()}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	day := "2025-06-15"
	c := models.Completion{
		ID:        uuid.New().String(),
		HabitID:   habit.ID,
		Day:       day,
		CreatedAt: time.Now(),
	}

	if err := store.AddCompletion(c); err != nil {
		t.Fatalf("failed to add completion: %v", err)
	}

	got, err := store.GetCompletion(habit.ID, day)
	if err != nil {
		t.Fatalf("failed to get completion: %v", err)
	}
	if got.Day != day {
		t.Errorf("got day %q, want %q", got.Day, day)
	}

	// Re-adding the same (habit, day) must not create a second record
	dup := models.Completion{ID: uuid.New().String(), HabitID: habit.ID, Day: day, CreatedAt: time.Now()}
	if err := store.AddCompletion(dup); err != nil {
		t.Fatalf("duplicate add returned error: %v", err)
	}
	all, err := store.GetCompletionsForHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to list completions: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("got %d completions, want 1 (unique per day)", len(all))
	}

	if err := store.DeleteCompletion(habit.ID, day); err != nil {
		t.Fatalf("failed to delete completion: %v", err)
	}
	if _, err := store.GetCompletion(habit.ID, day); err == nil {
		t.Error("completion still present after delete")
	}

	if err := store.DeleteCompletion(habit.ID, day); err == nil {
		t.Error("deleting an absent completion should error")
	}
}

func TestDeleteHabitCascades(t *testing.T) {
	store := setupTestStore(t)

	habit := models.Habit{ID: uuid.New().String(), Name: "Journaling", CreatedAt: time.Now()}
	if err := store.AddHabit(habit); err != nil {
		t.Fatalf("failed to add habit: %v", err)
	}

	for _, day := range []string{"2025-06-01", "2025-06-02", "2025-07-15"} {
		c := models.Completion{ID: uuid.New().String(), HabitID: habit.ID, Day: day, CreatedAt: time.Now()}
		if err := store.AddCompletion(c); err != nil {
			t.Fatalf("failed to add completion for %s: %v", day, err)
		}
	}

	if err := store.DeleteHabit(habit.ID); err != nil {
		t.Fatalf("failed to delete habit: %v", err)
	}

	if _, err := store.GetHabit(habit.ID); err == nil {
		t.Error("habit still present after delete")
	}

	// Every completion in every month must be gone
	left, err := store.GetCompletionsForHabit(habit.ID)
	if err != nil {
		t.Fatalf("failed to list completions: %v", err)
	}
	if len(left) != 0 {
		t.Errorf("found %d orphaned completions after habit delete", len(left))
	}
}

func TestTaskCRUD(t *testing.T) {
	store := setupTestStore(t)

	task := models.Task{
		ID:        uuid.New().String(),
		Title:     "File taxes",
		DueDate:   "2025-06-20",
		Status:    models.TaskPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := store.AddTask(task); err != nil {
		t.Fatalf("failed to add task: %v", err)
	}

	got, err := store.GetTask(task.ID)
	if err != nil {
		t.Fatalf("failed to get task: %v", err)
	}
	if got.Title != task.Title || got.Status != models.TaskPending {
		t.Errorf("got %+v", got)
	}

	if err := store.UpdateTaskStatus(task.ID, models.TaskCompleted); err != nil {
		t.Fatalf("failed to update status: %v", err)
	}
	got, err = store.GetTask(task.ID)
	if err != nil {
		t.Fatalf("failed to re-get task: %v", err)
	}
	if got.Status != models.TaskCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}

	if err := store.UpdateTaskStatus("missing", models.TaskCompleted); err == nil {
		t.Error("updating a missing task should error")
	}

	if err := store.DeleteTask(task.ID); err != nil {
		t.Fatalf("failed to delete task: %v", err)
	}
	if _, err := store.GetTask(task.ID); err == nil {
		t.Error("task still present after delete")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	store := setupTestStore(t)

	// Init seeds defaults
	settings, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to get default settings: %v", err)
	}
	if settings.Timezone == "" {
		t.Error("default timezone not seeded")
	}

	settings.Timezone = "America/New_York"
	if err := store.SaveSettings(settings); err != nil {
		t.Fatalf("failed to save settings: %v", err)
	}

	got, err := store.GetSettings()
	if err != nil {
		t.Fatalf("failed to re-get settings: %v", err)
	}
	if got.Timezone != "America/New_York" {
		t.Errorf("timezone = %q, want America/New_York", got.Timezone)
	}
}
