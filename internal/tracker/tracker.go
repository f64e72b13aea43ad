// Package tracker is the service layer between the UI surfaces and storage.
// It composes the analytics functions over fresh storage snapshots and owns
// the toggle/reconciliation write paths.
package tracker

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tallyhq/tally/internal/analytics"
	"github.com/tallyhq/tally/internal/logger"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/utils"
)

// Tracker wraps a storage provider. Every read method takes a fresh snapshot
// from the store; derived values are never cached.
type Tracker struct {
	store storage.Provider

	mu    sync.Mutex
	locks map[string]*sync.Mutex // per (habitID, day) toggle serialization
}

func New(store storage.Provider) *Tracker {
	return &Tracker{
		store: store,
		locks: make(map[string]*sync.Mutex),
	}
}

// toggleLock returns the mutex serializing toggles for one (habit, day) key.
// Entries are never evicted; the map is bounded by the keys toggled within a
// single process lifetime.
func (t *Tracker) toggleLock(key string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	m, ok := t.locks[key]
	if !ok {
		m = &sync.Mutex{}
		t.locks[key] = m
	}
	return m
}

// HabitStats computes the derived stats bundle for one habit: count and
// percentage for the month containing monthRef, streaks and active days over
// the habit's full history.
func (t *Tracker) HabitStats(habitID string, monthRef, now time.Time) (models.HabitStats, error) {
	habit, err := t.store.GetHabit(habitID)
	if err != nil {
		return models.HabitStats{}, fmt.Errorf("failed to get habit: %w", err)
	}

	completions, err := t.store.GetCompletionsForHabit(habitID)
	if err != nil {
		return models.HabitStats{}, fmt.Errorf("failed to get completions: %w", err)
	}

	days := make([]string, 0, len(completions))
	for _, c := range completions {
		days = append(days, c.Day)
	}
	streak := analytics.Streaks(days, now)
	count := analytics.MonthlyCount(habitID, completions, monthRef)

	return models.HabitStats{
		HabitID:            habitID,
		CompletedThisMonth: count,
		Percentage:         analytics.Percentage(count, habit.Goal),
		CurrentStreak:      streak.Current,
		LongestStreak:      streak.Longest,
		ActiveDays:         streak.ActiveDays,
	}, nil
}

// MonthOverview is the dashboard bundle for one month.
type MonthOverview struct {
	Activity         []analytics.HabitActivity
	TotalCompletions int
	CrossHabitStreak int
}

// MonthOverview builds the activity grid and cross-habit figures for the
// month containing monthRef.
func (t *Tracker) MonthOverview(monthRef, now time.Time) (MonthOverview, error) {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return MonthOverview{}, fmt.Errorf("failed to get habits: %w", err)
	}
	completions, err := t.store.GetAllCompletions()
	if err != nil {
		return MonthOverview{}, fmt.Errorf("failed to get completions: %w", err)
	}

	return MonthOverview{
		Activity:         analytics.ActivityMatrix(habits, completions, monthRef),
		TotalCompletions: analytics.TotalMonthly(completions, monthRef),
		CrossHabitStreak: analytics.CrossHabitStreak(completions, monthRef, now),
	}, nil
}

// Trophies evaluates the full achievement catalog against the current state
// and returns the ordered status list with the earned count.
func (t *Tracker) Trophies(now time.Time) ([]models.AchievementStatus, int, error) {
	habits, err := t.store.GetAllHabits()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get habits: %w", err)
	}
	completions, err := t.store.GetAllCompletions()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get completions: %w", err)
	}
	tasks, err := t.store.GetAllTasks()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get tasks: %w", err)
	}

	statuses := analytics.Evaluate(analytics.NewState(habits, completions, tasks, now))
	return statuses, analytics.EarnedCount(statuses), nil
}

// ToggleHabitDay flips the completion state of a habit for one day and
// returns the new state (true = now completed). Toggles for the same
// (habit, day) are serialized so two concurrent calls settle as two
// sequential flips instead of losing one.
//
// When day is today, the toggle also reconciles the first name-matched task:
// completing the habit completes the task, un-completing moves it back to
// pending.
func (t *Tracker) ToggleHabitDay(habitID, day string, now time.Time) (bool, error) {
	if _, err := utils.ParseDay(day); err != nil {
		return false, fmt.Errorf("invalid day %q: %w", day, err)
	}

	habit, err := t.store.GetHabit(habitID)
	if err != nil {
		return false, fmt.Errorf("failed to get habit: %w", err)
	}

	lock := t.toggleLock(habitID + "|" + day)
	lock.Lock()
	defer lock.Unlock()

	var done bool
	_, err = t.store.GetCompletion(habitID, day)
	switch {
	case err == nil:
		if err := t.store.DeleteCompletion(habitID, day); err != nil {
			return false, fmt.Errorf("failed to remove completion: %w", err)
		}
		done = false
	case errors.Is(err, sql.ErrNoRows):
		c := models.Completion{
			ID:        uuid.New().String(),
			HabitID:   habitID,
			Day:       day,
			CreatedAt: now,
		}
		if err := t.store.AddCompletion(c); err != nil {
			return false, fmt.Errorf("failed to add completion: %w", err)
		}
		done = true
	default:
		return false, fmt.Errorf("failed to check completion: %w", err)
	}

	if day == utils.FormatDay(now) {
		if err := t.reconcileTask(habit.Name, done, now); err != nil {
			return done, err
		}
	}
	return done, nil
}

// reconcileTask moves the first name-matched task between pending and
// completed. No match is not an error; the habit toggle stands alone.
func (t *Tracker) reconcileTask(habitName string, done bool, now time.Time) error {
	tasks, err := t.store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}

	task, ok := MatchTask(habitName, tasks)
	if !ok {
		return nil
	}

	target := models.TaskPending
	if done {
		target = models.TaskCompleted
	}
	if task.Status == target {
		return nil
	}

	logger.Debug("reconciling task with habit toggle", "task", task.Title, "habit", habitName, "status", target)
	if err := t.store.UpdateTaskStatus(task.ID, target); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}
	return nil
}

// ToggleTask sets a task's completion state and mirrors the change onto the
// first name-matched habit's completion for today. The mirror is idempotent:
// completing an already-completed day or clearing an absent one is a no-op,
// and a task with no matching habit toggles alone.
func (t *Tracker) ToggleTask(taskID string, completed bool, now time.Time) error {
	task, err := t.store.GetTask(taskID)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}

	status := models.TaskPending
	if completed {
		status = models.TaskCompleted
	}
	if err := t.store.UpdateTaskStatus(taskID, status); err != nil {
		return fmt.Errorf("failed to update task status: %w", err)
	}

	habits, err := t.store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	habit, ok := MatchHabit(task.Title, habits)
	if !ok {
		return nil
	}

	today := utils.FormatDay(now)
	lock := t.toggleLock(habit.ID + "|" + today)
	lock.Lock()
	defer lock.Unlock()

	if completed {
		c := models.Completion{
			ID:        uuid.New().String(),
			HabitID:   habit.ID,
			Day:       today,
			CreatedAt: now,
		}
		if err := t.store.AddCompletion(c); err != nil {
			return fmt.Errorf("failed to mirror completion: %w", err)
		}
		return nil
	}

	if err := t.store.DeleteCompletion(habit.ID, today); err != nil {
		// Clearing a day that was never completed is fine
		logger.Debug("no completion to clear for reconciled habit", "habit", habit.Name, "day", today)
	}
	return nil
}

// DeleteHabit removes the habit and all of its completions.
func (t *Tracker) DeleteHabit(habitID string) error {
	return t.store.DeleteHabit(habitID)
}
