package analytics

import (
	"testing"
	"time"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
)

func statusByID(statuses []models.AchievementStatus, id string) (models.AchievementStatus, bool) {
	for _, st := range statuses {
		if st.ID == id {
			return st, true
		}
	}
	return models.AchievementStatus{}, false
}

// allDays builds completions for one habit across consecutive days ending today.
func allDays(habitID string, now time.Time, n int) []models.Completion {
	var cs []models.Completion
	for i := 0; i < n; i++ {
		cs = append(cs, completion(habitID, utils.FormatDay(now.AddDate(0, 0, -i))))
	}
	return cs
}

func TestStreakAchievements(t *testing.T) {
	now := time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{{ID: "h1", Name: "Reading"}}

	tests := []struct {
		name       string
		streakDays int
		earned     map[string]bool
	}{
		{"no streak", 0, map[string]bool{"streak-3": false, "streak-5": false, "streak-10": false}},
		{"three days", 3, map[string]bool{"streak-3": true, "streak-5": false, "streak-10": false}},
		{"five days", 5, map[string]bool{"streak-3": true, "streak-5": true, "streak-10": false}},
		{"ten days", 10, map[string]bool{"streak-3": true, "streak-5": true, "streak-10": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState(habits, allDays("h1", now, tt.streakDays), nil, now)
			statuses := Evaluate(st)
			for id, want := range tt.earned {
				got, ok := statusByID(statuses, id)
				if !ok {
					t.Fatalf("achievement %s missing from evaluation", id)
				}
				if got.Earned != want {
					t.Errorf("%s earned = %v, want %v", id, got.Earned, want)
				}
			}
		})
	}
}

func TestPerfectMonth(t *testing.T) {
	// June 2025 has 30 days; evaluate mid-month so unpassed days matter too.
	now := time.Date(2025, time.June, 30, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{{ID: "h1"}, {ID: "h2"}}

	full := func() []models.Completion {
		var cs []models.Completion
		for d := 1; d <= 30; d++ {
			day := utils.DayOfMonth(now, d)
			cs = append(cs, completion("h1", day), completion("h2", day))
		}
		return cs
	}

	t.Run("every habit every day", func(t *testing.T) {
		st := NewState(habits, full(), nil, now)
		got, _ := statusByID(Evaluate(st), "perfect-month")
		if !got.Earned {
			t.Error("perfect-month not earned for a fully completed month")
		}
	})

	t.Run("one habit missing one day", func(t *testing.T) {
		var cs []models.Completion
		for _, c := range full() {
			if c.HabitID == "h2" && c.Day == "2025-06-15" {
				continue
			}
			cs = append(cs, c)
		}
		st := NewState(habits, cs, nil, now)
		got, _ := statusByID(Evaluate(st), "perfect-month")
		if got.Earned {
			t.Error("perfect-month earned despite a missing day")
		}
	})

	t.Run("zero habits is never perfect", func(t *testing.T) {
		st := NewState(nil, nil, nil, now)
		got, _ := statusByID(Evaluate(st), "perfect-month")
		if got.Earned {
			t.Error("perfect-month must be false with zero habits")
		}
	})
}

func TestOneWeekWonder(t *testing.T) {
	now := time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)
	habits := []models.Habit{{ID: "h1"}, {ID: "h2"}}

	week := func(skipHabit, skipDay string) []models.Completion {
		var cs []models.Completion
		for i := 0; i < 7; i++ {
			day := utils.FormatDay(now.AddDate(0, 0, -i))
			for _, h := range habits {
				if h.ID == skipHabit && day == skipDay {
					continue
				}
				cs = append(cs, completion(h.ID, day))
			}
		}
		return cs
	}

	t.Run("all habits all seven days", func(t *testing.T) {
		st := NewState(habits, week("", ""), nil, now)
		got, _ := statusByID(Evaluate(st), "one-week-wonder")
		if !got.Earned {
			t.Error("one-week-wonder not earned for a complete week")
		}
	})

	t.Run("one habit misses one day", func(t *testing.T) {
		st := NewState(habits, week("h2", "2025-06-17"), nil, now)
		got, _ := statusByID(Evaluate(st), "one-week-wonder")
		if got.Earned {
			t.Error("one-week-wonder earned despite a gap")
		}
	})

	t.Run("zero habits", func(t *testing.T) {
		st := NewState(nil, nil, nil, now)
		got, _ := statusByID(Evaluate(st), "one-week-wonder")
		if got.Earned {
			t.Error("one-week-wonder must be false with zero habits")
		}
	})
}

func TestWeeklyChampion(t *testing.T) {
	// Friday June 20, 2025; week started Sunday June 15.
	now := time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)

	task := func(id, due string, status models.TaskStatus) models.Task {
		return models.Task{ID: id, Title: id, DueDate: due, Status: status}
	}

	tests := []struct {
		name   string
		tasks  []models.Task
		earned bool
	}{
		{"no tasks due this week", nil, false},
		{
			"all week tasks completed",
			[]models.Task{
				task("t1", "2025-06-16", models.TaskCompleted),
				task("t2", "2025-06-19", models.TaskCompleted),
			},
			true,
		},
		{
			"one pending task",
			[]models.Task{
				task("t1", "2025-06-16", models.TaskCompleted),
				task("t2", "2025-06-19", models.TaskPending),
			},
			false,
		},
		{
			"tasks outside the week are ignored",
			[]models.Task{
				task("t1", "2025-06-17", models.TaskCompleted),
				task("t2", "2025-06-10", models.TaskPending),
				task("t3", "", models.TaskPending),
			},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := NewState(nil, nil, tt.tasks, now)
			got, _ := statusByID(Evaluate(st), "weekly-champion")
			if got.Earned != tt.earned {
				t.Errorf("weekly-champion earned = %v, want %v", got.Earned, tt.earned)
			}
		})
	}
}

func TestMilestoneAndConsistency(t *testing.T) {
	now := time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)

	t.Run("habit-builder at three habits", func(t *testing.T) {
		two := NewState([]models.Habit{{ID: "a"}, {ID: "b"}}, nil, nil, now)
		got, _ := statusByID(Evaluate(two), "habit-builder")
		if got.Earned {
			t.Error("habit-builder earned with two habits")
		}

		three := NewState([]models.Habit{{ID: "a"}, {ID: "b"}, {ID: "c"}}, nil, nil, now)
		got, _ = statusByID(Evaluate(three), "habit-builder")
		if !got.Earned {
			t.Error("habit-builder not earned with three habits")
		}
	})

	t.Run("monthly-warrior at fifty completions", func(t *testing.T) {
		var cs []models.Completion
		for d := 1; d <= 25; d++ {
			day := utils.DayOfMonth(now, d)
			cs = append(cs, completion("h1", day), completion("h2", day))
		}
		st := NewState(nil, cs, nil, now)
		got, _ := statusByID(Evaluate(st), "monthly-warrior")
		if !got.Earned {
			t.Errorf("monthly-warrior not earned at %d completions", st.MonthlyCompletions)
		}
	})
}

func TestEvaluateOrderAndCount(t *testing.T) {
	now := time.Date(2025, time.June, 20, 12, 0, 0, 0, time.UTC)
	st := NewState(nil, nil, nil, now)
	statuses := Evaluate(st)

	if len(statuses) != len(Catalog) {
		t.Fatalf("got %d statuses, want %d", len(statuses), len(Catalog))
	}
	for i, entry := range Catalog {
		if statuses[i].ID != entry.ID {
			t.Errorf("status %d = %s, want catalog order %s", i, statuses[i].ID, entry.ID)
		}
	}
	if got := EarnedCount(statuses); got != 0 {
		t.Errorf("EarnedCount on empty state = %d, want 0", got)
	}
}
