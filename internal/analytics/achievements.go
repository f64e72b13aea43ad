package analytics

import (
	"time"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
)

// State is the read-only aggregated view the achievement rules evaluate
// against. Build one per evaluation pass with NewState.
type State struct {
	Now                time.Time
	Habits             []models.Habit
	Tasks              []models.Task
	CurrentStreak      int // cross-habit: consecutive days with any completion
	MonthlyCompletions int

	daysDone  map[string]bool            // any habit completed that day
	habitDone map[string]map[string]bool // habitID -> day set
}

// NewState precomputes the aggregates shared by the rule predicates.
func NewState(habits []models.Habit, completions []models.Completion, tasks []models.Task, now time.Time) *State {
	s := &State{
		Now:       now,
		Habits:    habits,
		Tasks:     tasks,
		daysDone:  make(map[string]bool),
		habitDone: make(map[string]map[string]bool),
	}
	for _, c := range completions {
		s.daysDone[c.Day] = true
		if s.habitDone[c.HabitID] == nil {
			s.habitDone[c.HabitID] = make(map[string]bool)
		}
		s.habitDone[c.HabitID][c.Day] = true
	}

	s.MonthlyCompletions = TotalMonthly(completions, now)

	// Achievement streaks are not bounded to the month: walk back from
	// today as far as completions reach.
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for s.CurrentStreak < constants.StreakScanLimit && s.daysDone[utils.FormatDay(day)] {
		s.CurrentStreak++
		day = day.AddDate(0, 0, -1)
	}

	return s
}

// AllHabitsDoneOn reports whether every habit has a completion for the given
// day. With zero habits it is false: vacuous truth is rejected, a user with
// no habits has completed nothing.
func (s *State) AllHabitsDoneOn(day string) bool {
	if len(s.Habits) == 0 {
		return false
	}
	for _, h := range s.Habits {
		if !s.habitDone[h.ID][day] {
			return false
		}
	}
	return true
}

// weekTaskStats counts tasks due in the current week (week starts Sunday)
// and how many of those are completed.
func (s *State) weekTaskStats() (due, completed int) {
	today := time.Date(s.Now.Year(), s.Now.Month(), s.Now.Day(), 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))

	startDay := utils.FormatDay(weekStart)
	endDay := utils.FormatDay(today)
	for _, t := range s.Tasks {
		if t.DueDate == "" || t.DueDate < startDay || t.DueDate > endDay {
			continue
		}
		due++
		if t.Completed() {
			completed++
		}
	}
	return due, completed
}

// Rule is a pure predicate over the aggregated state.
type Rule func(*State) bool

// CatalogEntry binds an achievement to its rule.
type CatalogEntry struct {
	models.Achievement
	Rule Rule
}

func streakAtLeast(n int) Rule {
	return func(s *State) bool { return s.CurrentStreak >= n }
}

// perfectMonth checks every habit on every day of the current month, day 1
// through the last day whether or not it has passed yet. Short-circuits on
// the first failing day.
func perfectMonth(s *State) bool {
	if len(s.Habits) == 0 {
		return false
	}
	numDays := utils.DaysInMonth(s.Now.Year(), s.Now.Month())
	for d := 1; d <= numDays; d++ {
		if !s.AllHabitsDoneOn(utils.DayOfMonth(s.Now, d)) {
			return false
		}
	}
	return true
}

// oneWeekWonder checks every habit on each of the last 7 consecutive days
// ending today.
func oneWeekWonder(s *State) bool {
	if len(s.Habits) == 0 {
		return false
	}
	day := time.Date(s.Now.Year(), s.Now.Month(), s.Now.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7; i++ {
		if !s.AllHabitsDoneOn(utils.FormatDay(day)) {
			return false
		}
		day = day.AddDate(0, 0, -1)
	}
	return true
}

func weeklyChampion(s *State) bool {
	due, completed := s.weekTaskStats()
	return due > 0 && due == completed
}

// Catalog is the fixed, ordered achievement catalog. Evaluation order is
// display order.
var Catalog = []CatalogEntry{
	{
		Achievement: models.Achievement{ID: "streak-3", Name: "3-Day Streak",
			Description: "Complete habits for 3 consecutive days", Category: models.CategoryStreak},
		Rule: streakAtLeast(3),
	},
	{
		Achievement: models.Achievement{ID: "streak-5", Name: "5-Day Streak",
			Description: "Complete habits for 5 consecutive days", Category: models.CategoryStreak},
		Rule: streakAtLeast(5),
	},
	{
		Achievement: models.Achievement{ID: "streak-10", Name: "10-Day Streak",
			Description: "Complete habits for 10 consecutive days", Category: models.CategoryStreak},
		Rule: streakAtLeast(10),
	},
	{
		Achievement: models.Achievement{ID: "one-week-wonder", Name: "One-Week Wonder",
			Description: "Complete every habit on each of the last 7 days", Category: models.CategoryStreak},
		Rule: oneWeekWonder,
	},
	{
		Achievement: models.Achievement{ID: "perfect-month", Name: "Perfect Month",
			Description: "Complete every habit on every day of the month", Category: models.CategoryConsistency},
		Rule: perfectMonth,
	},
	{
		Achievement: models.Achievement{ID: "weekly-champion", Name: "Weekly Champion",
			Description: "Complete all tasks due this week", Category: models.CategoryCompletion},
		Rule: weeklyChampion,
	},
	{
		Achievement: models.Achievement{ID: "habit-builder", Name: "Habit Builder",
			Description: "Create your first 3 habits", Category: models.CategoryMilestone},
		Rule: func(s *State) bool { return len(s.Habits) >= 3 },
	},
	{
		Achievement: models.Achievement{ID: "monthly-warrior", Name: "Monthly Warrior",
			Description: "Complete 50+ habit sessions this month", Category: models.CategoryConsistency},
		Rule: func(s *State) bool { return s.MonthlyCompletions >= 50 },
	},
}

// Evaluate runs the full catalog against the state and returns the ordered
// status list.
func Evaluate(s *State) []models.AchievementStatus {
	out := make([]models.AchievementStatus, 0, len(Catalog))
	for _, entry := range Catalog {
		out = append(out, models.AchievementStatus{
			Achievement: entry.Achievement,
			Earned:      entry.Rule(s),
		})
	}
	return out
}

// EarnedCount returns how many of the evaluated achievements are earned.
func EarnedCount(statuses []models.AchievementStatus) int {
	n := 0
	for _, st := range statuses {
		if st.Earned {
			n++
		}
	}
	return n
}
