// Package tui is the interactive dashboard: habit list with today's state,
// month activity grid, and trophies.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/huh"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/storage"
	"github.com/tallyhq/tally/internal/tracker"
	"github.com/tallyhq/tally/internal/utils"
)

type HabitFormModel struct {
	Name string
	Goal string
}

type Model struct {
	store   storage.Provider
	tracker *tracker.Tracker

	state         constants.SessionState
	previousState constants.SessionState
	keys          KeyMap
	help          help.Model

	habits    []models.Habit
	doneToday map[string]bool
	stats     map[string]models.HabitStats
	overview  tracker.MonthOverview
	trophies  []models.AchievementStatus
	earned    int
	cursor    int

	form            *huh.Form
	habitForm       *HabitFormModel
	habitToDeleteID string
	formError       string

	width    int
	height   int
	quitting bool
}

func NewModel(store storage.Provider, tr *tracker.Tracker) Model {
	m := Model{
		store:     store,
		tracker:   tr,
		state:     constants.StateHabits,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		doneToday: make(map[string]bool),
		stats:     make(map[string]models.HabitStats),
	}
	m.refresh()
	return m
}

// now returns the current time in the configured timezone.
func (m *Model) now() time.Time {
	settings, err := m.store.GetSettings()
	if err != nil {
		return time.Now()
	}
	t, err := utils.NowInTimezone(settings.Timezone)
	if err != nil {
		return time.Now()
	}
	return t
}

// refresh reloads every derived view from storage.
func (m *Model) refresh() {
	now := m.now()
	today := utils.FormatDay(now)

	habits, err := m.store.GetAllHabits()
	if err != nil {
		habits = nil
	}
	m.habits = habits
	if m.cursor >= len(m.habits) {
		m.cursor = len(m.habits) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.doneToday = make(map[string]bool, len(habits))
	m.stats = make(map[string]models.HabitStats, len(habits))
	for _, h := range habits {
		if _, err := m.store.GetCompletion(h.ID, today); err == nil {
			m.doneToday[h.ID] = true
		}
		if stats, err := m.tracker.HabitStats(h.ID, now, now); err == nil {
			m.stats[h.ID] = stats
		}
	}

	if overview, err := m.tracker.MonthOverview(now, now); err == nil {
		m.overview = overview
	}
	if trophies, earned, err := m.tracker.Trophies(now); err == nil {
		m.trophies = trophies
		m.earned = earned
	}
}

// newHabitForm builds the huh form for adding a habit.
func (m *Model) newHabitForm() {
	m.habitForm = &HabitFormModel{}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Habit name").
				Value(&m.habitForm.Name),
			huh.NewInput().
				Title("Monthly goal (0 = untracked)").
				Value(&m.habitForm.Goal).
				Placeholder("0"),
		),
	)
}
