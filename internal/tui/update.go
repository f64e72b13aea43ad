package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
	"github.com/tallyhq/tally/internal/validation"
)

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) && m.state != constants.StateAddHabit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.state {
	case constants.StateAddHabit:
		return m.updateAddHabit(msg)
	case constants.StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	default:
		return m.updateBrowse(msg)
	}
}

func (m Model) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Habits):
		m.state = constants.StateHabits
	case key.Matches(keyMsg, m.keys.Grid):
		m.state = constants.StateGrid
	case key.Matches(keyMsg, m.keys.Trophies):
		m.state = constants.StateTrophies
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if m.state == constants.StateHabits && m.cursor < len(m.habits) {
			now := m.now()
			// Toggling through the tracker keeps matched tasks in sync
			_, err := m.tracker.ToggleHabitDay(m.habits[m.cursor].ID, utils.FormatDay(now), now)
			if err == nil {
				m.refresh()
			}
		}
	case key.Matches(keyMsg, m.keys.Add):
		if m.state == constants.StateHabits {
			m.previousState = m.state
			m.state = constants.StateAddHabit
			m.formError = ""
			m.newHabitForm()
			return m, m.form.Init()
		}
	case key.Matches(keyMsg, m.keys.Delete):
		if m.state == constants.StateHabits && m.cursor < len(m.habits) {
			m.previousState = m.state
			m.state = constants.StateConfirmDelete
			m.habitToDeleteID = m.habits[m.cursor].ID
		}
	}
	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		name := strings.TrimSpace(m.habitForm.Name)
		if err := validation.HabitName(name); err != nil {
			m.formError = err.Error()
			m.state = m.previousState
			return m, nil
		}

		goal := 0
		if s := strings.TrimSpace(m.habitForm.Goal); s != "" {
			parsed, err := strconv.Atoi(s)
			if err != nil || validation.Goal(parsed) != nil {
				m.formError = "goal must be a non-negative number"
				m.state = m.previousState
				return m, nil
			}
			goal = parsed
		}

		if _, err := m.store.GetHabitByName(name); err == nil {
			m.formError = "a habit with that name already exists"
			m.state = m.previousState
			return m, nil
		}

		habit := models.Habit{
			ID:        uuid.New().String(),
			Name:      name,
			Goal:      goal,
			CreatedAt: time.Now(),
		}
		if err := m.store.AddHabit(habit); err != nil {
			m.formError = err.Error()
		} else {
			m.refresh()
		}
		m.state = m.previousState
		return m, nil
	}

	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if err := m.tracker.DeleteHabit(m.habitToDeleteID); err == nil {
			m.refresh()
		}
		m.habitToDeleteID = ""
		m.state = m.previousState
	case "n", "N", "esc":
		m.habitToDeleteID = ""
		m.state = m.previousState
	}
	return m, nil
}
