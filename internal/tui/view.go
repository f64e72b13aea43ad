package tui

import (
	"fmt"
	"strings"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.state {
	case constants.StateGrid:
		b.WriteString(m.renderGrid())
	case constants.StateTrophies:
		b.WriteString(m.renderTrophies())
	case constants.StateAddHabit:
		b.WriteString(m.form.View())
	case constants.StateConfirmDelete:
		b.WriteString(m.renderConfirmDelete())
	default:
		b.WriteString(m.renderHabits())
	}

	if m.formError != "" {
		b.WriteString("\n" + dangerStyle.Render(m.formError))
	}
	b.WriteString("\n\n" + m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func (m Model) renderTabs() string {
	tabs := []struct {
		title string
		state constants.SessionState
	}{
		{"Habits", constants.StateHabits},
		{"Month", constants.StateGrid},
		{"Trophies", constants.StateTrophies},
	}

	var rendered []string
	for _, tab := range tabs {
		style := inactiveTabStyle
		if m.state == tab.state ||
			(m.state == constants.StateAddHabit && tab.state == constants.StateHabits) ||
			(m.state == constants.StateConfirmDelete && tab.state == constants.StateHabits) {
			style = activeTabStyle
		}
		rendered = append(rendered, style.Render(tab.title))
	}
	return strings.Join(rendered, " ")
}

func (m Model) renderHabits() string {
	if len(m.habits) == 0 {
		return mutedStyle.Render("No habits yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, habit := range m.habits {
		cursor := "  "
		if i == m.cursor {
			cursor = selectedStyle.Render("> ")
		}

		mark := mutedStyle.Render("[ ]")
		if m.doneToday[habit.ID] {
			mark = doneStyle.Render("[x]")
		}

		name := habit.Name
		if i == m.cursor {
			name = selectedStyle.Render(name)
		}

		line := fmt.Sprintf("%s%s %-24s", cursor, mark, name)

		if stats, ok := m.stats[habit.ID]; ok {
			if habit.Goal > 0 {
				line += mutedStyle.Render(fmt.Sprintf(" %d/%d (%d%%)", stats.CompletedThisMonth, habit.Goal, stats.Percentage))
			} else if stats.CompletedThisMonth > 0 {
				line += mutedStyle.Render(fmt.Sprintf(" %d this month", stats.CompletedThisMonth))
			}
			if stats.CurrentStreak > 0 {
				line += streakStyle.Render(fmt.Sprintf("  🔥 %d", stats.CurrentStreak))
			}
		}

		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m Model) renderGrid() string {
	now := m.now()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s  —  %d completions, %d day(s) in a row\n\n",
		now.Format("January 2006"), m.overview.TotalCompletions, m.overview.CrossHabitStreak))

	if len(m.overview.Activity) == 0 {
		b.WriteString(mutedStyle.Render("No habits yet."))
		return b.String()
	}

	numDays := utils.DaysInMonth(now.Year(), now.Month())
	for _, row := range m.overview.Activity {
		name := row.Habit.Name
		if len(name) > 16 {
			name = name[:13] + "..."
		}
		b.WriteString(fmt.Sprintf("%-16s ", name))
		for d := 0; d < numDays; d++ {
			if row.Days[d] {
				b.WriteString(doneStyle.Render("■"))
			} else {
				b.WriteString(mutedStyle.Render("·"))
			}
		}
		b.WriteString(fmt.Sprintf(" %d\n", row.Count))
	}
	return b.String()
}

func (m Model) renderTrophies() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Trophies (%d/%d earned)\n\n", m.earned, len(m.trophies)))

	for _, st := range m.trophies {
		if st.Earned {
			b.WriteString(trophyStyle.Render(fmt.Sprintf("🏆 %-18s %s", st.Name, st.Description)) + "\n")
		} else {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("   %-18s %s", st.Name, st.Description)) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderConfirmDelete() string {
	name := ""
	for _, h := range m.habits {
		if h.ID == m.habitToDeleteID {
			name = h.Name
			break
		}
	}
	return dangerStyle.Render(fmt.Sprintf("Delete habit %q and all of its history? (y/n)", name))
}
