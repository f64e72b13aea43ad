package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tallyhq/tally/internal/utils"
)

var (
	doneCell   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).SetString("■")
	missedCell = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).SetString("·")
	gridHeader = lipgloss.NewStyle().Bold(true)
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	now := ctx.Now()
	overview, err := ctx.Tracker.MonthOverview(now, now)
	if err != nil {
		return err
	}

	fmt.Printf("%s\n\n", gridHeader.Render(now.Format("January 2006")))
	fmt.Printf("Completions this month: %d\n", overview.TotalCompletions)
	fmt.Printf("Days in a row:          %d\n\n", overview.CrossHabitStreak)

	if len(overview.Activity) == 0 {
		fmt.Println("No habits yet. Add one with 'tally habit add'.")
		return nil
	}

	numDays := utils.DaysInMonth(now.Year(), now.Month())
	fmt.Println(rulerLine(numDays))

	for _, row := range overview.Activity {
		name := row.Habit.Name
		if len(name) > 20 {
			name = name[:17] + "..."
		}
		fmt.Printf("%-20s  ", name)
		for d := 0; d < numDays; d++ {
			if row.Days[d] {
				fmt.Print(doneCell.String() + " ")
			} else {
				fmt.Print(missedCell.String() + " ")
			}
		}
		fmt.Printf(" %d\n", row.Count)
	}
	return nil
}

// rulerLine renders the day-number header above the grid, marking every
// fifth day.
func rulerLine(numDays int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", 22))
	for d := 1; d <= numDays; d++ {
		if d == 1 || d%5 == 0 {
			b.WriteString(fmt.Sprintf("%-2d", d))
		} else {
			b.WriteString("  ")
		}
	}
	return gridHeader.Render(b.String())
}
