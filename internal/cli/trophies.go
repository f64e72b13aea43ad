package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	earnedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	unearnedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type TrophiesCmd struct{}

func (c *TrophiesCmd) Run(ctx *Context) error {
	statuses, earned, err := ctx.Tracker.Trophies(ctx.Now())
	if err != nil {
		return err
	}

	fmt.Printf("Trophies (%d/%d earned)\n\n", earned, len(statuses))
	for _, st := range statuses {
		if st.Earned {
			fmt.Println(earnedStyle.Render(fmt.Sprintf("🏆 %-18s %s", st.Name, st.Description)))
		} else {
			fmt.Println(unearnedStyle.Render(fmt.Sprintf("   %-18s %s", st.Name, st.Description)))
		}
	}
	return nil
}
