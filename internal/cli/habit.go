package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/utils"
	"github.com/tallyhq/tally/internal/validation"
)

type HabitCmd struct {
	Add     HabitAddCmd     `cmd:"" help:"Add a new habit."`
	List    HabitListCmd    `cmd:"" help:"List habits with this month's progress."`
	Toggle  HabitToggleCmd  `cmd:"" help:"Toggle a habit's completion for a day."`
	SetGoal HabitSetGoalCmd `cmd:"" name:"set-goal" help:"Set a habit's monthly goal."`
	Delete  HabitDeleteCmd  `cmd:"" help:"Delete a habit and all its history."`
	Stats   HabitStatsCmd   `cmd:"" help:"Show detailed stats for a habit."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
	Goal int    `help:"Monthly goal (completions per month, 0 = untracked)." default:"0"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	if err := validation.HabitName(c.Name); err != nil {
		return err
	}
	if err := validation.Goal(c.Goal); err != nil {
		return err
	}

	if _, err := ctx.Store.GetHabitByName(c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}

	habit := models.Habit{
		ID:        uuid.New().String(),
		Name:      c.Name,
		Goal:      c.Goal,
		CreatedAt: time.Now(),
	}
	if err := ctx.Store.AddHabit(habit); err != nil {
		return err
	}

	fmt.Printf("Added habit: %s\n", c.Name)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found. Add one with 'tally habit add'.")
		return nil
	}

	now := ctx.Now()
	today := utils.FormatDay(now)
	for _, habit := range habits {
		stats, err := ctx.Tracker.HabitStats(habit.ID, now, now)
		if err != nil {
			return err
		}

		mark := "[ ]"
		if _, err := ctx.Store.GetCompletion(habit.ID, today); err == nil {
			mark = "[x]"
		}

		goal := "untracked"
		if habit.Goal > 0 {
			goal = fmt.Sprintf("%d/%d (%d%%)", stats.CompletedThisMonth, habit.Goal, stats.Percentage)
		} else if stats.CompletedThisMonth > 0 {
			goal = fmt.Sprintf("%d this month", stats.CompletedThisMonth)
		}

		streak := ""
		if stats.CurrentStreak > 0 {
			streak = fmt.Sprintf("  🔥 %d", stats.CurrentStreak)
		}

		fmt.Printf("%s %-24s %s%s\n", mark, habit.Name, goal, streak)
	}
	return nil
}

type HabitToggleCmd struct {
	Name string `arg:"" help:"Habit name."`
	Date string `help:"Date in YYYY-MM-DD format (default: today)." default:""`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	now := ctx.Now()
	day := c.Date
	if day == "" {
		day = utils.FormatDay(now)
	} else if err := validation.Day(day); err != nil {
		return err
	}

	done, err := ctx.Tracker.ToggleHabitDay(habit.ID, day, now)
	if err != nil {
		return err
	}

	if done {
		fmt.Printf("Marked habit %q for %s\n", c.Name, day)
	} else {
		fmt.Printf("Unmarked habit %q for %s\n", c.Name, day)
	}
	return nil
}

type HabitSetGoalCmd struct {
	Name string `arg:"" help:"Habit name."`
	Goal int    `arg:"" help:"Monthly goal (0 = untracked)."`
}

func (c *HabitSetGoalCmd) Run(ctx *Context) error {
	if err := validation.Goal(c.Goal); err != nil {
		return err
	}

	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	habit.Goal = c.Goal
	if err := ctx.Store.UpdateHabit(habit); err != nil {
		return err
	}

	if c.Goal == 0 {
		fmt.Printf("Removed goal for habit %q\n", c.Name)
	} else {
		fmt.Printf("Set goal for habit %q to %d per month\n", c.Name, c.Goal)
	}
	return nil
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}

	fmt.Printf("Deleted habit %q and all of its history\n", c.Name)
	return nil
}

type HabitStatsCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitStatsCmd) Run(ctx *Context) error {
	habit, err := ctx.Store.GetHabitByName(c.Name)
	if err != nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	now := ctx.Now()
	stats, err := ctx.Tracker.HabitStats(habit.ID, now, now)
	if err != nil {
		return err
	}

	fmt.Printf("Habit: %s\n\n", habit.Name)
	fmt.Printf("  Current streak:  %d day(s)\n", stats.CurrentStreak)
	fmt.Printf("  Longest streak:  %d day(s)\n", stats.LongestStreak)
	fmt.Printf("  Active days:     %d\n", stats.ActiveDays)
	if habit.Goal > 0 {
		fmt.Printf("  This month:      %d/%d (%d%%)\n", stats.CompletedThisMonth, habit.Goal, stats.Percentage)
	} else {
		fmt.Printf("  This month:      %d (no goal set)\n", stats.CompletedThisMonth)
	}
	return nil
}
