package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tallyhq/tally/internal/models"
	"github.com/tallyhq/tally/internal/validation"
)

type TaskCmd struct {
	Add    TaskAddCmd    `cmd:"" help:"Add a new task."`
	List   TaskListCmd   `cmd:"" help:"List tasks."`
	Toggle TaskToggleCmd `cmd:"" help:"Toggle a task between pending and completed."`
	Delete TaskDeleteCmd `cmd:"" help:"Delete a task."`
}

type TaskAddCmd struct {
	Title       string `arg:"" help:"Task title."`
	Description string `help:"Optional description." default:""`
	Due         string `help:"Due date in YYYY-MM-DD format." default:""`
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	if err := validation.TaskTitle(c.Title); err != nil {
		return err
	}
	if c.Due != "" {
		if err := validation.Day(c.Due); err != nil {
			return err
		}
	}

	now := time.Now()
	task := models.Task{
		ID:          uuid.New().String(),
		Title:       c.Title,
		Description: c.Description,
		DueDate:     c.Due,
		Status:      models.TaskPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := ctx.Store.AddTask(task); err != nil {
		return err
	}

	fmt.Printf("Added task: %s\n", c.Title)
	return nil
}

type TaskListCmd struct {
	All bool `help:"Include completed tasks."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	shown := 0
	for _, task := range tasks {
		if !c.All && task.Completed() {
			continue
		}

		mark := "[ ]"
		if task.Completed() {
			mark = "[x]"
		}
		due := ""
		if task.DueDate != "" {
			due = fmt.Sprintf("  (due %s)", task.DueDate)
		}
		fmt.Printf("%s %s%s\n", mark, task.Title, due)
		shown++
	}

	if shown == 0 {
		fmt.Println("No tasks found.")
	}
	return nil
}

type TaskToggleCmd struct {
	Title string `arg:"" help:"Task title."`
}

func (c *TaskToggleCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	var task *models.Task
	for i := range tasks {
		if tasks[i].Title == c.Title {
			task = &tasks[i]
			break
		}
	}
	if task == nil {
		return fmt.Errorf("task %q not found", c.Title)
	}

	completed := !task.Completed()
	if err := ctx.Tracker.ToggleTask(task.ID, completed, ctx.Now()); err != nil {
		return err
	}

	if completed {
		fmt.Printf("Completed task: %s\n", c.Title)
	} else {
		fmt.Printf("Reopened task: %s\n", c.Title)
	}
	return nil
}

type TaskDeleteCmd struct {
	Title string `arg:"" help:"Task title to delete."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return err
	}

	for _, task := range tasks {
		if task.Title == c.Title {
			if err := ctx.Store.DeleteTask(task.ID); err != nil {
				return err
			}
			fmt.Printf("Deleted task: %s\n", c.Title)
			return nil
		}
	}
	return fmt.Errorf("task %q not found", c.Title)
}
