package system

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-ps"

	"github.com/tallyhq/tally/internal/cli"
	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/keyring"
	"github.com/tallyhq/tally/internal/utils"
)

// schemaChecker is implemented by both storage backends.
type schemaChecker interface {
	ValidateSchema() error
}

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *cli.Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false
	dbReachable := false

	// Check 1: DB reachable
	if err := ctx.Store.Load(); err != nil {
		fmt.Printf("❌ Database reachable: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ Database reachable: OK\n")
		dbReachable = true
	}

	// Check 2: Schema version valid
	if dbReachable {
		if checker, ok := ctx.Store.(schemaChecker); ok {
			if err := checker.ValidateSchema(); err != nil {
				fmt.Printf("❌ Schema version: FAIL\n")
				fmt.Printf("   Error: %v\n", err)
				hasError = true
			} else {
				fmt.Printf("✓ Schema version: OK\n")
			}
		}
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (database not reachable)\n")
	}

	// Check 3: Completion integrity
	if dbReachable {
		if err := checkCompletionIntegrity(ctx); err != nil {
			fmt.Printf("❌ Completion integrity: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Completion integrity: OK\n")
		}
	} else {
		fmt.Printf("⊘ Completion integrity: SKIPPED (database not reachable)\n")
	}

	// Check 4: Date formats
	if dbReachable {
		if err := checkDateFormats(ctx); err != nil {
			fmt.Printf("❌ Date formats: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Date formats: OK\n")
		}
	} else {
		fmt.Printf("⊘ Date formats: SKIPPED (database not reachable)\n")
	}

	// Check 5: Timezone setting
	if dbReachable {
		if err := checkTimezone(ctx); err != nil {
			fmt.Printf("❌ Timezone setting: FAIL\n")
			fmt.Printf("   Error: %v\n", err)
			hasError = true
		} else {
			fmt.Printf("✓ Timezone setting: OK\n")
		}
	} else {
		fmt.Printf("⊘ Timezone setting: SKIPPED (database not reachable)\n")
	}

	// Check 6: Clock sanity
	if err := checkClock(); err != nil {
		fmt.Printf("❌ System clock: FAIL\n")
		fmt.Printf("   Error: %v\n", err)
		hasError = true
	} else {
		fmt.Printf("✓ System clock: OK\n")
	}

	// Check 7: Concurrent processes (warning only; SQLite dislikes two writers)
	if others, err := otherTallyProcesses(); err == nil && len(others) > 0 {
		fmt.Printf("⚠ Concurrent processes: WARNING\n")
		fmt.Printf("   %d other %s process(es) running; concurrent writes may contend for the database\n", len(others), constants.AppName)
	} else {
		fmt.Printf("✓ Concurrent processes: OK\n")
	}

	// Check 8: Keyring availability (warning only; only needed for Postgres)
	if keyring.IsAvailable() {
		fmt.Printf("✓ OS keyring: OK\n")
	} else {
		fmt.Printf("⚠ OS keyring: WARNING\n")
		fmt.Printf("   Keyring unavailable; Postgres credentials must come from the environment\n")
	}

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

// checkCompletionIntegrity looks for orphaned completions and duplicate
// (habit, day) pairs.
func checkCompletionIntegrity(ctx *cli.Context) error {
	habits, err := ctx.Store.GetAllHabits()
	if err != nil {
		return fmt.Errorf("failed to get habits: %w", err)
	}
	completions, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return fmt.Errorf("failed to get completions: %w", err)
	}

	habitIDs := make(map[string]bool, len(habits))
	for _, h := range habits {
		habitIDs[h.ID] = true
	}

	orphaned := 0
	seen := make(map[string]bool, len(completions))
	duplicates := 0
	for _, c := range completions {
		if !habitIDs[c.HabitID] {
			orphaned++
		}
		key := c.HabitID + "|" + c.Day
		if seen[key] {
			duplicates++
		}
		seen[key] = true
	}

	if orphaned > 0 {
		return fmt.Errorf("found %d completions referencing non-existent habits", orphaned)
	}
	if duplicates > 0 {
		return fmt.Errorf("found %d duplicate (habit, day) completions", duplicates)
	}
	return nil
}

func checkDateFormats(ctx *cli.Context) error {
	completions, err := ctx.Store.GetAllCompletions()
	if err != nil {
		return fmt.Errorf("failed to get completions: %w", err)
	}
	invalid := 0
	for _, c := range completions {
		if _, err := utils.ParseDay(c.Day); err != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d completions with invalid date format", invalid)
	}

	tasks, err := ctx.Store.GetAllTasks()
	if err != nil {
		return fmt.Errorf("failed to get tasks: %w", err)
	}
	invalid = 0
	for _, t := range tasks {
		if t.DueDate == "" {
			continue
		}
		if _, err := utils.ParseDay(t.DueDate); err != nil {
			invalid++
		}
	}
	if invalid > 0 {
		return fmt.Errorf("found %d tasks with invalid due date format", invalid)
	}
	return nil
}

func checkTimezone(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if !utils.ValidateTimezone(settings.Timezone) {
		return fmt.Errorf("configured timezone %q is not a valid IANA timezone", settings.Timezone)
	}
	return nil
}

func checkClock() error {
	now := time.Now()
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}
	return nil
}

// otherTallyProcesses lists running processes with this binary's name,
// excluding the current one.
func otherTallyProcesses() ([]ps.Process, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}

	self := os.Getpid()
	var others []ps.Process
	for _, p := range procs {
		if p.Pid() != self && p.Executable() == constants.AppName {
			others = append(others, p)
		}
	}
	return others, nil
}
