// Package analytics derives all habit/task time-series analytics from raw
// completion data: streaks, monthly aggregates, the activity grid, and
// achievement state. Every function is pure given its inputs; "now" is
// always threaded in by the caller so tests can pin time.
package analytics

import (
	"sort"
	"time"

	"github.com/tallyhq/tally/internal/constants"
	"github.com/tallyhq/tally/internal/utils"
)

// Streak holds the derived streak figures for a single habit.
type Streak struct {
	Current    int `json:"current"`
	Longest    int `json:"longest"`
	ActiveDays int `json:"active_days"`
}

// Streaks computes current streak, longest streak, and active day count from
// an unsorted list of completion day strings (YYYY-MM-DD).
//
// The current streak is the run of consecutive completed days ending at
// now's calendar day. A habit not yet logged today is still considered
// streaking when yesterday is completed (grace day). Duplicate and
// malformed days are normalized away rather than failing: duplicates
// violate the (habit, day) uniqueness invariant upstream, but analytics
// recovers locally.
func Streaks(days []string, now time.Time) Streak {
	done := normalizeDays(days)
	if len(done) == 0 {
		return Streak{}
	}

	s := Streak{ActiveDays: len(done)}
	s.Current = currentRun(done, now)
	s.Longest = longestRun(done)
	if s.Current > s.Longest {
		s.Longest = s.Current
	}
	return s
}

// normalizeDays dedupes and drops unparseable entries, returning a set of
// valid day strings.
func normalizeDays(days []string) map[string]bool {
	done := make(map[string]bool, len(days))
	for _, d := range days {
		if _, err := utils.ParseDay(d); err != nil {
			continue
		}
		done[d] = true
	}
	return done
}

// currentRun walks backward one calendar day at a time from now (or from
// yesterday, when today has no completion yet), counting consecutive
// completed days. The walk is bounded so it always terminates.
func currentRun(done map[string]bool, now time.Time) int {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if !done[utils.FormatDay(day)] {
		// Grace day: a streak stays alive until the end of today
		day = day.AddDate(0, 0, -1)
		if !done[utils.FormatDay(day)] {
			return 0
		}
	}

	run := 0
	for run < constants.StreakScanLimit && done[utils.FormatDay(day)] {
		run++
		day = day.AddDate(0, 0, -1)
	}
	return run
}

// longestRun scans the completed days in descending order and returns the
// longest run of exactly-one-day gaps.
func longestRun(done map[string]bool) int {
	sorted := make([]time.Time, 0, len(done))
	for d := range done {
		t, _ := utils.ParseDay(d)
		sorted = append(sorted, t)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].After(sorted[j]) })

	longest, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		gap := int(sorted[i-1].Sub(sorted[i]).Hours() / 24)
		if gap == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
