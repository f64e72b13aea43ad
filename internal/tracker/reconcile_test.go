package tracker

import (
	"testing"

	"github.com/tallyhq/tally/internal/models"
)

func TestNamesMatch(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		want  bool
	}{
		{name: "exact", a: "Read", b: "Read", want: true},
		{name: "case insensitive", a: "read", b: "READ", want: true},
		{name: "task inside habit", a: "Read", b: "Daily Reading", want: true},
		{name: "habit inside task", a: "Daily Reading", b: "Read", want: true},
		{name: "no overlap", a: "Read", b: "Exercise", want: false},
		{name: "empty left", a: "", b: "Read", want: false},
		{name: "empty right", a: "Read", b: "", want: false},
		{name: "both empty", a: "", b: "", want: false},
		{name: "whitespace only", a: "   ", b: "Read", want: false},
		{name: "partial word", a: "Run", b: "Morning Run Club", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := namesMatch(tt.a, tt.b); got != tt.want {
				t.Errorf("namesMatch(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMatchHabitFirstWins(t *testing.T) {
	habits := []models.Habit{
		{ID: "h1", Name: "Daily Reading"},
		{ID: "h2", Name: "Read the news"},
	}

	habit, ok := MatchHabit("Read", habits)
	if !ok {
		t.Fatal("expected a match")
	}
	if habit.ID != "h1" {
		t.Errorf("matched %q, want first habit h1", habit.ID)
	}
}

func TestMatchHabitNoMatch(t *testing.T) {
	habits := []models.Habit{{ID: "h1", Name: "Exercise"}}

	if _, ok := MatchHabit("Read", habits); ok {
		t.Error("expected no match")
	}
	if _, ok := MatchHabit("Read", nil); ok {
		t.Error("expected no match against empty habit list")
	}
}

func TestMatchTask(t *testing.T) {
	tasks := []models.Task{
		{ID: "t1", Title: "File taxes"},
		{ID: "t2", Title: "Read"},
	}

	task, ok := MatchTask("Daily Reading", tasks)
	if !ok {
		t.Fatal("expected a match")
	}
	if task.ID != "t2" {
		t.Errorf("matched %q, want t2", task.ID)
	}
}
