package sqlite

import (
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/models"
)

func (s *Store) AddCompletion(c models.Completion) error {
	// Upsert keyed on (habit_id, day): re-adding an existing completion is
	// a no-op rather than a constraint violation
	_, err := s.db.Exec(`
		INSERT INTO completions (id, habit_id, day, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(habit_id, day) DO NOTHING`,
		c.ID, c.HabitID, c.Day, c.CreatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) GetCompletion(habitID, day string) (models.Completion, error) {
	row := s.db.QueryRow(`
		SELECT id, habit_id, day, created_at
		FROM completions WHERE habit_id = ? AND day = ?`, habitID, day)

	var c models.Completion
	var createdAt string
	if err := row.Scan(&c.ID, &c.HabitID, &c.Day, &createdAt); err != nil {
		return models.Completion{}, err
	}

	var err error
	c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Completion{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return c, nil
}

func (s *Store) queryCompletions(query string, args ...interface{}) ([]models.Completion, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var completions []models.Completion
	for rows.Next() {
		var c models.Completion
		var createdAt string

		if err := rows.Scan(&c.ID, &c.HabitID, &c.Day, &createdAt); err != nil {
			return nil, err
		}
		c.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at for completion %s: %w", c.ID, err)
		}
		completions = append(completions, c)
	}

	return completions, rows.Err()
}

func (s *Store) GetCompletionsForHabit(habitID string) ([]models.Completion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, day, created_at
		FROM completions WHERE habit_id = ?
		ORDER BY day DESC`, habitID)
}

func (s *Store) GetCompletionsForDay(day string) ([]models.Completion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, day, created_at
		FROM completions WHERE day = ?
		ORDER BY created_at`, day)
}

func (s *Store) GetAllCompletions() ([]models.Completion, error) {
	return s.queryCompletions(`
		SELECT id, habit_id, day, created_at
		FROM completions
		ORDER BY day DESC`)
}

func (s *Store) DeleteCompletion(habitID, day string) error {
	result, err := s.db.Exec(`
		DELETE FROM completions WHERE habit_id = ? AND day = ?`, habitID, day)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("completion not found")
	}
	return nil
}
