package postgres

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/tallyhq/tally/internal/models"
)

func (s *Store) AddTask(task models.Task) error {
	return s.UpdateTask(task)
}

func scanTask(scan func(dest ...interface{}) error) (models.Task, error) {
	var t models.Task
	var status, createdAt, updatedAt string

	if err := scan(&t.ID, &t.Title, &t.Description, &t.DueDate, &status, &createdAt, &updatedAt); err != nil {
		return models.Task{}, err
	}
	t.Status = models.TaskStatus(status)

	var err error
	t.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	t.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt)
	if err != nil {
		return models.Task{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return t, nil
}

func (s *Store) GetTask(id string) (models.Task, error) {
	row := s.db.QueryRow(`
		SELECT id, title, description, due_date, status, created_at, updated_at
		FROM tasks WHERE id = $1`, id)
	return scanTask(row.Scan)
}

func (s *Store) GetAllTasks() ([]models.Task, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, due_date, status, created_at, updated_at
		FROM tasks ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []models.Task
	for rows.Next() {
		t, err := scanTask(rows.Scan)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *Store) UpdateTask(task models.Task) error {
	_, err := s.db.Exec(`
		INSERT INTO tasks (id, title, description, due_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			due_date = excluded.due_date,
			status = excluded.status,
			updated_at = excluded.updated_at`,
		task.ID, task.Title, task.Description, task.DueDate, string(task.Status),
		task.CreatedAt.Format(time.RFC3339), task.UpdatedAt.Format(time.RFC3339))
	return err
}

func (s *Store) UpdateTaskStatus(id string, status models.TaskStatus) error {
	result, err := s.db.Exec(`
		UPDATE tasks SET status = $1, updated_at = $2 WHERE id = $3`,
		string(status), time.Now().Format(time.RFC3339), id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteTask(id string) error {
	result, err := s.db.Exec(`DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("task not found")
	}
	return nil
}
