package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/solodev/soloquest/internal/domain/project"
)

func (b *Backend) GetTask(ctx context.Context, projectID, taskID string) (project.Task, error) {
	var t project.Task

	err := b.pool.QueryRow(ctx,
		`SELECT id, project_id, title, description, status, priority, due_date, created_at, updated_at
		 FROM tasks
		 WHERE id = $1 AND project_id = $2`,
		taskID, projectID,
	).Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Task{}, project.ErrTaskNotFound
		}

		return project.Task{}, err
	}

	return t, nil
}

func (b *Backend) InsertTask(ctx context.Context, t project.Task) error {
	_, err := b.pool.Exec(ctx,
		`INSERT INTO tasks (id, project_id, title, description, status, priority, due_date, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		t.ID, t.ProjectID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.CreatedAt, t.UpdatedAt)

	return err
}

func (b *Backend) SaveTask(ctx context.Context, t project.Task) error {
	tag, err := b.pool.Exec(ctx,
		`UPDATE tasks
		 SET title = $3,
		     description = $4,
		     status = $5,
		     priority = $6,
		     due_date = $7,
		     updated_at = $8
		 WHERE id = $1 AND project_id = $2`,
		t.ID, t.ProjectID, t.Title, t.Description, t.Status, t.Priority, t.DueDate, t.UpdatedAt)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return project.ErrTaskNotFound
	}

	return nil
}

func (b *Backend) DeleteTask(ctx context.Context, projectID, taskID string) (bool, error) {
	tag, err := b.pool.Exec(ctx,
		`DELETE FROM tasks WHERE id = $1 AND project_id = $2`,
		taskID, projectID)

	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
