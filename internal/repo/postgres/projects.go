package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/solodev/soloquest/internal/domain/project"
)

// taskOrder mirrors project.SortTasks: priority high, medium, low,
// ties broken by most-recently-updated first.
const taskOrder = `
	CASE priority
		WHEN 'high' THEN 0
		WHEN 'medium' THEN 1
		ELSE 2
	END, updated_at DESC`

func (b *Backend) GetProjects(ctx context.Context) ([]project.Project, error) {
	rows, err := b.pool.Query(ctx,
		`SELECT id, name, description, status, priority, created_at, updated_at
		 FROM projects
		 ORDER BY updated_at DESC`)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	output := make([]project.Project, 0)
	index := make(map[string]int)

	for rows.Next() {
		var p project.Project

		err = rows.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.Priority, &p.CreatedAt, &p.UpdatedAt)

		if err != nil {
			return nil, err
		}

		p.Tasks = []project.Task{}
		index[p.ID] = len(output)
		output = append(output, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	taskRows, err := b.pool.Query(ctx,
		`SELECT id, project_id, title, description, status, priority, due_date, created_at, updated_at
		 FROM tasks
		 ORDER BY `+taskOrder)

	if err != nil {
		return nil, err
	}

	defer taskRows.Close()

	for taskRows.Next() {
		var t project.Task

		err = taskRows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)

		if err != nil {
			return nil, err
		}

		if i, ok := index[t.ProjectID]; ok {
			output[i].Tasks = append(output[i].Tasks, t)
		}
	}

	return output, taskRows.Err()
}

func (b *Backend) GetProject(ctx context.Context, id string) (project.Project, error) {
	var p project.Project

	err := b.pool.QueryRow(ctx,
		`SELECT id, name, description, status, priority, created_at, updated_at
		 FROM projects
		 WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.Priority, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrNotFound
		}

		return project.Project{}, err
	}

	rows, err := b.pool.Query(ctx,
		`SELECT id, project_id, title, description, status, priority, due_date, created_at, updated_at
		 FROM tasks
		 WHERE project_id = $1
		 ORDER BY `+taskOrder, id)

	if err != nil {
		return project.Project{}, err
	}

	defer rows.Close()

	p.Tasks = []project.Task{}

	for rows.Next() {
		var t project.Task

		err = rows.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.Priority, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)

		if err != nil {
			return project.Project{}, err
		}

		p.Tasks = append(p.Tasks, t)
	}

	return p, rows.Err()
}

func (b *Backend) InsertProject(ctx context.Context, p project.Project) error {
	_, err := b.pool.Exec(ctx,
		`INSERT INTO projects (id, name, description, status, priority, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, p.Name, p.Description, p.Status, p.Priority, p.CreatedAt, p.UpdatedAt)

	return err
}

func (b *Backend) SaveProject(ctx context.Context, p project.Project) error {
	tag, err := b.pool.Exec(ctx,
		`UPDATE projects
		 SET name = $2,
		     description = $3,
		     status = $4,
		     priority = $5,
		     updated_at = $6
		 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Status, p.Priority, p.UpdatedAt)

	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return project.ErrNotFound
	}

	return nil
}

// DeleteProject removes the project's tasks first and then the project
// itself. The FK cascade would cover the tasks on its own; deleting
// explicitly keeps the observable sequence identical to the mirror.
func (b *Backend) DeleteProject(ctx context.Context, id string) (bool, error) {
	if _, err := b.pool.Exec(ctx, `DELETE FROM tasks WHERE project_id = $1`, id); err != nil {
		return false, err
	}

	tag, err := b.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)

	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
