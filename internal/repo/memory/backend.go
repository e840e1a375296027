package memory

import (
	"context"
	"sync"

	"github.com/solodev/soloquest/internal/domain/project"
	"github.com/solodev/soloquest/internal/domain/user"
)

// Backend is the in-memory mirror. Slices keep insertion order, like
// the arrays it stands in for; reads return sorted deep copies so
// callers can never mutate the mirror behind the lock.
type Backend struct {
	mu       sync.RWMutex
	projects []project.Project
	users    []user.User
}

func NewBackend() *Backend {
	return &Backend{
		projects: []project.Project{},
		users:    []user.User{},
	}
}

func (b *Backend) Ping(ctx context.Context) error {
	return nil
}

func (b *Backend) GetProjects(ctx context.Context) ([]project.Project, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]project.Project, 0, len(b.projects))
	for _, p := range b.projects {
		out = append(out, cloneProject(p))
	}

	project.SortProjects(out)
	for i := range out {
		project.SortTasks(out[i].Tasks)
	}

	return out, nil
}

func (b *Backend) GetProject(ctx context.Context, id string) (project.Project, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, p := range b.projects {
		if p.ID == id {
			out := cloneProject(p)
			project.SortTasks(out.Tasks)
			return out, nil
		}
	}

	return project.Project{}, project.ErrNotFound
}

func (b *Backend) InsertProject(ctx context.Context, p project.Project) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.projects = append(b.projects, cloneProject(p))
	return nil
}

// SaveProject overwrites the scalar fields of an existing project.
// The task collection is left untouched.
func (b *Backend) SaveProject(ctx context.Context, p project.Project) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.projects {
		if b.projects[i].ID == p.ID {
			b.projects[i].Name = p.Name
			b.projects[i].Description = p.Description
			b.projects[i].Status = p.Status
			b.projects[i].Priority = p.Priority
			b.projects[i].UpdatedAt = p.UpdatedAt
			return nil
		}
	}

	return project.ErrNotFound
}

// DeleteProject removes the project and, with it, every owned task.
func (b *Backend) DeleteProject(ctx context.Context, id string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i := range b.projects {
		if b.projects[i].ID == id {
			b.projects = append(b.projects[:i], b.projects[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

func (b *Backend) GetTask(ctx context.Context, projectID, taskID string) (project.Task, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p := b.findProject(projectID)
	if p == nil {
		return project.Task{}, project.ErrNotFound
	}

	for _, t := range p.Tasks {
		if t.ID == taskID {
			return cloneTask(t), nil
		}
	}

	return project.Task{}, project.ErrTaskNotFound
}

func (b *Backend) InsertTask(ctx context.Context, t project.Task) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p := b.findProject(t.ProjectID)
	if p == nil {
		return project.ErrNotFound
	}

	p.Tasks = append(p.Tasks, cloneTask(t))
	return nil
}

func (b *Backend) SaveTask(ctx context.Context, t project.Task) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	p := b.findProject(t.ProjectID)
	if p == nil {
		return project.ErrNotFound
	}

	for i := range p.Tasks {
		if p.Tasks[i].ID == t.ID {
			p.Tasks[i] = cloneTask(t)
			return nil
		}
	}

	return project.ErrTaskNotFound
}

func (b *Backend) DeleteTask(ctx context.Context, projectID, taskID string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	p := b.findProject(projectID)
	if p == nil {
		return false, nil
	}

	for i := range p.Tasks {
		if p.Tasks[i].ID == taskID {
			p.Tasks = append(p.Tasks[:i], p.Tasks[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}

// findProject returns a pointer into the backing slice; callers must
// hold the lock.
func (b *Backend) findProject(id string) *project.Project {
	for i := range b.projects {
		if b.projects[i].ID == id {
			return &b.projects[i]
		}
	}
	return nil
}

func cloneProject(p project.Project) project.Project {
	out := p
	out.Tasks = make([]project.Task, len(p.Tasks))
	for i, t := range p.Tasks {
		out.Tasks[i] = cloneTask(t)
	}
	return out
}

func cloneTask(t project.Task) project.Task {
	out := t
	if t.DueDate != nil {
		due := *t.DueDate
		out.DueDate = &due
	}
	return out
}
