package store

import (
	"context"

	"github.com/solodev/soloquest/internal/domain/project"
	"github.com/solodev/soloquest/internal/domain/user"
)

// Backend is the strategy behind the facade: the full operation set,
// implemented once against PostgreSQL and once against the in-memory
// mirror. The facade owns identifiers, timestamps, hashing and patch
// merging; backends only persist and order.
type Backend interface {
	Ping(ctx context.Context) error

	GetProjects(ctx context.Context) ([]project.Project, error)
	GetProject(ctx context.Context, id string) (project.Project, error)
	InsertProject(ctx context.Context, p project.Project) error
	SaveProject(ctx context.Context, p project.Project) error
	DeleteProject(ctx context.Context, id string) (bool, error)

	GetTask(ctx context.Context, projectID, taskID string) (project.Task, error)
	InsertTask(ctx context.Context, t project.Task) error
	SaveTask(ctx context.Context, t project.Task) error
	DeleteTask(ctx context.Context, projectID, taskID string) (bool, error)

	GetUsers(ctx context.Context) ([]user.User, error)
	GetUserByID(ctx context.Context, id string) (user.User, error)
	GetUserByEmail(ctx context.Context, email string) (user.User, error)
	InsertUser(ctx context.Context, u user.User) error
	SaveUser(ctx context.Context, u user.User) error
	DeleteUser(ctx context.Context, id string) (bool, error)
	CountUsers(ctx context.Context) (int, error)
}
