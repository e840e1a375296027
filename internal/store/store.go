package store

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/solodev/soloquest/internal/auth"
	"github.com/solodev/soloquest/internal/cache"
	"github.com/solodev/soloquest/internal/config"
	"github.com/solodev/soloquest/internal/db"
	"github.com/solodev/soloquest/internal/domain/project"
	"github.com/solodev/soloquest/internal/domain/user"
	"github.com/solodev/soloquest/internal/notifications"
	"github.com/solodev/soloquest/internal/observability"
	"github.com/solodev/soloquest/internal/repo/memory"
	"github.com/solodev/soloquest/internal/repo/postgres"
)

const projectsCacheKey = "projects:list"

// Dialer opens the database-backed Backend. Swapped out in tests to
// simulate an unreachable or flaky store.
type Dialer func(ctx context.Context) (Backend, error)

type Deps struct {
	Config   config.Config
	Log      *slog.Logger
	Metrics  *observability.Prom
	Notifier notifications.Notifier
	Cache    cache.Cache
	Tokens   *auth.Manager
	Dial     Dialer // nil means PostgreSQL
}

// Store is the single point of contact between handlers and durable
// state. It connects lazily on first use: if the database is reachable
// it stays store-backed for the whole session, otherwise it runs on
// the seeded in-memory mirror. A store-backed operation that fails
// falls back to the mirror for that one call only.
type Store struct {
	cfg      config.Config
	log      *slog.Logger
	metrics  *observability.Prom
	notifier notifications.Notifier
	cache    cache.Cache
	tokens   *auth.Manager
	dial     Dialer

	mu          sync.Mutex
	connected   bool
	storeBacked bool
	db          Backend
	mem         *memory.Backend
}

func New(deps Deps) *Store {
	s := &Store{
		cfg:      deps.Config,
		log:      deps.Log,
		metrics:  deps.Metrics,
		notifier: deps.Notifier,
		cache:    deps.Cache,
		tokens:   deps.Tokens,
		dial:     deps.Dial,
		mem:      memory.NewBackend(),
	}

	if s.dial == nil {
		s.dial = s.dialPostgres
	}

	return s
}

func (s *Store) dialPostgres(ctx context.Context) (Backend, error) {
	pool, err := db.NewPool(ctx, s.cfg.DBURL)

	if err != nil {
		return nil, err
	}

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	return postgres.NewBackend(pool), nil
}

// ensureConnected performs the one-time connect handshake. Landing in
// memory-backed mode is terminal for the session; there is no retry.
func (s *Store) ensureConnected(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.connected {
		return
	}
	s.connected = true

	backend, err := s.dial(ctx)

	if err != nil {
		s.log.WarnContext(ctx, "database unreachable, serving in-memory data", "err", err)
		s.notifier.Notify(ctx, notifications.Notice{
			Code:    "fallback_mode",
			Message: "Database unavailable — using fallback data.",
		})

		s.mem.SeedDemoData()
		s.seedAdmin(ctx, s.mem)
		return
	}

	s.db = backend
	s.storeBacked = true
	s.seedAdmin(ctx, backend)

	s.log.InfoContext(ctx, "connected to database")
}

// seedAdmin creates the bootstrap admin account when the backend holds
// no users at all.
func (s *Store) seedAdmin(ctx context.Context, b Backend) {
	if s.cfg.AdminEmail == "" || s.cfg.AdminPassword == "" {
		return
	}

	n, err := b.CountUsers(ctx)

	if err != nil || n > 0 {
		return
	}

	u, err := s.newUser(user.CreateUserRequest{
		Email:    s.cfg.AdminEmail,
		Password: s.cfg.AdminPassword,
		Name:     s.cfg.AdminName,
		Role:     user.RoleAdmin,
	})

	if err != nil {
		s.log.ErrorContext(ctx, "could not hash admin password", "err", err)
		return
	}

	if err := b.InsertUser(ctx, u); err != nil {
		s.log.ErrorContext(ctx, "could not seed admin user", "err", err)
	}
}

// StoreBacked reports whether the session ended up on the real
// database. Exposed for readiness checks.
func (s *Store) StoreBacked(ctx context.Context) bool {
	s.ensureConnected(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeBacked
}

func (s *Store) Ping(ctx context.Context) error {
	s.ensureConnected(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storeBacked {
		return s.db.Ping(ctx)
	}

	return s.mem.Ping(ctx)
}

// run executes one logical operation. Store-backed calls that fail for
// infrastructure reasons are retried once against the mirror; domain
// outcomes (not found, email taken) pass through untouched and never
// demote the call. The degraded result tells callers the answer came
// from the mirror while the session is store-backed, so it must not be
// cached as authoritative.
func (s *Store) run(ctx context.Context, op string, fn func(b Backend) error) (degraded bool, err error) {
	s.ensureConnected(ctx)

	if s.isStoreBacked() {
		err := s.metrics.ObserveOp(op, func() error { return fn(s.db) })

		if err == nil || isDomainError(err) {
			return false, err
		}

		s.noteFallback(ctx, op, err)
		return true, fn(s.mem)
	}

	return false, fn(s.mem)
}

func (s *Store) isStoreBacked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeBacked
}

func (s *Store) noteFallback(ctx context.Context, op string, err error) {
	s.metrics.ObserveFallback(op)
	s.log.WarnContext(ctx, "store operation failed, using in-memory fallback", "op", op, "err", err)
	s.notifier.Notify(ctx, notifications.Notice{
		Code:    "fallback_call",
		Message: "A database request failed — showing fallback data for this request.",
	})
}

func isDomainError(err error) bool {
	return errors.Is(err, project.ErrNotFound) ||
		errors.Is(err, project.ErrTaskNotFound) ||
		errors.Is(err, user.ErrNotFound) ||
		errors.Is(err, user.ErrEmailTaken)
}

// --- Projects ---

func (s *Store) GetProjects(ctx context.Context) ([]project.Project, error) {
	if data, ok := s.cache.Get(ctx, projectsCacheKey); ok {
		var out []project.Project

		if err := json.Unmarshal(data, &out); err == nil {
			s.metrics.CacheHits.Inc()
			return out, nil
		}
	}
	s.metrics.CacheMisses.Inc()

	var out []project.Project

	degraded, err := s.run(ctx, "get_projects", func(b Backend) error {
		var err error
		out, err = b.GetProjects(ctx)
		return err
	})

	if err != nil {
		return nil, err
	}

	// mirror data served during a store-backed session is a stopgap,
	// never cache it over the real thing
	if !degraded {
		if data, err := json.Marshal(out); err == nil {
			s.cache.Set(ctx, projectsCacheKey, data)
		}
	}

	return out, nil
}

func (s *Store) GetProject(ctx context.Context, id string) (project.Project, error) {
	var out project.Project

	_, err := s.run(ctx, "get_project", func(b Backend) error {
		var err error
		out, err = b.GetProject(ctx, id)
		return err
	})

	return out, err
}

func (s *Store) CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.Project, error) {
	p := project.NewFromCreateRequest(req)

	_, err := s.run(ctx, "create_project", func(b Backend) error {
		return b.InsertProject(ctx, p)
	})

	if err != nil {
		return project.Project{}, err
	}

	s.invalidateProjects(ctx)
	return p, nil
}

func (s *Store) UpdateProject(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error) {
	now := time.Now().UTC()

	var out project.Project

	_, err := s.run(ctx, "update_project", func(b Backend) error {
		p, err := b.GetProject(ctx, id)

		if err != nil {
			return err
		}

		p.ApplyUpdate(req, now)

		if err := b.SaveProject(ctx, p); err != nil {
			return err
		}

		out = p
		return nil
	})

	if err != nil {
		return project.Project{}, err
	}

	s.invalidateProjects(ctx)
	return out, nil
}

func (s *Store) DeleteProject(ctx context.Context, id string) (bool, error) {
	var removed bool

	_, err := s.run(ctx, "delete_project", func(b Backend) error {
		var err error
		removed, err = b.DeleteProject(ctx, id)
		return err
	})

	if err != nil {
		return false, err
	}

	if removed {
		s.invalidateProjects(ctx)
	}
	return removed, nil
}

// --- Tasks ---

func (s *Store) CreateTask(ctx context.Context, projectID string, req project.CreateTaskRequest) (project.Task, error) {
	t := project.NewTaskFromCreateRequest(projectID, req)

	_, err := s.run(ctx, "create_task", func(b Backend) error {
		// never create an orphan: the owning project must exist
		if _, err := b.GetProject(ctx, projectID); err != nil {
			return err
		}

		return b.InsertTask(ctx, t)
	})

	if err != nil {
		return project.Task{}, err
	}

	s.invalidateProjects(ctx)
	return t, nil
}

func (s *Store) UpdateTask(ctx context.Context, projectID, taskID string, req project.UpdateTaskRequest) (project.Task, error) {
	now := time.Now().UTC()

	var out project.Task

	_, err := s.run(ctx, "update_task", func(b Backend) error {
		t, err := b.GetTask(ctx, projectID, taskID)

		if err != nil {
			return err
		}

		t.ApplyUpdate(req, now)

		if err := b.SaveTask(ctx, t); err != nil {
			return err
		}

		out = t
		return nil
	})

	if err != nil {
		return project.Task{}, err
	}

	s.invalidateProjects(ctx)
	return out, nil
}

func (s *Store) DeleteTask(ctx context.Context, projectID, taskID string) (bool, error) {
	var removed bool

	_, err := s.run(ctx, "delete_task", func(b Backend) error {
		var err error
		removed, err = b.DeleteTask(ctx, projectID, taskID)
		return err
	})

	if err != nil {
		return false, err
	}

	if removed {
		s.invalidateProjects(ctx)
	}
	return removed, nil
}

func (s *Store) invalidateProjects(ctx context.Context) {
	s.cache.Delete(ctx, projectsCacheKey)
}
