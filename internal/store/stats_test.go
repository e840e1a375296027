package store

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solodev/soloquest/internal/auth"
	"github.com/solodev/soloquest/internal/cache"
	"github.com/solodev/soloquest/internal/config"
	"github.com/solodev/soloquest/internal/domain/project"
	"github.com/solodev/soloquest/internal/notifications"
	"github.com/solodev/soloquest/internal/observability"
)

type nopNotifier struct{}

func (nopNotifier) Notify(ctx context.Context, n notifications.Notice) {}

// statsStore lands in memory mode and clears the demo data, so each
// test builds its own fixtures through the facade.
func statsStore(t *testing.T) *Store {
	t.Helper()

	s := New(Deps{
		Config:   config.Config{Env: "dev"},
		Log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics:  observability.NewProm(prometheus.NewRegistry()),
		Notifier: nopNotifier{},
		Cache:    cache.NewMemory(time.Minute),
		Tokens:   auth.NewManager("test-secret", time.Hour),
		Dial: func(ctx context.Context) (Backend, error) {
			return nil, errors.New("unreachable")
		},
	})

	// empty admin creds, so nothing is seeded besides the demo data;
	// wipe it by deleting every project
	ctx := context.Background()
	projects, err := s.GetProjects(ctx)
	require.NoError(t, err)

	for _, p := range projects {
		_, err := s.DeleteProject(ctx, p.ID)
		require.NoError(t, err)
	}

	return s
}

func TestGetStatsAggregates(t *testing.T) {
	s := statsStore(t)
	ctx := context.Background()

	active, err := s.CreateProject(ctx, project.CreateProjectRequest{
		Name:     "Active",
		Status:   project.StatusActive,
		Priority: project.PriorityHigh,
	})
	require.NoError(t, err)

	_, err = s.CreateProject(ctx, project.CreateProjectRequest{
		Name:     "Planned",
		Status:   project.StatusPlanning,
		Priority: project.PriorityLow,
	})
	require.NoError(t, err)

	mk := func(status project.TaskStatus) {
		t.Helper()
		_, err := s.CreateTask(ctx, active.ID, project.CreateTaskRequest{
			Title:    "task",
			Status:   status,
			Priority: project.PriorityMedium,
		})
		require.NoError(t, err)
	}

	mk(project.TaskTodo)
	mk(project.TaskInProgress)
	mk(project.TaskCompleted)
	mk(project.TaskCompleted)

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProjects)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.PlanningProjects)
	assert.Equal(t, 0, stats.CompletedProjects)

	assert.Equal(t, 4, stats.TotalTasks)
	assert.Equal(t, 1, stats.TodoTasks)
	assert.Equal(t, 1, stats.InProgressTasks)
	assert.Equal(t, 2, stats.CompletedTasks)
	assert.Equal(t, 50, stats.TaskCompletionRate)

	require.Len(t, stats.Projects, 2)

	var activeBreakdown *ProjectStats
	for i := range stats.Projects {
		if stats.Projects[i].ProjectID == active.ID {
			activeBreakdown = &stats.Projects[i]
		}
	}
	require.NotNil(t, activeBreakdown)
	assert.Equal(t, 4, activeBreakdown.Total)
	assert.Equal(t, 2, activeBreakdown.Completed)

	require.Len(t, stats.Activity, 7)
	today := time.Now().UTC().Format("2006-01-02")
	assert.Equal(t, today, stats.Activity[6].Date)
	assert.Equal(t, 4, stats.Activity[6].Created)
	assert.Equal(t, 2, stats.Activity[6].Completed)
}

func TestGetStatsEmpty(t *testing.T) {
	s := statsStore(t)

	stats, err := s.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, stats.TotalProjects)
	assert.Equal(t, 0, stats.TotalTasks)
	assert.Equal(t, 0, stats.TaskCompletionRate)
	assert.Len(t, stats.Activity, 7)
	assert.NotNil(t, stats.Projects)
}

func TestWeekActivityWindow(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	day := func(offset int) time.Time {
		return now.AddDate(0, 0, offset)
	}

	tasks := []project.Task{
		// created today
		{CreatedAt: day(0), UpdatedAt: day(0), Status: project.TaskTodo},
		// created three days ago, completed yesterday
		{CreatedAt: day(-3), UpdatedAt: day(-1), Status: project.TaskCompleted},
		// outside the window entirely
		{CreatedAt: day(-10), UpdatedAt: day(-10), Status: project.TaskCompleted},
		// completed but the completing update is out of window
		{CreatedAt: day(-6), UpdatedAt: day(-8), Status: project.TaskCompleted},
	}

	days := weekActivity(tasks, now)
	require.Len(t, days, 7)

	assert.Equal(t, "2026-08-25", days[0].Date)
	assert.Equal(t, "2026-08-31", days[6].Date)

	assert.Equal(t, 1, days[0].Created) // day(-6)
	assert.Equal(t, 1, days[3].Created) // day(-3)
	assert.Equal(t, 1, days[6].Created) // today

	assert.Equal(t, 1, days[5].Completed) // yesterday
	assert.Equal(t, 0, days[6].Completed)

	total := 0
	for _, d := range days {
		total += d.Completed
	}
	assert.Equal(t, 1, total)
}
