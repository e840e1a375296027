package memory

import (
	"time"

	"github.com/solodev/soloquest/internal/domain/project"
)

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

// SeedDemoData loads the built-in demo projects the app serves when no
// database is reachable. Idempotent: a second call is a no-op.
func (b *Backend) SeedDemoData() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if len(b.projects) > 0 {
		return
	}

	b.projects = []project.Project{
		{
			ID:          "1",
			Name:        "Personal Website",
			Description: "Redesign of my personal portfolio website with a blog section",
			Status:      project.StatusActive,
			Priority:    project.PriorityMedium,
			CreatedAt:   date("2023-11-10"),
			UpdatedAt:   date("2024-03-15"),
			Tasks: []project.Task{
				{
					ID:        "101",
					Title:     "Design homepage wireframe",
					Status:    project.TaskCompleted,
					Priority:  project.PriorityMedium,
					ProjectID: "1",
					CreatedAt: date("2023-11-10"),
					UpdatedAt: date("2023-11-12"),
				},
				{
					ID:        "102",
					Title:     "Implement responsive layout",
					Status:    project.TaskInProgress,
					Priority:  project.PriorityHigh,
					ProjectID: "1",
					CreatedAt: date("2023-11-15"),
					UpdatedAt: date("2023-11-15"),
				},
				{
					ID:        "103",
					Title:     "Add blog functionality",
					Status:    project.TaskTodo,
					Priority:  project.PriorityMedium,
					ProjectID: "1",
					CreatedAt: date("2023-11-20"),
					UpdatedAt: date("2023-11-20"),
				},
			},
		},
		{
			ID:          "2",
			Name:        "Weather App",
			Description: "Mobile weather application with real-time updates and location services",
			Status:      project.StatusPlanning,
			Priority:    project.PriorityLow,
			CreatedAt:   date("2024-01-05"),
			UpdatedAt:   date("2024-01-05"),
			Tasks: []project.Task{
				{
					ID:        "201",
					Title:     "Research weather APIs",
					Status:    project.TaskCompleted,
					Priority:  project.PriorityHigh,
					ProjectID: "2",
					CreatedAt: date("2024-01-05"),
					UpdatedAt: date("2024-01-07"),
				},
				{
					ID:        "202",
					Title:     "Create app design mockups",
					Status:    project.TaskTodo,
					Priority:  project.PriorityMedium,
					ProjectID: "2",
					CreatedAt: date("2024-01-10"),
					UpdatedAt: date("2024-01-10"),
				},
			},
		},
		{
			ID:          "3",
			Name:        "Budget Tracker",
			Description: "Personal finance application to track expenses and savings",
			Status:      project.StatusCompleted,
			Priority:    project.PriorityMedium,
			CreatedAt:   date("2023-09-01"),
			UpdatedAt:   date("2023-12-15"),
			Tasks: []project.Task{
				{
					ID:        "301",
					Title:     "Design database schema",
					Status:    project.TaskCompleted,
					Priority:  project.PriorityHigh,
					ProjectID: "3",
					CreatedAt: date("2023-09-01"),
					UpdatedAt: date("2023-09-05"),
				},
				{
					ID:        "302",
					Title:     "Implement user authentication",
					Status:    project.TaskCompleted,
					Priority:  project.PriorityHigh,
					ProjectID: "3",
					CreatedAt: date("2023-09-10"),
					UpdatedAt: date("2023-09-20"),
				},
				{
					ID:        "303",
					Title:     "Add expense tracking feature",
					Status:    project.TaskCompleted,
					Priority:  project.PriorityMedium,
					ProjectID: "3",
					CreatedAt: date("2023-09-25"),
					UpdatedAt: date("2023-10-10"),
				},
				{
					ID:        "304",
					Title:     "Create reporting dashboard",
					Status:    project.TaskCompleted,
					Priority:  project.PriorityMedium,
					ProjectID: "3",
					CreatedAt: date("2023-10-15"),
					UpdatedAt: date("2023-11-01"),
				},
			},
		},
	}
}
