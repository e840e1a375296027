package store

import (
	"context"
	"math"
	"time"

	"github.com/solodev/soloquest/internal/domain/project"
)

// Stats is the aggregate view behind the dashboard and statistics
// pages.
type Stats struct {
	TotalProjects     int `json:"totalProjects"`
	PlanningProjects  int `json:"planningProjects"`
	ActiveProjects    int `json:"activeProjects"`
	CompletedProjects int `json:"completedProjects"`

	TotalTasks      int `json:"totalTasks"`
	TodoTasks       int `json:"todoTasks"`
	InProgressTasks int `json:"inProgressTasks"`
	CompletedTasks  int `json:"completedTasks"`

	// Percentage of tasks completed, rounded to the nearest integer.
	TaskCompletionRate int `json:"taskCompletionRate"`

	Projects []ProjectStats `json:"projects"`
	Activity []DayActivity  `json:"activity"`
}

type ProjectStats struct {
	ProjectID  string `json:"projectId"`
	Name       string `json:"name"`
	Total      int    `json:"total"`
	Todo       int    `json:"todo"`
	InProgress int    `json:"inProgress"`
	Completed  int    `json:"completed"`
}

// DayActivity counts tasks created on a calendar day and tasks whose
// latest update completed them on that day, over the trailing week.
type DayActivity struct {
	Date      string `json:"date"` // YYYY-MM-DD
	Created   int    `json:"created"`
	Completed int    `json:"completed"`
}

func (s *Store) GetStats(ctx context.Context) (Stats, error) {
	projects, err := s.GetProjects(ctx)

	if err != nil {
		return Stats{}, err
	}

	out := Stats{
		TotalProjects: len(projects),
		Projects:      make([]ProjectStats, 0, len(projects)),
	}

	var allTasks []project.Task

	for _, p := range projects {
		switch p.Status {
		case project.StatusPlanning:
			out.PlanningProjects++
		case project.StatusActive:
			out.ActiveProjects++
		case project.StatusCompleted:
			out.CompletedProjects++
		}

		ps := ProjectStats{
			ProjectID: p.ID,
			Name:      p.Name,
			Total:     len(p.Tasks),
		}

		for _, t := range p.Tasks {
			switch t.Status {
			case project.TaskTodo:
				ps.Todo++
			case project.TaskInProgress:
				ps.InProgress++
			case project.TaskCompleted:
				ps.Completed++
			}
		}

		out.Projects = append(out.Projects, ps)
		allTasks = append(allTasks, p.Tasks...)
	}

	out.TotalTasks = len(allTasks)

	for _, t := range allTasks {
		switch t.Status {
		case project.TaskTodo:
			out.TodoTasks++
		case project.TaskInProgress:
			out.InProgressTasks++
		case project.TaskCompleted:
			out.CompletedTasks++
		}
	}

	if out.TotalTasks > 0 {
		out.TaskCompletionRate = int(math.Round(float64(out.CompletedTasks) / float64(out.TotalTasks) * 100))
	}

	out.Activity = weekActivity(allTasks, time.Now().UTC())

	return out, nil
}

func weekActivity(tasks []project.Task, now time.Time) []DayActivity {
	days := make([]DayActivity, 7)

	for i := range days {
		day := now.AddDate(0, 0, i-6)
		date := day.Format("2006-01-02")
		days[i].Date = date

		for _, t := range tasks {
			if t.CreatedAt.UTC().Format("2006-01-02") == date {
				days[i].Created++
			}
			if t.Status == project.TaskCompleted && t.UpdatedAt.UTC().Format("2006-01-02") == date {
				days[i].Completed++
			}
		}
	}

	return days
}
