package project

import (
	"time"

	"github.com/google/uuid"
)

func NewFromCreateRequest(req CreateProjectRequest) Project {
	now := time.Now().UTC()

	return Project{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		CreatedAt:   now,
		UpdatedAt:   now,
		Tasks:       []Task{},
	}
}

func NewTaskFromCreateRequest(projectID string, req CreateTaskRequest) Task {
	now := time.Now().UTC()

	return Task{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
		ProjectID:   projectID,
	}
}

// ApplyUpdate merges a patch onto p, field by field, keeping existing
// values where the patch is nil. Tasks are never touched here.
func (p *Project) ApplyUpdate(req UpdateProjectRequest, now time.Time) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Priority != nil {
		p.Priority = *req.Priority
	}
	p.UpdatedAt = now
}

func (t *Task) ApplyUpdate(req UpdateTaskRequest, now time.Time) {
	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	if req.DueDate != nil {
		t.DueDate = req.DueDate
	}
	t.UpdatedAt = now
}
