package project

import (
	"errors"
	"time"
)

type Status string

const (
	StatusPlanning  Status = "planning"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in-progress"
	TaskCompleted  TaskStatus = "completed"
)

var ErrNotFound = errors.New("project not found")
var ErrTaskNotFound = errors.New("task not found")

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Tasks       []Task    `json:"tasks"`
}

type Task struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      TaskStatus `json:"status"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	ProjectID   string     `json:"projectId"`
}

type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required,min=1,max=120"`
	Description string   `json:"description" binding:"omitempty,max=1000"`
	Status      Status   `json:"status" binding:"required,oneof=planning active completed archived"`
	Priority    Priority `json:"priority" binding:"required,oneof=low medium high"`
}

// Patch payload: nil means "keep the existing value".
type UpdateProjectRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1,max=120"`
	Description *string   `json:"description" binding:"omitempty,max=1000"`
	Status      *Status   `json:"status" binding:"omitempty,oneof=planning active completed archived"`
	Priority    *Priority `json:"priority" binding:"omitempty,oneof=low medium high"`
}

type CreateTaskRequest struct {
	Title       string     `json:"title" binding:"required,min=1,max=200"`
	Description string     `json:"description" binding:"omitempty,max=1000"`
	Status      TaskStatus `json:"status" binding:"required,oneof=todo in-progress completed"`
	Priority    Priority   `json:"priority" binding:"required,oneof=low medium high"`
	DueDate     *time.Time `json:"dueDate"`
}

// Patch payload: nil keeps the existing value, including the due date.
type UpdateTaskRequest struct {
	Title       *string     `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string     `json:"description" binding:"omitempty,max=1000"`
	Status      *TaskStatus `json:"status" binding:"omitempty,oneof=todo in-progress completed"`
	Priority    *Priority   `json:"priority" binding:"omitempty,oneof=low medium high"`
	DueDate     *time.Time  `json:"dueDate"`
}
