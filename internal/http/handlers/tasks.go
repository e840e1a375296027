package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solodev/soloquest/internal/domain/project"
)

type TaskService interface {
	CreateTask(ctx context.Context, projectID string, req project.CreateTaskRequest) (project.Task, error)
	UpdateTask(ctx context.Context, projectID, taskID string, req project.UpdateTaskRequest) (project.Task, error)
	DeleteTask(ctx context.Context, projectID, taskID string) (bool, error)
}

type TasksHandler struct {
	svc TaskService
}

func NewTasksHandler(svc TaskService) *TasksHandler {
	return &TasksHandler{svc: svc}
}

func (h *TasksHandler) CreateTask(ctx *gin.Context) {
	projectID := ctx.Param("id")

	var req project.CreateTaskRequest

	if !BindJSON(ctx, &req) {
		return
	}

	t, err := h.svc.CreateTask(ctx.Request.Context(), projectID, req)

	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			RespondNotFound(ctx, "Project not found")
			return
		}

		RespondInternal(ctx, "Could not create task")
		return
	}

	ctx.JSON(http.StatusCreated, t)
}

func (h *TasksHandler) UpdateTask(ctx *gin.Context) {
	projectID := ctx.Param("id")
	taskID := ctx.Param("taskId")

	var req project.UpdateTaskRequest

	if !BindJSON(ctx, &req) {
		return
	}

	t, err := h.svc.UpdateTask(ctx.Request.Context(), projectID, taskID, req)

	if err != nil {
		if errors.Is(err, project.ErrNotFound) || errors.Is(err, project.ErrTaskNotFound) {
			RespondNotFound(ctx, "Task not found")
			return
		}

		RespondInternal(ctx, "Could not update task")
		return
	}

	ctx.JSON(http.StatusOK, t)
}

func (h *TasksHandler) DeleteTask(ctx *gin.Context) {
	projectID := ctx.Param("id")
	taskID := ctx.Param("taskId")

	removed, err := h.svc.DeleteTask(ctx.Request.Context(), projectID, taskID)

	if err != nil {
		RespondInternal(ctx, "Could not delete task")
		return
	}

	if !removed {
		RespondNotFound(ctx, "Task not found")
		return
	}

	ctx.Status(http.StatusNoContent)
}
