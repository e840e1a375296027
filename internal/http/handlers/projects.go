package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solodev/soloquest/internal/domain/project"
)

type ProjectService interface {
	GetProjects(ctx context.Context) ([]project.Project, error)
	GetProject(ctx context.Context, id string) (project.Project, error)
	CreateProject(ctx context.Context, req project.CreateProjectRequest) (project.Project, error)
	UpdateProject(ctx context.Context, id string, req project.UpdateProjectRequest) (project.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
}

type ProjectsHandler struct {
	svc ProjectService
}

func NewProjectsHandler(svc ProjectService) *ProjectsHandler {
	return &ProjectsHandler{svc: svc}
}

func (h *ProjectsHandler) ListProjects(ctx *gin.Context) {
	projects, err := h.svc.GetProjects(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list projects")
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, gin.H{
		"items": projects,
		"count": len(projects),
	})
}

func (h *ProjectsHandler) GetProject(ctx *gin.Context) {
	id := ctx.Param("id")

	p, err := h.svc.GetProject(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			RespondNotFound(ctx, "Project not found")
			return
		}

		RespondInternal(ctx, "Could not fetch project")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

func (h *ProjectsHandler) CreateProject(ctx *gin.Context) {
	var req project.CreateProjectRequest

	if !BindJSON(ctx, &req) {
		return
	}

	p, err := h.svc.CreateProject(ctx.Request.Context(), req)

	if err != nil {
		RespondInternal(ctx, "Could not create project")
		return
	}

	ctx.JSON(http.StatusCreated, p)
}

func (h *ProjectsHandler) UpdateProject(ctx *gin.Context) {
	id := ctx.Param("id")

	var req project.UpdateProjectRequest

	if !BindJSON(ctx, &req) {
		return
	}

	p, err := h.svc.UpdateProject(ctx.Request.Context(), id, req)

	if err != nil {
		if errors.Is(err, project.ErrNotFound) {
			RespondNotFound(ctx, "Project not found")
			return
		}

		RespondInternal(ctx, "Could not update project")
		return
	}

	ctx.JSON(http.StatusOK, p)
}

func (h *ProjectsHandler) DeleteProject(ctx *gin.Context) {
	id := ctx.Param("id")

	removed, err := h.svc.DeleteProject(ctx.Request.Context(), id)

	if err != nil {
		RespondInternal(ctx, "Could not delete project")
		return
	}

	if !removed {
		RespondNotFound(ctx, "Project not found")
		return
	}

	ctx.Status(http.StatusNoContent)
}
