package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solodev/soloquest/internal/domain/user"
)

type UserService interface {
	GetUsers(ctx context.Context) ([]user.User, error)
	GetUserByID(ctx context.Context, id string) (user.User, error)
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.User, error)
	UpdateUser(ctx context.Context, id string, req user.UpdateUserRequest) (user.User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
}

// UsersHandler backs the settings page's account management. Admin
// only; the RBAC middleware enforces that.
type UsersHandler struct {
	svc UserService
}

func NewUsersHandler(svc UserService) *UsersHandler {
	return &UsersHandler{svc: svc}
}

func (h *UsersHandler) ListUsers(ctx *gin.Context) {
	users, err := h.svc.GetUsers(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not list users")
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items": users,
		"count": len(users),
	})
}

func (h *UsersHandler) GetUser(ctx *gin.Context) {
	id := ctx.Param("id")

	u, err := h.svc.GetUserByID(ctx.Request.Context(), id)

	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			RespondNotFound(ctx, "User not found")
			return
		}

		RespondInternal(ctx, "Could not fetch user")
		return
	}

	ctx.JSON(http.StatusOK, u)
}

func (h *UsersHandler) CreateUser(ctx *gin.Context) {
	var req user.CreateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	u, err := h.svc.CreateUser(ctx.Request.Context(), req)

	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			RespondConflict(ctx, "email_taken", "Email is already in use.")
			return
		}

		RespondInternal(ctx, "Could not create user")
		return
	}

	ctx.JSON(http.StatusCreated, u)
}

func (h *UsersHandler) UpdateUser(ctx *gin.Context) {
	id := ctx.Param("id")

	var req user.UpdateUserRequest

	if !BindJSON(ctx, &req) {
		return
	}

	u, err := h.svc.UpdateUser(ctx.Request.Context(), id, req)

	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			RespondNotFound(ctx, "User not found")
		case errors.Is(err, user.ErrEmailTaken):
			RespondConflict(ctx, "email_taken", "Email is already in use.")
		default:
			RespondInternal(ctx, "Could not update user")
		}
		return
	}

	ctx.JSON(http.StatusOK, u)
}

func (h *UsersHandler) DeleteUser(ctx *gin.Context) {
	id := ctx.Param("id")

	removed, err := h.svc.DeleteUser(ctx.Request.Context(), id)

	if err != nil {
		RespondInternal(ctx, "Could not delete user")
		return
	}

	if !removed {
		RespondNotFound(ctx, "User not found")
		return
	}

	ctx.Status(http.StatusNoContent)
}
