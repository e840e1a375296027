package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	ping func() error
	mode func() string
}

// NewHealthHandler wires liveness and readiness checks. mode reports
// "database" or "memory" so operators can tell a degraded session
// apart from a healthy one.
func NewHealthHandler(ping func() error, mode func() string) *HealthHandler {
	return &HealthHandler{ping: ping, mode: mode}
}

func (h *HealthHandler) Healthz(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Readyz(ctx *gin.Context) {
	if err := h.ping(); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready", "backend": h.mode()})
}
