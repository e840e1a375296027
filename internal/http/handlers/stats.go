package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solodev/soloquest/internal/store"
)

type StatsService interface {
	GetStats(ctx context.Context) (store.Stats, error)
}

type StatsHandler struct {
	svc StatsService
}

func NewStatsHandler(svc StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) GetStats(ctx *gin.Context) {
	stats, err := h.svc.GetStats(ctx.Request.Context())

	if err != nil {
		RespondInternal(ctx, "Could not compute stats")
		return
	}

	RespondJSONWithETag(ctx, http.StatusOK, stats)
}
