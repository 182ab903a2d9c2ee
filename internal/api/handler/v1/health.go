package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type ConnectionCounter interface {
	Connections() int64
}

type HealthHandler struct {
	db  Pinger
	hub ConnectionCounter
}

func NewHealthHandler(db Pinger, hub ConnectionCounter) *HealthHandler {
	return &HealthHandler{
		db:  db,
		hub: hub,
	}
}

// HandleHealthcheck godoc
// @Summary      Service health
// @Tags         health
// @Produce      json
// @Success      200      {object}   response.HealthResponse
// @Failure      503      {object}   response.HealthResponse
// @Router       / [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	resp := response.HealthResponse{
		Status:      "ok",
		Database:    "up",
		Connections: h.hub.Connections(),
	}

	if err := h.db.PingContext(ctx.Request.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "down"
		ctx.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
