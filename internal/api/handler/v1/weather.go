package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
	"github.com/sit-project/sit-api/internal/domain"
	"github.com/sit-project/sit-api/internal/pkg/openweather"
)

type WeatherService interface {
	List(ctx context.Context) ([]domain.Weather, error)
	Get(ctx context.Context, id uint) (domain.Weather, error)
	Delete(ctx context.Context, id uint) error
	Ingest(ctx context.Context, f openweather.Forecast) (int64, error)
	Sync(ctx context.Context) (int64, error)
}

type WeatherHandler struct {
	svc WeatherService
}

func NewWeatherHandler(svc WeatherService) *WeatherHandler {
	return &WeatherHandler{
		svc: svc,
	}
}

func (h *WeatherHandler) Mount(group *gin.RouterGroup) {
	group.POST("/actualizar-clima", h.HandleIngest)
	group.POST("/sincronizar", h.HandleSync)
	group.GET("/listar", h.HandleList)
	group.GET("/:id", h.HandleGet)
	group.DELETE("/:id", h.HandleDelete)
}

// HandleIngest godoc
// @Summary      Store an OpenWeather forecast payload
// @Tags         weather
// @Accept       json
// @Produce      json
// @Param        request   body      openweather.Forecast  true  "forecast"
// @Success      200      {object}   response.WeatherSyncResponse
// @Failure      400      {object}   response.Err
// @Router       /clima/actualizar-clima [post]
// @Security     BearerAuth
func (h *WeatherHandler) HandleIngest(ctx *gin.Context) {
	var forecast openweather.Forecast
	if err := ctx.ShouldBindJSON(&forecast); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	rows, err := h.svc.Ingest(ctx.Request.Context(), forecast)
	if err != nil {
		renderErr(ctx, "weather", "", fmt.Errorf("v1.HandleIngest -> h.svc.Ingest -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.WeatherSyncResponse{Rows: rows})
}

// HandleSync godoc
// @Summary      Fetch the forecast from OpenWeather now
// @Tags         weather
// @Produce      json
// @Success      200      {object}   response.WeatherSyncResponse
// @Failure      503      {object}   response.Err
// @Router       /clima/sincronizar [post]
// @Security     BearerAuth
func (h *WeatherHandler) HandleSync(ctx *gin.Context) {
	rows, err := h.svc.Sync(ctx.Request.Context())
	if err != nil {
		renderErr(ctx, "weather", "", fmt.Errorf("v1.HandleSync -> h.svc.Sync -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.WeatherSyncResponse{Rows: rows})
}

func (h *WeatherHandler) HandleList(ctx *gin.Context) {
	list, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderErr(ctx, "weather", "", fmt.Errorf("v1.HandleList(weather) -> h.svc.List -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, list)
}

func (h *WeatherHandler) HandleGet(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	w, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderErr(ctx, "weather", id, fmt.Errorf("v1.HandleGet(weather) -> h.svc.Get -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, w)
}

func (h *WeatherHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderErr(ctx, "weather", id, fmt.Errorf("v1.HandleDelete(weather) -> h.svc.Delete -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("weather %d deleted", id)})
}
