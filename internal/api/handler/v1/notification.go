package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sit-project/sit-api/internal/api/handler/v1/request"
	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
	"github.com/sit-project/sit-api/internal/domain"
)

type NotificationService interface {
	ResourceService[domain.Notification]
	ListForUser(ctx context.Context, userID *uint) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uint) (domain.Notification, error)
}

type WebsocketServer interface {
	ServeWS(w http.ResponseWriter, r *http.Request) error
}

type NotificationHandler struct {
	*ResourceHandler[domain.Notification, request.NotificationRequest, *request.NotificationRequest]
	svc NotificationService
	ws  WebsocketServer
}

func NewNotificationHandler(svc NotificationService, ws WebsocketServer) *NotificationHandler {
	return &NotificationHandler{
		ResourceHandler: NewResourceHandler[domain.Notification, request.NotificationRequest]("notification", svc),
		svc:             svc,
		ws:              ws,
	}
}

func (h *NotificationHandler) Mount(group *gin.RouterGroup) {
	group.POST("/agregar", h.HandleCreate)
	group.GET("/listar", h.HandleListForUser)
	group.GET("/buscar/:id", h.HandleGet)
	group.PUT("/actualizar/:id", h.HandleUpdate)
	group.PUT("/marcar-leida/:id", h.HandleMarkRead)
	group.DELETE("/eliminar/:id", h.HandleDelete)
	group.GET("/ws", h.HandleWebSocket)
}

// HandleListForUser godoc
// @Summary      List notifications
// @Tags         notifications
// @Produce      json
// @Param        user_id   query     int  false  "only notifications of this user"
// @Success      200      {array}    domain.Notification
// @Failure      400      {object}   response.Err
// @Router       /notificacion/listar [get]
// @Security     BearerAuth
func (h *NotificationHandler) HandleListForUser(ctx *gin.Context) {
	var userID *uint
	if s := ctx.Query("user_id"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("user_id: %w", errInvalidID)))
			return
		}
		id := uint(n)
		userID = &id
	}

	list, err := h.svc.ListForUser(ctx.Request.Context(), userID)
	if err != nil {
		renderErr(ctx, "notification", "", fmt.Errorf("v1.HandleListForUser -> h.svc.ListForUser -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// HandleMarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "notification id"
// @Success      200      {object}   domain.Notification
// @Failure      404      {object}   response.Err
// @Router       /notificacion/marcar-leida/{id} [put]
// @Security     BearerAuth
func (h *NotificationHandler) HandleMarkRead(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	n, err := h.svc.MarkRead(ctx.Request.Context(), id)
	if err != nil {
		renderErr(ctx, "notification", id, fmt.Errorf("v1.HandleMarkRead -> h.svc.MarkRead -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, n)
}

// HandleWebSocket godoc
// @Summary      Subscribe to new notifications
// @Description  Upgrades to a websocket that receives {"type":"nueva_notificacion","data":{...}} messages.
// @Tags         notifications
// @Router       /notificacion/ws [get]
// @Security     BearerAuth
func (h *NotificationHandler) HandleWebSocket(ctx *gin.Context) {
	// The upgrader writes its own error response.
	if err := h.ws.ServeWS(ctx.Writer, ctx.Request); err != nil {
		zap.L().Debug("websocket upgrade failed", zap.Error(err))
	}
}
