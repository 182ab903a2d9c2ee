package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sit-project/sit-api/internal/api/handler/v1/request"
	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
	"github.com/sit-project/sit-api/internal/api/middleware"
	"github.com/sit-project/sit-api/internal/domain"
)

var errNoClaims = errors.New("no identity on request")

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uint) (domain.User, error)
	UpdateUser(ctx context.Context, id uint, update domain.UserUpdate) (domain.User, error)
	DeleteUser(ctx context.Context, id uint) error
}

type UserHandler struct {
	svc  UserService
	auth *AuthHandler
}

func NewUserHandler(svc UserService, auth *AuthHandler) *UserHandler {
	return &UserHandler{
		svc:  svc,
		auth: auth,
	}
}

func (h *UserHandler) Mount(group *gin.RouterGroup) {
	group.GET("/user-info", h.HandleUserInfo)
	group.GET("/listar", h.HandleListUsers)
	group.GET("/buscar/:id", h.HandleGetUser)
	group.PUT("/actualizar/:id", h.HandleUpdateUser)
	group.DELETE("/eliminar/:id", h.HandleDeleteUser)
	group.POST("/cerrar-sesion", h.auth.HandleLogout)
}

// HandleUserInfo godoc
// @Summary      Claims of the authenticated caller
// @Tags         users
// @Produce      json
// @Success      200      {object}   domain.Claims
// @Failure      401      {object}   response.Err
// @Router       /admin/user-info [get]
// @Security     BearerAuth
func (h *UserHandler) HandleUserInfo(ctx *gin.Context) {
	claims, ok := middleware.Claims(ctx)
	if !ok {
		response.RenderErr(ctx, response.ErrUnauthorized(errNoClaims))
		return
	}

	ctx.JSON(http.StatusOK, claims)
}

// HandleListUsers godoc
// @Summary      List users with their person record
// @Tags         users
// @Produce      json
// @Success      200      {array}    domain.User
// @Router       /admin/listar [get]
// @Security     BearerAuth
func (h *UserHandler) HandleListUsers(ctx *gin.Context) {
	users, err := h.svc.ListUsers(ctx.Request.Context())
	if err != nil {
		renderErr(ctx, "user", "", fmt.Errorf("v1.HandleListUsers -> h.svc.ListUsers -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// HandleGetUser godoc
// @Summary      Get a user by ID
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "user id"
// @Success      200      {object}   domain.User
// @Failure      404      {object}   response.Err
// @Router       /admin/buscar/{id} [get]
// @Security     BearerAuth
func (h *UserHandler) HandleGetUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), id)
	if err != nil {
		renderErr(ctx, "user", id, fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleUpdateUser godoc
// @Summary      Partially update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id        path      int                        true  "user id"
// @Param        request   body      request.UpdateUserRequest  true  "request body"
// @Success      200      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /admin/actualizar/{id} [put]
// @Security     BearerAuth
func (h *UserHandler) HandleUpdateUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req request.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.UpdateUser(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		renderErr(ctx, "user", id, fmt.Errorf("v1.HandleUpdateUser -> h.svc.UpdateUser -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// HandleDeleteUser godoc
// @Summary      Delete a user, their person record and tokens
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "user id"
// @Success      200      {object}   response.MessageResponse
// @Failure      404      {object}   response.Err
// @Router       /admin/eliminar/{id} [delete]
// @Security     BearerAuth
func (h *UserHandler) HandleDeleteUser(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteUser(ctx.Request.Context(), id); err != nil {
		renderErr(ctx, "user", id, fmt.Errorf("v1.HandleDeleteUser -> h.svc.DeleteUser -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("user %d deleted", id)})
}
