package v1

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sit-project/sit-api/internal/api/handler/v1/request"
	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
	"github.com/sit-project/sit-api/internal/domain"
)

type MultimediaService interface {
	Create(ctx context.Context, m domain.Multimedia, upload *multipart.FileHeader) (domain.Multimedia, error)
	List(ctx context.Context) ([]domain.Multimedia, error)
	Get(ctx context.Context, id uint) (domain.Multimedia, error)
	Update(ctx context.Context, id uint, m domain.Multimedia) (domain.Multimedia, error)
	Delete(ctx context.Context, id uint) error
}

type MultimediaHandler struct {
	svc MultimediaService
}

func NewMultimediaHandler(svc MultimediaService) *MultimediaHandler {
	return &MultimediaHandler{
		svc: svc,
	}
}

func (h *MultimediaHandler) Mount(group *gin.RouterGroup) {
	group.POST("/agregar", h.HandleCreate)
	group.GET("/listar", h.HandleList)
	group.GET("/buscar/:id", h.HandleGet)
	group.PUT("/actualizar/:id", h.HandleUpdate)
	group.DELETE("/eliminar/:id", h.HandleDelete)
}

// HandleCreate godoc
// @Summary      Upload a multimedia file
// @Tags         multimedia
// @Accept       mpfd
// @Produce      json
// @Param        title         formData  string  true   "title"
// @Param        type          formData  string  true   "type"
// @Param        name          formData  string  false  "name"
// @Param        description   formData  string  false  "description"
// @Param        file          formData  file    true   "image, video, audio or pdf"
// @Success      201      {object}   domain.Multimedia
// @Failure      400      {object}   response.Err
// @Router       /multimedia/agregar [post]
// @Security     BearerAuth
func (h *MultimediaHandler) HandleCreate(ctx *gin.Context) {
	var req request.MultimediaRequest
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	// A missing file is reported by the service.
	upload, _ := ctx.FormFile("file")

	m, err := h.svc.Create(ctx.Request.Context(), req.ToDomain(), upload)
	if err != nil {
		renderErr(ctx, "multimedia", "", fmt.Errorf("v1.HandleCreate(multimedia) -> h.svc.Create -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, m)
}

func (h *MultimediaHandler) HandleList(ctx *gin.Context) {
	list, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderErr(ctx, "multimedia", "", fmt.Errorf("v1.HandleList(multimedia) -> h.svc.List -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, list)
}

func (h *MultimediaHandler) HandleGet(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	m, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderErr(ctx, "multimedia", id, fmt.Errorf("v1.HandleGet(multimedia) -> h.svc.Get -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, m)
}

// HandleUpdate changes the metadata only. The stored file is kept.
func (h *MultimediaHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req request.MultimediaRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	m, err := h.svc.Update(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		renderErr(ctx, "multimedia", id, fmt.Errorf("v1.HandleUpdate(multimedia) -> h.svc.Update -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, m)
}

func (h *MultimediaHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderErr(ctx, "multimedia", id, fmt.Errorf("v1.HandleDelete(multimedia) -> h.svc.Delete -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("multimedia %d deleted", id)})
}
