package v1

import (
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
)

type ResourceService[D any] interface {
	AcceptsImages() bool
	Create(ctx context.Context, d D) (D, error)
	CreateWithImages(ctx context.Context, d D, uploads []*multipart.FileHeader) (D, error)
	List(ctx context.Context) ([]D, error)
	Get(ctx context.Context, id uint) (D, error)
	Update(ctx context.Context, id uint, d D) (D, error)
	UpdateWithImages(ctx context.Context, id uint, d D, uploads []*multipart.FileHeader) (D, error)
	Delete(ctx context.Context, id uint) error
}

// Request is a validated body that maps onto the domain type D.
type Request[R any, D any] interface {
	*R
	Validate() error
	ToDomain() D
}

// ResourceHandler serves the agregar/listar/buscar/actualizar/eliminar
// routes of one catalogue resource.
type ResourceHandler[D any, R any, PR Request[R, D]] struct {
	name string
	svc  ResourceService[D]
}

func NewResourceHandler[D any, R any, PR Request[R, D]](name string, svc ResourceService[D]) *ResourceHandler[D, R, PR] {
	return &ResourceHandler[D, R, PR]{
		name: name,
		svc:  svc,
	}
}

func (h *ResourceHandler[D, R, PR]) Mount(group *gin.RouterGroup) {
	group.POST("/agregar", h.HandleCreate)
	group.GET("/listar", h.HandleList)
	group.GET("/buscar/:id", h.HandleGet)
	group.PUT("/actualizar/:id", h.HandleUpdate)
	group.DELETE("/eliminar/:id", h.HandleDelete)
}

// bind reads JSON, or a multipart form with its images when the resource owns images.
func (h *ResourceHandler[D, R, PR]) bind(ctx *gin.Context) (D, []*multipart.FileHeader, bool) {
	var zero D
	req := PR(new(R))

	multipartBody := strings.HasPrefix(ctx.ContentType(), gin.MIMEMultipartPOSTForm)
	var err error
	if multipartBody && h.svc.AcceptsImages() {
		err = ctx.ShouldBind(req)
	} else {
		err = ctx.ShouldBindJSON(req)
	}
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return zero, nil, false
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return zero, nil, false
	}

	var uploads []*multipart.FileHeader
	if multipartBody && h.svc.AcceptsImages() {
		if form, err := ctx.MultipartForm(); err == nil {
			uploads = form.File["images"]
		}
	}

	return req.ToDomain(), uploads, true
}

// HandleCreate godoc
// @Summary      Create a resource
// @Tags         resources
// @Accept       json,mpfd
// @Produce      json
// @Success      201      {object}   any
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /{resource}/agregar [post]
// @Security     BearerAuth
func (h *ResourceHandler[D, R, PR]) HandleCreate(ctx *gin.Context) {
	d, uploads, ok := h.bind(ctx)
	if !ok {
		return
	}

	var created D
	var err error
	if len(uploads) > 0 {
		created, err = h.svc.CreateWithImages(ctx.Request.Context(), d, uploads)
	} else {
		created, err = h.svc.Create(ctx.Request.Context(), d)
	}
	if err != nil {
		renderErr(ctx, h.name, "", fmt.Errorf("v1.HandleCreate(%s) -> h.svc.Create -> %w", h.name, err))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleList godoc
// @Summary      List resources
// @Tags         resources
// @Produce      json
// @Success      200      {array}    any
// @Failure      500      {object}   response.Err
// @Router       /{resource}/listar [get]
// @Security     BearerAuth
func (h *ResourceHandler[D, R, PR]) HandleList(ctx *gin.Context) {
	list, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		renderErr(ctx, h.name, "", fmt.Errorf("v1.HandleList(%s) -> h.svc.List -> %w", h.name, err))
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// HandleGet godoc
// @Summary      Get a resource by id
// @Tags         resources
// @Produce      json
// @Param        id   path      int  true  "resource id"
// @Success      200      {object}   any
// @Failure      404      {object}   response.Err
// @Router       /{resource}/buscar/{id} [get]
// @Security     BearerAuth
func (h *ResourceHandler[D, R, PR]) HandleGet(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	d, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderErr(ctx, h.name, id, fmt.Errorf("v1.HandleGet(%s) -> h.svc.Get -> %w", h.name, err))
		return
	}

	ctx.JSON(http.StatusOK, d)
}

// HandleUpdate godoc
// @Summary      Replace a resource
// @Tags         resources
// @Accept       json,mpfd
// @Produce      json
// @Param        id   path      int  true  "resource id"
// @Success      200      {object}   any
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /{resource}/actualizar/{id} [put]
// @Security     BearerAuth
func (h *ResourceHandler[D, R, PR]) HandleUpdate(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	d, uploads, ok := h.bind(ctx)
	if !ok {
		return
	}

	var updated D
	var err error
	if len(uploads) > 0 {
		updated, err = h.svc.UpdateWithImages(ctx.Request.Context(), id, d, uploads)
	} else {
		updated, err = h.svc.Update(ctx.Request.Context(), id, d)
	}
	if err != nil {
		renderErr(ctx, h.name, id, fmt.Errorf("v1.HandleUpdate(%s) -> h.svc.Update -> %w", h.name, err))
		return
	}

	ctx.JSON(http.StatusOK, updated)
}

// HandleDelete godoc
// @Summary      Delete a resource and its attachments
// @Tags         resources
// @Produce      json
// @Param        id   path      int  true  "resource id"
// @Success      200      {object}   response.MessageResponse
// @Failure      404      {object}   response.Err
// @Router       /{resource}/eliminar/{id} [delete]
// @Security     BearerAuth
func (h *ResourceHandler[D, R, PR]) HandleDelete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderErr(ctx, h.name, id, fmt.Errorf("v1.HandleDelete(%s) -> h.svc.Delete -> %w", h.name, err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("%s %d deleted", h.name, id)})
}
