package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sit-project/sit-api/internal/api/handler/v1/request"
	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
	"github.com/sit-project/sit-api/internal/domain"
)

type DocumentService interface {
	List(ctx context.Context, owner domain.OwnerType, id uint) ([]domain.Document, error)
	Get(ctx context.Context, id uint) (domain.Document, error)
	Rename(ctx context.Context, id uint, filename string) (domain.Document, error)
	Delete(ctx context.Context, id uint) error
}

type DocumentHandler struct {
	svc DocumentService
}

func NewDocumentHandler(svc DocumentService) *DocumentHandler {
	return &DocumentHandler{
		svc: svc,
	}
}

func (h *DocumentHandler) Mount(group *gin.RouterGroup) {
	group.GET("/listar", h.HandleList)
	group.GET("/buscar/:id", h.HandleGet)
	group.PUT("/actualizar/:id", h.HandleUpdate)
	group.DELETE("/eliminar/:id", h.HandleDelete)
}

// HandleList godoc
// @Summary      List documents
// @Tags         documents
// @Produce      json
// @Param        entity_type   query     string  false  "owner type"
// @Param        entity_id     query     int     false  "owner id"
// @Success      200      {array}    domain.Document
// @Failure      400      {object}   response.Err
// @Router       /documento/listar [get]
// @Security     BearerAuth
func (h *DocumentHandler) HandleList(ctx *gin.Context) {
	var owner domain.OwnerType
	if s := ctx.Query("entity_type"); s != "" {
		t, err := domain.ParseOwnerType(s)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		owner = t
	}

	var entityID uint
	if s := ctx.Query("entity_id"); s != "" {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("entity_id: %w", errInvalidID)))
			return
		}
		entityID = uint(n)
	}

	docs, err := h.svc.List(ctx.Request.Context(), owner, entityID)
	if err != nil {
		renderErr(ctx, "document", "", fmt.Errorf("v1.HandleList(document) -> h.svc.List -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) HandleGet(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	doc, err := h.svc.Get(ctx.Request.Context(), id)
	if err != nil {
		renderErr(ctx, "document", id, fmt.Errorf("v1.HandleGet(document) -> h.svc.Get -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, doc)
}

// HandleUpdate godoc
// @Summary      Rename a document
// @Tags         documents
// @Accept       json
// @Produce      json
// @Param        id        path      int                            true  "document id"
// @Param        request   body      request.DocumentUpdateRequest  true  "request body"
// @Success      200      {object}   domain.Document
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /documento/actualizar/{id} [put]
// @Security     BearerAuth
func (h *DocumentHandler) HandleUpdate(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	var req request.DocumentUpdateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	doc, err := h.svc.Rename(ctx.Request.Context(), id, req.Filename)
	if err != nil {
		renderErr(ctx, "document", id, fmt.Errorf("v1.HandleUpdate(document) -> h.svc.Rename -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) HandleDelete(ctx *gin.Context) {
	id, ok := parseID(ctx, "id")
	if !ok {
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), id); err != nil {
		renderErr(ctx, "document", id, fmt.Errorf("v1.HandleDelete(document) -> h.svc.Delete -> %w", err))
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{Message: fmt.Sprintf("document %d deleted", id)})
}
