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

type AttachmentService interface {
	AddImages(ctx context.Context, owner domain.OwnerType, id uint, uploads []*multipart.FileHeader) ([]domain.Image, error)
	RemoveImages(ctx context.Context, owner domain.OwnerType, id uint, imageIDs []uint) ([]domain.Image, error)
	AddDocuments(ctx context.Context, owner domain.OwnerType, id uint, uploads []*multipart.FileHeader) ([]domain.Document, error)
	AddContacts(ctx context.Context, owner domain.OwnerType, id uint, contacts []domain.Contact) ([]domain.Contact, error)
}

// AttachmentHandler serves the image, document and contact routes that hang
// off every owner resource.
type AttachmentHandler struct {
	svc AttachmentService
}

func NewAttachmentHandler(svc AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{
		svc: svc,
	}
}

// Mount registers the attachment routes owner supports on its resource group.
func (h *AttachmentHandler) Mount(group *gin.RouterGroup, owner domain.OwnerType) {
	if owner.OwnsImages() {
		group.POST("/agregar-imagenes/:id", h.HandleAddImages(owner))
		group.DELETE("/eliminar-imagenes/:id", h.HandleRemoveImages(owner))
	}
	if owner.OwnsDocuments() {
		group.POST("/agregar-documentos/:id", h.HandleAddDocuments(owner))
	}
}

func multipartFiles(ctx *gin.Context, field string) []*multipart.FileHeader {
	form, err := ctx.MultipartForm()
	if err != nil {
		return nil
	}

	return form.File[field]
}

// HandleAddImages godoc
// @Summary      Upload images for an owner
// @Tags         attachments
// @Accept       mpfd
// @Produce      json
// @Param        id       path      int   true  "owner id"
// @Param        images   formData  file  true  "images"
// @Success      201      {array}    domain.Image
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /{resource}/agregar-imagenes/{id} [post]
// @Security     BearerAuth
func (h *AttachmentHandler) HandleAddImages(owner domain.OwnerType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseID(ctx, "id")
		if !ok {
			return
		}

		images, err := h.svc.AddImages(ctx.Request.Context(), owner, id, multipartFiles(ctx, "images"))
		if err != nil {
			renderErr(ctx, string(owner), id, fmt.Errorf("v1.HandleAddImages -> h.svc.AddImages -> %w", err))
			return
		}

		ctx.JSON(http.StatusCreated, images)
	}
}

// HandleRemoveImages godoc
// @Summary      Delete images of an owner
// @Tags         attachments
// @Accept       json
// @Produce      json
// @Param        id        path      int                          true  "owner id"
// @Param        request   body      request.RemoveImagesRequest  true  "request body"
// @Success      200      {array}    domain.Image
// @Failure      404      {object}   response.Err
// @Router       /{resource}/eliminar-imagenes/{id} [delete]
// @Security     BearerAuth
func (h *AttachmentHandler) HandleRemoveImages(owner domain.OwnerType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseID(ctx, "id")
		if !ok {
			return
		}

		var req request.RemoveImagesRequest
		if err := ctx.ShouldBindJSON(&req); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}
		if err := req.Validate(); err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		removed, err := h.svc.RemoveImages(ctx.Request.Context(), owner, id, req.ImageIDs)
		if err != nil {
			renderErr(ctx, "image", req.ImageIDs, fmt.Errorf("v1.HandleRemoveImages -> h.svc.RemoveImages -> %w", err))
			return
		}

		ctx.JSON(http.StatusOK, removed)
	}
}

// HandleAddDocuments godoc
// @Summary      Upload documents for an owner
// @Tags         attachments
// @Accept       mpfd
// @Produce      json
// @Param        id          path      int   true  "owner id"
// @Param        documents   formData  file  true  "documents"
// @Success      201      {array}    domain.Document
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /{resource}/agregar-documentos/{id} [post]
// @Security     BearerAuth
func (h *AttachmentHandler) HandleAddDocuments(owner domain.OwnerType) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id, ok := parseID(ctx, "id")
		if !ok {
			return
		}

		docs, err := h.svc.AddDocuments(ctx.Request.Context(), owner, id, multipartFiles(ctx, "documents"))
		if err != nil {
			renderErr(ctx, string(owner), id, fmt.Errorf("v1.HandleAddDocuments -> h.svc.AddDocuments -> %w", err))
			return
		}

		ctx.JSON(http.StatusCreated, docs)
	}
}

// HandleAddContacts godoc
// @Summary      Attach contacts to an owner
// @Tags         contacts
// @Accept       json
// @Produce      json
// @Param        request   body      request.AddContactsRequest  true  "request body"
// @Success      201      {array}    domain.Contact
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /contacto/agregar [post]
// @Security     BearerAuth
func (h *AttachmentHandler) HandleAddContacts(ctx *gin.Context) {
	var req request.AddContactsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	contacts, err := h.svc.AddContacts(ctx.Request.Context(), req.Owner(), req.EntityID, req.ToDomain())
	if err != nil {
		renderErr(ctx, req.EntityType, req.EntityID, fmt.Errorf("v1.HandleAddContacts -> h.svc.AddContacts -> %w", err))
		return
	}

	ctx.JSON(http.StatusCreated, contacts)
}
