package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sit-project/sit-api/internal/api/handler/v1/response"
	"github.com/sit-project/sit-api/internal/service"
)

var errInvalidID = errors.New("id must be a positive integer")

// badRequestErrs are rendered with their own message.
var badRequestErrs = []error{
	service.ErrDuplicate,
	service.ErrForeignKey,
	service.ErrUserExists,
	service.ErrUnsupportedOwner,
	service.ErrNoFiles,
	service.ErrTooManyFiles,
	service.ErrUnsupportedFile,
	service.ErrFileTooLarge,
	service.ErrNotAnImage,
	service.ErrInvalidResetToken,
}

func parseID(ctx *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 64)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("%s: %w", param, errInvalidID)))
		return 0, false
	}

	return uint(id), true
}

// renderErr maps a service failure for resource #id onto a response.
func renderErr(ctx *gin.Context, resource string, id any, err error) {
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			response.RenderErr(ctx, response.ErrBadRequest(target))
			return
		}
	}

	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrUserNotFound):
		response.RenderErr(ctx, response.ErrNotFound(resource, "id", id))
	case errors.Is(err, service.ErrOwnerNotFound):
		response.RenderErr(ctx, response.ErrNotFound("entity", "id", id))
	case errors.Is(err, service.ErrWrongCredentials):
		response.RenderErr(ctx, response.ErrWrongCredentials(err))
	case errors.Is(err, service.ErrInvalidRefreshToken):
		response.RenderErr(ctx, response.ErrUnauthorized(service.ErrInvalidRefreshToken))
	case errors.Is(err, service.ErrWeatherDisabled):
		response.RenderErr(ctx, response.ErrServiceUnavailable(service.ErrWeatherDisabled))
	default:
		response.RenderErr(ctx, response.ErrInternal(ctx, err))
	}
}
