package response

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"
)

// Err is the body of every error response.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string       `json:"status"`
	ErrorText  string       `json:"error,omitempty"`
	Fields     []FieldError `json:"errors,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Err) Error() string {
	return e.ErrorText
}

func RenderErr(ctx *gin.Context, e *Err) {
	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

// ErrBadRequest lists every invalid field when err comes from validation.
func ErrBadRequest(err error) *Err {
	e := &Err{
		Err:            err,
		HTTPStatusCode: http.StatusBadRequest,
		StatusText:     http.StatusText(http.StatusBadRequest),
		ErrorText:      err.Error(),
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		e.ErrorText = "validation failed"
		e.Fields = fieldErrors("", verrs)
	}

	return e
}

func fieldErrors(prefix string, verrs validation.Errors) []FieldError {
	keys := make([]string, 0, len(verrs))
	for k := range verrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out []FieldError
	for _, k := range keys {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}

		var nested validation.Errors
		if errors.As(verrs[k], &nested) {
			out = append(out, fieldErrors(name, nested)...)
			continue
		}
		out = append(out, FieldError{Field: name, Message: verrs[k].Error()})
	}

	return out
}

func ErrNotFound(resource, field string, value any) *Err {
	return &Err{
		Err:            fmt.Errorf("%s with %s %v not found", resource, field, value),
		HTTPStatusCode: http.StatusNotFound,
		StatusText:     http.StatusText(http.StatusNotFound),
		ErrorText:      fmt.Sprintf("%s with %s %v not found", resource, field, value),
	}
}

func ErrUnauthorized(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     http.StatusText(http.StatusUnauthorized),
		ErrorText:      err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		StatusText:     http.StatusText(http.StatusUnauthorized),
		ErrorText:      "wrong credentials",
	}
}

func ErrTooManyRequests() *Err {
	return &Err{
		HTTPStatusCode: http.StatusTooManyRequests,
		StatusText:     http.StatusText(http.StatusTooManyRequests),
		ErrorText:      "too many requests, try again later",
	}
}

func ErrServiceUnavailable(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusServiceUnavailable,
		StatusText:     http.StatusText(http.StatusServiceUnavailable),
		ErrorText:      err.Error(),
	}
}

// ErrInternalServerError logs err and hides it from the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		StatusText:     http.StatusText(http.StatusInternalServerError),
		ErrorText:      "something went wrong",
	}
}

// ErrInternal is ErrInternalServerError with the request id attached to the log.
func ErrInternal(ctx *gin.Context, err error) *Err {
	return ErrInternalServerError(fmt.Errorf("request %s -> %w", requestid.Get(ctx), err))
}
