package response

import (
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vietanh2810/franchise-api/internal/apperr"
)

type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string       `json:"status"`
	Code       string       `json:"code"`
	ErrorText  string       `json:"error,omitempty"`
	Fields     []FieldError `json:"fields,omitempty"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%d %s: %v", e.HTTPStatusCode, e.Code, e.Err)
}

func newErr(status int, code string, err error, text string) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     statusText(status),
		Code:           code,
		ErrorText:      text,
	}
}

func statusText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusForbidden:
		return "Forbidden"
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusConflict:
		return "Conflict"
	default:
		return "Internal server error"
	}
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, "BAD_REQUEST", err, err.Error())
}

// ErrInvalidBody is rendered when the request body is not valid JSON for the endpoint.
func ErrInvalidBody(err error) *Err {
	return newErr(http.StatusBadRequest, "INVALID_BODY", err, "request body is malformed")
}

func ErrValidation(errs validation.Errors) *Err {
	e := newErr(http.StatusBadRequest, "VALIDATION_ERROR", errs, "request validation failed")
	e.Fields = flatten("", errs)

	return e
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, "INTERNAL_ERROR", err, "")
}

// FromError maps any error returned by the services to the response sent to
// the client. Unknown errors become a 500 without details.
func FromError(err error) *Err {
	var respErr *Err
	if errors.As(err, &respErr) {
		return respErr
	}

	var validationErrs validation.Errors
	if errors.As(err, &validationErrs) {
		return ErrValidation(validationErrs)
	}

	if appErr, ok := apperr.As(err); ok {
		return newErr(appErr.Status(), appErr.Code, err, appErr.Message)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return newErr(http.StatusConflict, "CONFLICT", err, "resource already exists")
		case pgerrcode.ForeignKeyViolation:
			return newErr(http.StatusBadRequest, "FOREIGN_KEY_VIOLATION", err, "resource is referenced by or references a missing record")
		case pgerrcode.InvalidTextRepresentation:
			return newErr(http.StatusBadRequest, "INVALID_IDENTIFIER", err, "malformed identifier")
		}
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return newErr(http.StatusNotFound, "NOT_FOUND", err, "resource not found")
	}

	return ErrInternalServerError(err)
}

func RenderErr(ctx *gin.Context, err *Err) {
	fields := []zap.Field{
		zap.String("request_id", requestid.Get(ctx)),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.FullPath()),
		zap.Int("status", err.HTTPStatusCode),
		zap.Error(err.Err),
	}
	if err.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed", fields...)
	} else {
		zap.L().Debug("request rejected", fields...)
	}

	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

// Render maps err with FromError and renders it.
func Render(ctx *gin.Context, err error) {
	RenderErr(ctx, FromError(err))
}

func flatten(prefix string, errs validation.Errors) []FieldError {
	var out []FieldError
	for field, err := range errs {
		if err == nil {
			continue
		}

		name := field
		if prefix != "" {
			name = prefix + "." + field
		}

		var nested validation.Errors
		if errors.As(err, &nested) {
			out = append(out, flatten(name, nested)...)
			continue
		}
		out = append(out, FieldError{Field: name, Message: err.Error()})
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Field < out[j].Field
	})

	return out
}
