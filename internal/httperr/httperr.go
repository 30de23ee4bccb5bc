package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, field, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Field:   field,
		Message: message,
	})
}

func BadRequest(c *gin.Context, field, message string) {
	Write(c, http.StatusBadRequest, "invalid_request", field, message)
}

func NotFound(c *gin.Context, field, message string) {
	Write(c, http.StatusNotFound, "not_found", field, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, "internal_error", "", message)
}

// From translates a business error into the HTTP response for its kind.
func From(c *gin.Context, err error) {
	var be *BusinessError
	if !errors.As(err, &be) {
		Internal(c, "Unexpected error.")
		return
	}

	switch be.Kind {
	case KindInvalidArgument:
		Write(c, http.StatusBadRequest, "invalid_request", be.Field, be.Message)
	case KindNotFound:
		Write(c, http.StatusNotFound, "not_found", be.Field, be.Message)
	case KindConflict:
		Write(c, http.StatusConflict, "conflict", be.Field, be.Message)
	case KindUnprocessable:
		Write(c, http.StatusUnprocessableEntity, "unprocessable_entity", be.Field, be.Message)
	case KindUpstream:
		Write(c, http.StatusBadGateway, "upstream_failure", be.Field, be.Message)
	default:
		Internal(c, be.Message)
	}
}
