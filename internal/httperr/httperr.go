package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// FromBusiness maps a domain error code to the HTTP layer. Unknown
// codes fall through as 500 so bugs stay visible.
func FromBusiness(c *gin.Context, err error) {
	var be BusinessError
	if !errors.As(err, &be) {
		Internal(c, "internal_error", "Error interno.")
		return
	}

	switch be.Code {
	case CodeValidation, CodeInsufficientCash:
		BadRequest(c, be.Code, be.Code)
	case CodeConflict:
		Conflict(c, be.Code, be.Code)
	case CodeNotFound:
		NotFound(c, be.Code, be.Code)
	case CodeInvalidState:
		Conflict(c, be.Code, be.Code)
	case CodeForbidden:
		Forbidden(c, be.Code, be.Code)
	default:
		BadRequest(c, be.Code, be.Code)
	}
}
