package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/fredyfurtado/salon-manager/pkg/errors"
)

type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func NewSuccessResponse(data interface{}) *Response {
	return &Response{
		Status: "success",
		Data:   data,
	}
}

func NewErrorResponse(message string) *Response {
	return &Response{
		Status:  "error",
		Message: message,
	}
}

// Error writes err with the HTTP status matching its application error
// code. Validation and not-found messages are safe to show the caller;
// store and internal failures are logged and answered with a fixed
// message so driver detail never leaves the process.
func Error(c *gin.Context, err error) {
	switch apperrors.CodeOf(err) {
	case apperrors.ErrValidation:
		c.JSON(http.StatusBadRequest, NewErrorResponse(err.Error()))
	case apperrors.ErrNotFound:
		c.JSON(http.StatusNotFound, NewErrorResponse(err.Error()))
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, NewErrorResponse("internal error"))
	}
}
