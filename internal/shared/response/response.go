package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard/internal/shared/apperror"
)

// Message writes the flat acknowledgment body used by every mutating endpoint.
// Extra key/value pairs (generated identifiers, entity payloads) are merged in.
func Message(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// Error writes an error body from the taxonomy. Unrecognized errors surface
// as a generic 500 without leaking internal detail.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}

	c.JSON(http.StatusInternalServerError, apperror.New(
		apperror.CodeInternalError,
		"Internal server error",
		http.StatusInternalServerError,
	))
}

// AbortError is Error for middleware, stopping the handler chain.
func AbortError(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
