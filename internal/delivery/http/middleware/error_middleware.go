package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/logger"
)

// ErrorHandler drains errors appended to the context by handlers and turns
// the last one into a JSON error envelope. Only apperror messages reach the
// client; anything else is logged and reported generically.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Err != nil {
				logger.Log.Error("request failed", "path", c.Request.URL.Path, "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		logger.Log.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
