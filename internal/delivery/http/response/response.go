package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/domain"
)

// Response standardizes the API JSON envelope.
type Response struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Warnings  []string    `json:"warnings,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// Success sends a success response
func Success(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		RequestID: requestID(c),
	})
}

// SuccessWithWarnings sends a success response carrying non-fatal warnings,
// e.g. skipped legacy fields on a draft import.
func SuccessWithWarnings(c *gin.Context, code int, message string, data interface{}, warnings []string) {
	c.JSON(code, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Warnings:  warnings,
		RequestID: requestID(c),
	})
}

// Error sends an error response
func Error(c *gin.Context, code int, message string, err interface{}) {
	c.JSON(code, Response{
		Success:   false,
		Message:   message,
		Error:     err,
		RequestID: requestID(c),
	})
}

// File streams a rendered artifact as a download.
func File(c *gin.Context, artifact *domain.Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, artifact.Filename))
	c.Data(http.StatusOK, artifact.ContentType, artifact.Data)
}

func requestID(c *gin.Context) string {
	reqID, _ := c.Get("RequestID")
	idStr, _ := reqID.(string)
	return idStr
}
