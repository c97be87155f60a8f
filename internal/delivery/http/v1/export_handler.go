package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
)

type ExportHandler struct {
	exportUC domain.ExportUsecase
}

func NewExportHandler(r *gin.RouterGroup, exportUC domain.ExportUsecase) {
	handler := &ExportHandler{exportUC: exportUC}

	export := r.Group("/resume/export")
	{
		export.GET("/html", handler.HTML)
		export.GET("/pdf", handler.PDF)
		export.GET("/docx", handler.DOCX)
		export.GET("/draft", handler.Draft)
	}
}

// HTML returns the rendered resume page for on-screen preview.
func (h *ExportHandler) HTML(c *gin.Context) {
	html, err := h.exportUC.RenderHTML(c)
	if err != nil {
		c.Error(err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

func (h *ExportHandler) PDF(c *gin.Context) {
	artifact, err := h.exportUC.ExportPDF(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.File(c, artifact)
}

func (h *ExportHandler) DOCX(c *gin.Context) {
	artifact, err := h.exportUC.ExportDOCX(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.File(c, artifact)
}

// Draft downloads the versioned JSON snapshot of the full resume document.
func (h *ExportHandler) Draft(c *gin.Context) {
	artifact, err := h.exportUC.ExportDraft(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.File(c, artifact)
}
