package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/middleware"
	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
)

type RouterDeps struct {
	ResumeUC domain.ResumeUsecase
	DraftUC  domain.DraftUsecase
	ExportUC domain.ExportUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware())
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	NewResumeHandler(v1, deps.ResumeUC)
	NewExportHandler(v1, deps.ExportUC)
	NewDraftHandler(v1, deps.DraftUC)

	return r
}
