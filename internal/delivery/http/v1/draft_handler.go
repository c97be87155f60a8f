package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
)

// Draft uploads are small JSON documents; anything bigger is not a resume.
const maxDraftSize = 4 << 20

type DraftHandler struct {
	draftUC domain.DraftUsecase
}

func NewDraftHandler(r *gin.RouterGroup, draftUC domain.DraftUsecase) {
	handler := &DraftHandler{draftUC: draftUC}

	r.POST("/resume/import/draft", handler.Import)
}

// Import applies a previously exported draft snapshot to the current resume.
// Sections absent from the snapshot are left untouched; legacy fields are
// skipped and reported as warnings.
func (h *DraftHandler) Import(c *gin.Context) {
	snapshot, err := io.ReadAll(io.LimitReader(c.Request.Body, maxDraftSize))
	if err != nil {
		c.Error(apperror.BadRequest("Failed to read draft body: " + err.Error()))
		return
	}
	if len(snapshot) == 0 {
		c.Error(apperror.BadRequest("Draft body is empty"))
		return
	}

	warnings, err := h.draftUC.Import(c, snapshot)
	if err != nil {
		c.Error(err)
		return
	}

	response.SuccessWithWarnings(c, http.StatusOK, "Draft imported", nil, warnings)
}
