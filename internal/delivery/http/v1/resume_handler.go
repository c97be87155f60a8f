package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-resume-builder/internal/delivery/http/response"
	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
)

type ResumeHandler struct {
	resumeUC domain.ResumeUsecase
}

func NewResumeHandler(r *gin.RouterGroup, resumeUC domain.ResumeUsecase) {
	handler := &ResumeHandler{resumeUC: resumeUC}

	resume := r.Group("/resume")
	{
		resume.GET("", handler.Get)
		resume.PUT("/config", handler.SaveConfig)
		resume.PUT("/personal-info", handler.SavePersonalInfo)
		resume.PUT("/summary", handler.SaveSummary)
		resume.PUT("/work", handler.SaveWork)
		resume.PUT("/education", handler.SaveEducation)
		resume.PUT("/skills", handler.SaveSkills)
		resume.PUT("/licenses", handler.SaveLicenses)
		resume.PUT("/certifications", handler.SaveCertifications)
		resume.PUT("/internships", handler.SaveInternships)
		resume.PUT("/languages", handler.SaveLanguages)
		resume.PUT("/custom-sections", handler.SaveCustomSections)
		resume.PUT("/section-order", handler.SaveSectionOrder)
		resume.POST("/save", handler.SaveAll)
		resume.POST("/reset", handler.Reset)
	}
}

// Get returns the full resume document, creating an empty default resume on
// first use.
func (h *ResumeHandler) Get(c *gin.Context) {
	doc, err := h.resumeUC.GetResume(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume retrieved", doc)
}

func (h *ResumeHandler) SaveConfig(c *gin.Context) {
	var cfg domain.ResumeConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.Error(apperror.BadRequest("Invalid config payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveConfig(c, cfg); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Config saved", nil)
}

func (h *ResumeHandler) SavePersonalInfo(c *gin.Context) {
	var info domain.PersonalInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.Error(apperror.BadRequest("Invalid personal info payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SavePersonalInfo(c, info); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Personal info saved", nil)
}

type summaryRequest struct {
	Summary string `json:"summary"`
}

func (h *ResumeHandler) SaveSummary(c *gin.Context) {
	var req summaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid summary payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveProfileSummary(c, req.Summary); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile summary saved", nil)
}

func (h *ResumeHandler) SaveWork(c *gin.Context) {
	var entries []domain.WorkExperience
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.Error(apperror.BadRequest("Invalid work experience payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveWorkExperience(c, entries); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Work experience saved", nil)
}

func (h *ResumeHandler) SaveEducation(c *gin.Context) {
	var entries []domain.Education
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.Error(apperror.BadRequest("Invalid education payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveEducation(c, entries); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Education saved", nil)
}

func (h *ResumeHandler) SaveSkills(c *gin.Context) {
	var categories []domain.SkillCategory
	if err := c.ShouldBindJSON(&categories); err != nil {
		c.Error(apperror.BadRequest("Invalid skills payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveSkills(c, categories); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills saved", nil)
}

func (h *ResumeHandler) SaveLicenses(c *gin.Context) {
	var entries []domain.License
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.Error(apperror.BadRequest("Invalid licenses payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveLicenses(c, entries); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Licenses saved", nil)
}

func (h *ResumeHandler) SaveCertifications(c *gin.Context) {
	var entries []domain.Certification
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.Error(apperror.BadRequest("Invalid certifications payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveCertifications(c, entries); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Certifications saved", nil)
}

func (h *ResumeHandler) SaveInternships(c *gin.Context) {
	var entries []domain.Internship
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.Error(apperror.BadRequest("Invalid internships payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveInternships(c, entries); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Internships saved", nil)
}

func (h *ResumeHandler) SaveLanguages(c *gin.Context) {
	var entries []domain.Language
	if err := c.ShouldBindJSON(&entries); err != nil {
		c.Error(apperror.BadRequest("Invalid languages payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveLanguages(c, entries); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Languages saved", nil)
}

func (h *ResumeHandler) SaveCustomSections(c *gin.Context) {
	var sections []domain.CustomSection
	if err := c.ShouldBindJSON(&sections); err != nil {
		c.Error(apperror.BadRequest("Invalid custom sections payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveCustomSections(c, sections); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Custom sections saved", nil)
}

type sectionOrderRequest struct {
	Order []domain.SectionKey `json:"order" binding:"required"`
}

func (h *ResumeHandler) SaveSectionOrder(c *gin.Context) {
	var req sectionOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid section order payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveSectionOrder(c, req.Order); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Section order saved", nil)
}

// SaveAll applies a full document in one request, the way the form flushes a
// complete draft. Sections that fail are reported but do not roll back the
// ones already committed.
func (h *ResumeHandler) SaveAll(c *gin.Context) {
	var doc domain.ResumeDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.Error(apperror.BadRequest("Invalid resume payload: " + err.Error()))
		return
	}

	if err := h.resumeUC.SaveAll(c, &doc); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume saved", nil)
}

// Reset wipes the store and recreates an empty default resume.
func (h *ResumeHandler) Reset(c *gin.Context) {
	if err := h.resumeUC.Reset(c); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Resume reset", nil)
}
