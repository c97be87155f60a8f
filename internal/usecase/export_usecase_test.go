package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/render"
	"go-resume-builder/internal/usecase"
	"go-resume-builder/pkg/apperror"
)

func newExportFixture(doc *domain.ResumeDocument) (*MockPrinter, domain.ExportUsecase) {
	mockRepo := new(MockResumeRepo)
	mockRepo.On("GetOrCreate", mock.Anything).Return(int64(1), nil)
	mockRepo.On("Load", mock.Anything, int64(1)).Return(doc, nil)

	resumeUC := usecase.NewResumeUsecase(mockRepo, new(MockResetter))
	draftUC := usecase.NewDraftUsecase(mockRepo, resumeUC)
	printer := new(MockPrinter)
	return printer, usecase.NewExportUsecase(resumeUC, draftUC, printer)
}

func exportDoc() *domain.ResumeDocument {
	return &domain.ResumeDocument{
		Config:         domain.ResumeConfig{Theme: domain.DefaultTheme, Style: domain.DefaultStyle},
		PersonalInfo:   domain.PersonalInfo{FullName: "Jane Doe", JobTitle: "Engineer"},
		ProfileSummary: "hello",
	}
}

func TestRenderHTML(t *testing.T) {
	_, exportUC := newExportFixture(exportDoc())

	html, err := exportUC.RenderHTML(context.Background())
	require.NoError(t, err)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "<!DOCTYPE html>")
}

func TestExportPDFUnavailable(t *testing.T) {
	printer, exportUC := newExportFixture(exportDoc())
	printer.On("RenderPDF", mock.Anything, mock.Anything).Return(nil, render.ErrPDFUnavailable)

	_, err := exportUC.ExportPDF(context.Background())
	require.Error(t, err)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 503, appErr.Code)
	assert.Contains(t, appErr.Message, "PDF rendering is unavailable")
}

func TestExportPDF(t *testing.T) {
	printer, exportUC := newExportFixture(exportDoc())
	printer.On("RenderPDF", mock.Anything, mock.Anything).Return([]byte("%PDF-1.7"), nil)

	artifact, err := exportUC.ExportPDF(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/pdf", artifact.ContentType)
	assert.True(t, strings.HasPrefix(artifact.Filename, "Jane_Doe_Resume_"))
	assert.True(t, strings.HasSuffix(artifact.Filename, ".pdf"))
	assert.Equal(t, []byte("%PDF-1.7"), artifact.Data)
}

func TestExportDOCX(t *testing.T) {
	_, exportUC := newExportFixture(exportDoc())

	artifact, err := exportUC.ExportDOCX(context.Background())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(artifact.Filename, "Jane_Doe_Resume_"))
	assert.True(t, strings.HasSuffix(artifact.Filename, ".docx"))
	assert.NotEmpty(t, artifact.Data)
}

func TestExportDraftArtifact(t *testing.T) {
	_, exportUC := newExportFixture(exportDoc())

	artifact, err := exportUC.ExportDraft(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "application/json", artifact.ContentType)
	assert.True(t, strings.HasSuffix(artifact.Filename, ".json"))

	var draft domain.Draft
	require.NoError(t, json.Unmarshal(artifact.Data, &draft))
	assert.Equal(t, domain.DraftVersion, draft.Version)
	assert.Equal(t, "Jane Doe", draft.Resume.PersonalInfo.FullName)
}

func TestExportFilenameFallback(t *testing.T) {
	doc := exportDoc()
	doc.PersonalInfo.FullName = "  "
	printer, exportUC := newExportFixture(doc)
	printer.On("RenderPDF", mock.Anything, mock.Anything).Return([]byte("%PDF-1.7"), nil)

	artifact, err := exportUC.ExportPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(artifact.Filename, "resume_Resume_"))
}
