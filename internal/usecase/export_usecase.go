package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/render"
	"go-resume-builder/pkg/apperror"
)

const docxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// PDFPrinter prints rendered HTML to a PDF binary.
type PDFPrinter interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

type exportUsecase struct {
	resume  domain.ResumeUsecase
	drafts  domain.DraftUsecase
	printer PDFPrinter
}

func NewExportUsecase(resume domain.ResumeUsecase, drafts domain.DraftUsecase, printer PDFPrinter) domain.ExportUsecase {
	return &exportUsecase{
		resume:  resume,
		drafts:  drafts,
		printer: printer,
	}
}

func (u *exportUsecase) RenderHTML(ctx context.Context) (string, error) {
	doc, err := u.resume.GetResume(ctx)
	if err != nil {
		return "", err
	}
	html, err := render.HTML(doc)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return html, nil
}

func (u *exportUsecase) ExportPDF(ctx context.Context) (*domain.Artifact, error) {
	doc, err := u.resume.GetResume(ctx)
	if err != nil {
		return nil, err
	}
	html, err := render.HTML(doc)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	pdf, err := u.printer.RenderPDF(ctx, html)
	if err != nil {
		if errors.Is(err, render.ErrPDFUnavailable) {
			return nil, apperror.ServiceUnavailable(
				"PDF rendering is unavailable: no Chrome or Chromium installation was found", err)
		}
		return nil, apperror.New(http.StatusInternalServerError, "Failed to render PDF: "+err.Error(), err)
	}

	return &domain.Artifact{
		Filename:    artifactName(doc, "pdf"),
		ContentType: "application/pdf",
		Data:        pdf,
	}, nil
}

func (u *exportUsecase) ExportDOCX(ctx context.Context) (*domain.Artifact, error) {
	doc, err := u.resume.GetResume(ctx)
	if err != nil {
		return nil, err
	}
	data, err := render.DOCX(doc)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to render DOCX: "+err.Error(), err)
	}

	return &domain.Artifact{
		Filename:    artifactName(doc, "docx"),
		ContentType: docxContentType,
		Data:        data,
	}, nil
}

func (u *exportUsecase) ExportDraft(ctx context.Context) (*domain.Artifact, error) {
	draft, err := u.drafts.Export(ctx)
	if err != nil {
		return nil, err
	}
	if draft == nil {
		return nil, apperror.NotFound("No resume to export")
	}

	data, err := json.MarshalIndent(draft, "", "  ")
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.Artifact{
		Filename:    artifactName(&draft.Resume, "json"),
		ContentType: "application/json",
		Data:        data,
	}, nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9-]+`)

// artifactName derives a deterministic download name from the owner's name
// and today's date, e.g. "Jane_Doe_Resume_2026-08-30.pdf".
func artifactName(doc *domain.ResumeDocument, ext string) string {
	stem := unsafeFilenameChars.ReplaceAllString(strings.TrimSpace(doc.PersonalInfo.FullName), "_")
	stem = strings.Trim(stem, "_")
	if stem == "" {
		stem = "resume"
	}
	return stem + "_Resume_" + time.Now().Format("2006-01-02") + "." + ext
}
