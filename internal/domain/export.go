package domain

import "context"

// Artifact is a rendered, downloadable document.
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ExportUsecase renders the current resume into each output target.
// A missing rendering dependency (e.g. no Chrome binary for PDF) is a
// recoverable condition surfaced as an apperror, never a crash; stored data
// is unaffected by a failed export.
type ExportUsecase interface {
	RenderHTML(ctx context.Context) (string, error)
	ExportPDF(ctx context.Context) (*Artifact, error)
	ExportDOCX(ctx context.Context) (*Artifact, error)
	ExportDraft(ctx context.Context) (*Artifact, error)
}
