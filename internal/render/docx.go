package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fumiama/go-docx"

	"go-resume-builder/internal/domain"
)

// Word sizes are half-points, mirroring the screen hierarchy.
const (
	docxSizeName     = "48"
	docxSizeJobTitle = "26"
	docxSizeContact  = "18"
	docxSizeHeading  = "24"
	docxSizeEntry    = "22"
	docxSizeBody     = "20"

	docxColorMuted  = "666666"
	docxColorSubtle = "555555"
)

// DOCX renders the resume as a Word document binary.
func DOCX(doc *domain.ResumeDocument) ([]byte, error) {
	b := &docxBuilder{
		doc:   docx.New().WithDefaultTheme(),
		theme: StripHash(doc.Config.Theme),
	}
	Document(doc, b)

	var buf bytes.Buffer
	if _, err := b.doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write docx: %w", err)
	}
	return buf.Bytes(), nil
}

type docxBuilder struct {
	doc   *docx.Docx
	theme string
}

// runSpans writes the text's emphasis spans as runs on one paragraph.
func runSpans(p *docx.Paragraph, text, size, color string) {
	for _, span := range ParseEmphasis(text) {
		run := p.AddText(span.Text).Size(size)
		if color != "" {
			run = run.Color(color)
		}
		if span.Bold {
			run.Bold()
		}
	}
}

func (b *docxBuilder) Banner(name, jobTitle string) {
	p := b.doc.AddParagraph()
	p.AddText(name).Size(docxSizeName).Color(b.theme).Bold()
	if jobTitle != "" {
		runSpans(b.doc.AddParagraph(), jobTitle, docxSizeJobTitle, docxColorMuted)
	}
}

func (b *docxBuilder) ContactLine(items []string) {
	p := b.doc.AddParagraph()
	p.AddText(strings.Join(items, "  |  ")).Size(docxSizeContact).Color(docxColorSubtle)
}

func (b *docxBuilder) SectionHeading(title string) {
	p := b.doc.AddParagraph()
	p.AddText(strings.ToUpper(title)).Size(docxSizeHeading).Color(b.theme).Bold()
}

func (b *docxBuilder) EntryHeader(title, dates string) {
	p := b.doc.AddParagraph()
	for _, span := range ParseEmphasis(title) {
		run := p.AddText(span.Text).Size(docxSizeEntry)
		// Entry titles are bold regardless of inline markers.
		run.Bold()
	}
	if dates != "" {
		p.AddText("    " + dates).Size(docxSizeContact).Color(docxColorMuted)
	}
}

func (b *docxBuilder) Subtitle(text string) {
	p := b.doc.AddParagraph()
	for _, span := range ParseEmphasis(text) {
		run := p.AddText(span.Text).Size(docxSizeBody).Color(docxColorSubtle).Italic()
		if span.Bold {
			run.Bold()
		}
	}
}

func (b *docxBuilder) Paragraph(text string) {
	runSpans(b.doc.AddParagraph(), text, docxSizeBody, "")
}

func (b *docxBuilder) Detail(text string) {
	runSpans(b.doc.AddParagraph(), text, docxSizeBody, docxColorSubtle)
}

func (b *docxBuilder) Bullet(text string) {
	p := b.doc.AddParagraph()
	p.AddText("• ").Size(docxSizeBody)
	runSpans(p, text, docxSizeBody, "")
}

func (b *docxBuilder) LabeledLine(label, rest string) {
	p := b.doc.AddParagraph()
	p.AddText(label).Size(docxSizeBody).Bold()
	if rest != "" {
		runSpans(p, rest, docxSizeBody, "")
	}
}
