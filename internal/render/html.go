package render

import (
	_ "embed"
	"fmt"
	"html/template"
	"strings"

	"go-resume-builder/internal/domain"
)

//go:embed assets/style.css
var styleCSS string

var pageShell = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
:root {
  --theme: {{.Theme}};
  --theme-light: {{.ThemeLight}};
  --theme-dark: {{.ThemeDark}};
}
body { font-family: {{.FontFamily}}; }
{{.CSS}}
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type pageData struct {
	Title      string
	Theme      template.CSS
	ThemeLight template.CSS
	ThemeDark  template.CSS
	FontFamily template.CSS
	CSS        template.CSS
	Body       template.HTML
}

// HTML renders the resume as a complete standalone page: inline styles, no
// external assets, suitable both for on-screen preview and as print input.
func HTML(doc *domain.ResumeDocument) (string, error) {
	shades := ThemeShades(doc.Config.Theme)

	b := &htmlBuilder{theme: shades.Base}
	Document(doc, b)

	title := doc.Config.Name
	if title == "" {
		title = domain.DefaultResumeName
	}

	var out strings.Builder
	err := pageShell.Execute(&out, pageData{
		Title:      title,
		Theme:      template.CSS(shades.Base),
		ThemeLight: template.CSS(shades.Lighter),
		ThemeDark:  template.CSS(shades.Darker),
		FontFamily: template.CSS(fontFamily(doc.Config.Font)),
		CSS:        template.CSS(styleCSS),
		Body:       template.HTML(b.markup()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to render html page: %w", err)
	}
	return out.String(), nil
}

func fontFamily(font string) string {
	if font == "" || font == domain.DefaultFont {
		return `'Calibri', 'Helvetica Neue', Arial, sans-serif`
	}
	// Font names come from a fixed picker, not free text, but quote anyway.
	return fmt.Sprintf("'%s', sans-serif", strings.ReplaceAll(font, "'", ""))
}

// htmlBuilder accumulates the resume body markup. Bullets group into one
// list until a non-bullet event arrives; entries close on the next header.
type htmlBuilder struct {
	sb      strings.Builder
	theme   string
	inList  bool
	inEntry bool
}

func (b *htmlBuilder) markup() string {
	b.closeList()
	b.closeEntry()
	b.sb.WriteString(`</div>`) // resume-body, opened by Banner
	return `<div class="resume-page">` + b.sb.String() + `</div>`
}

func (b *htmlBuilder) closeList() {
	if b.inList {
		b.sb.WriteString("</ul>")
		b.inList = false
	}
}

func (b *htmlBuilder) closeEntry() {
	if b.inEntry {
		b.sb.WriteString("</div>")
		b.inEntry = false
	}
}

func (b *htmlBuilder) spans(text string) string {
	var out strings.Builder
	for _, span := range ParseEmphasis(text) {
		if span.Bold {
			out.WriteString("<strong>")
			out.WriteString(template.HTMLEscapeString(span.Text))
			out.WriteString("</strong>")
			continue
		}
		out.WriteString(template.HTMLEscapeString(span.Text))
	}
	return out.String()
}

func (b *htmlBuilder) Banner(name, jobTitle string) {
	b.sb.WriteString(fmt.Sprintf(`<div class="resume-banner" style="background:%s">`,
		template.HTMLEscapeString(b.theme)))
	b.sb.WriteString(`<div class="name">` + b.spans(name) + `</div>`)
	if jobTitle != "" {
		b.sb.WriteString(`<div class="job-title">` + b.spans(jobTitle) + `</div>`)
	}
	b.sb.WriteString(`</div>`)
	// Everything after the banner sits inside the body stripe.
	b.sb.WriteString(`<div class="resume-body">`)
}

func (b *htmlBuilder) ContactLine(items []string) {
	b.sb.WriteString(`<div class="resume-contact">`)
	for _, item := range items {
		b.sb.WriteString(`<span>` + template.HTMLEscapeString(item) + `</span>`)
	}
	b.sb.WriteString(`</div>`)
}

func (b *htmlBuilder) SectionHeading(title string) {
	b.closeList()
	b.closeEntry()
	b.sb.WriteString(`<h3 class="resume-section-title">` + template.HTMLEscapeString(title) + `</h3>`)
	b.sb.WriteString(`<hr class="resume-section-divider">`)
}

func (b *htmlBuilder) EntryHeader(title, dates string) {
	b.closeList()
	b.closeEntry()
	b.sb.WriteString(`<div class="resume-entry">`)
	b.inEntry = true
	b.sb.WriteString(`<div class="resume-entry-header">`)
	b.sb.WriteString(`<span class="resume-entry-title">` + b.spans(title) + `</span>`)
	if dates != "" {
		b.sb.WriteString(`<span class="resume-entry-date">` + template.HTMLEscapeString(dates) + `</span>`)
	}
	b.sb.WriteString(`</div>`)
}

func (b *htmlBuilder) Subtitle(text string) {
	b.closeList()
	b.sb.WriteString(`<div class="resume-entry-subtitle">` + b.spans(text) + `</div>`)
}

func (b *htmlBuilder) Paragraph(text string) {
	b.closeList()
	b.sb.WriteString(`<p class="resume-summary">` + b.spans(text) + `</p>`)
}

func (b *htmlBuilder) Detail(text string) {
	b.closeList()
	b.sb.WriteString(`<div class="resume-entry-detail">` + b.spans(text) + `</div>`)
}

func (b *htmlBuilder) Bullet(text string) {
	if !b.inList {
		b.sb.WriteString(`<ul class="resume-bullets">`)
		b.inList = true
	}
	b.sb.WriteString(`<li>` + b.spans(text) + `</li>`)
}

func (b *htmlBuilder) LabeledLine(label, rest string) {
	b.closeList()
	b.sb.WriteString(`<div class="resume-labeled-line"><strong>` + b.spans(label) + `</strong>`)
	if rest != "" {
		b.sb.WriteString(`<span>` + b.spans(rest) + `</span>`)
	}
	b.sb.WriteString(`</div>`)
}
