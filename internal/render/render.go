// Package render turns a resume document into presentational output. Each
// output target (HTML, DOCX) supplies a Builder; the traversal, section
// order, filled-entry filtering and text conventions are shared.
package render

import (
	"strings"

	"go-resume-builder/internal/domain"
)

// Span is a fragment of field text after inline-emphasis parsing.
type Span struct {
	Text string
	Bold bool
}

// ParseEmphasis splits a field value on **bold** markers, the only inline
// markup the builder supports. Unpaired markers are left literal.
func ParseEmphasis(s string) []Span {
	var spans []Span
	for {
		open := strings.Index(s, "**")
		if open < 0 {
			break
		}
		end := strings.Index(s[open+2:], "**")
		if end < 0 {
			break
		}
		if open > 0 {
			spans = append(spans, Span{Text: s[:open]})
		}
		spans = append(spans, Span{Text: s[open+2 : open+2+end], Bold: true})
		s = s[open+2+end+2:]
	}
	if s != "" {
		spans = append(spans, Span{Text: s})
	}
	return spans
}

// FormatDateRange renders a free-text date pair. A blank end with a present
// start means the engagement is ongoing.
func FormatDateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case start != "" && end != "":
		return start + " — " + end
	case start != "":
		return start + " — Present"
	default:
		return end
	}
}

// Builder receives the document's presentational events in render order.
// Implementations own escaping and inline-emphasis handling for their target.
type Builder interface {
	Banner(name, jobTitle string)
	ContactLine(items []string)
	SectionHeading(title string)
	EntryHeader(title, dates string)
	Subtitle(text string)
	Paragraph(text string)
	Detail(text string)
	Bullet(text string)
	// LabeledLine emits a single line with an emphasized leading label,
	// e.g. a skill category or certification name.
	LabeledLine(label, rest string)
}

type sectionFunc func(*domain.ResumeDocument, Builder)

// sectionRenderers maps each known section key to its renderer. Unknown keys
// in a stored order are skipped.
var sectionRenderers = map[domain.SectionKey]sectionFunc{
	domain.SectionSummary:        renderSummary,
	domain.SectionSkills:         renderSkills,
	domain.SectionLicenses:       renderLicenses,
	domain.SectionWork:           renderWork,
	domain.SectionEducation:      renderEducation,
	domain.SectionCertifications: renderCertifications,
	domain.SectionInternships:    renderInternships,
	domain.SectionLanguages:      renderLanguages,
}

// Document walks the resume in its configured section order and drives the
// builder. Custom sections are not part of the order; they always come last.
func Document(doc *domain.ResumeDocument, b Builder) {
	name := doc.PersonalInfo.FullName
	if name == "" {
		name = "Your Name"
	}
	b.Banner(name, doc.PersonalInfo.JobTitle)

	var contact []string
	for _, item := range []string{
		doc.PersonalInfo.Email, doc.PersonalInfo.Phone, doc.PersonalInfo.Location,
		doc.PersonalInfo.LinkedIn, doc.PersonalInfo.Portfolio,
	} {
		if item != "" {
			contact = append(contact, item)
		}
	}
	if len(contact) > 0 {
		b.ContactLine(contact)
	}

	order := doc.Config.SectionOrder
	if len(order) == 0 {
		order = domain.DefaultSectionOrder()
	}
	for _, key := range order {
		if fn, ok := sectionRenderers[key]; ok {
			fn(doc, b)
		}
	}
	renderCustomSections(doc, b)
}

func renderSummary(doc *domain.ResumeDocument, b Builder) {
	if strings.TrimSpace(doc.ProfileSummary) == "" {
		return
	}
	b.SectionHeading("Profile Summary")
	b.Paragraph(doc.ProfileSummary)
}

func renderSkills(doc *domain.ResumeDocument, b Builder) {
	var filled []domain.SkillCategory
	for _, s := range doc.Skills {
		if s.Category != "" || len(s.Items) > 0 {
			filled = append(filled, s)
		}
	}
	if len(filled) == 0 {
		return
	}
	b.SectionHeading("Skills")
	for _, s := range filled {
		if s.Bulleted {
			b.LabeledLine(s.Category+":", "")
			for _, item := range s.Items {
				if strings.TrimSpace(item) != "" {
					b.Bullet(item)
				}
			}
			continue
		}
		b.LabeledLine(s.Category+": ", strings.Join(s.Items, ", "))
	}
}

func renderLicenses(doc *domain.ResumeDocument, b Builder) {
	var filled []domain.License
	for _, l := range doc.Licenses {
		if l.Name != "" || l.IssuingOrg != "" {
			filled = append(filled, l)
		}
	}
	if len(filled) == 0 {
		return
	}
	b.SectionHeading("Licenses")
	for _, l := range filled {
		b.EntryHeader(l.Name, FormatDateRange(l.IssueDate, l.ExpirationDate))
		if l.IssuingOrg != "" {
			b.Subtitle(l.IssuingOrg)
		}
		if l.LicenseNumber != "" {
			b.Detail("License #: " + l.LicenseNumber)
		}
		if l.Description != "" {
			b.Paragraph(l.Description)
		}
	}
}

func renderWork(doc *domain.ResumeDocument, b Builder) {
	var filled []domain.WorkExperience
	for _, w := range doc.WorkExperience {
		if w.Company != "" || w.Role != "" {
			filled = append(filled, w)
		}
	}
	if len(filled) == 0 {
		return
	}
	b.SectionHeading("Work Experience")
	for _, w := range filled {
		title := w.Company
		if w.Role != "" {
			title += " — " + w.Role
		}
		b.EntryHeader(title, FormatDateRange(w.StartDate, w.EndDate))
		if w.Location != "" {
			b.Subtitle(w.Location)
		}
		if strings.TrimSpace(w.Description) != "" {
			b.Paragraph(w.Description)
		}
		for _, a := range w.Achievements {
			if strings.TrimSpace(a) != "" {
				b.Bullet(a)
			}
		}
		for _, p := range w.Projects {
			if p.Title == "" && p.Description == "" {
				continue
			}
			b.EntryHeader(p.Title, FormatDateRange(p.StartDate, p.EndDate))
			if p.Description != "" {
				b.Paragraph(p.Description)
			}
			if p.Technologies != "" {
				b.Detail("Technologies: " + p.Technologies)
			}
			if p.Link != "" {
				b.Detail(p.Link)
			}
		}
	}
}

func renderEducation(doc *domain.ResumeDocument, b Builder) {
	var filled []domain.Education
	for _, e := range doc.Education {
		if e.Institution != "" || e.Degree != "" {
			filled = append(filled, e)
		}
	}
	if len(filled) == 0 {
		return
	}
	b.SectionHeading("Education")
	for _, e := range filled {
		b.EntryHeader(e.Institution, FormatDateRange(e.StartDate, e.EndDate))
		var degreeField []string
		for _, part := range []string{e.Degree, e.Field} {
			if part != "" {
				degreeField = append(degreeField, part)
			}
		}
		if len(degreeField) > 0 {
			b.Subtitle(strings.Join(degreeField, " in "))
		}
		if e.GPA != "" {
			b.Detail("GPA: " + e.GPA)
		}
	}
}

func renderCertifications(doc *domain.ResumeDocument, b Builder) {
	var filled []domain.Certification
	for _, c := range doc.Certifications {
		if c.Name != "" {
			filled = append(filled, c)
		}
	}
	if len(filled) == 0 {
		return
	}
	b.SectionHeading("Certifications")
	for _, c := range filled {
		var rest strings.Builder
		if c.IssuingOrg != "" {
			rest.WriteString(" — " + c.IssuingOrg)
		}
		if c.Date != "" {
			rest.WriteString(" (" + c.Date + ")")
		}
		if c.CredentialID != "" {
			rest.WriteString(" ID: " + c.CredentialID)
		}
		b.LabeledLine(c.Name, rest.String())
	}
}

func renderInternships(doc *domain.ResumeDocument, b Builder) {
	var filled []domain.Internship
	for _, i := range doc.Internships {
		if i.Company != "" || i.Role != "" {
			filled = append(filled, i)
		}
	}
	if len(filled) == 0 {
		return
	}
	b.SectionHeading("Internships")
	for _, i := range filled {
		title := i.Company
		if i.Role != "" {
			title += " — " + i.Role
		}
		b.EntryHeader(title, FormatDateRange(i.StartDate, i.EndDate))
		if strings.TrimSpace(i.Description) != "" {
			b.Paragraph(i.Description)
		}
	}
}

func renderLanguages(doc *domain.ResumeDocument, b Builder) {
	var filled []domain.Language
	for _, l := range doc.Languages {
		if l.Language != "" {
			filled = append(filled, l)
		}
	}
	if len(filled) == 0 {
		return
	}
	b.SectionHeading("Languages")
	for _, l := range filled {
		rest := ""
		if l.Proficiency != "" {
			rest = " — " + l.Proficiency
		}
		b.LabeledLine(l.Language, rest)
	}
}

func renderCustomSections(doc *domain.ResumeDocument, b Builder) {
	for _, s := range doc.CustomSections {
		if s.Title == "" {
			continue
		}
		b.SectionHeading(s.Title)
		for _, item := range s.Items {
			if strings.TrimSpace(item) != "" {
				b.Bullet(item)
			}
		}
	}
}
