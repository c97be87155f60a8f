package domain

import "context"

// SectionKey identifies one renderable resume section. The set is closed;
// renderers ignore keys they do not know.
type SectionKey string

const (
	SectionSummary        SectionKey = "summary"
	SectionSkills         SectionKey = "skills"
	SectionLicenses       SectionKey = "licenses"
	SectionWork           SectionKey = "work"
	SectionEducation      SectionKey = "education"
	SectionCertifications SectionKey = "certifications"
	SectionInternships    SectionKey = "internships"
	SectionLanguages      SectionKey = "languages"
)

// DefaultSectionOrder is the render sequence used when a resume has no
// stored section order, or the stored value is malformed or empty.
func DefaultSectionOrder() []SectionKey {
	return []SectionKey{
		SectionSummary, SectionSkills, SectionLicenses, SectionWork,
		SectionEducation, SectionCertifications, SectionInternships, SectionLanguages,
	}
}

const (
	DefaultResumeName = "Untitled Resume"
	DefaultStyle      = "classic"
	DefaultTheme      = "#5B7B7A"
	DefaultFont       = "default"
)

// ResumeConfig is the root resume row: display name, style variant, theme
// color, font choice and the persisted section order.
type ResumeConfig struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Style        string       `json:"style"`
	Theme        string       `json:"theme" binding:"omitempty,hexcolor"`
	Font         string       `json:"font"`
	SectionOrder []SectionKey `json:"section_order"`
	CreatedAt    string       `json:"created_at"`
	UpdatedAt    string       `json:"updated_at"`
}

// PersonalInfo is a singleton per resume, created empty alongside it.
type PersonalInfo struct {
	FullName string `json:"full_name"`
	JobTitle string `json:"job_title"`
	Email    string `json:"email" binding:"omitempty,email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Portfolio string `json:"portfolio"`
}

type WorkExperience struct {
	Company      string    `json:"company"`
	Role         string    `json:"role"`
	Location     string    `json:"location"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
	Projects     []Project `json:"projects"`
}

// Project is nested under a work entry. Top-level projects only exist in
// legacy drafts and are never imported.
type Project struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
}

type Education struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	GPA         string `json:"gpa"`
}

type SkillCategory struct {
	Category string   `json:"category"`
	Bulleted bool     `json:"bulleted"`
	Items    []string `json:"items"`
}

type License struct {
	Name           string `json:"name"`
	IssuingOrg     string `json:"issuing_org"`
	IssueDate      string `json:"issue_date"`
	ExpirationDate string `json:"expiration_date"`
	LicenseNumber  string `json:"license_number"`
	Description    string `json:"description"`
}

type Certification struct {
	Name         string `json:"name"`
	IssuingOrg   string `json:"issuing_org"`
	Date         string `json:"date"`
	CredentialID string `json:"credential_id"`
}

type Internship struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

type Language struct {
	Language    string `json:"language"`
	Proficiency string `json:"proficiency" binding:"omitempty,oneof=Native Fluent Advanced Intermediate Beginner"`
}

type CustomSection struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

// ResumeDocument is the full denormalized aggregate of one resume and all of
// its child collections, as assembled by ResumeRepository.Load.
type ResumeDocument struct {
	Config         ResumeConfig     `json:"config"`
	PersonalInfo   PersonalInfo     `json:"personalInfo"`
	ProfileSummary string           `json:"profileSummary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []SkillCategory  `json:"skills"`
	Licenses       []License        `json:"licenses"`
	Certifications []Certification  `json:"certifications"`
	Internships    []Internship     `json:"internships"`
	Languages      []Language       `json:"languages"`
	CustomSections []CustomSection  `json:"customSections"`
}

// ResumeRepository translates between the normalized schema and the
// ResumeDocument aggregate. Collection saves are wholesale: prior rows for
// the parent scope are deleted and the submitted slice is reinserted with a
// dense zero-based sort order. Every mutation touches the resume's
// updated_at and flushes the store to its durable snapshot.
type ResumeRepository interface {
	GetOrCreate(ctx context.Context) (int64, error)
	Create(ctx context.Context, name, style, theme, font string) (int64, error)
	UpdateConfig(ctx context.Context, resumeID int64, style, theme, font string) error
	Delete(ctx context.Context, resumeID int64) error

	SavePersonalInfo(ctx context.Context, resumeID int64, info PersonalInfo) error
	SaveProfileSummary(ctx context.Context, resumeID int64, summary string) error
	SaveWorkExperience(ctx context.Context, resumeID int64, entries []WorkExperience) error
	SaveEducation(ctx context.Context, resumeID int64, entries []Education) error
	SaveSkills(ctx context.Context, resumeID int64, categories []SkillCategory) error
	SaveLicenses(ctx context.Context, resumeID int64, entries []License) error
	SaveCertifications(ctx context.Context, resumeID int64, entries []Certification) error
	SaveInternships(ctx context.Context, resumeID int64, entries []Internship) error
	SaveLanguages(ctx context.Context, resumeID int64, entries []Language) error
	SaveCustomSections(ctx context.Context, resumeID int64, sections []CustomSection) error

	SaveSectionOrder(ctx context.Context, resumeID int64, order []SectionKey) error
	GetSectionOrder(ctx context.Context, resumeID int64) ([]SectionKey, error)

	// Load returns nil (no error) when the resume id does not exist.
	Load(ctx context.Context, resumeID int64) (*ResumeDocument, error)
}

// ResumeUsecase serializes all mutating operations. The builder is
// single-user, so concurrent HTTP requests queue behind an internal lock.
type ResumeUsecase interface {
	GetResume(ctx context.Context) (*ResumeDocument, error)
	SaveConfig(ctx context.Context, cfg ResumeConfig) error
	SavePersonalInfo(ctx context.Context, info PersonalInfo) error
	SaveProfileSummary(ctx context.Context, summary string) error
	SaveWorkExperience(ctx context.Context, entries []WorkExperience) error
	SaveEducation(ctx context.Context, entries []Education) error
	SaveSkills(ctx context.Context, categories []SkillCategory) error
	SaveLicenses(ctx context.Context, entries []License) error
	SaveCertifications(ctx context.Context, entries []Certification) error
	SaveInternships(ctx context.Context, entries []Internship) error
	SaveLanguages(ctx context.Context, entries []Language) error
	SaveCustomSections(ctx context.Context, sections []CustomSection) error
	SaveSectionOrder(ctx context.Context, order []SectionKey) error

	// SaveAll applies every sub-save in sequence. A failing section is
	// logged and skipped; sections already committed stay committed.
	SaveAll(ctx context.Context, doc *ResumeDocument) error

	// Reset wipes the durable store and recreates an empty default resume.
	Reset(ctx context.Context) error
}
