package domain

import "context"

// DraftVersion is the current portable snapshot format. Version 1 carried a
// top-level projects collection; since version 2 projects nest under work
// entries.
const DraftVersion = 2

// Draft is the versioned export envelope written to a .json download.
type Draft struct {
	Version    int            `json:"version"`
	ExportedAt string         `json:"exportedAt"`
	Resume     ResumeDocument `json:"resume"`
}

// DraftResume mirrors ResumeDocument with presence information: a nil field
// was absent from the snapshot and must leave the target untouched.
type DraftResume struct {
	Config         *ResumeConfig    `json:"config"`
	PersonalInfo   *PersonalInfo    `json:"personalInfo"`
	ProfileSummary *string          `json:"profileSummary"`
	WorkExperience []WorkExperience `json:"workExperience"`
	Education      []Education      `json:"education"`
	Skills         []SkillCategory  `json:"skills"`
	Licenses       []License        `json:"licenses"`
	Certifications []Certification  `json:"certifications"`
	Internships    []Internship     `json:"internships"`
	Languages      []Language       `json:"languages"`
	CustomSections []CustomSection  `json:"customSections"`

	// Projects is the obsolete pre-v2 top-level collection. It is detected
	// and skipped with a warning, never merged.
	Projects []Project `json:"projects"`
}

// DraftUsecase produces and consumes portable resume snapshots.
type DraftUsecase interface {
	// Export returns nil when the resume does not exist.
	Export(ctx context.Context) (*Draft, error)
	// Import validates the snapshot envelope, applies each present
	// sub-section to the current resume and returns any non-fatal
	// warnings (e.g. skipped legacy fields).
	Import(ctx context.Context, snapshot []byte) ([]string, error)
}
