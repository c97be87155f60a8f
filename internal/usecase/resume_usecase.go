package usecase

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/logger"
)

// Resetter wipes the durable store back to an empty schema.
type Resetter interface {
	Reset(ctx context.Context) error
}

// resumeUsecase serializes every operation behind one lock, reads included:
// Reset closes and reopens the store handle, so a read overlapping it would
// hit a closed database. The builder is a single-user tool; concurrent
// requests queue rather than race.
type resumeUsecase struct {
	repo  domain.ResumeRepository
	store Resetter
	mu    sync.Mutex
}

func NewResumeUsecase(repo domain.ResumeRepository, store Resetter) domain.ResumeUsecase {
	return &resumeUsecase{
		repo:  repo,
		store: store,
	}
}

func (u *resumeUsecase) GetResume(ctx context.Context) (*domain.ResumeDocument, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	id, err := u.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to open resume: "+err.Error(), err)
	}

	doc, err := u.repo.Load(ctx, id)
	if err != nil {
		return nil, apperror.New(http.StatusInternalServerError, "Failed to load resume: "+err.Error(), err)
	}
	if doc == nil {
		return nil, apperror.NotFound("Resume not found")
	}
	return doc, nil
}

// ============================================================================
// Config & singletons
// ============================================================================

func (u *resumeUsecase) SaveConfig(ctx context.Context, cfg domain.ResumeConfig) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if cfg.Style == "" {
		cfg.Style = domain.DefaultStyle
	}
	if cfg.Theme == "" {
		cfg.Theme = domain.DefaultTheme
	}
	if cfg.Font == "" {
		cfg.Font = domain.DefaultFont
	}

	id, err := u.repo.GetOrCreate(ctx)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to open resume: "+err.Error(), err)
	}
	if err := u.repo.UpdateConfig(ctx, id, cfg.Style, cfg.Theme, cfg.Font); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to save config: "+err.Error(), err)
	}
	return nil
}

func (u *resumeUsecase) SavePersonalInfo(ctx context.Context, info domain.PersonalInfo) error {
	return u.save(ctx, "personalInfo", func(ctx context.Context, id int64) error {
		return u.repo.SavePersonalInfo(ctx, id, info)
	})
}

func (u *resumeUsecase) SaveProfileSummary(ctx context.Context, summary string) error {
	return u.save(ctx, "profileSummary", func(ctx context.Context, id int64) error {
		return u.repo.SaveProfileSummary(ctx, id, summary)
	})
}

// ============================================================================
// Ordered collections
// ============================================================================

func (u *resumeUsecase) SaveWorkExperience(ctx context.Context, entries []domain.WorkExperience) error {
	return u.save(ctx, "workExperience", func(ctx context.Context, id int64) error {
		return u.repo.SaveWorkExperience(ctx, id, entries)
	})
}

func (u *resumeUsecase) SaveEducation(ctx context.Context, entries []domain.Education) error {
	return u.save(ctx, "education", func(ctx context.Context, id int64) error {
		return u.repo.SaveEducation(ctx, id, entries)
	})
}

func (u *resumeUsecase) SaveSkills(ctx context.Context, categories []domain.SkillCategory) error {
	return u.save(ctx, "skills", func(ctx context.Context, id int64) error {
		return u.repo.SaveSkills(ctx, id, categories)
	})
}

func (u *resumeUsecase) SaveLicenses(ctx context.Context, entries []domain.License) error {
	return u.save(ctx, "licenses", func(ctx context.Context, id int64) error {
		return u.repo.SaveLicenses(ctx, id, entries)
	})
}

func (u *resumeUsecase) SaveCertifications(ctx context.Context, entries []domain.Certification) error {
	return u.save(ctx, "certifications", func(ctx context.Context, id int64) error {
		return u.repo.SaveCertifications(ctx, id, entries)
	})
}

func (u *resumeUsecase) SaveInternships(ctx context.Context, entries []domain.Internship) error {
	return u.save(ctx, "internships", func(ctx context.Context, id int64) error {
		return u.repo.SaveInternships(ctx, id, entries)
	})
}

func (u *resumeUsecase) SaveLanguages(ctx context.Context, entries []domain.Language) error {
	return u.save(ctx, "languages", func(ctx context.Context, id int64) error {
		return u.repo.SaveLanguages(ctx, id, entries)
	})
}

func (u *resumeUsecase) SaveCustomSections(ctx context.Context, sections []domain.CustomSection) error {
	return u.save(ctx, "customSections", func(ctx context.Context, id int64) error {
		return u.repo.SaveCustomSections(ctx, id, sections)
	})
}

func (u *resumeUsecase) SaveSectionOrder(ctx context.Context, order []domain.SectionKey) error {
	known := make(map[domain.SectionKey]bool, len(domain.DefaultSectionOrder()))
	for _, key := range domain.DefaultSectionOrder() {
		known[key] = true
	}
	// Unknown keys are dropped rather than stored; renderers would skip
	// them anyway, and the persisted order stays within the closed set.
	kept := make([]domain.SectionKey, 0, len(order))
	for _, key := range order {
		if known[key] {
			kept = append(kept, key)
		} else {
			logger.Log.Warn("dropping unknown section key", "key", string(key))
		}
	}

	return u.save(ctx, "sectionOrder", func(ctx context.Context, id int64) error {
		return u.repo.SaveSectionOrder(ctx, id, kept)
	})
}

// save runs one repository mutation against the current resume under the
// usecase lock.
func (u *resumeUsecase) save(ctx context.Context, section string, fn func(context.Context, int64) error) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	id, err := u.repo.GetOrCreate(ctx)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to open resume: "+err.Error(), err)
	}
	if err := fn(ctx, id); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to save "+section+": "+err.Error(), err)
	}
	return nil
}

// ============================================================================
// Bulk save
// ============================================================================

// SaveAll applies every sub-save in sequence. A failing section is logged
// and skipped; sections already committed stay committed and the caller may
// simply retry.
func (u *resumeUsecase) SaveAll(ctx context.Context, doc *domain.ResumeDocument) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	id, err := u.repo.GetOrCreate(ctx)
	if err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to open resume: "+err.Error(), err)
	}

	steps := []struct {
		name string
		fn   func(context.Context, int64) error
	}{
		{"config", func(ctx context.Context, id int64) error {
			return u.repo.UpdateConfig(ctx, id, doc.Config.Style, doc.Config.Theme, doc.Config.Font)
		}},
		{"personalInfo", func(ctx context.Context, id int64) error {
			return u.repo.SavePersonalInfo(ctx, id, doc.PersonalInfo)
		}},
		{"profileSummary", func(ctx context.Context, id int64) error {
			return u.repo.SaveProfileSummary(ctx, id, doc.ProfileSummary)
		}},
		{"workExperience", func(ctx context.Context, id int64) error {
			return u.repo.SaveWorkExperience(ctx, id, doc.WorkExperience)
		}},
		{"education", func(ctx context.Context, id int64) error {
			return u.repo.SaveEducation(ctx, id, doc.Education)
		}},
		{"skills", func(ctx context.Context, id int64) error {
			return u.repo.SaveSkills(ctx, id, doc.Skills)
		}},
		{"licenses", func(ctx context.Context, id int64) error {
			return u.repo.SaveLicenses(ctx, id, doc.Licenses)
		}},
		{"certifications", func(ctx context.Context, id int64) error {
			return u.repo.SaveCertifications(ctx, id, doc.Certifications)
		}},
		{"internships", func(ctx context.Context, id int64) error {
			return u.repo.SaveInternships(ctx, id, doc.Internships)
		}},
		{"languages", func(ctx context.Context, id int64) error {
			return u.repo.SaveLanguages(ctx, id, doc.Languages)
		}},
		{"customSections", func(ctx context.Context, id int64) error {
			return u.repo.SaveCustomSections(ctx, id, doc.CustomSections)
		}},
	}
	if len(doc.Config.SectionOrder) > 0 {
		steps = append(steps, struct {
			name string
			fn   func(context.Context, int64) error
		}{"sectionOrder", func(ctx context.Context, id int64) error {
			return u.repo.SaveSectionOrder(ctx, id, doc.Config.SectionOrder)
		}})
	}

	var failed []string
	for _, step := range steps {
		if err := step.fn(ctx, id); err != nil {
			logger.Log.Error("section save failed", "section", step.name, "error", err)
			failed = append(failed, step.name)
		}
	}
	if len(failed) > 0 {
		return apperror.New(http.StatusInternalServerError,
			"Failed to save sections: "+strings.Join(failed, ", "), nil)
	}
	return nil
}

// ============================================================================
// Reset
// ============================================================================

func (u *resumeUsecase) Reset(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.store.Reset(ctx); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to reset store: "+err.Error(), err)
	}
	if _, err := u.repo.GetOrCreate(ctx); err != nil {
		return apperror.New(http.StatusInternalServerError, "Failed to recreate resume: "+err.Error(), err)
	}
	return nil
}
