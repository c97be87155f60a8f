package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"go-resume-builder/internal/domain"
	"go-resume-builder/pkg/apperror"
	"go-resume-builder/pkg/logger"
)

// draftEnvelopeSchema validates only the envelope shape. Individual section
// payloads stay forward-tolerant: newer fields are ignored on decode.
const draftEnvelopeSchema = `{
	"type": "object",
	"required": ["resume"],
	"properties": {
		"version": {"type": "integer"},
		"exportedAt": {"type": "string"},
		"resume": {"type": "object"}
	}
}`

type draftUsecase struct {
	repo   domain.ResumeRepository
	resume domain.ResumeUsecase
	schema *gojsonschema.Schema
}

func NewDraftUsecase(repo domain.ResumeRepository, resume domain.ResumeUsecase) domain.DraftUsecase {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(draftEnvelopeSchema))
	if err != nil {
		// The schema is a compile-time constant; failing to parse it is a
		// programming error.
		panic(fmt.Sprintf("invalid draft schema: %v", err))
	}
	return &draftUsecase{
		repo:   repo,
		resume: resume,
		schema: schema,
	}
}

func (u *draftUsecase) Export(ctx context.Context) (*domain.Draft, error) {
	id, err := u.repo.GetOrCreate(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	doc, err := u.repo.Load(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if doc == nil {
		return nil, nil
	}
	return &domain.Draft{
		Version:    domain.DraftVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Resume:     *doc,
	}, nil
}

// draftEnvelope is the decode target for an imported snapshot.
type draftEnvelope struct {
	Version    int                `json:"version"`
	ExportedAt string             `json:"exportedAt"`
	Resume     domain.DraftResume `json:"resume"`
}

func (u *draftUsecase) Import(ctx context.Context, snapshot []byte) ([]string, error) {
	result, err := u.schema.Validate(gojsonschema.NewBytesLoader(snapshot))
	if err != nil {
		return nil, apperror.BadRequest("Draft is not valid JSON: " + err.Error())
	}
	if !result.Valid() {
		return nil, apperror.BadRequest("Draft is missing a resume payload")
	}

	var envelope draftEnvelope
	if err := json.Unmarshal(snapshot, &envelope); err != nil {
		return nil, apperror.BadRequest("Draft has an unexpected shape: " + err.Error())
	}

	var warnings []string
	if envelope.Version > domain.DraftVersion {
		warnings = append(warnings,
			fmt.Sprintf("draft version %d is newer than supported version %d; unknown fields were ignored",
				envelope.Version, domain.DraftVersion))
	}

	// Apply each present sub-section. Absent sections leave the target
	// untouched; this is a partial import, not an overwrite-with-defaults.
	r := envelope.Resume
	if r.Config != nil {
		if err := u.resume.SaveConfig(ctx, *r.Config); err != nil {
			return warnings, err
		}
	}
	if r.PersonalInfo != nil {
		if err := u.resume.SavePersonalInfo(ctx, *r.PersonalInfo); err != nil {
			return warnings, err
		}
	}
	if r.ProfileSummary != nil {
		if err := u.resume.SaveProfileSummary(ctx, *r.ProfileSummary); err != nil {
			return warnings, err
		}
	}
	if r.WorkExperience != nil {
		if err := u.resume.SaveWorkExperience(ctx, r.WorkExperience); err != nil {
			return warnings, err
		}
	}
	if r.Education != nil {
		if err := u.resume.SaveEducation(ctx, r.Education); err != nil {
			return warnings, err
		}
	}
	if r.Skills != nil {
		if err := u.resume.SaveSkills(ctx, r.Skills); err != nil {
			return warnings, err
		}
	}
	if r.Licenses != nil {
		if err := u.resume.SaveLicenses(ctx, r.Licenses); err != nil {
			return warnings, err
		}
	}
	if r.Certifications != nil {
		if err := u.resume.SaveCertifications(ctx, r.Certifications); err != nil {
			return warnings, err
		}
	}
	if r.Internships != nil {
		if err := u.resume.SaveInternships(ctx, r.Internships); err != nil {
			return warnings, err
		}
	}
	if r.Languages != nil {
		if err := u.resume.SaveLanguages(ctx, r.Languages); err != nil {
			return warnings, err
		}
	}
	if r.CustomSections != nil {
		if err := u.resume.SaveCustomSections(ctx, r.CustomSections); err != nil {
			return warnings, err
		}
	}
	if r.Config != nil && r.Config.SectionOrder != nil {
		if err := u.resume.SaveSectionOrder(ctx, r.Config.SectionOrder); err != nil {
			return warnings, err
		}
	}

	// Pre-v2 drafts carried projects at the top level. The schema only
	// knows projects nested under work entries, so these are skipped,
	// never merged. A draft that already nests projects under work entries
	// has been migrated; its leftover top-level list is stale, not lost.
	if len(r.Projects) > 0 && !hasNestedProjects(r.WorkExperience) {
		msg := fmt.Sprintf("skipped %d legacy top-level projects; projects now belong under work entries", len(r.Projects))
		logger.Log.Warn("draft import", "warning", msg)
		warnings = append(warnings, msg)
	}

	return warnings, nil
}

func hasNestedProjects(entries []domain.WorkExperience) bool {
	for _, w := range entries {
		if len(w.Projects) > 0 {
			return true
		}
	}
	return false
}
