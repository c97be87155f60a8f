package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/repository/sqlite"
)

func openTestStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "resume.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleDocument() *domain.ResumeDocument {
	return &domain.ResumeDocument{
		PersonalInfo: domain.PersonalInfo{
			FullName: "Jane Doe",
			JobTitle: "Staff Engineer",
			Email:    "jane@example.com",
			Phone:    "+1 555 0100",
			Location: "Berlin",
			LinkedIn: "linkedin.com/in/janedoe",
		},
		ProfileSummary: "Engineer with a focus on **reliability**.",
		WorkExperience: []domain.WorkExperience{
			{
				Company:      "Acme Corp",
				Role:         "Staff Engineer",
				Location:     "Berlin",
				StartDate:    "Jan 2020",
				EndDate:      "",
				Description:  "Platform team",
				Achievements: []string{"Cut deploy time by 80%", "Led the on-call rotation"},
				Projects: []domain.Project{
					{Title: "Deploy pipeline", Description: "CI rebuild", Technologies: "Go, SQLite"},
				},
			},
			{
				Company:   "Initech",
				Role:      "Engineer",
				StartDate: "Mar 2017",
				EndDate:   "Dec 2019",
			},
		},
		Education: []domain.Education{
			{Institution: "TU Berlin", Degree: "BSc", Field: "Computer Science", StartDate: "2013", EndDate: "2017", GPA: "1.3"},
		},
		Skills: []domain.SkillCategory{
			{Category: "Languages", Items: []string{"Go", "SQL"}},
			{Category: "Practices", Bulleted: true, Items: []string{"Incident response"}},
		},
		Licenses: []domain.License{
			{Name: "Registered Nurse (RN)", IssuingOrg: "State Board", IssueDate: "Jan 2020", ExpirationDate: "Jan 2025", LicenseNumber: "LIC-123456"},
		},
		Certifications: []domain.Certification{
			{Name: "CKA", IssuingOrg: "CNCF", Date: "2022", CredentialID: "CKA-100"},
		},
		Internships: []domain.Internship{
			{Company: "Startup GmbH", Role: "Intern", StartDate: "2016", EndDate: "2016", Description: "Summer internship"},
		},
		Languages: []domain.Language{
			{Language: "German", Proficiency: "Native"},
			{Language: "English", Proficiency: "Fluent"},
		},
		CustomSections: []domain.CustomSection{
			{Title: "Volunteering", Items: []string{"Food bank", "Code mentoring"}},
		},
	}
}

func saveAllCollections(t *testing.T, repo domain.ResumeRepository, id int64, doc *domain.ResumeDocument) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, repo.SavePersonalInfo(ctx, id, doc.PersonalInfo))
	require.NoError(t, repo.SaveProfileSummary(ctx, id, doc.ProfileSummary))
	require.NoError(t, repo.SaveWorkExperience(ctx, id, doc.WorkExperience))
	require.NoError(t, repo.SaveEducation(ctx, id, doc.Education))
	require.NoError(t, repo.SaveSkills(ctx, id, doc.Skills))
	require.NoError(t, repo.SaveLicenses(ctx, id, doc.Licenses))
	require.NoError(t, repo.SaveCertifications(ctx, id, doc.Certifications))
	require.NoError(t, repo.SaveInternships(ctx, id, doc.Internships))
	require.NoError(t, repo.SaveLanguages(ctx, id, doc.Languages))
	require.NoError(t, repo.SaveCustomSections(ctx, id, doc.CustomSections))
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := sqlite.NewResumeRepository(store)

	id, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)

	t.Run("creates the default resume on first use", func(t *testing.T) {
		doc, err := repo.Load(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, domain.DefaultResumeName, doc.Config.Name)
		assert.Equal(t, domain.DefaultStyle, doc.Config.Style)
		assert.Equal(t, domain.DefaultTheme, doc.Config.Theme)
		assert.Equal(t, domain.DefaultFont, doc.Config.Font)
		assert.Empty(t, doc.PersonalInfo.FullName)
		assert.Empty(t, doc.WorkExperience)
	})

	t.Run("returns the same resume on subsequent calls", func(t *testing.T) {
		again, err := repo.GetOrCreate(ctx)
		require.NoError(t, err)
		assert.Equal(t, id, again)
	})
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := sqlite.NewResumeRepository(store)

	id, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)

	want := sampleDocument()
	saveAllCollections(t, repo, id, want)

	got, err := repo.Load(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, want.PersonalInfo, got.PersonalInfo)
	assert.Equal(t, want.ProfileSummary, got.ProfileSummary)
	assert.Equal(t, want.WorkExperience, got.WorkExperience)
	assert.Equal(t, want.Education, got.Education)
	assert.Equal(t, want.Skills, got.Skills)
	assert.Equal(t, want.Licenses, got.Licenses)
	assert.Equal(t, want.Certifications, got.Certifications)
	assert.Equal(t, want.Internships, got.Internships)
	assert.Equal(t, want.Languages, got.Languages)
	assert.Equal(t, want.CustomSections, got.CustomSections)
}

func TestWholesaleReplace(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := sqlite.NewResumeRepository(store)

	id, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)

	doc := sampleDocument()

	t.Run("saving twice does not duplicate rows", func(t *testing.T) {
		require.NoError(t, repo.SaveWorkExperience(ctx, id, doc.WorkExperience))
		require.NoError(t, repo.SaveWorkExperience(ctx, id, doc.WorkExperience))

		got, err := repo.Load(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, doc.WorkExperience, got.WorkExperience)

		var achievements int
		require.NoError(t, store.QueryRow(ctx, `SELECT COUNT(*) FROM work_achievements`).Scan(&achievements))
		assert.Equal(t, 2, achievements)
	})

	t.Run("saving an empty slice clears the collection", func(t *testing.T) {
		require.NoError(t, repo.SaveWorkExperience(ctx, id, nil))

		got, err := repo.Load(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, got.WorkExperience)

		var orphans int
		require.NoError(t, store.QueryRow(ctx, `SELECT COUNT(*) FROM work_achievements`).Scan(&orphans))
		assert.Zero(t, orphans)
	})

	t.Run("reordering is reflected by position", func(t *testing.T) {
		reversed := []domain.WorkExperience{doc.WorkExperience[1], doc.WorkExperience[0]}
		require.NoError(t, repo.SaveWorkExperience(ctx, id, reversed))

		got, err := repo.Load(ctx, id)
		require.NoError(t, err)
		require.Len(t, got.WorkExperience, 2)
		assert.Equal(t, "Initech", got.WorkExperience[0].Company)
		assert.Equal(t, "Acme Corp", got.WorkExperience[1].Company)
	})
}

func TestCascadeDelete(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := sqlite.NewResumeRepository(store)

	id, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	saveAllCollections(t, repo, id, sampleDocument())

	require.NoError(t, repo.Delete(ctx, id))

	for _, table := range []string{
		"personal_info", "profile_summary", "work_experience", "work_achievements",
		"projects", "education", "skills", "skill_items", "licenses",
		"certifications", "internships", "languages", "custom_sections", "custom_section_items",
	} {
		var count int
		require.NoError(t, store.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&count))
		assert.Zero(t, count, "expected no rows left in %s", table)
	}

	doc, err := repo.Load(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestSectionOrder(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := sqlite.NewResumeRepository(store)

	id, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)

	t.Run("defaults when unset", func(t *testing.T) {
		order, err := repo.GetSectionOrder(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []domain.SectionKey{
			domain.SectionSummary, domain.SectionSkills, domain.SectionLicenses, domain.SectionWork,
			domain.SectionEducation, domain.SectionCertifications, domain.SectionInternships, domain.SectionLanguages,
		}, order)
	})

	t.Run("persists a custom order", func(t *testing.T) {
		custom := []domain.SectionKey{domain.SectionWork, domain.SectionSummary, domain.SectionSkills}
		require.NoError(t, repo.SaveSectionOrder(ctx, id, custom))

		order, err := repo.GetSectionOrder(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, custom, order)
	})

	t.Run("falls back on malformed stored value", func(t *testing.T) {
		_, err := store.Exec(ctx, `UPDATE resumes SET section_order = 'not json' WHERE id = ?`, id)
		require.NoError(t, err)

		order, err := repo.GetSectionOrder(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSectionOrder(), order)
	})

	t.Run("falls back on empty stored array", func(t *testing.T) {
		_, err := store.Exec(ctx, `UPDATE resumes SET section_order = '[]' WHERE id = ?`, id)
		require.NoError(t, err)

		order, err := repo.GetSectionOrder(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSectionOrder(), order)
	})
}

func TestStoreReset(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := sqlite.NewResumeRepository(store)

	id, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	saveAllCollections(t, repo, id, sampleDocument())

	require.NoError(t, store.Reset(ctx))

	freshID, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)

	doc, err := repo.Load(ctx, freshID)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Empty(t, doc.PersonalInfo.FullName)
	assert.Empty(t, doc.WorkExperience)
	assert.Equal(t, domain.DefaultResumeName, doc.Config.Name)
}

func TestLoadUnknownResume(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	repo := sqlite.NewResumeRepository(store)

	doc, err := repo.Load(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestOpenIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.db")

	store, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	repo := sqlite.NewResumeRepository(store)
	id, err := repo.GetOrCreate(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.SaveProfileSummary(ctx, id, "kept across reopen"))
	require.NoError(t, store.Close())

	reopened, err := sqlite.Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	doc, err := sqlite.NewResumeRepository(reopened).Load(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "kept across reopen", doc.ProfileSummary)
}
