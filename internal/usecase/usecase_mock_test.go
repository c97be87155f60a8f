package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"go-resume-builder/internal/domain"
)

// MockResumeRepo implements domain.ResumeRepository for usecase tests.
type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) GetOrCreate(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResumeRepo) Create(ctx context.Context, name, style, theme, font string) (int64, error) {
	args := m.Called(ctx, name, style, theme, font)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResumeRepo) UpdateConfig(ctx context.Context, resumeID int64, style, theme, font string) error {
	return m.Called(ctx, resumeID, style, theme, font).Error(0)
}

func (m *MockResumeRepo) Delete(ctx context.Context, resumeID int64) error {
	return m.Called(ctx, resumeID).Error(0)
}

func (m *MockResumeRepo) SavePersonalInfo(ctx context.Context, resumeID int64, info domain.PersonalInfo) error {
	return m.Called(ctx, resumeID, info).Error(0)
}

func (m *MockResumeRepo) SaveProfileSummary(ctx context.Context, resumeID int64, summary string) error {
	return m.Called(ctx, resumeID, summary).Error(0)
}

func (m *MockResumeRepo) SaveWorkExperience(ctx context.Context, resumeID int64, entries []domain.WorkExperience) error {
	return m.Called(ctx, resumeID, entries).Error(0)
}

func (m *MockResumeRepo) SaveEducation(ctx context.Context, resumeID int64, entries []domain.Education) error {
	return m.Called(ctx, resumeID, entries).Error(0)
}

func (m *MockResumeRepo) SaveSkills(ctx context.Context, resumeID int64, categories []domain.SkillCategory) error {
	return m.Called(ctx, resumeID, categories).Error(0)
}

func (m *MockResumeRepo) SaveLicenses(ctx context.Context, resumeID int64, entries []domain.License) error {
	return m.Called(ctx, resumeID, entries).Error(0)
}

func (m *MockResumeRepo) SaveCertifications(ctx context.Context, resumeID int64, entries []domain.Certification) error {
	return m.Called(ctx, resumeID, entries).Error(0)
}

func (m *MockResumeRepo) SaveInternships(ctx context.Context, resumeID int64, entries []domain.Internship) error {
	return m.Called(ctx, resumeID, entries).Error(0)
}

func (m *MockResumeRepo) SaveLanguages(ctx context.Context, resumeID int64, entries []domain.Language) error {
	return m.Called(ctx, resumeID, entries).Error(0)
}

func (m *MockResumeRepo) SaveCustomSections(ctx context.Context, resumeID int64, sections []domain.CustomSection) error {
	return m.Called(ctx, resumeID, sections).Error(0)
}

func (m *MockResumeRepo) SaveSectionOrder(ctx context.Context, resumeID int64, order []domain.SectionKey) error {
	return m.Called(ctx, resumeID, order).Error(0)
}

func (m *MockResumeRepo) GetSectionOrder(ctx context.Context, resumeID int64) ([]domain.SectionKey, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SectionKey), args.Error(1)
}

func (m *MockResumeRepo) Load(ctx context.Context, resumeID int64) (*domain.ResumeDocument, error) {
	args := m.Called(ctx, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResumeDocument), args.Error(1)
}

// MockResetter implements usecase.Resetter.
type MockResetter struct {
	mock.Mock
}

func (m *MockResetter) Reset(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockPrinter implements usecase.PDFPrinter.
type MockPrinter struct {
	mock.Mock
}

func (m *MockPrinter) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(ctx, html)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
