package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	v1 "go-resume-builder/internal/delivery/http/v1"
	"go-resume-builder/internal/domain"
	"go-resume-builder/internal/repository/sqlite"
	"go-resume-builder/internal/usecase"
)

// stubPrinter avoids a Chrome dependency in handler tests.
type stubPrinter struct{}

func (stubPrinter) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	return []byte("%PDF-1.7 stub"), nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := sqlite.Open(context.Background(), filepath.Join(t.TempDir(), "resume.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	repo := sqlite.NewResumeRepository(store)
	resumeUC := usecase.NewResumeUsecase(repo, store)
	draftUC := usecase.NewDraftUsecase(repo, resumeUC)
	exportUC := usecase.NewExportUsecase(resumeUC, draftUC, stubPrinter{})

	return v1.NewRouter(v1.RouterDeps{
		ResumeUC: resumeUC,
		DraftUC:  draftUC,
		ExportUC: exportUC,
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type envelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Data     json.RawMessage `json:"data"`
	Warnings []string        `json:"warnings"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeEnvelope(t, w).Success)
}

func TestGetResumeCreatesDefault(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/v1/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc domain.ResumeDocument
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &doc))
	assert.Equal(t, domain.DefaultResumeName, doc.Config.Name)
	assert.Equal(t, domain.DefaultTheme, doc.Config.Theme)
}

func TestSaveAndReloadWork(t *testing.T) {
	router := newTestRouter(t)

	entries := []domain.WorkExperience{{
		Company:      "Acme",
		Role:         "Engineer",
		StartDate:    "Jan 2020",
		Achievements: []string{"Shipped the thing"},
	}}
	w := doJSON(t, router, http.MethodPut, "/v1/resume/work", entries)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc domain.ResumeDocument
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &doc))
	require.Len(t, doc.WorkExperience, 1)
	assert.Equal(t, "Acme", doc.WorkExperience[0].Company)
	assert.Equal(t, []string{"Shipped the thing"}, doc.WorkExperience[0].Achievements)
}

func TestSaveConfigRejectsBadTheme(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/v1/resume/config", map[string]string{"theme": "not-a-color"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSectionOrderEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPut, "/v1/resume/section-order",
		map[string]any{"order": []string{"work", "summary", "skills"}})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/v1/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc domain.ResumeDocument
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &doc))
	assert.Equal(t, []domain.SectionKey{
		domain.SectionWork, domain.SectionSummary, domain.SectionSkills,
	}, doc.Config.SectionOrder)
}

func TestImportDraftValidation(t *testing.T) {
	router := newTestRouter(t)

	t.Run("missing resume payload", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/v1/resume/import/draft", map[string]int{"version": 2})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("legacy projects produce a warning", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/v1/resume/import/draft", map[string]any{
			"version": 1,
			"resume": map[string]any{
				"profileSummary": "imported",
				"projects":       []map[string]string{{"title": "Legacy"}},
			},
		})
		require.Equal(t, http.StatusOK, w.Code)

		env := decodeEnvelope(t, w)
		require.Len(t, env.Warnings, 1)
		assert.Contains(t, env.Warnings[0], "legacy top-level projects")
	})
}

func TestExportEndpoints(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodPut, "/v1/resume/personal-info",
			domain.PersonalInfo{FullName: "Jane Doe"}).Code)

	t.Run("html preview", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/v1/resume/export/html", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, w.Body.String(), "Jane Doe")
	})

	t.Run("draft download", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/v1/resume/export/draft", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "Jane_Doe_Resume_")

		var draft domain.Draft
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &draft))
		assert.Equal(t, domain.DraftVersion, draft.Version)
	})

	t.Run("pdf download", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/v1/resume/export/pdf", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
		assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
	})

	t.Run("docx download", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/v1/resume/export/docx", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, strings.HasPrefix(w.Body.String(), "PK"))
	})
}

func TestResetEndpoint(t *testing.T) {
	router := newTestRouter(t)

	require.Equal(t, http.StatusOK,
		doJSON(t, router, http.MethodPut, "/v1/resume/summary", map[string]string{"summary": "to be wiped"}).Code)

	require.Equal(t, http.StatusOK, doJSON(t, router, http.MethodPost, "/v1/resume/reset", nil).Code)

	w := doJSON(t, router, http.MethodGet, "/v1/resume", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc domain.ResumeDocument
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, w).Data, &doc))
	assert.Empty(t, doc.ProfileSummary)
}
