package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/digero/internal/models"
	"github.com/ternarybob/digero/internal/services/analysis"
)

func newAnalyzeHandler() *AnalyzeHandler {
	logger := arbor.NewLogger()
	return NewAnalyzeHandler(analysis.NewService(logger), logger)
}

func TestAnalyzeContentHandler(t *testing.T) {
	handler := newAnalyzeHandler()

	body := `{"text":"Research shows that cognitive load theory is crucial for learning outcomes.","title":"Notes","source_type":"plaintext"}`
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.AnalyzeContentHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var result models.ContentAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))

	assert.Equal(t, 11, result.WordCount)
	assert.NotEmpty(t, result.ExecutiveSummary)
	assert.NotEmpty(t, result.KeyInsights)
	assert.NotEmpty(t, result.Concepts)
}

func TestAnalyzeContentHandlerEmptyText(t *testing.T) {
	handler := newAnalyzeHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"source_type":"web"}`))
	rec := httptest.NewRecorder()

	handler.AnalyzeContentHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.ContentAnalysis
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 0, result.WordCount)
	assert.Equal(t, 50, result.CredibilityScore)
}

func TestAnalyzeContentHandlerRejectsBadSourceType(t *testing.T) {
	handler := newAnalyzeHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{"text":"x","source_type":"podcast"}`))
	rec := httptest.NewRecorder()

	handler.AnalyzeContentHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeContentHandlerRejectsBadJSON(t *testing.T) {
	handler := newAnalyzeHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/analyze", strings.NewReader(`{not json`))
	rec := httptest.NewRecorder()

	handler.AnalyzeContentHandler(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyzeContentHandlerRejectsGet(t *testing.T) {
	handler := newAnalyzeHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/analyze", nil)
	rec := httptest.NewRecorder()

	handler.AnalyzeContentHandler(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
