package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/digero/internal/interfaces"
	"github.com/ternarybob/digero/internal/models"
)

// AnalyzeHandler handles direct text analysis requests
type AnalyzeHandler struct {
	analysisService interfaces.AnalysisService
	logger          arbor.ILogger
	validate        *validator.Validate
}

// NewAnalyzeHandler creates a new analyze handler with dependencies
func NewAnalyzeHandler(analysisService interfaces.AnalysisService, logger arbor.ILogger) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
		logger:          logger,
		validate:        validator.New(),
	}
}

// AnalyzeRequest is the payload for POST /api/analyze. Text may be empty:
// the pipeline degrades to fallback output rather than rejecting input.
type AnalyzeRequest struct {
	Text       string            `json:"text"`
	Title      string            `json:"title"`
	SourceType models.SourceType `json:"source_type" validate:"required,oneof=web video document plaintext"`
}

// AnalyzeContentHandler handles POST /api/analyze requests
func (h *AnalyzeHandler) AnalyzeContentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "source_type must be one of: web, video, document, plaintext")
		return
	}

	source := models.NormalizedSource{
		Title:      req.Title,
		Text:       req.Text,
		SourceType: req.SourceType,
	}

	result := h.analysisService.Analyze(source)

	h.logger.Debug().
		Str("source_type", string(req.SourceType)).
		Int("word_count", result.WordCount).
		Msg("Analyze request served")

	WriteJSON(w, http.StatusOK, result)
}
