package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/digero/internal/interfaces"
	"github.com/ternarybob/digero/internal/models"
	"github.com/ternarybob/digero/internal/services/ingest"
)

// maxPDFUploadSize caps multipart PDF uploads
const maxPDFUploadSize = 32 << 20 // 32 MB

// IngestHandler handles source ingestion requests: normalize then analyze
type IngestHandler struct {
	ingestService   interfaces.IngestService
	analysisService interfaces.AnalysisService
	logger          arbor.ILogger
	validate        *validator.Validate
}

// NewIngestHandler creates a new ingest handler with dependencies
func NewIngestHandler(ingestService interfaces.IngestService, analysisService interfaces.AnalysisService, logger arbor.ILogger) *IngestHandler {
	return &IngestHandler{
		ingestService:   ingestService,
		analysisService: analysisService,
		logger:          logger,
		validate:        validator.New(),
	}
}

// IngestResponse pairs the normalized source with its analysis
type IngestResponse struct {
	Source   *models.NormalizedSource `json:"source"`
	Analysis models.ContentAnalysis   `json:"analysis"`
}

// IngestURLRequest is the payload for POST /api/ingest/url
type IngestURLRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// IngestTextRequest is the payload for POST /api/ingest/text
type IngestTextRequest struct {
	Title string `json:"title"`
	Text  string `json:"text" validate:"required"`
}

// IngestVideoRequest is the payload for POST /api/ingest/video. The
// transcript is supplied by the caller; only video metadata is fetched.
type IngestVideoRequest struct {
	URL        string `json:"url" validate:"required,url"`
	Transcript string `json:"transcript" validate:"required"`
}

// IngestURLHandler handles POST /api/ingest/url requests
func (h *IngestHandler) IngestURLHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req IngestURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "url is required and must be a valid URL")
		return
	}

	source, err := h.ingestService.IngestURL(r.Context(), req.URL)
	if err != nil {
		h.writeIngestError(w, err)
		return
	}
	h.respond(w, source)
}

// IngestTextHandler handles POST /api/ingest/text requests
func (h *IngestHandler) IngestTextHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req IngestTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "text is required")
		return
	}

	source, err := h.ingestService.IngestText(r.Context(), req.Title, req.Text)
	if err != nil {
		h.writeIngestError(w, err)
		return
	}
	h.respond(w, source)
}

// IngestVideoHandler handles POST /api/ingest/video requests
func (h *IngestHandler) IngestVideoHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req IngestVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "url and transcript are required")
		return
	}

	source, err := h.ingestService.IngestVideo(r.Context(), req.URL, req.Transcript)
	if err != nil {
		h.writeIngestError(w, err)
		return
	}
	h.respond(w, source)
}

// IngestPDFHandler handles POST /api/ingest/pdf multipart requests with the
// PDF in the "file" field
func (h *IngestHandler) IngestPDFHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if err := r.ParseMultipartForm(maxPDFUploadSize); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxPDFUploadSize))
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Failed to read upload")
		return
	}

	source, err := h.ingestService.IngestPDF(r.Context(), header.Filename, data)
	if err != nil {
		h.writeIngestError(w, err)
		return
	}
	h.respond(w, source)
}

func (h *IngestHandler) respond(w http.ResponseWriter, source *models.NormalizedSource) {
	WriteJSON(w, http.StatusOK, IngestResponse{
		Source:   source,
		Analysis: h.analysisService.Analyze(*source),
	})
}

func (h *IngestHandler) writeIngestError(w http.ResponseWriter, err error) {
	h.logger.Warn().Err(err).Msg("Ingest request failed")

	if errors.Is(err, ingest.ErrProcessingFailed) {
		WriteError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	WriteError(w, http.StatusInternalServerError, "Internal server error")
}
