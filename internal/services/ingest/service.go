// Package ingest turns raw sources — web pages, PDFs, video transcripts,
// pasted text — into NormalizedSource values for the analysis core. Each
// ingest performs at most one outbound fetch and never retries.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/digero/internal/common"
	"github.com/ternarybob/digero/internal/interfaces"
	"github.com/ternarybob/digero/internal/models"
	"golang.org/x/time/rate"
)

// ErrProcessingFailed is the single failure condition ingestion surfaces to
// callers. Wrapped errors carry the human-readable detail.
var ErrProcessingFailed = errors.New("processing failed")

// Service implements interfaces.IngestService
type Service struct {
	config    *common.IngestConfig
	logger    arbor.ILogger
	client    *http.Client
	limiter   *rate.Limiter
	transform *Transform
}

// Compile-time interface assertion
var _ interfaces.IngestService = (*Service)(nil)

// NewService creates an ingest service
func NewService(config *common.IngestConfig, logger arbor.ILogger) *Service {
	return &Service{
		config:    config,
		logger:    logger,
		client:    &http.Client{Timeout: config.RequestTimeout},
		limiter:   rate.NewLimiter(rate.Limit(config.RequestsPerSecond), 1),
		transform: NewTransform(logger),
	}
}

// IngestText normalizes pasted text. Markdown-looking input is flattened to
// plain text for the analysis core while the original markdown is kept for
// display.
func (s *Service) IngestText(ctx context.Context, title, text string) (*models.NormalizedSource, error) {
	if strings.TrimSpace(title) == "" {
		title = "Text Content"
	}

	plain := text
	markdown := ""
	if s.config.NormalizeMarkdown && looksLikeMarkdown(text) {
		markdown = text
		plain = s.transform.MarkdownToText(text)
	}

	source := s.newSource(title, plain, models.SourceTypePlainText, models.SourceMetadata{
		Author: "User Input",
		Domain: "text",
	})
	source.ContentMarkdown = markdown

	s.logger.Info().
		Str("source_id", source.ID).
		Int("text_length", len(plain)).
		Msg("Text content ingested")

	return source, nil
}

// newSource assembles a NormalizedSource with a fresh src_{uuid} identity
func (s *Service) newSource(title, text string, sourceType models.SourceType, metadata models.SourceMetadata) *models.NormalizedSource {
	return &models.NormalizedSource{
		ID:         fmt.Sprintf("src_%s", uuid.New().String()),
		Title:      title,
		Text:       text,
		SourceType: sourceType,
		Metadata:   metadata,
		CreatedAt:  time.Now().UTC(),
	}
}

// fetch performs one rate-limited GET with the configured user agent and
// timeout. Callers own the response body.
func (s *Service) fetch(ctx context.Context, url string) (*http.Response, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: fetch cancelled: %v", ErrProcessingFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid request for %s: %v", ErrProcessingFailed, url, err)
	}
	req.Header.Set("User-Agent", s.config.UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch of %s failed: %v", ErrProcessingFailed, url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: fetch of %s returned status %d", ErrProcessingFailed, url, resp.StatusCode)
	}
	return resp, nil
}
