package analysis

import (
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/digero/internal/interfaces"
	"github.com/ternarybob/digero/internal/models"
)

// Analyze runs every analysis pass over the source and assembles the
// ContentAnalysis record. The passes are independent — each reads only the
// raw text, title, and source type — so no ordering between them matters.
// Pure function: the same source always yields an identical record.
func Analyze(source models.NormalizedSource) models.ContentAnalysis {
	wordCount := WordCount(source.Text)

	return models.ContentAnalysis{
		ExecutiveSummary:   GenerateExecutiveSummary(source.Text, source.Title, source.SourceType),
		KeyInsights:        ExtractKeyInsights(source.Text),
		DetailedNotes:      CreateDetailedNotes(source.Text),
		Concepts:           ExtractConcepts(source.Text),
		ActionableItems:    ExtractActionableItems(source.Text),
		Connections:        FindConnections(source.Text),
		Difficulty:         AssessDifficulty(source.Text),
		WordCount:          wordCount,
		ReadingTimeMinutes: ReadingTime(wordCount),
		CredibilityScore:   CalculateCredibilityScore(source.Text, source.SourceType),
		Quotes:             ExtractQuotes(source.Text),
	}
}

// Service exposes the analysis pipeline to handlers with request logging
type Service struct {
	logger arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.AnalysisService = (*Service)(nil)

// NewService creates an analysis service
func NewService(logger arbor.ILogger) *Service {
	return &Service{logger: logger}
}

// Analyze implements interfaces.AnalysisService
func (s *Service) Analyze(source models.NormalizedSource) models.ContentAnalysis {
	start := time.Now()
	result := Analyze(source)

	s.logger.Debug().
		Str("source_id", source.ID).
		Str("source_type", string(source.SourceType)).
		Int("word_count", result.WordCount).
		Int("credibility", result.CredibilityScore).
		Str("difficulty", string(result.Difficulty)).
		Int64("elapsed_ms", time.Since(start).Milliseconds()).
		Msg("Content analysis completed")

	return result
}
