package interfaces

import "github.com/ternarybob/digero/internal/models"

// AnalysisService derives a ContentAnalysis from a normalized source.
// Implementations must be deterministic: identical sources yield identical
// records.
type AnalysisService interface {
	Analyze(source models.NormalizedSource) models.ContentAnalysis
}
