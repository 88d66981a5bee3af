package analysis

import (
	"strings"

	"github.com/ternarybob/digero/internal/models"
)

// Vocabulary sophistication markers. Each term counts once on presence,
// not frequency.
var (
	advancedTerms = []string{
		"methodology", "paradigm", "epistemological", "heuristic", "stochastic",
		"algorithm", "optimization", "regression", "correlation", "statistical",
	}

	intermediateTerms = []string{
		"analysis", "framework", "concept", "theory", "principle",
		"implementation", "evaluation", "assessment", "systematic",
	}
)

// AssessDifficulty scores vocabulary sophistication into a difficulty label.
// Thresholds: three or more advanced terms is advanced; three or more
// intermediate terms, or any advanced term, is intermediate; anything else
// is beginner. Held constant across the module.
func AssessDifficulty(text string) models.Difficulty {
	lowered := strings.ToLower(text)

	advancedCount := countPresent(lowered, advancedTerms)
	intermediateCount := countPresent(lowered, intermediateTerms)

	switch {
	case advancedCount >= 3:
		return models.DifficultyAdvanced
	case intermediateCount >= 3 || advancedCount >= 1:
		return models.DifficultyIntermediate
	default:
		return models.DifficultyBeginner
	}
}
