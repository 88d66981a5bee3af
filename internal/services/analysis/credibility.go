package analysis

import (
	"strings"

	"github.com/ternarybob/digero/internal/models"
)

const credibilityBase = 50

// credibilityCue is a yes/no lexical check worth a fixed number of points.
// A group contributes at most once even when several of its phrases match.
type credibilityCue struct {
	phrases []string
	points  int
}

var credibilityCues = []credibilityCue{
	{[]string{"research", "study"}, 15},
	{[]string{"university", "academic"}, 10},
	{[]string{"peer-reviewed", "journal"}, 20},
	{[]string{"data", "evidence"}, 10},
	{[]string{"reference", "citation"}, 10},
}

// Length bonus thresholds, cumulative
const (
	lengthBonusWords     = 1000
	longLengthBonusWords = 3000
	lengthBonusPoints    = 5
)

// CalculateCredibilityScore produces a heuristic trustworthiness score in
// [0,100] from lexical cues, the source type, and text length. Documents
// score a bonus, video transcripts a small penalty.
func CalculateCredibilityScore(text string, sourceType models.SourceType) int {
	score := credibilityBase
	lowered := strings.ToLower(text)

	for _, cue := range credibilityCues {
		if containsAny(lowered, cue.phrases) {
			score += cue.points
		}
	}

	switch sourceType {
	case models.SourceTypeDocument:
		score += 15
	case models.SourceTypeVideo:
		score -= 5
	}

	wordCount := WordCount(text)
	if wordCount > lengthBonusWords {
		score += lengthBonusPoints
	}
	if wordCount > longLengthBonusWords {
		score += lengthBonusPoints
	}

	return Clamp(score, 0, 100)
}
