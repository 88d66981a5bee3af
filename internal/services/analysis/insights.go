package analysis

import "strings"

const (
	maxInsights         = 6
	minInsightLength    = 30
	fallbackInsightSize = 5
)

// insightSignals are lexical cues that mark a sentence as carrying an
// insight worth surfacing
var insightSignals = []string{
	"research shows", "studies indicate", "evidence suggests", "findings reveal",
	"important to note", "key factor", "crucial element", "significant impact",
	"proven effective", "demonstrates that", "results show",
}

// ExtractKeyInsights selects sentences carrying insight signal phrases, in
// document order, capped at 6. When no sentence matches, the first five
// substantial sentences are returned instead so the result is never starved
// by signal-free text.
func ExtractKeyInsights(text string) []string {
	sentences := sentencesLongerThan(text, minInsightLength)

	insights := make([]string, 0, maxInsights)
	for _, sentence := range sentences {
		if containsAny(strings.ToLower(sentence), insightSignals) {
			insights = append(insights, sentence)
		}
	}

	if len(insights) == 0 {
		if len(sentences) > fallbackInsightSize {
			sentences = sentences[:fallbackInsightSize]
		}
		insights = sentences
	}

	if len(insights) > maxInsights {
		insights = insights[:maxInsights]
	}
	return insights
}
