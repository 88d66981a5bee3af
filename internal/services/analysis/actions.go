package analysis

import "strings"

const maxActionItems = 5

// actionSignals are imperative/recommendation cues. Substring matching makes
// these deliberately loose ("use" matches inside "because"), consistent with
// the other passes.
var actionSignals = []string{
	"should", "must", "need to", "important to", "recommend", "suggest",
	"consider", "ensure", "implement", "practice", "apply", "use",
	"start", "begin", "focus on", "prioritize",
}

// ExtractActionableItems selects sentences carrying imperative or
// recommendation cues, in document order, capped at 5. Unlike the insight
// pass there is no fallback: signal-free text yields an empty list, which is
// a valid result.
func ExtractActionableItems(text string) []string {
	sentences := SegmentSentences(text)

	items := make([]string, 0, maxActionItems)
	for _, sentence := range sentences {
		if containsAny(strings.ToLower(sentence), actionSignals) {
			items = append(items, sentence)
			if len(items) == maxActionItems {
				break
			}
		}
	}
	return items
}
