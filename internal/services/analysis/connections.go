package analysis

import "strings"

// connectionEntry maps a topic keyword to its canned cross-domain relation.
// Ordered slice so output order is stable.
type connectionEntry struct {
	keyword  string
	relation string
}

var connectionVocabulary = []connectionEntry{
	{"machine learning", "Connects to statistics, computer science, and data analysis"},
	{"education", "Links to psychology, cognitive science, and instructional design"},
	{"technology", "Relates to innovation, digital transformation, and user experience"},
	{"research", "Connects to methodology, analysis, and evidence-based practice"},
	{"data", "Links to analytics, visualization, and decision-making processes"},
}

// fallbackConnections is returned when no topic keyword matches
var fallbackConnections = []string{
	"Relates to general knowledge and educational content",
	"Connects to learning theory and information processing",
}

// FindConnections maps detected topic keywords to cross-domain relation
// sentences, in vocabulary order. Keyword presence is a lowercase substring
// test. With no matches a fixed two-element fallback is returned.
func FindConnections(text string) []string {
	lowered := strings.ToLower(text)

	connections := make([]string, 0, len(connectionVocabulary))
	for _, entry := range connectionVocabulary {
		if strings.Contains(lowered, entry.keyword) {
			connections = append(connections, entry.relation)
		}
	}

	if len(connections) == 0 {
		return append([]string(nil), fallbackConnections...)
	}
	return connections
}
