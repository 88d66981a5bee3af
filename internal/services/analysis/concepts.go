package analysis

import (
	"strings"

	"github.com/ternarybob/digero/internal/models"
)

// conceptEntry maps a lowercase trigger phrase to its concept card. Held as
// an ordered slice, not a map, so extraction order is stable across runs.
type conceptEntry struct {
	trigger string
	concept models.Concept
}

var conceptVocabulary = []conceptEntry{
	{
		trigger: "machine learning",
		concept: models.Concept{
			Name:       "Machine Learning",
			Definition: "A subset of artificial intelligence that enables computers to learn and make decisions from data without being explicitly programmed.",
			Examples:   []string{"Supervised learning", "Neural networks", "Decision trees"},
		},
	},
	{
		trigger: "artificial intelligence",
		concept: models.Concept{
			Name:       "Artificial Intelligence",
			Definition: "The simulation of human intelligence in machines that are programmed to think and learn.",
			Examples:   []string{"Natural language processing", "Computer vision", "Expert systems"},
		},
	},
	{
		trigger: "data science",
		concept: models.Concept{
			Name:       "Data Science",
			Definition: "An interdisciplinary field that uses scientific methods, processes, algorithms and systems to extract knowledge from data.",
			Examples:   []string{"Statistical analysis", "Data visualization", "Predictive modeling"},
		},
	},
	{
		trigger: "cognitive load",
		concept: models.Concept{
			Name:       "Cognitive Load",
			Definition: "The amount of mental effort being used in working memory during learning.",
			Examples:   []string{"Intrinsic load", "Extraneous load", "Germane load"},
		},
	},
	{
		trigger: "digital learning",
		concept: models.Concept{
			Name:       "Digital Learning",
			Definition: "The use of digital technologies to facilitate and enhance the learning process.",
			Examples:   []string{"E-learning platforms", "Virtual classrooms", "Interactive simulations"},
		},
	},
}

// genericConcept is the fallback emitted when no vocabulary entry matches
var genericConcept = models.Concept{
	Name:       "General Knowledge",
	Definition: "Broad-based information and understanding across various topics.",
	Examples:   []string{"Educational content", "Informational material", "Learning resources"},
}

// ExtractConcepts matches the known-term vocabulary against the text and
// returns one concept per matched trigger phrase, in vocabulary order.
// Matching is a case-insensitive substring test. Never returns an empty
// slice: with no matches the generic fallback concept is emitted.
func ExtractConcepts(text string) []models.Concept {
	lowered := strings.ToLower(text)

	concepts := make([]models.Concept, 0, len(conceptVocabulary))
	for _, entry := range conceptVocabulary {
		if strings.Contains(lowered, entry.trigger) {
			concepts = append(concepts, entry.concept)
		}
	}

	if len(concepts) == 0 {
		return []models.Concept{genericConcept}
	}
	return concepts
}
