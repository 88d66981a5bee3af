package analysis

import (
	"fmt"
	"strings"

	"github.com/ternarybob/digero/internal/models"
)

const (
	maxQuotes      = 3
	minQuoteLength = 50
	maxQuoteLength = 200

	// Sentences are bucketed into coarse positional "sections" of this many
	// sentences each for the quote context label.
	quoteSectionSize = 5
)

// impactTerms mark a sentence as quotable
var impactTerms = []string{
	"important", "crucial", "significant", "essential",
	"fundamental", "critical", "vital", "paramount",
}

// ExtractQuotes selects up to three high-impact sentences whose length
// falls strictly between 50 and 200 characters. The context label is a
// positional bucket over the sentence index, not a semantic reference.
func ExtractQuotes(text string) []models.Quote {
	sentences := sentencesLongerThan(text, minInsightLength)

	quotes := make([]models.Quote, 0, maxQuotes)
	for i, sentence := range sentences {
		if len(sentence) <= minQuoteLength || len(sentence) >= maxQuoteLength {
			continue
		}
		if !containsAny(strings.ToLower(sentence), impactTerms) {
			continue
		}

		quotes = append(quotes, models.Quote{
			Text:    sentence,
			Context: fmt.Sprintf("Section %d of the content", i/quoteSectionSize+1),
		})
		if len(quotes) == maxQuotes {
			break
		}
	}
	return quotes
}
