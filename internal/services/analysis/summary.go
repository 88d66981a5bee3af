package analysis

import (
	"fmt"

	"github.com/ternarybob/digero/internal/models"
)

// sourceTypeNouns maps a source type to the noun used in the summary template
var sourceTypeNouns = map[models.SourceType]string{
	models.SourceTypeVideo:     "video content",
	models.SourceTypeWeb:       "article",
	models.SourceTypeDocument:  "document",
	models.SourceTypePlainText: "content",
}

// GenerateExecutiveSummary produces the synthetic executive summary from the
// title, the first sentence of the first paragraph, the word count, and a
// source-type noun. Purely template driven.
func GenerateExecutiveSummary(text, title string, sourceType models.SourceType) string {
	noun, ok := sourceTypeNouns[sourceType]
	if !ok {
		noun = "resource"
	}

	wordCount := WordCount(text)
	opening := firstSentence(firstParagraph(text))

	return fmt.Sprintf(
		"This %s \"%s\" provides comprehensive insights across %s words. %s. "+
			"The material covers essential concepts and practical applications, "+
			"offering valuable knowledge for learners and researchers seeking to "+
			"understand the topic in depth.",
		noun, title, groupThousands(wordCount), opening)
}
