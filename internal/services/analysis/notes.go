package analysis

import (
	"fmt"
	"strings"

	"github.com/ternarybob/digero/internal/models"
)

const (
	maxNotes         = 8
	maxSectionLength = 50
)

// Importance cues, checked in order: a paragraph matching both a high and a
// low trigger is high.
var (
	highImportanceCues = []string{"important", "crucial", "key", "significant"}
	lowImportanceCues  = []string{"example", "detail", "additional"}
)

// CreateDetailedNotes groups the first eight qualifying paragraphs into
// labeled, importance-tagged notes. The section label is the paragraph's
// first sentence, truncated to 50 characters with an ellipsis and stripped
// of markdown heading characters; paragraphs with no leading sentence get a
// positional "Section N" label.
func CreateDetailedNotes(text string) []models.Note {
	paragraphs := SegmentParagraphs(text)
	if len(paragraphs) > maxNotes {
		paragraphs = paragraphs[:maxNotes]
	}

	notes := make([]models.Note, 0, len(paragraphs))
	for i, paragraph := range paragraphs {
		notes = append(notes, models.Note{
			Section:    sectionLabel(paragraph, i),
			Content:    paragraph,
			Importance: classifyImportance(paragraph),
		})
	}
	return notes
}

func sectionLabel(paragraph string, index int) string {
	label := firstSentence(paragraph)
	if len(label) > maxSectionLength {
		label = label[:maxSectionLength] + "..."
	}
	if label == "" {
		label = fmt.Sprintf("Section %d", index+1)
	}

	label = strings.NewReplacer("#", "", "*", "").Replace(label)
	return strings.TrimSpace(label)
}

func classifyImportance(paragraph string) models.Importance {
	lowered := strings.ToLower(paragraph)
	if containsAny(lowered, highImportanceCues) {
		return models.ImportanceHigh
	}
	if containsAny(lowered, lowImportanceCues) {
		return models.ImportanceLow
	}
	return models.ImportanceMedium
}
