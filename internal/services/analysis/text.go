// Package analysis derives structured knowledge artifacts from normalized
// source text through a sequence of heuristic passes. All pass functions are
// pure: no I/O, no randomness, no shared mutable state.
package analysis

import (
	"regexp"
	"strings"
)

// Fragments at or below these trimmed lengths are dropped as noise.
const (
	minSentenceLength  = 20
	minParagraphLength = 50
)

// WordsPerMinute is the assumed reading speed for reading-time estimates.
const WordsPerMinute = 200

var (
	sentenceTerminators = regexp.MustCompile(`[.!?]+`)
	paragraphBreaks     = regexp.MustCompile(`\n\s*\n`)
)

// SegmentSentences splits text on runs of sentence terminators and returns
// the trimmed fragments longer than the shared minimum sentence length.
func SegmentSentences(text string) []string {
	return sentencesLongerThan(text, minSentenceLength)
}

// sentencesLongerThan applies a pass-specific minimum length on top of the
// shared sentence split. Order follows the original text.
func sentencesLongerThan(text string, minLen int) []string {
	parts := sentenceTerminators.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) > minLen {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}

// SegmentParagraphs splits text on blank-line boundaries and returns the
// trimmed fragments longer than the minimum paragraph length.
func SegmentParagraphs(text string) []string {
	parts := paragraphBreaks.Split(text, -1)
	paragraphs := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if len(trimmed) > minParagraphLength {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}

// firstParagraph returns the trimmed text before the first blank-line
// boundary, with no minimum length applied.
func firstParagraph(text string) string {
	parts := paragraphBreaks.Split(text, 2)
	if len(parts) == 0 {
		return ""
	}
	return strings.TrimSpace(parts[0])
}

// firstSentence returns the trimmed text before the first sentence
// terminator, or the whole trimmed string if no terminator is present.
func firstSentence(text string) string {
	if idx := strings.IndexAny(text, ".!?"); idx >= 0 {
		return strings.TrimSpace(text[:idx])
	}
	return strings.TrimSpace(text)
}

// WordCount counts whitespace-separated words. Empty or whitespace-only
// text counts zero words.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// ReadingTime estimates reading time in whole minutes, rounding up. Any
// non-empty text yields at least one minute.
func ReadingTime(wordCount int) int {
	if wordCount <= 0 {
		return 0
	}
	return (wordCount + WordsPerMinute - 1) / WordsPerMinute
}

// Clamp limits value to the inclusive range [min, max]
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// containsAny reports whether lowered contains at least one of the terms as
// a raw substring. Matching is deliberately not word-boundary aware: the
// heuristics match lowercased substrings, so "data" matches inside
// "database". Callers must pass already-lowercased text.
func containsAny(lowered string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			return true
		}
	}
	return false
}

// countPresent counts how many terms appear in lowered as substrings. Each
// term counts at most once regardless of how often it repeats.
func countPresent(lowered string, terms []string) int {
	count := 0
	for _, term := range terms {
		if strings.Contains(lowered, term) {
			count++
		}
	}
	return count
}

// groupThousands formats n with comma separators, e.g. 4000 -> "4,000"
func groupThousands(n int) string {
	if n < 0 {
		return "-" + groupThousands(-n)
	}
	var out []byte
	for i, rem := 0, n; ; i++ {
		if i > 0 && i%3 == 0 {
			out = append([]byte{','}, out...)
		}
		out = append([]byte{byte('0' + rem%10)}, out...)
		rem /= 10
		if rem == 0 {
			break
		}
	}
	return string(out)
}
