package models

// Difficulty labels the vocabulary sophistication of a source
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Importance labels how central a note's paragraph is to the source
type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Concept is a named idea matched against the known-term vocabulary
type Concept struct {
	Name       string   `json:"name"`
	Definition string   `json:"definition"`
	Examples   []string `json:"examples"`
}

// Note is a labeled, importance-tagged paragraph of the source
type Note struct {
	Section    string     `json:"section"`
	Content    string     `json:"content"`
	Importance Importance `json:"importance"`
}

// Quote is a high-impact sentence with a coarse positional context label
type Quote struct {
	Text    string `json:"text"`
	Context string `json:"context"`
}

// ContentAnalysis is the structured knowledge artifact derived from a
// NormalizedSource. Fully determined by its input: analyzing the same
// source twice yields an identical record. Never mutated after creation.
type ContentAnalysis struct {
	ExecutiveSummary   string     `json:"executive_summary"`
	KeyInsights        []string   `json:"key_insights"`     // capped at 6
	DetailedNotes      []Note     `json:"detailed_notes"`   // capped at 8
	Concepts           []Concept  `json:"concepts"`         // deduplicated by name, never empty
	ActionableItems    []string   `json:"actionable_items"` // capped at 5
	Connections        []string   `json:"connections"`
	Difficulty         Difficulty `json:"difficulty"`
	WordCount          int        `json:"word_count"`
	ReadingTimeMinutes int        `json:"reading_time_minutes"`
	CredibilityScore   int        `json:"credibility_score"` // clamped to [0,100]
	Quotes             []Quote    `json:"quotes"`            // capped at 3
}
