package models

import "time"

// SourceType identifies the kind of source a normalized text came from
type SourceType string

const (
	SourceTypeWeb       SourceType = "web"
	SourceTypeVideo     SourceType = "video"
	SourceTypeDocument  SourceType = "document"
	SourceTypePlainText SourceType = "plaintext"
)

// IsValid reports whether the source type is one of the known values
func (s SourceType) IsValid() bool {
	switch s {
	case SourceTypeWeb, SourceTypeVideo, SourceTypeDocument, SourceTypePlainText:
		return true
	}
	return false
}

// SourceMetadata carries optional descriptive data supplied by ingestion
type SourceMetadata struct {
	Author        string `json:"author,omitempty"`
	PublishDate   string `json:"publish_date,omitempty"`
	DurationLabel string `json:"duration,omitempty"` // e.g. "15:30" for video sources
	Domain        string `json:"domain,omitempty"`
}

// NormalizedSource is the single input value the analysis core consumes,
// produced by the ingest service after source-specific extraction has
// already happened. Treated as immutable once constructed.
type NormalizedSource struct {
	ID         string         `json:"id"` // src_{uuid}
	Title      string         `json:"title"`
	Text       string         `json:"text"` // plain text, paragraphs separated by blank lines
	SourceType SourceType     `json:"source_type" validate:"required,oneof=web video document plaintext"`
	Metadata   SourceMetadata `json:"metadata"`

	// ContentMarkdown preserves the markdown rendition for display layers.
	// The analysis core reads only Text.
	ContentMarkdown string `json:"content_markdown,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
