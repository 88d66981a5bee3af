package interfaces

import (
	"context"

	"github.com/ternarybob/digero/internal/models"
)

// IngestService turns raw sources into NormalizedSource values ready for
// analysis. Each method performs at most one outbound fetch and does not
// retry; failures are returned as a single wrapped error.
type IngestService interface {
	// IngestURL fetches a web page and extracts its main content
	IngestURL(ctx context.Context, rawURL string) (*models.NormalizedSource, error)

	// IngestPDF extracts text from PDF bytes
	IngestPDF(ctx context.Context, filename string, data []byte) (*models.NormalizedSource, error)

	// IngestVideo normalizes a video transcript, enriching metadata from the
	// video URL where possible. Transcript retrieval itself is the caller's
	// concern.
	IngestVideo(ctx context.Context, videoURL, transcript string) (*models.NormalizedSource, error)

	// IngestText normalizes pasted text or markdown
	IngestText(ctx context.Context, title, text string) (*models.NormalizedSource, error)
}
