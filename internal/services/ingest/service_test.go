package ingest

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/digero/internal/common"
	"github.com/ternarybob/digero/internal/models"
)

func testIngestConfig() *common.IngestConfig {
	return &common.IngestConfig{
		UserAgent:         "digero-test/1.0",
		RequestTimeout:    5 * time.Second,
		MaxBodySize:       1 << 20,
		RequestsPerSecond: 100,
		NormalizeMarkdown: true,
	}
}

func TestIngestText(t *testing.T) {
	svc := NewService(testIngestConfig(), arbor.NewLogger())

	source, err := svc.IngestText(context.Background(), "My Notes", "Plain prose with no markup at all.")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(source.ID, "src_"))
	assert.Equal(t, "My Notes", source.Title)
	assert.Equal(t, "Plain prose with no markup at all.", source.Text)
	assert.Equal(t, models.SourceTypePlainText, source.SourceType)
	assert.Equal(t, "User Input", source.Metadata.Author)
	assert.Equal(t, "text", source.Metadata.Domain)
	assert.Empty(t, source.ContentMarkdown)
	assert.False(t, source.CreatedAt.IsZero())
}

func TestIngestTextDefaultTitle(t *testing.T) {
	svc := NewService(testIngestConfig(), arbor.NewLogger())

	source, err := svc.IngestText(context.Background(), "   ", "Some body text.")
	require.NoError(t, err)
	assert.Equal(t, "Text Content", source.Title)
}

func TestIngestTextFlattensMarkdown(t *testing.T) {
	svc := NewService(testIngestConfig(), arbor.NewLogger())

	markdown := "# Heading\n\nFirst paragraph of the note.\n\n- bullet one\n- bullet two"
	source, err := svc.IngestText(context.Background(), "Markdown Notes", markdown)
	require.NoError(t, err)

	assert.Equal(t, markdown, source.ContentMarkdown)
	assert.NotContains(t, source.Text, "#")
	assert.NotContains(t, source.Text, "- bullet")
	assert.Contains(t, source.Text, "Heading")
	assert.Contains(t, source.Text, "bullet one")
}

func TestIngestTextMarkdownFlatteningDisabled(t *testing.T) {
	config := testIngestConfig()
	config.NormalizeMarkdown = false
	svc := NewService(config, arbor.NewLogger())

	markdown := "# Heading\n\nBody text."
	source, err := svc.IngestText(context.Background(), "Raw", markdown)
	require.NoError(t, err)

	assert.Equal(t, markdown, source.Text)
	assert.Empty(t, source.ContentMarkdown)
}

func TestNewSourceIdentitiesAreUnique(t *testing.T) {
	svc := NewService(testIngestConfig(), arbor.NewLogger())

	a := svc.newSource("a", "text", models.SourceTypePlainText, models.SourceMetadata{})
	b := svc.newSource("b", "text", models.SourceTypePlainText, models.SourceMetadata{})
	assert.NotEqual(t, a.ID, b.ID)
}
