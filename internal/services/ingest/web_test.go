package ingest

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/digero/internal/models"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Garden Planning Basics</title>
<meta name="author" content="Jo Field">
<meta property="article:published_time" content="2024-03-01T09:00:00Z">
</head>
<body>
<nav>Home | About</nav>
<article>
<h1>Garden Planning Basics</h1>
<p>Start your garden plan by mapping sun exposure across the plot.</p>
<p>Raised beds drain faster and warm earlier in the season.</p>
</article>
<footer>Copyright</footer>
</body>
</html>`

func TestExtractWebPage(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(articleHTML))
	require.NoError(t, err)

	page := extractWebPage(doc)

	assert.Equal(t, "Garden Planning Basics", page.title)
	assert.Equal(t, "Jo Field", page.author)
	assert.Equal(t, "2024-03-01T09:00:00Z", page.publishDate)
	assert.Contains(t, page.contentHTML, "mapping sun exposure")
	assert.NotContains(t, page.contentHTML, "Home | About")
}

func TestExtractWebPageFallbacks(t *testing.T) {
	html := `<html><body><h1>Only A Heading</h1><p>Body text here.</p></body></html>`
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)

	page := extractWebPage(doc)

	assert.Equal(t, "Only A Heading", page.title)
	assert.Empty(t, page.author)
	assert.Contains(t, page.contentHTML, "Body text here.")
}

func TestExtractWebPageDefaultTitle(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body><p>Text</p></body></html>"))
	require.NoError(t, err)

	assert.Equal(t, "Web Article", extractWebPage(doc).title)
}

func TestIngestURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "digero-test/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	svc := NewService(testIngestConfig(), arbor.NewLogger())

	source, err := svc.IngestURL(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Equal(t, "Garden Planning Basics", source.Title)
	assert.Equal(t, models.SourceTypeWeb, source.SourceType)
	assert.Equal(t, "Jo Field", source.Metadata.Author)
	assert.Contains(t, source.Text, "mapping sun exposure")
	assert.NotContains(t, source.Text, "<p>")
	assert.NotEmpty(t, source.ContentMarkdown)
	assert.True(t, strings.HasPrefix(source.ID, "src_"))
}

func TestIngestURLRejectsBadURL(t *testing.T) {
	svc := NewService(testIngestConfig(), arbor.NewLogger())

	for _, url := range []string{"", "not-a-url", "ftp://example.com/file"} {
		_, err := svc.IngestURL(context.Background(), url)
		assert.Error(t, err, "url %q", url)
		assert.True(t, errors.Is(err, ErrProcessingFailed), "url %q", url)
	}
}

func TestIngestURLRejectsNonHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.4"))
	}))
	defer server.Close()

	svc := NewService(testIngestConfig(), arbor.NewLogger())

	_, err := svc.IngestURL(context.Background(), server.URL)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrProcessingFailed))
}

func TestIngestURLRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	svc := NewService(testIngestConfig(), arbor.NewLogger())

	_, err := svc.IngestURL(context.Background(), server.URL)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrProcessingFailed))
}
