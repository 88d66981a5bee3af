package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ternarybob/digero/internal/models"
)

// mainContentSelectors are tried in order to locate the article body,
// falling back to the whole <body> when none match
var mainContentSelectors = []string{
	"main",
	"article",
	"[role=main]",
	".content",
	".post-content",
	".entry-content",
	".article-body",
}

// IngestURL fetches a web page, extracts its main content and metadata, and
// normalizes the content to markdown plus plain text.
func (s *Service) IngestURL(ctx context.Context, rawURL string) (*models.NormalizedSource, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return nil, fmt.Errorf("%w: invalid source URL %q", ErrProcessingFailed, rawURL)
	}

	resp, err := s.fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType != "" && !strings.Contains(contentType, "text/html") && !strings.Contains(contentType, "application/xhtml") {
		return nil, fmt.Errorf("%w: unsupported content type %q for %s", ErrProcessingFailed, contentType, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.config.MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s failed: %v", ErrProcessingFailed, rawURL, err)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing %s failed: %v", ErrProcessingFailed, rawURL, err)
	}

	page := extractWebPage(doc)
	markdown := s.transform.HTMLToMarkdown(page.contentHTML, parsed.Scheme+"://"+parsed.Host)
	text := s.transform.MarkdownToText(markdown)

	source := s.newSource(page.title, text, models.SourceTypeWeb, models.SourceMetadata{
		Author:      page.author,
		PublishDate: page.publishDate,
		Domain:      parsed.Hostname(),
	})
	source.ContentMarkdown = markdown

	s.logger.Info().
		Str("source_id", source.ID).
		Str("url", rawURL).
		Int("text_length", len(text)).
		Msg("Web content ingested")

	return source, nil
}

// webPage holds the fields pulled out of a fetched HTML document
type webPage struct {
	title       string
	author      string
	publishDate string
	contentHTML string
}

// extractWebPage pulls the title, author, publish date, and main content
// HTML out of a parsed document
func extractWebPage(doc *goquery.Document) webPage {
	page := webPage{}

	page.title = strings.TrimSpace(doc.Find("title").First().Text())
	if page.title == "" {
		page.title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if page.title == "" {
		page.title = "Web Article"
	}

	if author, ok := doc.Find(`meta[name="author"]`).Attr("content"); ok {
		page.author = strings.TrimSpace(author)
	}
	if page.author == "" {
		page.author = strings.TrimSpace(doc.Find("[rel=author]").First().Text())
	}

	if published, ok := doc.Find(`meta[property="article:published_time"]`).Attr("content"); ok {
		page.publishDate = strings.TrimSpace(published)
	}
	if page.publishDate == "" {
		if datetime, ok := doc.Find("time").First().Attr("datetime"); ok {
			page.publishDate = strings.TrimSpace(datetime)
		}
	}

	for _, selector := range mainContentSelectors {
		node := doc.Find(selector).First()
		if node.Length() == 0 {
			continue
		}
		if html, err := goquery.OuterHtml(node); err == nil && strings.TrimSpace(html) != "" {
			page.contentHTML = html
			break
		}
	}
	if page.contentHTML == "" {
		if html, err := doc.Find("body").Html(); err == nil {
			page.contentHTML = html
		}
	}

	return page
}
