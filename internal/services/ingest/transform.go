package ingest

import (
	"regexp"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/ternarybob/arbor"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Transform converts between the content representations the pipeline deals
// in: raw HTML from web sources, markdown for display, plain text for the
// analysis core.
type Transform struct {
	logger arbor.ILogger
	md     goldmark.Markdown
}

// NewTransform creates a transform helper
func NewTransform(logger arbor.ILogger) *Transform {
	return &Transform{
		logger: logger,
		md:     goldmark.New(),
	}
}

// HTMLToMarkdown converts HTML content to markdown. baseURL resolves
// relative links. Falls back to regex tag stripping when conversion fails
// or produces empty output.
func (t *Transform) HTMLToMarkdown(html string, baseURL string) string {
	if html == "" {
		return ""
	}

	converter := md.NewConverter(baseURL, true, nil)
	converted, err := converter.ConvertString(html)
	if err != nil {
		t.logger.Warn().Err(err).Msg("HTML to markdown conversion failed, stripping tags instead")
		return stripHTMLTags(html)
	}

	if strings.TrimSpace(converted) == "" {
		t.logger.Warn().
			Int("html_length", len(html)).
			Msg("HTML to markdown conversion produced empty output, stripping tags instead")
		return stripHTMLTags(html)
	}

	return converted
}

// MarkdownToText flattens markdown to plain text, one blank-line-separated
// block per markdown block, so paragraph segmentation in the analysis core
// sees the document structure rather than markup.
func (t *Transform) MarkdownToText(markdown string) string {
	if strings.TrimSpace(markdown) == "" {
		return ""
	}

	source := []byte(markdown)
	doc := t.md.Parser().Parse(gmtext.NewReader(source))

	var blocks []string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading, ast.KindParagraph, ast.KindTextBlock:
			if block := strings.TrimSpace(string(n.Text(source))); block != "" {
				blocks = append(blocks, block)
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(blocks, "\n\n")
}

var (
	htmlTagPattern    = regexp.MustCompile(`<[^>]*>`)
	multiSpacePattern = regexp.MustCompile(`[ \t]+`)
)

// stripHTMLTags removes HTML tags and decodes the common entities for
// fallback cases where proper conversion is unavailable
func stripHTMLTags(html string) string {
	stripped := htmlTagPattern.ReplaceAllString(html, "")
	stripped = multiSpacePattern.ReplaceAllString(stripped, " ")

	replacer := strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", "\"",
		"&#39;", "'",
		"&nbsp;", " ",
	)
	return strings.TrimSpace(replacer.Replace(stripped))
}

// looksLikeMarkdown is a cheap structural check used to decide whether
// pasted text should be flattened before analysis
func looksLikeMarkdown(text string) bool {
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "- ") ||
			strings.HasPrefix(trimmed, "* ") || strings.HasPrefix(trimmed, "```") {
			return true
		}
	}
	return false
}
