package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/ternarybob/digero/internal/models"
)

// IngestPDF extracts text from PDF bytes and normalizes it for analysis.
// Extraction goes through a temp directory because pdfcpu operates on files.
func (s *Service) IngestPDF(ctx context.Context, filename string, data []byte) (*models.NormalizedSource, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty PDF upload %q", ErrProcessingFailed, filename)
	}

	text, pageCount, err := s.extractPDFText(data)
	if err != nil {
		return nil, fmt.Errorf("%w: extracting %q: %v", ErrProcessingFailed, filename, err)
	}

	title := strings.TrimSuffix(filepath.Base(filename), ".pdf")
	if title == "" {
		title = "PDF Document"
	}

	source := s.newSource(title, text, models.SourceTypeDocument, models.SourceMetadata{
		Author: "PDF Document",
		Domain: "local",
	})

	s.logger.Info().
		Str("source_id", source.ID).
		Str("filename", filename).
		Int("pages", pageCount).
		Int("text_length", len(text)).
		Msg("PDF content ingested")

	return source, nil
}

// extractPDFText writes the PDF to a temp file, extracts per-page content
// with pdfcpu, and joins the pages with blank lines so paragraph
// segmentation sees page structure.
func (s *Service) extractPDFText(data []byte) (string, int, error) {
	tempDir, err := os.MkdirTemp("", "digero-pdf-*")
	if err != nil {
		return "", 0, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	tempFile := filepath.Join(tempDir, "source.pdf")
	if err := os.WriteFile(tempFile, data, 0644); err != nil {
		return "", 0, fmt.Errorf("writing temp PDF: %w", err)
	}

	pdfCtx, err := api.ReadContextFile(tempFile)
	if err != nil {
		return "", 0, fmt.Errorf("reading PDF: %w", err)
	}
	pageCount := pdfCtx.PageCount

	outDir := filepath.Join(tempDir, "pages")
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", 0, fmt.Errorf("creating extraction dir: %w", err)
	}

	conf := model.NewDefaultConfiguration()
	if err := api.ExtractContentFile(tempFile, outDir, nil, conf); err != nil {
		return "", 0, fmt.Errorf("extracting content: %w", err)
	}

	files, err := os.ReadDir(outDir)
	if err != nil {
		return "", 0, fmt.Errorf("reading extraction dir: %w", err)
	}

	pageTexts := make(map[int]string, pageCount)
	pageNumbers := make([]int, 0, pageCount)
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		var pageNum int
		if _, err := fmt.Sscanf(file.Name(), "page_%d", &pageNum); err != nil {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		if trimmed := strings.TrimSpace(string(content)); trimmed != "" {
			pageTexts[pageNum] = trimmed
			pageNumbers = append(pageNumbers, pageNum)
		}
	}

	sort.Ints(pageNumbers)
	pages := make([]string, 0, len(pageNumbers))
	for _, num := range pageNumbers {
		pages = append(pages, pageTexts[num])
	}

	return strings.Join(pages, "\n\n"), pageCount, nil
}
