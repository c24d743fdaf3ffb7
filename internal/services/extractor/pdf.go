package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDF extracts text content from a PDF using pdfcpu. Content is
// extracted per page into a scratch directory, then reassembled in page
// order.
func (s *Service) extractPDF(path string) (string, error) {
	conf := model.NewDefaultConfiguration()

	pdfCtx, err := api.ReadContextFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read PDF: %w", err)
	}
	pageCount := pdfCtx.PageCount

	outDir := filepath.Join(os.TempDir(), fmt.Sprintf("respondo-pdf-%d-%d", os.Getpid(), time.Now().UnixNano()))
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create extraction directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	if err := api.ExtractContentFile(path, outDir, nil, conf); err != nil {
		return "", fmt.Errorf("failed to extract PDF content: %w", err)
	}

	// Output filenames carry the page number; map them back to order
	pageTexts := make(map[int]string)
	files, err := os.ReadDir(outDir)
	if err != nil {
		return "", fmt.Errorf("failed to read extraction directory: %w", err)
	}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		idx := strings.Index(file.Name(), "page_")
		if idx < 0 {
			continue
		}
		var pageNum int
		if _, err := fmt.Sscanf(file.Name()[idx:], "page_%d", &pageNum); err != nil {
			continue
		}
		content, err := os.ReadFile(filepath.Join(outDir, file.Name()))
		if err != nil {
			continue
		}
		pageTexts[pageNum] = string(content)
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= pageCount; pageNum++ {
		text, ok := pageTexts[pageNum]
		if !ok || strings.TrimSpace(text) == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteString("\n\n")
		}
		builder.WriteString(strings.TrimSpace(text))
	}

	s.logger.Debug().
		Str("path", filepath.Base(path)).
		Int("pages", pageCount).
		Msg("Extracted PDF content")

	return builder.String(), nil
}
