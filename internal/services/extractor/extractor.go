package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
)

// supportedExtensions lists the upload types the pipeline accepts
var supportedExtensions = map[string]bool{
	".pdf": true,
	".txt": true,
	".jpg": true,
	".png": true,
}

// IsSupported reports whether files with the given extension can be
// extracted. The check is case-insensitive.
func IsSupported(ext string) bool {
	return supportedExtensions[strings.ToLower(ext)]
}

// Service extracts plain text from uploaded documents, dispatching on
// file extension: pdfcpu for PDFs, tesseract OCR for images, and a
// direct read for plain text.
type Service struct {
	logger       arbor.ILogger
	ocrLanguages []string
}

// Compile-time interface assertion
var _ interfaces.DocumentExtractor = (*Service)(nil)

// NewService creates a document extractor. ocrLanguages are tesseract
// language codes used for image uploads.
func NewService(ocrLanguages []string) *Service {
	return &Service{
		logger:       common.GetLogger(),
		ocrLanguages: ocrLanguages,
	}
}

// Extract converts the file at path into plain text based on its
// extension.
func (s *Service) Extract(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return s.extractPDF(path)
	case ".txt":
		return s.extractText(path)
	case ".jpg", ".png":
		return s.extractImage(path)
	default:
		return "", fmt.Errorf("unsupported file extension %q", ext)
	}
}
