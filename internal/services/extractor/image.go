package extractor

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// extractImage runs tesseract OCR over an image file
func (s *Service) extractImage(path string) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if len(s.ocrLanguages) > 0 {
		if err := client.SetLanguage(s.ocrLanguages...); err != nil {
			return "", fmt.Errorf("failed to set OCR languages: %w", err)
		}
	}
	if err := client.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to load image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to run OCR: %w", err)
	}

	s.logger.Debug().
		Int("length", len(text)).
		Msg("Extracted image text via OCR")

	return strings.TrimSpace(text), nil
}
