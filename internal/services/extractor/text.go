package extractor

import (
	"fmt"
	"os"
)

// extractText reads a plain text file as-is
func (s *Service) extractText(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read text file: %w", err)
	}
	return string(content), nil
}
