package interfaces

import (
	"context"
)

// DocumentExtractor converts a raw file on disk into plain text,
// polymorphic over the file's extension (PDF, plain text, image via OCR).
type DocumentExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}
