package interfaces

import (
	"context"

	"github.com/ternarybob/respondo/internal/models"
)

// TextChunker splits extracted text into bounded overlapping chunks.
// Implementations are deterministic and make no external calls.
type TextChunker interface {
	Chunk(text, sourceFile string) []models.Chunk
}

// IngestService runs the ingestion pipeline for one uploaded file:
// validate, extract, chunk, embed, upsert.
type IngestService interface {
	Ingest(ctx context.Context, filename string, content []byte) (*models.IngestResult, error)
}

// QueryService answers one natural-language question through the
// embed -> retrieve -> assemble -> generate pipeline.
type QueryService interface {
	Answer(ctx context.Context, query string) (*models.QueryResponse, error)
}
