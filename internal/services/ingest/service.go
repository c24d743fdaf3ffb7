package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
	"github.com/ternarybob/respondo/internal/services/extractor"
)

// Service runs the ingestion pipeline: validate the upload's extension,
// spool it to disk, extract text, chunk it, then embed and index each
// chunk. The spool directory is removed on every path out.
type Service struct {
	extractor interfaces.DocumentExtractor
	chunker   interfaces.TextChunker
	embedder  interfaces.EmbeddingClient
	index     interfaces.VectorIndex
	tempRoot  string
	logger    arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.IngestService = (*Service)(nil)

// NewService creates an ingestion service. tempRoot is where uploads are
// spooled while a request processes them; empty means the OS temp
// directory.
func NewService(
	docExtractor interfaces.DocumentExtractor,
	chunker interfaces.TextChunker,
	embedder interfaces.EmbeddingClient,
	index interfaces.VectorIndex,
	tempRoot string,
) *Service {
	logger := common.GetLogger()
	if tempRoot != "" {
		if err := os.MkdirAll(tempRoot, 0755); err != nil {
			logger.Warn().Err(err).
				Str("temp_dir", tempRoot).
				Msg("Failed to create spool root, uploads will fail until it exists")
		}
	}
	return &Service{
		extractor: docExtractor,
		chunker:   chunker,
		embedder:  embedder,
		index:     index,
		tempRoot:  tempRoot,
		logger:    logger,
	}
}

// Ingest processes one uploaded file. Chunks are embedded and upserted
// one at a time; a failure part-way leaves earlier chunks indexed and
// aborts the rest.
func (s *Service) Ingest(ctx context.Context, filename string, content []byte) (*models.IngestResult, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !extractor.IsSupported(ext) {
		return nil, models.NewPipelineError(models.ErrUnsupportedFileType, "validate",
			fmt.Errorf("unsupported file type %q", ext))
	}

	dir, err := os.MkdirTemp(s.tempRoot, "respondo-upload-")
	if err != nil {
		return nil, models.NewPipelineError(models.ErrExtraction, "extract",
			fmt.Errorf("failed to create spool directory: %w", err))
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, filepath.Base(filename))
	if err := os.WriteFile(path, content, 0644); err != nil {
		return nil, models.NewPipelineError(models.ErrExtraction, "extract",
			fmt.Errorf("failed to spool upload: %w", err))
	}

	text, err := s.extractor.Extract(ctx, path)
	if err != nil {
		return nil, models.NewPipelineError(models.ErrExtraction, "extract", err)
	}

	chunks := s.chunker.Chunk(text, filename)

	for i, chunk := range chunks {
		vector, err := s.embedder.Embed(ctx, chunk.Content)
		if err != nil {
			return nil, models.NewPipelineError(models.ErrIndexing, "index",
				fmt.Errorf("failed to embed chunk %d of %d: %w", i+1, len(chunks), err))
		}

		entry := models.IndexEntry{
			ID:      uuid.NewString(),
			Vector:  vector,
			Content: chunk.Content,
			File:    chunk.SourceFile,
		}
		if err := s.index.Upsert(ctx, []models.IndexEntry{entry}); err != nil {
			return nil, models.NewPipelineError(models.ErrIndexing, "index",
				fmt.Errorf("failed to index chunk %d of %d: %w", i+1, len(chunks), err))
		}
	}

	s.logger.Info().
		Str("filename", filename).
		Int("chunks", len(chunks)).
		Msg("Ingested file")

	return &models.IngestResult{
		Filename: filename,
		Chunks:   len(chunks),
	}, nil
}
