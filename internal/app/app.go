package app

import (
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/handlers"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/services/chunker"
	"github.com/ternarybob/respondo/internal/services/embeddings"
	"github.com/ternarybob/respondo/internal/services/extractor"
	"github.com/ternarybob/respondo/internal/services/ingest"
	"github.com/ternarybob/respondo/internal/services/llm"
	"github.com/ternarybob/respondo/internal/services/query"
	"github.com/ternarybob/respondo/internal/services/vectorindex"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Pipeline dependencies
	EmbeddingClient  interfaces.EmbeddingClient
	GenerationClient interfaces.GenerationClient
	VectorIndex      interfaces.VectorIndex

	// Pipeline services
	IngestService interfaces.IngestService
	QueryService  interfaces.QueryService

	// HTTP handlers
	QueryHandler  *handlers.QueryHandler
	DataHandler   *handlers.DataHandler
	StatusHandler *handlers.StatusHandler
}

// New creates the application with all services wired up
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	a := &App{
		Config: cfg,
		Logger: logger,
	}

	embedder, err := embeddings.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	a.EmbeddingClient = embedder

	generator, err := llm.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create generation client: %w", err)
	}
	a.GenerationClient = generator

	a.VectorIndex = vectorindex.NewPineconeIndex(
		cfg.Pinecone.IndexHost,
		cfg.Pinecone.APIKey,
		cfg.Pinecone.Namespace,
		cfg.Pinecone.Timeout,
	)

	docExtractor := extractor.NewService(cfg.OCR.Languages)
	textChunker := chunker.NewService(cfg.Ingest.ChunkSize, cfg.Ingest.ChunkOverlap)

	a.IngestService = ingest.NewService(docExtractor, textChunker, embedder, a.VectorIndex, cfg.Ingest.TempDir)
	a.QueryService = query.NewService(embedder, a.VectorIndex, generator)

	a.QueryHandler = handlers.NewQueryHandler(a.QueryService)
	a.DataHandler = handlers.NewDataHandler(a.IngestService)
	a.StatusHandler = handlers.NewStatusHandler(a.VectorIndex, a.EmbeddingClient)

	logger.Info().
		Str("embedding_provider", cfg.Embedding.Provider).
		Str("generation_provider", cfg.Generation.Provider).
		Msg("Application initialized")

	return a, nil
}
