package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

const (
	topK              = 3
	maxAnswerTokens   = 150
	answerTemperature = 0.7

	systemInstruction = "You are a helpful assistant."
	promptTemplate    = "Context: %s\n\nQuestion: %s\n\nAnswer:"

	noMatchesResponse = "I'm sorry, I couldn't find any relevant information in the database."
	noContentResponse = "No relevant information found in the database. Please refine your query."
)

// Service answers questions through the retrieval pipeline: embed the
// query, fetch the nearest chunks, assemble their content into a
// context block, and generate an answer grounded on it.
type Service struct {
	embedder  interfaces.EmbeddingClient
	index     interfaces.VectorIndex
	generator interfaces.GenerationClient
	logger    arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.QueryService = (*Service)(nil)

// NewService creates a query service
func NewService(
	embedder interfaces.EmbeddingClient,
	index interfaces.VectorIndex,
	generator interfaces.GenerationClient,
) *Service {
	return &Service{
		embedder:  embedder,
		index:     index,
		generator: generator,
		logger:    common.GetLogger(),
	}
}

// Answer runs one query through the pipeline. An empty result set is
// not an error: the response carries a fixed message instead.
func (s *Service) Answer(ctx context.Context, query string) (*models.QueryResponse, error) {
	vector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, models.NewPipelineError(models.ErrEmbedding, "embed", err)
	}

	matches, err := s.index.Query(ctx, vector, topK, true)
	if err != nil {
		return nil, models.NewPipelineError(models.ErrRetrieval, "retrieve", err)
	}
	if len(matches) == 0 {
		s.logger.Debug().Str("query", query).Msg("No matches retrieved")
		return &models.QueryResponse{Query: query, Response: noMatchesResponse}, nil
	}

	contextText := assembleContext(matches)
	if strings.TrimSpace(contextText) == "" {
		s.logger.Debug().
			Str("query", query).
			Int("matches", len(matches)).
			Msg("Matches carried no content")
		return &models.QueryResponse{Query: query, Response: noContentResponse}, nil
	}

	prompt := fmt.Sprintf(promptTemplate, contextText, query)
	answer, err := s.generator.Complete(ctx, systemInstruction, prompt, maxAnswerTokens, answerTemperature)
	if err != nil {
		return nil, models.NewPipelineError(models.ErrGeneration, "generate", err)
	}

	return &models.QueryResponse{
		Query:    query,
		Response: strings.TrimSpace(answer),
	}, nil
}

// assembleContext joins the content of each match that carries any,
// one per line, in retrieval order.
func assembleContext(matches []models.RetrievedMatch) string {
	parts := make([]string, 0, len(matches))
	for _, match := range matches {
		if match.Metadata.Content != "" {
			parts = append(parts, match.Metadata.Content)
		}
	}
	return strings.Join(parts, "\n")
}
