package embeddings

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
)

// OpenAIClient produces embeddings via the OpenAI embeddings API
type OpenAIClient struct {
	client    *openai.Client
	model     string
	dimension int
	logger    arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.EmbeddingClient = (*OpenAIClient)(nil)

// NewOpenAIClient creates an OpenAI embedding client
func NewOpenAIClient(apiKey, model string, dimension int) *OpenAIClient {
	return &OpenAIClient{
		client:    openai.NewClient(apiKey),
		model:     model,
		dimension: dimension,
		logger:    common.GetLogger(),
	}
}

// Embed generates an embedding vector for a single text
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequestStrings{
		Input: []string{text},
		Model: openai.EmbeddingModel(c.model),
	})
	if err != nil {
		return nil, fmt.Errorf("openai embedding request failed: %w", err)
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("openai returned no embeddings")
	}

	vector := resp.Data[0].Embedding
	if c.dimension > 0 && len(vector) != c.dimension {
		return nil, fmt.Errorf("unexpected embedding dimension: got %d, want %d", len(vector), c.dimension)
	}
	return vector, nil
}

// Dimension returns the expected embedding vector length
func (c *OpenAIClient) Dimension() int {
	return c.dimension
}

// HealthCheck verifies the embeddings API is reachable with a probe
// request.
func (c *OpenAIClient) HealthCheck(ctx context.Context) error {
	if _, err := c.Embed(ctx, "health check"); err != nil {
		return fmt.Errorf("openai embedding health check failed: %w", err)
	}
	return nil
}
