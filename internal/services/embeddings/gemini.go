package embeddings

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"google.golang.org/genai"
)

// GeminiClient produces embeddings via the Google Gemini API
type GeminiClient struct {
	client    *genai.Client
	model     string
	dimension int
	logger    arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.EmbeddingClient = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini embedding client
func NewGeminiClient(apiKey, model string, dimension int) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client:    client,
		model:     model,
		dimension: dimension,
		logger:    common.GetLogger(),
	}, nil
}

// Embed generates an embedding vector for a single text
func (c *GeminiClient) Embed(ctx context.Context, text string) ([]float32, error) {
	outputDim := int32(c.dimension)
	result, err := c.client.Models.EmbedContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromText(text, genai.RoleUser)},
		&genai.EmbedContentConfig{
			OutputDimensionality: &outputDim,
		})
	if err != nil {
		return nil, fmt.Errorf("gemini embedding request failed: %w", err)
	}
	if len(result.Embeddings) == 0 || len(result.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("gemini returned no embeddings")
	}

	vector := result.Embeddings[0].Values
	if c.dimension > 0 && len(vector) != c.dimension {
		return nil, fmt.Errorf("unexpected embedding dimension: got %d, want %d", len(vector), c.dimension)
	}
	return vector, nil
}

// Dimension returns the expected embedding vector length
func (c *GeminiClient) Dimension() int {
	return c.dimension
}

// HealthCheck verifies the embeddings API is reachable with a probe
// request.
func (c *GeminiClient) HealthCheck(ctx context.Context) error {
	if _, err := c.Embed(ctx, "health check"); err != nil {
		return fmt.Errorf("gemini embedding health check failed: %w", err)
	}
	return nil
}
