package embeddings

import (
	"fmt"

	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

// NewClient creates the embedding client selected by configuration
func NewClient(config *common.Config) (interfaces.EmbeddingClient, error) {
	switch config.Embedding.Provider {
	case "openai":
		return NewOpenAIClient(config.OpenAI.APIKey, config.OpenAI.EmbeddingModel, config.OpenAI.Dimension), nil
	case "gemini":
		client, err := NewGeminiClient(config.Gemini.APIKey, config.Gemini.EmbeddingModel, config.Gemini.Dimension)
		if err != nil {
			return nil, models.NewPipelineError(models.ErrConfiguration, "config", err)
		}
		return client, nil
	default:
		return nil, models.NewPipelineError(models.ErrConfiguration, "config",
			fmt.Errorf("unknown embedding provider %q", config.Embedding.Provider))
	}
}
