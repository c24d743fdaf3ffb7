package llm

import (
	"fmt"

	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

// NewClient creates the generation client selected by configuration
func NewClient(config *common.Config) (interfaces.GenerationClient, error) {
	switch config.Generation.Provider {
	case "openai":
		return NewOpenAIClient(config.OpenAI.APIKey, config.OpenAI.ChatModel), nil
	case "claude":
		return NewClaudeClient(config.Claude.APIKey, config.Claude.Model), nil
	case "gemini":
		client, err := NewGeminiClient(config.Gemini.APIKey, config.Gemini.Model)
		if err != nil {
			return nil, models.NewPipelineError(models.ErrConfiguration, "config", err)
		}
		return client, nil
	default:
		return nil, models.NewPipelineError(models.ErrConfiguration, "config",
			fmt.Errorf("unknown generation provider %q", config.Generation.Provider))
	}
}
