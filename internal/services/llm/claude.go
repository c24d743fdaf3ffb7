package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
)

// ClaudeClient generates completions via the Anthropic Messages API
type ClaudeClient struct {
	client anthropic.Client
	model  string
	logger arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.GenerationClient = (*ClaudeClient)(nil)

// NewClaudeClient creates an Anthropic generation client
func NewClaudeClient(apiKey, model string) *ClaudeClient {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	return &ClaudeClient{
		client: client,
		model:  model,
		logger: common.GetLogger(),
	}
}

// Complete generates a completion for the user prompt
func (c *ClaudeClient) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(maxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
		Temperature: anthropic.Float(float64(temperature)),
	}
	if system != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: system},
		}
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude API call failed: %w", err)
	}

	var response strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			response.WriteString(block.Text)
		}
	}
	if response.Len() == 0 {
		return "", fmt.Errorf("no response generated from Claude API")
	}

	return strings.TrimSpace(response.String()), nil
}

// HealthCheck verifies the Messages API is reachable
func (c *ClaudeClient) HealthCheck(ctx context.Context) error {
	if _, err := c.Complete(ctx, "You are a health check.", "Reply with OK.", 5, 0); err != nil {
		return fmt.Errorf("claude generation health check failed: %w", err)
	}
	return nil
}
