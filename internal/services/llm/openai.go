package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
)

// OpenAIClient generates completions via the OpenAI chat API
type OpenAIClient struct {
	client *openai.Client
	model  string
	logger arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.GenerationClient = (*OpenAIClient)(nil)

// NewOpenAIClient creates an OpenAI generation client
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
		logger: common.GetLogger(),
	}
}

// Complete generates a chat completion for the user prompt
func (c *OpenAIClient) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("openai chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response generated from OpenAI API")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// HealthCheck verifies the chat API is reachable
func (c *OpenAIClient) HealthCheck(ctx context.Context) error {
	if _, err := c.Complete(ctx, "You are a health check.", "Reply with OK.", 5, 0); err != nil {
		return fmt.Errorf("openai generation health check failed: %w", err)
	}
	return nil
}
