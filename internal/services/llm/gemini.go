package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"google.golang.org/genai"
)

// GeminiClient generates completions via the Google Gemini API
type GeminiClient struct {
	client *genai.Client
	model  string
	logger arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.GenerationClient = (*GeminiClient)(nil)

// NewGeminiClient creates a Gemini generation client
func NewGeminiClient(apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
		logger: common.GetLogger(),
	}, nil
}

// Complete generates a completion for the user prompt
func (c *GeminiClient) Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error) {
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: int32(maxTokens),
	}
	if system != "" {
		config.SystemInstruction = genai.NewContentFromText(system, genai.RoleUser)
	}

	contents := []*genai.Content{
		genai.NewContentFromText(user, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("gemini generation failed: %w", err)
	}

	var response strings.Builder
	if resp != nil {
		for _, candidate := range resp.Candidates {
			if candidate.Content == nil {
				continue
			}
			for _, part := range candidate.Content.Parts {
				if part.Text != "" {
					response.WriteString(part.Text)
				}
			}
			if response.Len() > 0 {
				break
			}
		}
	}
	if response.Len() == 0 {
		return "", fmt.Errorf("no response generated from Gemini API")
	}

	return strings.TrimSpace(response.String()), nil
}

// HealthCheck verifies the generation API is reachable
func (c *GeminiClient) HealthCheck(ctx context.Context) error {
	if _, err := c.Complete(ctx, "You are a health check.", "Reply with OK.", 5, 0); err != nil {
		return fmt.Errorf("gemini generation health check failed: %w", err)
	}
	return nil
}
