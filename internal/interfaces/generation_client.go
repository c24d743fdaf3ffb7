package interfaces

import (
	"context"
)

// GenerationClient is a chat-style completion adapter over an external
// language model provider.
type GenerationClient interface {
	// Complete generates a completion for the user prompt under the given
	// system instruction and sampling parameters.
	Complete(ctx context.Context, system, user string, maxTokens int, temperature float32) (string, error)

	// HealthCheck verifies the generation provider is reachable.
	HealthCheck(ctx context.Context) error
}
