package interfaces

import (
	"context"
)

// EmbeddingClient maps text to a fixed-dimension vector via an external
// embedding provider. Implementations must be safe for concurrent use and
// must not leak transport-level error types past their boundary.
type EmbeddingClient interface {
	// Embed generates an embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Dimension returns the vector dimension this client produces.
	Dimension() int

	// HealthCheck verifies the embedding provider is reachable by running
	// a lightweight probe.
	HealthCheck(ctx context.Context) error
}
