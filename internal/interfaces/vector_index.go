package interfaces

import (
	"context"

	"github.com/ternarybob/respondo/internal/models"
)

// VectorIndex is the external similarity index holding embedded chunks.
type VectorIndex interface {
	// Upsert writes entries into the index, overwriting entries that
	// share an ID.
	Upsert(ctx context.Context, entries []models.IndexEntry) error

	// Query returns up to topK nearest matches for the vector, ordered
	// by descending score.
	Query(ctx context.Context, vector []float32, topK int, includeMetadata bool) ([]models.RetrievedMatch, error)

	// HealthCheck verifies the index is reachable.
	HealthCheck(ctx context.Context) error
}
