package vectorindex

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

// PineconeIndex talks to a Pinecone serverless index over its data-plane
// REST API. The host is the index endpoint from the Pinecone console.
type PineconeIndex struct {
	httpClient *http.Client
	host       string
	apiKey     string
	namespace  string
	logger     arbor.ILogger
}

// Compile-time interface assertion
var _ interfaces.VectorIndex = (*PineconeIndex)(nil)

// NewPineconeIndex creates a Pinecone index client
func NewPineconeIndex(host, apiKey, namespace string, timeout time.Duration) *PineconeIndex {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PineconeIndex{
		httpClient: &http.Client{Timeout: timeout},
		host:       strings.TrimRight(host, "/"),
		apiKey:     apiKey,
		namespace:  namespace,
		logger:     common.GetLogger(),
	}
}

type upsertVector struct {
	ID       string               `json:"id"`
	Values   []float32            `json:"values"`
	Metadata models.MatchMetadata `json:"metadata"`
}

// Upsert writes entries into the index
func (p *PineconeIndex) Upsert(ctx context.Context, entries []models.IndexEntry) error {
	if len(entries) == 0 {
		return nil
	}

	vectors := make([]upsertVector, 0, len(entries))
	for _, entry := range entries {
		vectors = append(vectors, upsertVector{
			ID:     entry.ID,
			Values: entry.Vector,
			Metadata: models.MatchMetadata{
				Content: entry.Content,
				File:    entry.File,
			},
		})
	}

	body := struct {
		Vectors   []upsertVector `json:"vectors"`
		Namespace string         `json:"namespace,omitempty"`
	}{
		Vectors:   vectors,
		Namespace: p.namespace,
	}

	var resp struct {
		UpsertedCount int `json:"upsertedCount"`
	}
	if err := p.postJSON(ctx, "/vectors/upsert", body, &resp); err != nil {
		return fmt.Errorf("pinecone upsert failed: %w", err)
	}

	p.logger.Debug().
		Int("count", resp.UpsertedCount).
		Msg("Upserted vectors")

	return nil
}

// Query returns the topK nearest matches for the given vector
func (p *PineconeIndex) Query(ctx context.Context, vector []float32, topK int, includeMetadata bool) ([]models.RetrievedMatch, error) {
	body := struct {
		Vector          []float32 `json:"vector"`
		TopK            int       `json:"topK"`
		IncludeMetadata bool      `json:"includeMetadata"`
		Namespace       string    `json:"namespace,omitempty"`
	}{
		Vector:          vector,
		TopK:            topK,
		IncludeMetadata: includeMetadata,
		Namespace:       p.namespace,
	}

	var resp struct {
		Matches []struct {
			ID       string               `json:"id"`
			Score    float64              `json:"score"`
			Metadata models.MatchMetadata `json:"metadata"`
		} `json:"matches"`
	}
	if err := p.postJSON(ctx, "/query", body, &resp); err != nil {
		return nil, fmt.Errorf("pinecone query failed: %w", err)
	}

	matches := make([]models.RetrievedMatch, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		matches = append(matches, models.RetrievedMatch{
			Score:    match.Score,
			Metadata: match.Metadata,
		})
	}
	return matches, nil
}

// HealthCheck verifies the index is reachable by fetching its stats
func (p *PineconeIndex) HealthCheck(ctx context.Context) error {
	var resp struct {
		TotalVectorCount int `json:"totalVectorCount"`
	}
	if err := p.postJSON(ctx, "/describe_index_stats", struct{}{}, &resp); err != nil {
		return fmt.Errorf("pinecone health check failed: %w", err)
	}
	return nil
}

// postJSON sends a JSON POST to the index endpoint and decodes the
// response into out when non-nil.
func (p *PineconeIndex) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.host+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Api-Key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
