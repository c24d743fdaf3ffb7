package vectorindex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/respondo/internal/models"
)

func TestUpsertSendsVectors(t *testing.T) {
	var gotPath string
	var gotAPIKey string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAPIKey = r.Header.Get("Api-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"upsertedCount": 2})
	}))
	defer server.Close()

	index := NewPineconeIndex(server.URL, "secret", "docs", 5*time.Second)

	err := index.Upsert(context.Background(), []models.IndexEntry{
		{ID: "a", Vector: []float32{0.1, 0.2}, Content: "first chunk", File: "doc.txt"},
		{ID: "b", Vector: []float32{0.3, 0.4}, Content: "second chunk", File: "doc.txt"},
	})
	require.NoError(t, err)

	assert.Equal(t, "/vectors/upsert", gotPath)
	assert.Equal(t, "secret", gotAPIKey)
	assert.Equal(t, "docs", gotBody["namespace"])

	vectors, ok := gotBody["vectors"].([]any)
	require.True(t, ok)
	require.Len(t, vectors, 2)

	first := vectors[0].(map[string]any)
	assert.Equal(t, "a", first["id"])
	metadata := first["metadata"].(map[string]any)
	assert.Equal(t, "first chunk", metadata["content"])
	assert.Equal(t, "doc.txt", metadata["file"])
}

func TestUpsertEmptyIsNoop(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	index := NewPineconeIndex(server.URL, "secret", "", 5*time.Second)

	require.NoError(t, index.Upsert(context.Background(), nil))
	assert.False(t, called)
}

func TestQueryDecodesMatches(t *testing.T) {
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/query", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"matches": []map[string]any{
				{"id": "a", "score": 0.91, "metadata": map[string]any{"content": "first chunk", "file": "doc.txt"}},
				{"id": "b", "score": 0.72},
			},
		})
	}))
	defer server.Close()

	index := NewPineconeIndex(server.URL, "secret", "", 5*time.Second)

	matches, err := index.Query(context.Background(), []float32{0.1, 0.2}, 3, true)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, float64(3), gotBody["topK"])
	assert.Equal(t, true, gotBody["includeMetadata"])

	assert.InDelta(t, 0.91, matches[0].Score, 0.0001)
	assert.Equal(t, "first chunk", matches[0].Metadata.Content)
	assert.Equal(t, "doc.txt", matches[0].Metadata.File)

	assert.Empty(t, matches[1].Metadata.Content, "match without metadata decodes to empty content")
}

func TestQueryErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"index not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	index := NewPineconeIndex(server.URL, "secret", "", 5*time.Second)

	_, err := index.Query(context.Background(), []float32{0.1}, 3, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHealthCheck(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/describe_index_stats", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]any{"totalVectorCount": 42})
	}))
	defer server.Close()

	index := NewPineconeIndex(server.URL, "secret", "", 5*time.Second)
	assert.NoError(t, index.HealthCheck(context.Background()))
}

func TestHealthCheckUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	index := NewPineconeIndex(server.URL, "secret", "", time.Second)
	assert.Error(t, index.HealthCheck(context.Background()))
}
