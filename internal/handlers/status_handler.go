package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
)

// healthCheckTimeout bounds the downstream probes
const healthCheckTimeout = 10 * time.Second

// StatusHandler serves the health check endpoint by probing the vector
// index and the embedding provider.
type StatusHandler struct {
	index    interfaces.VectorIndex
	embedder interfaces.EmbeddingClient
	logger   arbor.ILogger
}

// NewStatusHandler creates a status handler
func NewStatusHandler(index interfaces.VectorIndex, embedder interfaces.EmbeddingClient) *StatusHandler {
	return &StatusHandler{
		index:    index,
		embedder: embedder,
		logger:   common.GetLogger(),
	}
}

// HandleHealthCheck handles GET /health-check
func (h *StatusHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.index.HealthCheck(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("Vector index health check failed")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	if err := h.embedder.HealthCheck(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("Embedding health check failed")
		WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}
