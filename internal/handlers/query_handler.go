package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

// QueryHandler serves the question answering endpoint
type QueryHandler struct {
	service  interfaces.QueryService
	validate *validator.Validate
	logger   arbor.ILogger
}

// NewQueryHandler creates a query handler
func NewQueryHandler(service interfaces.QueryService) *QueryHandler {
	return &QueryHandler{
		service:  service,
		validate: validator.New(),
		logger:   common.GetLogger(),
	}
}

// HandleQuery handles POST /query
func (h *QueryHandler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req models.QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Query is required.")
		return
	}

	resp, err := h.service.Answer(r.Context(), req.Query)
	if err != nil {
		var pipeErr *models.PipelineError
		if errors.As(err, &pipeErr) {
			h.logger.Error().Err(err).
				Str("stage", pipeErr.Stage).
				Str("kind", string(pipeErr.Kind)).
				Msg("Query pipeline failed")
		} else {
			h.logger.Error().Err(err).Msg("Query pipeline failed")
		}

		WriteError(w, http.StatusInternalServerError, "An error occurred while processing your query.")
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}
