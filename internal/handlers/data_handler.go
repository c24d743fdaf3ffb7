package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/respondo/internal/common"
	"github.com/ternarybob/respondo/internal/interfaces"
	"github.com/ternarybob/respondo/internal/models"
)

// maxUploadSize caps multipart parsing memory at 32 MB
const maxUploadSize = 32 << 20

// DataHandler serves the file ingestion endpoint
type DataHandler struct {
	service interfaces.IngestService
	logger  arbor.ILogger
}

// NewDataHandler creates a data handler
func NewDataHandler(service interfaces.IngestService) *DataHandler {
	return &DataHandler{
		service: service,
		logger:  common.GetLogger(),
	}
}

// HandleAddData handles POST /add-data with a multipart file upload
func (h *DataHandler) HandleAddData(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid multipart form.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, http.StatusBadRequest, "A file upload is required.")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Failed to read upload")
		WriteError(w, http.StatusInternalServerError, "An error occurred while processing the file.")
		return
	}

	result, err := h.service.Ingest(r.Context(), header.Filename, content)
	if err != nil {
		if models.KindOf(err) == models.ErrUnsupportedFileType {
			WriteError(w, http.StatusBadRequest, "Unsupported file type.")
			return
		}
		h.logger.Error().Err(err).Str("filename", header.Filename).Msg("Ingestion pipeline failed")
		WriteError(w, http.StatusInternalServerError, "An error occurred while processing the file.")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "success",
		"message": fmt.Sprintf("File %s processed and added to the index.", result.Filename),
		"chunks":  result.Chunks,
	})
}
