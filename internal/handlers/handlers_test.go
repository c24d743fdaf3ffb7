package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/respondo/internal/models"
)

type stubQueryService struct {
	resp *models.QueryResponse
	err  error
}

func (s *stubQueryService) Answer(ctx context.Context, query string) (*models.QueryResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

type stubIngestService struct {
	result      *models.IngestResult
	err         error
	gotFilename string
	gotContent  []byte
}

func (s *stubIngestService) Ingest(ctx context.Context, filename string, content []byte) (*models.IngestResult, error) {
	s.gotFilename = filename
	s.gotContent = content
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubEmbedder struct{ err error }

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{0.1}, s.err
}
func (s *stubEmbedder) Dimension() int                        { return 1 }
func (s *stubEmbedder) HealthCheck(ctx context.Context) error { return s.err }

type stubIndex struct{ err error }

func (s *stubIndex) Upsert(ctx context.Context, entries []models.IndexEntry) error { return s.err }
func (s *stubIndex) Query(ctx context.Context, vector []float32, topK int, includeMetadata bool) ([]models.RetrievedMatch, error) {
	return nil, s.err
}
func (s *stubIndex) HealthCheck(ctx context.Context) error { return s.err }

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHandleQuerySuccess(t *testing.T) {
	handler := NewQueryHandler(&stubQueryService{
		resp: &models.QueryResponse{Query: "what?", Response: "that."},
	})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":"what?"}`))
	rec := httptest.NewRecorder()
	handler.HandleQuery(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "what?", body["query"])
	assert.Equal(t, "that.", body["response"])
}

func TestHandleQueryInvalidBody(t *testing.T) {
	handler := NewQueryHandler(&stubQueryService{})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.HandleQuery(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleQueryMissingQuery(t *testing.T) {
	handler := NewQueryHandler(&stubQueryService{})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	handler.HandleQuery(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleQueryPipelineFailure(t *testing.T) {
	handler := NewQueryHandler(&stubQueryService{
		err: models.NewPipelineError(models.ErrRetrieval, "retrieve", errors.New("index down")),
	})

	req := httptest.NewRequest(http.MethodPost, "/query", strings.NewReader(`{"query":"q"}`))
	rec := httptest.NewRecorder()
	handler.HandleQuery(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "An error occurred while processing your query.", body["error"])
}

func TestHandleQueryRejectsGet(t *testing.T) {
	handler := NewQueryHandler(&stubQueryService{})

	req := httptest.NewRequest(http.MethodGet, "/query", nil)
	rec := httptest.NewRecorder()
	handler.HandleQuery(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func multipartUpload(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func TestHandleAddDataSuccess(t *testing.T) {
	service := &stubIngestService{
		result: &models.IngestResult{Filename: "note.txt", Chunks: 2},
	}
	handler := NewDataHandler(service)

	body, contentType := multipartUpload(t, "file", "note.txt", []byte("some text"))
	req := httptest.NewRequest(http.MethodPost, "/add-data", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.HandleAddData(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "note.txt", service.gotFilename)
	assert.Equal(t, []byte("some text"), service.gotContent)

	resp := decodeBody(t, rec)
	assert.Equal(t, "success", resp["status"])
	assert.Equal(t, float64(2), resp["chunks"])
}

func TestHandleAddDataUnsupportedType(t *testing.T) {
	handler := NewDataHandler(&stubIngestService{
		err: models.NewPipelineError(models.ErrUnsupportedFileType, "validate", errors.New("unsupported")),
	})

	body, contentType := multipartUpload(t, "file", "report.docx", []byte("content"))
	req := httptest.NewRequest(http.MethodPost, "/add-data", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.HandleAddData(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "Unsupported file type.", resp["error"])
}

func TestHandleAddDataPipelineFailure(t *testing.T) {
	handler := NewDataHandler(&stubIngestService{
		err: models.NewPipelineError(models.ErrIndexing, "index", errors.New("index down")),
	})

	body, contentType := multipartUpload(t, "file", "note.txt", []byte("content"))
	req := httptest.NewRequest(http.MethodPost, "/add-data", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.HandleAddData(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "An error occurred while processing the file.", resp["error"])
}

func TestHandleAddDataMissingFile(t *testing.T) {
	handler := NewDataHandler(&stubIngestService{})

	body, contentType := multipartUpload(t, "wrong_field", "note.txt", []byte("content"))
	req := httptest.NewRequest(http.MethodPost, "/add-data", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	handler.HandleAddData(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleHealthCheckHealthy(t *testing.T) {
	handler := NewStatusHandler(&stubIndex{}, &stubEmbedder{})

	req := httptest.NewRequest(http.MethodGet, "/health-check", nil)
	rec := httptest.NewRecorder()
	handler.HandleHealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "healthy", resp["status"])
}

func TestHandleHealthCheckIndexDown(t *testing.T) {
	handler := NewStatusHandler(&stubIndex{err: errors.New("index unreachable")}, &stubEmbedder{})

	req := httptest.NewRequest(http.MethodGet, "/health-check", nil)
	rec := httptest.NewRecorder()
	handler.HandleHealthCheck(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "unhealthy", resp["status"])
	assert.Contains(t, resp["error"], "index unreachable")
}

func TestHandleHealthCheckEmbedderDown(t *testing.T) {
	handler := NewStatusHandler(&stubIndex{}, &stubEmbedder{err: errors.New("embedding unreachable")})

	req := httptest.NewRequest(http.MethodGet, "/health-check", nil)
	rec := httptest.NewRecorder()
	handler.HandleHealthCheck(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	HandleVersion(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "respondo", resp["app"])
	assert.NotEmpty(t, resp["version"])
}
