package server

import (
	"net/http"

	"github.com/ternarybob/respondo/internal/handlers"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// Pipeline routes
	mux.HandleFunc("/query", s.app.QueryHandler.HandleQuery)               // POST - answer a question
	mux.HandleFunc("/add-data", s.app.DataHandler.HandleAddData)           // POST - ingest an uploaded file
	mux.HandleFunc("/health-check", s.app.StatusHandler.HandleHealthCheck) // GET - probe downstream services

	// API routes
	mux.HandleFunc("/api/version", handlers.HandleVersion) // GET - application version

	return mux
}
