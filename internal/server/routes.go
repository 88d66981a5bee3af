package server

import "net/http"

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// API routes - Analysis
	mux.HandleFunc("/api/analyze", s.app.AnalyzeHandler.AnalyzeContentHandler) // POST - analyze inline text

	// API routes - Ingestion (normalize source, then analyze)
	mux.HandleFunc("/api/ingest/url", s.app.IngestHandler.IngestURLHandler)     // POST - web page
	mux.HandleFunc("/api/ingest/text", s.app.IngestHandler.IngestTextHandler)   // POST - pasted text/markdown
	mux.HandleFunc("/api/ingest/video", s.app.IngestHandler.IngestVideoHandler) // POST - transcript + video URL
	mux.HandleFunc("/api/ingest/pdf", s.app.IngestHandler.IngestPDFHandler)     // POST - multipart PDF upload

	// API routes - System
	mux.HandleFunc("/api/health", s.app.StatusHandler.HealthHandler)
	mux.HandleFunc("/api/version", s.app.StatusHandler.VersionHandler)

	return mux
}
