// Package app wires configuration, services, and handlers together.
package app

import (
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/digero/internal/common"
	"github.com/ternarybob/digero/internal/handlers"
	"github.com/ternarybob/digero/internal/interfaces"
	"github.com/ternarybob/digero/internal/services/analysis"
	"github.com/ternarybob/digero/internal/services/ingest"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	// Services
	AnalysisService interfaces.AnalysisService
	IngestService   interfaces.IngestService

	// HTTP handlers
	AnalyzeHandler *handlers.AnalyzeHandler
	IngestHandler  *handlers.IngestHandler
	StatusHandler  *handlers.StatusHandler
}

// New creates the application with all services and handlers wired
func New(config *common.Config, logger arbor.ILogger) *App {
	analysisService := analysis.NewService(logger)
	ingestService := ingest.NewService(&config.Ingest, logger)

	return &App{
		Config:          config,
		Logger:          logger,
		AnalysisService: analysisService,
		IngestService:   ingestService,
		AnalyzeHandler:  handlers.NewAnalyzeHandler(analysisService, logger),
		IngestHandler:   handlers.NewIngestHandler(ingestService, analysisService, logger),
		StatusHandler:   handlers.NewStatusHandler(),
	}
}
