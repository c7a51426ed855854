// Package wire provides dependency injection for the shopsight application.
// It creates singleton services with lazy initialization.
package wire

import (
	"log"
	"log/slog"
	"sync"

	"github.com/example/shopsight/internal/adapters/csvfile"
	"github.com/example/shopsight/internal/adapters/sqlite"
	"github.com/example/shopsight/internal/app"
	"github.com/example/shopsight/internal/config"
	"github.com/example/shopsight/internal/db"
)

var (
	cfg     *config.Config
	logger  *slog.Logger
	ledger  *app.LedgerService
	analyze *app.AnalysisService
	results *app.ResultsService
	once    sync.Once
)

// Configure sets the configuration and logger used by the services.
// Must be called before the first service accessor; later calls are ignored.
func Configure(c *config.Config, l *slog.Logger) {
	cfg = c
	logger = l
}

// Config returns the active configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// LedgerService returns the singleton LedgerService instance.
func LedgerService() *app.LedgerService {
	once.Do(initServices)
	return ledger
}

// AnalysisService returns the singleton AnalysisService instance.
func AnalysisService() *app.AnalysisService {
	once.Do(initServices)
	return analyze
}

// ResultsService returns the singleton ResultsService instance.
func ResultsService() *app.ResultsService {
	once.Do(initServices)
	return results
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}

	database, err := db.Open(cfg.Paths.Database)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	orderRepo := sqlite.NewOrderRepository(database)
	catalogRepo := sqlite.NewCatalogRepository(database)
	resultRepo := sqlite.NewResultRepository(database)
	exporter := csvfile.NewExporter(logger, cfg.Paths.OutputDir)

	ledger = app.NewLedgerService(logger, cfg, orderRepo, catalogRepo)
	analyze = app.NewAnalysisService(logger, orderRepo, resultRepo, exporter)
	results = app.NewResultsService(logger, resultRepo, cfg.Paths.OutputDir)
}
