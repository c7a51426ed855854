package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/example/shopsight/internal/adapters/csvfile"
	"github.com/example/shopsight/internal/core/revenue"
	"github.com/example/shopsight/internal/core/rfm"
	"github.com/example/shopsight/internal/models"
	"github.com/example/shopsight/internal/ports/secondary"
)

// ResultsService reads back previously persisted analysis output and, when
// the external forecaster has left a series in the output directory,
// summarizes that too.
type ResultsService struct {
	log       *slog.Logger
	results   secondary.ResultStore
	outputDir string
}

// NewResultsService creates a results service.
func NewResultsService(log *slog.Logger, results secondary.ResultStore, outputDir string) *ResultsService {
	return &ResultsService{log: log, results: results, outputDir: outputDir}
}

// ResultsReport is the combined roll-up the results command renders.
type ResultsReport struct {
	Summaries      []models.SegmentSummary
	TotalCustomers int
	TotalRevenue   float64
	Opportunity    models.RetentionOpportunity
	Forecast       *revenue.ForecastSummary // nil when no forecast file exists
}

// Summary loads the stored segmentation results. Returns an error when no
// analysis has been run yet.
func (s *ResultsService) Summary(ctx context.Context) (*ResultsReport, error) {
	summaries, err := s.results.LoadSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if len(summaries) == 0 {
		return nil, fmt.Errorf("no stored results; run `shopsight analyze` first")
	}

	customers, err := s.results.LoadSegmentation(ctx)
	if err != nil {
		return nil, err
	}

	report := &ResultsReport{
		Summaries:   summaries,
		Opportunity: rfm.EstimateRetention(customers),
	}
	for _, sum := range summaries {
		report.TotalCustomers += sum.CustomerCount
		report.TotalRevenue += sum.TotalRevenue
	}

	forecastPath := filepath.Join(s.outputDir, csvfile.ForecastFile)
	if _, err := os.Stat(forecastPath); err == nil {
		points, err := csvfile.ReadForecast(forecastPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read forecast file: %w", err)
		}
		fs := revenue.SummarizeForecast(points, forecastCutoff(points, time.Now().UTC()))
		report.Forecast = &fs
	} else {
		s.log.Debug("no forecast file present", "path", forecastPath)
	}

	return report, nil
}

// forecastCutoff picks the horizon boundary for a forecast series. Forecast
// files include fitted history, so points after now form the horizon; when
// every point lies in the past the trailing 90 days stand in for it.
func forecastCutoff(points []models.ForecastPoint, now time.Time) time.Time {
	if len(points) == 0 {
		return time.Time{}
	}
	for _, p := range points {
		if p.Date.After(now) {
			return now
		}
	}
	last := points[len(points)-1].Date
	return last.AddDate(0, 0, -90)
}
