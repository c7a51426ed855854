// Package app contains the application services that sequence the core
// pipeline with persistence and export. Services hold no analytical logic
// themselves; that lives in internal/core.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/shopsight/internal/core/revenue"
	"github.com/example/shopsight/internal/core/rfm"
	"github.com/example/shopsight/internal/models"
	"github.com/example/shopsight/internal/ports/secondary"
)

// AnalysisService runs the RFM segmentation pipeline over the loaded ledger.
type AnalysisService struct {
	log      *slog.Logger
	orders   secondary.OrderStore
	results  secondary.ResultStore
	exporter secondary.ResultExporter
}

// NewAnalysisService creates an analysis service.
func NewAnalysisService(log *slog.Logger, orders secondary.OrderStore, results secondary.ResultStore, exporter secondary.ResultExporter) *AnalysisService {
	return &AnalysisService{log: log, orders: orders, results: results, exporter: exporter}
}

// SegmentRevenue is one high-value segment line in the analysis report.
type SegmentRevenue struct {
	Segment   models.Segment
	Customers int
	Revenue   float64
}

// AnalysisReport is what the analyze command renders after a run.
type AnalysisReport struct {
	AnalysisDate  time.Time
	CustomerCount int
	Summaries     []models.SegmentSummary
	HighValue     []SegmentRevenue
	Opportunity   models.RetentionOpportunity
}

// Run executes the full pipeline: load orders, analyze, persist results,
// export CSVs. The ledger must have completed orders; an empty or
// completed-free ledger is an error, never an empty report.
func (s *AnalysisService) Run(ctx context.Context) (*AnalysisReport, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("no orders in database; run `shopsight load` first")
	}
	s.log.Info("calculating RFM metrics", "orders", len(orders))

	result, err := rfm.Analyze(orders)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	s.log.Info("segmented customers",
		"customers", len(result.Customers),
		"segments", len(result.Summaries),
		"analysis_date", result.AnalysisDate.Format("2006-01-02"))

	if err := s.results.SaveSegmentation(ctx, result.Customers); err != nil {
		return nil, fmt.Errorf("failed to save segmentation: %w", err)
	}
	if err := s.results.SaveSummaries(ctx, result.Summaries); err != nil {
		return nil, fmt.Errorf("failed to save summaries: %w", err)
	}

	if err := s.exporter.WriteSegmentation(result.Customers); err != nil {
		return nil, fmt.Errorf("failed to export segmentation: %w", err)
	}
	if err := s.exporter.WriteSummaries(result.Summaries); err != nil {
		return nil, fmt.Errorf("failed to export summaries: %w", err)
	}

	series := revenue.DailySeries(orders)
	if err := s.exporter.WriteDailyRevenue(series); err != nil {
		return nil, fmt.Errorf("failed to export daily revenue: %w", err)
	}

	return &AnalysisReport{
		AnalysisDate:  result.AnalysisDate,
		CustomerCount: len(result.Customers),
		Summaries:     result.Summaries,
		HighValue:     highValueBreakdown(result.Customers),
		Opportunity:   result.Opportunity,
	}, nil
}

// highValueBreakdown lists count and revenue per high-value segment, in the
// canonical segment order.
func highValueBreakdown(customers []models.ScoredCustomer) []SegmentRevenue {
	breakdown := make([]SegmentRevenue, len(rfm.HighValueSegments))
	for i, seg := range rfm.HighValueSegments {
		breakdown[i].Segment = seg
	}
	for _, c := range customers {
		for i := range breakdown {
			if breakdown[i].Segment == c.Segment {
				breakdown[i].Customers++
				breakdown[i].Revenue += c.Monetary
			}
		}
	}
	return breakdown
}
