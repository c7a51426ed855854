package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/example/shopsight/internal/adapters/csvfile"
	"github.com/example/shopsight/internal/adapters/sqlite"
	"github.com/example/shopsight/internal/app"
)

func TestResultsService_Summary(t *testing.T) {
	database := setupTestDB(t)
	seedOrders(t, database)
	outDir := t.TempDir()

	analysis := app.NewAnalysisService(
		discardLogger(),
		sqlite.NewOrderRepository(database),
		sqlite.NewResultRepository(database),
		csvfile.NewExporter(discardLogger(), outDir),
	)
	if _, err := analysis.Run(context.Background()); err != nil {
		t.Fatalf("analysis run failed: %v", err)
	}

	svc := app.NewResultsService(discardLogger(), sqlite.NewResultRepository(database), outDir)
	report, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if report.TotalCustomers != 10 {
		t.Errorf("total customers = %d, want 10", report.TotalCustomers)
	}
	if report.TotalRevenue <= 0 {
		t.Errorf("total revenue = %v, want > 0", report.TotalRevenue)
	}
	if report.Opportunity.RetentionBoost <= 0 {
		t.Error("expected a positive retention boost for seeded data")
	}
	if report.Forecast != nil {
		t.Error("forecast summary present without a forecast file")
	}
}

func TestResultsService_Summary_WithForecast(t *testing.T) {
	database := setupTestDB(t)
	seedOrders(t, database)
	outDir := t.TempDir()

	analysis := app.NewAnalysisService(
		discardLogger(),
		sqlite.NewOrderRepository(database),
		sqlite.NewResultRepository(database),
		csvfile.NewExporter(discardLogger(), outDir),
	)
	if _, err := analysis.Run(context.Background()); err != nil {
		t.Fatalf("analysis run failed: %v", err)
	}

	forecast := "date,predicted_revenue,lower_bound,upper_bound\n" +
		"2025-01-10,1200.50,1000.00,1400.00\n" +
		"2025-01-11,1250.75,1050.00,1450.00\n"
	if err := os.WriteFile(filepath.Join(outDir, csvfile.ForecastFile), []byte(forecast), 0o644); err != nil {
		t.Fatalf("failed to write forecast file: %v", err)
	}

	svc := app.NewResultsService(discardLogger(), sqlite.NewResultRepository(database), outDir)
	report, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary failed: %v", err)
	}
	if report.Forecast == nil {
		t.Fatal("expected forecast summary")
	}
	if report.Forecast.Days != 2 {
		t.Errorf("forecast days = %d, want 2", report.Forecast.Days)
	}
	if report.Forecast.Predicted != 1200.50+1250.75 {
		t.Errorf("forecast total = %v, want %v", report.Forecast.Predicted, 1200.50+1250.75)
	}
}

func TestResultsService_Summary_NoResults(t *testing.T) {
	database := setupTestDB(t)
	svc := app.NewResultsService(discardLogger(), sqlite.NewResultRepository(database), t.TempDir())
	if _, err := svc.Summary(context.Background()); err == nil {
		t.Fatal("expected error when no analysis has been stored, got nil")
	}
}
