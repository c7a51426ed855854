package app_test

import (
	"context"
	"testing"

	"github.com/example/shopsight/internal/adapters/sqlite"
	"github.com/example/shopsight/internal/app"
	"github.com/example/shopsight/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Paths.DataDir = t.TempDir()
	cfg.Paths.OutputDir = t.TempDir()
	// Small enough to keep the test fast, large enough for every status
	// and segment to appear.
	cfg.Generator.Customers = 40
	cfg.Generator.Orders = 300
	cfg.Generator.Products = 20
	return cfg
}

func TestLedgerService_GenerateThenLoad(t *testing.T) {
	database := setupTestDB(t)
	cfg := testConfig(t)
	svc := app.NewLedgerService(
		discardLogger(),
		cfg,
		sqlite.NewOrderRepository(database),
		sqlite.NewCatalogRepository(database),
	)

	gen, err := svc.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if gen.Customers != 40 || gen.Orders != 300 || gen.Products != 20 {
		t.Errorf("unexpected generate report: %+v", gen)
	}

	load, err := svc.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if load.Orders != gen.Orders {
		t.Errorf("loaded %d orders, generated %d", load.Orders, gen.Orders)
	}
	if load.Customers != gen.Customers || load.Products != gen.Products || load.Items != gen.Items {
		t.Errorf("load report %+v does not match generate report %+v", load, gen)
	}
	if len(load.TopCustomers) != 5 {
		t.Errorf("got %d top customers, want 5", len(load.TopCustomers))
	}
	for i := 1; i < len(load.TopCustomers); i++ {
		if load.TopCustomers[i].TotalSpent > load.TopCustomers[i-1].TotalSpent {
			t.Error("top customers not sorted by spend descending")
		}
	}
}

func TestLedgerService_LoadMissingFiles(t *testing.T) {
	database := setupTestDB(t)
	cfg := testConfig(t)
	svc := app.NewLedgerService(
		discardLogger(),
		cfg,
		sqlite.NewOrderRepository(database),
		sqlite.NewCatalogRepository(database),
	)

	if _, err := svc.Load(context.Background()); err == nil {
		t.Fatal("expected error loading from empty data dir, got nil")
	}
}

func TestLedgerService_Stats(t *testing.T) {
	database := setupTestDB(t)
	seedOrders(t, database)
	svc := app.NewLedgerService(
		discardLogger(),
		testConfig(t),
		sqlite.NewOrderRepository(database),
		sqlite.NewCatalogRepository(database),
	)

	m, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if m.TotalOrders != 56 {
		t.Errorf("total orders = %d, want 56", m.TotalOrders)
	}
	if m.CompletedOrders != 55 {
		t.Errorf("completed orders = %d, want 55", m.CompletedOrders)
	}
	if m.UniqueCustomers != 10 {
		t.Errorf("unique customers = %d, want 10", m.UniqueCustomers)
	}
	if m.AvgOrderValue <= 0 || m.OrdersPerCustomer != 5.5 {
		t.Errorf("derived metrics wrong: avg=%v, per-customer=%v", m.AvgOrderValue, m.OrdersPerCustomer)
	}
	if !m.LastOrderDate.After(m.FirstOrderDate) {
		t.Error("order date range not derived")
	}
}

func TestLedgerService_StatsEmpty(t *testing.T) {
	database := setupTestDB(t)
	svc := app.NewLedgerService(
		discardLogger(),
		testConfig(t),
		sqlite.NewOrderRepository(database),
		sqlite.NewCatalogRepository(database),
	)
	if _, err := svc.Stats(context.Background()); err == nil {
		t.Fatal("expected error for empty database, got nil")
	}
}

func TestLedgerService_ExportDailyRevenue(t *testing.T) {
	database := setupTestDB(t)
	seedOrders(t, database)
	cfg := testConfig(t)
	svc := app.NewLedgerService(
		discardLogger(),
		cfg,
		sqlite.NewOrderRepository(database),
		sqlite.NewCatalogRepository(database),
	)

	report, err := svc.ExportDailyRevenue(context.Background())
	if err != nil {
		t.Fatalf("ExportDailyRevenue failed: %v", err)
	}
	if report.Days == 0 {
		t.Fatal("empty revenue series")
	}
	if !report.LastDate.After(report.FirstDate) {
		t.Error("series date range not populated")
	}
	if report.Total <= 0 {
		t.Errorf("total revenue = %v, want > 0", report.Total)
	}
}
