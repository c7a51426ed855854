package app

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/example/shopsight/internal/adapters/csvfile"
	"github.com/example/shopsight/internal/config"
	"github.com/example/shopsight/internal/core/revenue"
	"github.com/example/shopsight/internal/generator"
	"github.com/example/shopsight/internal/models"
	"github.com/example/shopsight/internal/ports/secondary"
)

// LedgerService owns the order ledger lifecycle: generating sample data,
// loading CSVs into the database, and headline statistics.
type LedgerService struct {
	log     *slog.Logger
	cfg     *config.Config
	orders  secondary.OrderStore
	catalog secondary.CatalogStore
}

// NewLedgerService creates a ledger service.
func NewLedgerService(log *slog.Logger, cfg *config.Config, orders secondary.OrderStore, catalog secondary.CatalogStore) *LedgerService {
	return &LedgerService{log: log, cfg: cfg, orders: orders, catalog: catalog}
}

// GenerateReport summarizes a generator run.
type GenerateReport struct {
	Customers int
	Orders    int
	Products  int
	Items     int
	DataDir   string
}

// Generate produces the synthetic CSV ledger in the configured data
// directory. Deterministic for a fixed seed.
func (s *LedgerService) Generate() (*GenerateReport, error) {
	start, end, err := s.cfg.Generator.DateRange()
	if err != nil {
		return nil, err
	}

	s.log.Info("generating sample data",
		"customers", s.cfg.Generator.Customers,
		"orders", s.cfg.Generator.Orders,
		"seed", s.cfg.Generator.Seed)

	ledger, err := generator.Generate(generator.Settings{
		Seed:      s.cfg.Generator.Seed,
		Customers: s.cfg.Generator.Customers,
		Orders:    s.cfg.Generator.Orders,
		Products:  s.cfg.Generator.Products,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate ledger: %w", err)
	}

	writer := csvfile.NewExporter(s.log, s.cfg.Paths.DataDir)
	if err := writer.WriteLedger(ledger); err != nil {
		return nil, fmt.Errorf("failed to write ledger files: %w", err)
	}

	return &GenerateReport{
		Customers: len(ledger.Customers),
		Orders:    len(ledger.Orders),
		Products:  len(ledger.Products),
		Items:     len(ledger.OrderItems),
		DataDir:   s.cfg.Paths.DataDir,
	}, nil
}

// LoadReport summarizes a CSV-to-database load.
type LoadReport struct {
	Customers    int
	Orders       int
	Products     int
	Items        int
	TopCustomers []secondary.CustomerSpend
}

// Load reads the CSV ledger from the data directory into the database,
// replacing any previous contents, and verifies the row counts.
func (s *LedgerService) Load(ctx context.Context) (*LoadReport, error) {
	dir := s.cfg.Paths.DataDir

	orders, err := csvfile.ReadOrders(filepath.Join(dir, csvfile.OrdersFile))
	if err != nil {
		return nil, err
	}
	customers, err := csvfile.ReadCustomers(filepath.Join(dir, csvfile.CustomersFile))
	if err != nil {
		return nil, err
	}
	products, err := csvfile.ReadProducts(filepath.Join(dir, csvfile.ProductsFile))
	if err != nil {
		return nil, err
	}
	items, err := csvfile.ReadOrderItems(filepath.Join(dir, csvfile.OrderItemsFile))
	if err != nil {
		return nil, err
	}

	s.log.Info("loading ledger into database",
		"orders", len(orders), "customers", len(customers),
		"products", len(products), "items", len(items))

	if err := s.orders.ReplaceAll(ctx, orders); err != nil {
		return nil, err
	}
	if err := s.catalog.ReplaceCustomers(ctx, customers); err != nil {
		return nil, err
	}
	if err := s.catalog.ReplaceProducts(ctx, products); err != nil {
		return nil, err
	}
	if err := s.catalog.ReplaceOrderItems(ctx, items); err != nil {
		return nil, err
	}

	orderCount, err := s.orders.Count(ctx)
	if err != nil {
		return nil, err
	}
	customerCount, productCount, itemCount, err := s.catalog.Counts(ctx)
	if err != nil {
		return nil, err
	}
	if orderCount != len(orders) {
		return nil, fmt.Errorf("order count mismatch after load: inserted %d, found %d", len(orders), orderCount)
	}

	top, err := s.orders.TopCustomersBySpend(ctx, 5)
	if err != nil {
		return nil, err
	}

	return &LoadReport{
		Customers:    customerCount,
		Orders:       orderCount,
		Products:     productCount,
		Items:        itemCount,
		TopCustomers: top,
	}, nil
}

// Stats computes the headline ledger metrics from the loaded orders.
func (s *LedgerService) Stats(ctx context.Context) (*models.KeyMetrics, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return nil, fmt.Errorf("no orders in database; run `shopsight load` first")
	}
	return computeKeyMetrics(orders), nil
}

// RevenueReport summarizes the exported daily revenue series.
type RevenueReport struct {
	Days      int
	Total     float64
	FirstDate time.Time
	LastDate  time.Time
	Path      string
}

// ExportDailyRevenue builds the daily completed-revenue series and writes it
// to the output directory for the external forecaster.
func (s *LedgerService) ExportDailyRevenue(ctx context.Context) (*RevenueReport, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	series := revenue.DailySeries(orders)
	if len(series) == 0 {
		return nil, fmt.Errorf("no completed orders to build a revenue series from")
	}

	writer := csvfile.NewExporter(s.log, s.cfg.Paths.OutputDir)
	if err := writer.WriteDailyRevenue(series); err != nil {
		return nil, err
	}

	var total float64
	for _, d := range series {
		total += d.Revenue
	}
	return &RevenueReport{
		Days:      len(series),
		Total:     total,
		FirstDate: series[0].Date,
		LastDate:  series[len(series)-1].Date,
		Path:      filepath.Join(s.cfg.Paths.OutputDir, csvfile.DailyRevenueFile),
	}, nil
}

// computeKeyMetrics derives the stats block from the raw ledger.
func computeKeyMetrics(orders []models.Order) *models.KeyMetrics {
	m := &models.KeyMetrics{TotalOrders: len(orders)}
	customers := make(map[int]bool)
	for _, o := range orders {
		if m.FirstOrderDate.IsZero() || o.OrderDate.Before(m.FirstOrderDate) {
			m.FirstOrderDate = o.OrderDate
		}
		if o.OrderDate.After(m.LastOrderDate) {
			m.LastOrderDate = o.OrderDate
		}
		if !o.Completed() {
			continue
		}
		m.CompletedOrders++
		m.TotalRevenue += o.TotalAmount
		customers[o.CustomerID] = true
	}
	m.UniqueCustomers = len(customers)
	if m.CompletedOrders > 0 {
		m.AvgOrderValue = m.TotalRevenue / float64(m.CompletedOrders)
	}
	if m.UniqueCustomers > 0 {
		m.OrdersPerCustomer = float64(m.CompletedOrders) / float64(m.UniqueCustomers)
	}
	return m
}
