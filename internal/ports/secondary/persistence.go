// Package secondary defines the persistence interfaces the application
// services depend on. Adapters implement them; services never touch
// database/sql or the filesystem directly.
package secondary

import (
	"context"

	"github.com/example/shopsight/internal/models"
)

// CustomerSpend is one row of the top-customers report.
type CustomerSpend struct {
	CustomerID  int
	TotalOrders int
	TotalSpent  float64
}

// OrderStore persists and queries the order ledger.
type OrderStore interface {
	ReplaceAll(ctx context.Context, orders []models.Order) error
	ListAll(ctx context.Context) ([]models.Order, error)
	Count(ctx context.Context) (int, error)
	TopCustomersBySpend(ctx context.Context, limit int) ([]CustomerSpend, error)
}

// CatalogStore persists the supporting ledger tables.
type CatalogStore interface {
	ReplaceCustomers(ctx context.Context, customers []models.Customer) error
	ReplaceProducts(ctx context.Context, products []models.Product) error
	ReplaceOrderItems(ctx context.Context, items []models.OrderItem) error
	Counts(ctx context.Context) (customers, products, items int, err error)
}

// ResultStore persists segmentation output for later reporting.
type ResultStore interface {
	SaveSegmentation(ctx context.Context, customers []models.ScoredCustomer) error
	SaveSummaries(ctx context.Context, summaries []models.SegmentSummary) error
	LoadSegmentation(ctx context.Context) ([]models.ScoredCustomer, error)
	LoadSummaries(ctx context.Context) ([]models.SegmentSummary, error)
}

// ResultExporter writes analysis output for downstream consumers.
type ResultExporter interface {
	WriteSegmentation(customers []models.ScoredCustomer) error
	WriteSummaries(summaries []models.SegmentSummary) error
	WriteDailyRevenue(series []models.DailyRevenue) error
}
