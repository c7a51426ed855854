package csvfile

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/example/shopsight/internal/generator"
	"github.com/example/shopsight/internal/models"
)

// Output file names under the exporter's directory.
const (
	SegmentationFile = "rfm_segmentation.csv"
	SummaryFile      = "segment_summary.csv"
	DailyRevenueFile = "daily_revenue.csv"
	ForecastFile     = "sales_forecast.csv"
)

// Ledger file names under the data directory.
const (
	OrdersFile     = "orders.csv"
	CustomersFile  = "customers.csv"
	ProductsFile   = "products.csv"
	OrderItemsFile = "order_items.csv"
)

// Exporter writes CSV outputs into a single directory, creating it on first
// use. It satisfies secondary.ResultExporter.
type Exporter struct {
	log *slog.Logger
	dir string
}

// NewExporter creates an exporter rooted at dir.
func NewExporter(log *slog.Logger, dir string) *Exporter {
	return &Exporter{log: log, dir: dir}
}

// writeFile writes header plus rows to name inside the exporter directory.
func (e *Exporter) writeFile(name string, header []string, rows [][]string) error {
	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(e.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", name, err)
	}

	e.log.Debug("wrote CSV file", "path", path, "rows", len(rows))
	return nil
}

// WriteSegmentation writes the per-customer output table.
func (e *Exporter) WriteSegmentation(customers []models.ScoredCustomer) error {
	header := []string{"customer_id", "recency", "frequency", "monetary", "R_score", "F_score", "M_score", "RFM_score", "segment"}
	rows := make([][]string, len(customers))
	for i, c := range customers {
		rows[i] = []string{
			strconv.Itoa(c.CustomerID),
			strconv.Itoa(c.Recency),
			strconv.Itoa(c.Frequency),
			formatAmount(c.Monetary),
			strconv.Itoa(c.RScore),
			strconv.Itoa(c.FScore),
			strconv.Itoa(c.MScore),
			c.RFM(),
			string(c.Segment),
		}
	}
	return e.writeFile(SegmentationFile, header, rows)
}

// WriteSummaries writes the segment summary table in its given order.
func (e *Exporter) WriteSummaries(summaries []models.SegmentSummary) error {
	header := []string{"segment", "customer_count", "total_revenue", "avg_revenue", "avg_frequency", "avg_recency"}
	rows := make([][]string, len(summaries))
	for i, s := range summaries {
		rows[i] = []string{
			string(s.Segment),
			strconv.Itoa(s.CustomerCount),
			formatAmount(s.TotalRevenue),
			formatAmount(s.AvgRevenue),
			formatAmount(s.AvgFrequency),
			formatAmount(s.AvgRecency),
		}
	}
	return e.writeFile(SummaryFile, header, rows)
}

// WriteDailyRevenue writes the series handed to the external forecaster.
func (e *Exporter) WriteDailyRevenue(series []models.DailyRevenue) error {
	header := []string{"date", "revenue"}
	rows := make([][]string, len(series))
	for i, d := range series {
		rows[i] = []string{d.Date.Format(dateLayout), formatAmount(d.Revenue)}
	}
	return e.writeFile(DailyRevenueFile, header, rows)
}

// WriteLedger writes all four generated ledger tables.
func (e *Exporter) WriteLedger(l *generator.Ledger) error {
	orderRows := make([][]string, len(l.Orders))
	for i, o := range l.Orders {
		orderRows[i] = []string{
			strconv.Itoa(o.OrderID),
			strconv.Itoa(o.CustomerID),
			o.OrderDate.Format(dateLayout),
			formatAmount(o.TotalAmount),
			o.Status,
		}
	}
	if err := e.writeFile(OrdersFile,
		[]string{"order_id", "customer_id", "order_date", "total_amount", "order_status"}, orderRows); err != nil {
		return err
	}

	customerRows := make([][]string, len(l.Customers))
	for i, c := range l.Customers {
		customerRows[i] = []string{
			strconv.Itoa(c.CustomerID),
			c.SignupDate.Format(dateLayout),
			c.Location,
			c.AgeGroup,
		}
	}
	if err := e.writeFile(CustomersFile,
		[]string{"customer_id", "signup_date", "location", "age_group"}, customerRows); err != nil {
		return err
	}

	productRows := make([][]string, len(l.Products))
	for i, p := range l.Products {
		productRows[i] = []string{
			strconv.Itoa(p.ProductID),
			p.Name,
			p.Category,
			formatAmount(p.CostPrice),
			formatAmount(p.RetailPrice),
			strconv.Itoa(p.CurrentStock),
		}
	}
	if err := e.writeFile(ProductsFile,
		[]string{"product_id", "product_name", "category", "cost_price", "retail_price", "current_stock"}, productRows); err != nil {
		return err
	}

	itemRows := make([][]string, len(l.OrderItems))
	for i, it := range l.OrderItems {
		itemRows[i] = []string{
			strconv.Itoa(it.ItemID),
			strconv.Itoa(it.OrderID),
			strconv.Itoa(it.ProductID),
			strconv.Itoa(it.Quantity),
			formatAmount(it.UnitPrice),
			formatAmount(it.DiscountAmount),
		}
	}
	return e.writeFile(OrderItemsFile,
		[]string{"item_id", "order_id", "product_id", "quantity", "unit_price", "discount_amount"}, itemRows)
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
