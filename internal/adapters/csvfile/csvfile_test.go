package csvfile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/shopsight/internal/models"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestReadOrders(t *testing.T) {
	path := writeTemp(t, "orders.csv",
		"order_id,customer_id,order_date,total_amount,order_status\n"+
			"1,10,2025-03-01,49.99,Completed\n"+
			"2,11,2025-03-02 00:00:00,15.00,Pending\n"+
			"3,10,2025-03-03,20.00,Refunded\n")

	orders, err := ReadOrders(path)
	if err != nil {
		t.Fatalf("ReadOrders failed: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders, got %d", len(orders))
	}
	if orders[0].OrderID != 1 || orders[0].TotalAmount != 49.99 {
		t.Errorf("order 1 = %+v", orders[0])
	}
	want := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)
	if !orders[1].OrderDate.Equal(want) {
		t.Errorf("order 2 date = %v, want %v (datetime form accepted)", orders[1].OrderDate, want)
	}
	// An unrecognized status survives parsing; it just never counts as completed.
	if orders[2].Status != "Refunded" {
		t.Errorf("order 3 status = %q, want Refunded kept verbatim", orders[2].Status)
	}
	if orders[2].Completed() {
		t.Error("unrecognized status must not be completed")
	}
}

func TestReadOrders_MalformedRow(t *testing.T) {
	path := writeTemp(t, "orders.csv",
		"order_id,customer_id,order_date,total_amount,order_status\n"+
			"1,10,2025-03-01,not-a-number,Completed\n")

	if _, err := ReadOrders(path); err == nil {
		t.Error("expected error for malformed amount, got nil")
	}
}

func TestReadForecast(t *testing.T) {
	path := writeTemp(t, "sales_forecast.csv",
		"date,predicted_revenue,lower_bound,upper_bound\n"+
			"2025-06-01,1000.50,800.00,1200.00\n"+
			"2025-06-02,1100.00,900.00,1300.00\n")

	points, err := ReadForecast(path)
	if err != nil {
		t.Fatalf("ReadForecast failed: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Predicted != 1000.50 || points[0].Lower != 800 || points[0].Upper != 1200 {
		t.Errorf("point 1 = %+v", points[0])
	}
}

func TestExporter_SegmentationRoundTrip(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(discardLogger(), dir)

	customers := []models.ScoredCustomer{
		{
			CustomerMetrics: models.CustomerMetrics{CustomerID: 1, Recency: 2, Frequency: 5, Monetary: 500.5},
			RScore:          5, FScore: 4, MScore: 5,
			Segment: models.SegmentChampions,
		},
	}
	if err := e.WriteSegmentation(customers); err != nil {
		t.Fatalf("WriteSegmentation failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, SegmentationFile))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "customer_id,recency,frequency,monetary,R_score,F_score,M_score,RFM_score,segment\n" +
		"1,2,5,500.50,5,4,5,545,Champions\n"
	if string(data) != want {
		t.Errorf("segmentation file:\n%s\nwant:\n%s", data, want)
	}
}

func TestExporter_WriteDailyRevenue(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(discardLogger(), dir)

	series := []models.DailyRevenue{
		{Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Revenue: 125},
	}
	if err := e.WriteDailyRevenue(series); err != nil {
		t.Fatalf("WriteDailyRevenue failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, DailyRevenueFile))
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	want := "date,revenue\n2025-03-01,125.00\n"
	if string(data) != want {
		t.Errorf("daily revenue file:\n%s\nwant:\n%s", data, want)
	}
}

func TestLedgerReadRoundTrip(t *testing.T) {
	customers := writeTemp(t, "customers.csv",
		"customer_id,signup_date,location,age_group\n"+
			"1,2023-05-01,Boston,26-35\n")
	got, err := ReadCustomers(customers)
	if err != nil {
		t.Fatalf("ReadCustomers failed: %v", err)
	}
	if len(got) != 1 || got[0].Location != "Boston" {
		t.Errorf("customers = %+v", got)
	}

	products := writeTemp(t, "products.csv",
		"product_id,product_name,category,cost_price,retail_price,current_stock\n"+
			"1,Product_0001,Books,10.00,25.00,40\n")
	gotP, err := ReadProducts(products)
	if err != nil {
		t.Fatalf("ReadProducts failed: %v", err)
	}
	if len(gotP) != 1 || gotP[0].RetailPrice != 25 {
		t.Errorf("products = %+v", gotP)
	}

	items := writeTemp(t, "order_items.csv",
		"item_id,order_id,product_id,quantity,unit_price,discount_amount\n"+
			"1,1,1,2,25.00,5.00\n")
	gotI, err := ReadOrderItems(items)
	if err != nil {
		t.Fatalf("ReadOrderItems failed: %v", err)
	}
	if len(gotI) != 1 || gotI[0].Quantity != 2 {
		t.Errorf("items = %+v", gotI)
	}
}
