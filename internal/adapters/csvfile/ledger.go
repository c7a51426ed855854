// Package csvfile reads and writes the delimited-file transport of the
// ledger and the analysis outputs.
package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/example/shopsight/internal/models"
)

const dateLayout = "2006-01-02"

// ReadOrders parses an orders CSV with the columns
// order_id,customer_id,order_date,total_amount,order_status.
// Unrecognized status strings are kept verbatim; the engine treats anything
// that is not Completed as non-completed, so a malformed status in one row
// never aborts the run. Malformed numeric or date fields do, with the row
// number in the error.
func ReadOrders(path string) ([]models.Order, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open orders file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read orders file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("orders file %s is empty", path)
	}

	orders := make([]models.Order, 0, len(records)-1)
	for i, rec := range records[1:] {
		row := i + 2 // 1-based, after header
		if len(rec) < 5 {
			return nil, fmt.Errorf("orders file row %d: expected 5 columns, got %d", row, len(rec))
		}
		orderID, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("orders file row %d: bad order_id %q: %w", row, rec[0], err)
		}
		customerID, err := strconv.Atoi(rec[1])
		if err != nil {
			return nil, fmt.Errorf("orders file row %d: bad customer_id %q: %w", row, rec[1], err)
		}
		orderDate, err := parseDate(rec[2])
		if err != nil {
			return nil, fmt.Errorf("orders file row %d: bad order_date %q: %w", row, rec[2], err)
		}
		amount, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("orders file row %d: bad total_amount %q: %w", row, rec[3], err)
		}
		orders = append(orders, models.Order{
			OrderID:     orderID,
			CustomerID:  customerID,
			OrderDate:   orderDate,
			TotalAmount: amount,
			Status:      rec[4],
		})
	}
	return orders, nil
}

// parseDate accepts plain ISO dates and datetime variants the pandas
// exporters produce ("2025-05-31", "2025-05-31 00:00:00").
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, time.UTC); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02 15:04:05", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return t.Truncate(24 * time.Hour), nil
}

// ReadForecast parses a forecast CSV with the columns
// date,predicted_revenue,lower_bound,upper_bound.
func ReadForecast(path string) ([]models.ForecastPoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open forecast file: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read forecast file: %w", err)
	}

	var points []models.ForecastPoint
	for i, rec := range records {
		if i == 0 {
			continue // header
		}
		if len(rec) < 4 {
			return nil, fmt.Errorf("forecast file row %d: expected 4 columns, got %d", i+1, len(rec))
		}
		date, err := parseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("forecast file row %d: bad date %q: %w", i+1, rec[0], err)
		}
		predicted, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("forecast file row %d: bad predicted value %q: %w", i+1, rec[1], err)
		}
		lower, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("forecast file row %d: bad lower bound %q: %w", i+1, rec[2], err)
		}
		upper, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("forecast file row %d: bad upper bound %q: %w", i+1, rec[3], err)
		}
		points = append(points, models.ForecastPoint{Date: date, Predicted: predicted, Lower: lower, Upper: upper})
	}
	return points, nil
}
