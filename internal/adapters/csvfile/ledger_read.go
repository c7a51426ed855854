package csvfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/example/shopsight/internal/models"
)

// readRows opens a CSV, drops the header, and returns the data rows after
// checking each has at least cols columns.
func readRows(path string, cols int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s is empty", path)
	}
	for i, rec := range records[1:] {
		if len(rec) < cols {
			return nil, fmt.Errorf("%s row %d: expected %d columns, got %d", path, i+2, cols, len(rec))
		}
	}
	return records[1:], nil
}

// ReadCustomers parses a customers CSV with the columns
// customer_id,signup_date,location,age_group.
func ReadCustomers(path string) ([]models.Customer, error) {
	rows, err := readRows(path, 4)
	if err != nil {
		return nil, err
	}
	customers := make([]models.Customer, 0, len(rows))
	for i, rec := range rows {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad customer_id %q: %w", path, i+2, rec[0], err)
		}
		signup, err := parseDate(rec[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad signup_date %q: %w", path, i+2, rec[1], err)
		}
		customers = append(customers, models.Customer{
			CustomerID: id,
			SignupDate: signup,
			Location:   rec[2],
			AgeGroup:   rec[3],
		})
	}
	return customers, nil
}

// ReadProducts parses a products CSV with the columns
// product_id,product_name,category,cost_price,retail_price,current_stock.
func ReadProducts(path string) ([]models.Product, error) {
	rows, err := readRows(path, 6)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, 0, len(rows))
	for i, rec := range rows {
		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad product_id %q: %w", path, i+2, rec[0], err)
		}
		cost, err := strconv.ParseFloat(rec[3], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad cost_price %q: %w", path, i+2, rec[3], err)
		}
		retail, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad retail_price %q: %w", path, i+2, rec[4], err)
		}
		stock, err := strconv.Atoi(rec[5])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad current_stock %q: %w", path, i+2, rec[5], err)
		}
		products = append(products, models.Product{
			ProductID:    id,
			Name:         rec[1],
			Category:     rec[2],
			CostPrice:    cost,
			RetailPrice:  retail,
			CurrentStock: stock,
		})
	}
	return products, nil
}

// ReadOrderItems parses an order items CSV with the columns
// item_id,order_id,product_id,quantity,unit_price,discount_amount.
func ReadOrderItems(path string) ([]models.OrderItem, error) {
	rows, err := readRows(path, 6)
	if err != nil {
		return nil, err
	}
	items := make([]models.OrderItem, 0, len(rows))
	for i, rec := range rows {
		ints := make([]int, 4)
		for j, col := range []int{0, 1, 2, 3} {
			v, err := strconv.Atoi(rec[col])
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad column %d %q: %w", path, i+2, col+1, rec[col], err)
			}
			ints[j] = v
		}
		price, err := strconv.ParseFloat(rec[4], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad unit_price %q: %w", path, i+2, rec[4], err)
		}
		discount, err := strconv.ParseFloat(rec[5], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad discount_amount %q: %w", path, i+2, rec[5], err)
		}
		items = append(items, models.OrderItem{
			ItemID:         ints[0],
			OrderID:        ints[1],
			ProductID:      ints[2],
			Quantity:       ints[3],
			UnitPrice:      price,
			DiscountAmount: discount,
		})
	}
	return items, nil
}
