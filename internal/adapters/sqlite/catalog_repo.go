package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/shopsight/internal/models"
)

// CatalogRepository implements secondary.CatalogStore with SQLite.
type CatalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new SQLite catalog repository.
func NewCatalogRepository(db *sql.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// replaceTable clears a table and runs inserts inside one transaction.
func (r *CatalogRepository) replaceTable(ctx context.Context, table, insert string, count int, args func(i int) []any) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("failed to prepare %s insert: %w", table, err)
	}
	defer stmt.Close()

	for i := 0; i < count; i++ {
		if _, err := stmt.ExecContext(ctx, args(i)...); err != nil {
			return fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit %s: %w", table, err)
	}
	return nil
}

// ReplaceCustomers clears and reloads the customers table.
func (r *CatalogRepository) ReplaceCustomers(ctx context.Context, customers []models.Customer) error {
	return r.replaceTable(ctx, "customers",
		"INSERT INTO customers (customer_id, signup_date, location, age_group) VALUES (?, ?, ?, ?)",
		len(customers), func(i int) []any {
			c := customers[i]
			return []any{c.CustomerID, c.SignupDate, c.Location, c.AgeGroup}
		})
}

// ReplaceProducts clears and reloads the products table.
func (r *CatalogRepository) ReplaceProducts(ctx context.Context, products []models.Product) error {
	return r.replaceTable(ctx, "products",
		"INSERT INTO products (product_id, product_name, category, cost_price, retail_price, current_stock) VALUES (?, ?, ?, ?, ?, ?)",
		len(products), func(i int) []any {
			p := products[i]
			return []any{p.ProductID, p.Name, p.Category, p.CostPrice, p.RetailPrice, p.CurrentStock}
		})
}

// ReplaceOrderItems clears and reloads the order_items table.
func (r *CatalogRepository) ReplaceOrderItems(ctx context.Context, items []models.OrderItem) error {
	return r.replaceTable(ctx, "order_items",
		"INSERT INTO order_items (item_id, order_id, product_id, quantity, unit_price, discount_amount) VALUES (?, ?, ?, ?, ?, ?)",
		len(items), func(i int) []any {
			it := items[i]
			return []any{it.ItemID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.DiscountAmount}
		})
}

// Counts returns the row counts of the supporting ledger tables.
func (r *CatalogRepository) Counts(ctx context.Context) (customers, products, items int, err error) {
	counts := []struct {
		table string
		dest  *int
	}{
		{"customers", &customers},
		{"products", &products},
		{"order_items", &items},
	}
	for _, c := range counts {
		if err = r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dest); err != nil {
			return 0, 0, 0, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}
	return customers, products, items, nil
}
