// Package sqlite contains SQLite implementations of the persistence
// interfaces in ports/secondary.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/shopsight/internal/models"
	"github.com/example/shopsight/internal/ports/secondary"
)

// OrderRepository implements secondary.OrderStore with SQLite.
type OrderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new SQLite order repository.
func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// ReplaceAll clears the orders table and bulk-inserts the given ledger in a
// single transaction.
func (r *OrderRepository) ReplaceAll(ctx context.Context, orders []models.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM orders"); err != nil {
		return fmt.Errorf("failed to clear orders: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO orders (order_id, customer_id, order_date, total_amount, order_status) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, o := range orders {
		if _, err := stmt.ExecContext(ctx, o.OrderID, o.CustomerID, o.OrderDate, o.TotalAmount, o.Status); err != nil {
			return fmt.Errorf("failed to insert order %d: %w", o.OrderID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit orders: %w", err)
	}
	return nil
}

// ListAll returns every order in the ledger, ordered by order ID.
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT order_id, customer_id, order_date, total_amount, order_status FROM orders ORDER BY order_id")
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.OrderID, &o.CustomerID, &o.OrderDate, &o.TotalAmount, &o.Status); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	return orders, nil
}

// Count returns the number of orders in the ledger.
func (r *OrderRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return n, nil
}

// TopCustomersBySpend returns the highest-spending customers over completed
// orders, spend rounded to cents.
func (r *OrderRepository) TopCustomersBySpend(ctx context.Context, limit int) ([]secondary.CustomerSpend, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT customer_id, COUNT(order_id) AS total_orders, ROUND(SUM(total_amount), 2) AS total_spent
		FROM orders
		WHERE order_status = ?
		GROUP BY customer_id
		ORDER BY total_spent DESC
		LIMIT ?`, models.StatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}
	defer rows.Close()

	var top []secondary.CustomerSpend
	for rows.Next() {
		var c secondary.CustomerSpend
		if err := rows.Scan(&c.CustomerID, &c.TotalOrders, &c.TotalSpent); err != nil {
			return nil, fmt.Errorf("failed to scan top customer: %w", err)
		}
		top = append(top, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top customers: %w", err)
	}
	return top, nil
}
