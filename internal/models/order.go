// Package models contains the plain data types shared across the application.
// All behavior lives in the core packages; these are row-shaped structs only.
package models

import "time"

// Order statuses as they appear in the ledger. Anything else is treated as
// non-completed and excluded from analysis rather than rejected.
const (
	StatusCompleted = "Completed"
	StatusPending   = "Pending"
	StatusCancelled = "Cancelled"
)

// Order is one row of the order ledger.
type Order struct {
	OrderID     int       `json:"order_id"`
	CustomerID  int       `json:"customer_id"`
	OrderDate   time.Time `json:"order_date"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"order_status"`
}

// Completed reports whether the order participates in revenue and RFM figures.
func (o Order) Completed() bool {
	return o.Status == StatusCompleted
}

// Customer is one row of the customer table.
type Customer struct {
	CustomerID int       `json:"customer_id"`
	SignupDate time.Time `json:"signup_date"`
	Location   string    `json:"location"`
	AgeGroup   string    `json:"age_group"`
}

// Product is one row of the product catalog.
type Product struct {
	ProductID    int     `json:"product_id"`
	Name         string  `json:"product_name"`
	Category     string  `json:"category"`
	CostPrice    float64 `json:"cost_price"`
	RetailPrice  float64 `json:"retail_price"`
	CurrentStock int     `json:"current_stock"`
}

// OrderItem is one line item of an order.
type OrderItem struct {
	ItemID         int     `json:"item_id"`
	OrderID        int     `json:"order_id"`
	ProductID      int     `json:"product_id"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	DiscountAmount float64 `json:"discount_amount"`
}
