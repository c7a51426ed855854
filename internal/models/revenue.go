package models

import "time"

// DailyRevenue is one day of completed-order revenue, the unit of the series
// handed to the external forecaster.
type DailyRevenue struct {
	Date    time.Time `json:"date"`
	Revenue float64   `json:"revenue"`
}

// ForecastPoint is one row of a forecast series produced by the external
// forecasting collaborator. The engine only reads these back for reporting.
type ForecastPoint struct {
	Date      time.Time `json:"date"`
	Predicted float64   `json:"predicted_revenue"`
	Lower     float64   `json:"lower_bound"`
	Upper     float64   `json:"upper_bound"`
}

// KeyMetrics are the headline ledger figures shown by the stats command.
type KeyMetrics struct {
	TotalRevenue      float64   `json:"total_revenue"`
	CompletedOrders   int       `json:"completed_orders"`
	TotalOrders       int       `json:"total_orders"`
	UniqueCustomers   int       `json:"unique_customers"`
	AvgOrderValue     float64   `json:"avg_order_value"`
	OrdersPerCustomer float64   `json:"orders_per_customer"`
	FirstOrderDate    time.Time `json:"first_order_date"`
	LastOrderDate     time.Time `json:"last_order_date"`
}
