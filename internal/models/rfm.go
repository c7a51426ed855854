package models

import "fmt"

// CustomerMetrics holds the raw RFM measures for one customer, derived from
// their completed orders against a fixed analysis date.
type CustomerMetrics struct {
	CustomerID int     `json:"customer_id"`
	Recency    int     `json:"recency"`   // days since last completed order
	Frequency  int     `json:"frequency"` // count of completed orders
	Monetary   float64 `json:"monetary"`  // sum of completed order amounts
}

// ScoredCustomer extends CustomerMetrics with the 1-5 dimension scores and
// the assigned segment.
type ScoredCustomer struct {
	CustomerMetrics
	RScore  int     `json:"r_score"`
	FScore  int     `json:"f_score"`
	MScore  int     `json:"m_score"`
	Segment Segment `json:"segment"`
}

// RFM returns the concatenated three-digit score string, e.g. "455".
func (c ScoredCustomer) RFM() string {
	return fmt.Sprintf("%d%d%d", c.RScore, c.FScore, c.MScore)
}

// SegmentSummary is one aggregate row per segment with at least one member.
// The averages and totals are rounded to two decimals for display/export.
type SegmentSummary struct {
	Segment       Segment `json:"segment"`
	CustomerCount int     `json:"customer_count"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgRevenue    float64 `json:"avg_revenue"`
	AvgFrequency  float64 `json:"avg_frequency"`
	AvgRecency    float64 `json:"avg_recency"`
}

// RetentionOpportunity is the projected revenue uplift from retaining the
// high-value segments. HighValueRevenue is unrounded.
type RetentionOpportunity struct {
	HighValueRevenue float64 `json:"total_high_value_revenue"`
	RetentionBoost   float64 `json:"retention_boost"`
}
