package rfm

import "github.com/example/shopsight/internal/models"

// RetentionBoostRate is the projected revenue uplift rate from targeted
// re-engagement of the high-value segments.
const RetentionBoostRate = 0.12

// HighValueSegments is the canonical allow-list for the retention estimate.
// Every reporting surface must consume this one constant; the membership is
// a business decision and changing it silently changes the estimate.
var HighValueSegments = []models.Segment{
	models.SegmentChampions,
	models.SegmentLoyalCustomers,
	models.SegmentAtRisk,
	models.SegmentCantLoseThem,
}

// IsHighValue reports membership in the canonical high-value set.
func IsHighValue(seg models.Segment) bool {
	for _, s := range HighValueSegments {
		if s == seg {
			return true
		}
	}
	return false
}

// EstimateRetention sums unrounded monetary value across the high-value
// segments and applies the boost rate. Display rounding elsewhere never
// feeds into this figure.
func EstimateRetention(customers []models.ScoredCustomer) models.RetentionOpportunity {
	var total float64
	for _, c := range customers {
		if IsHighValue(c.Segment) {
			total += c.Monetary
		}
	}
	return models.RetentionOpportunity{
		HighValueRevenue: total,
		RetentionBoost:   total * RetentionBoostRate,
	}
}
