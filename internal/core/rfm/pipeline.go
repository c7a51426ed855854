package rfm

import (
	"time"

	"github.com/example/shopsight/internal/models"
)

// Result is the complete output of one segmentation run. All fields are
// derived from the input snapshot and never mutated afterwards.
type Result struct {
	AnalysisDate time.Time
	Customers    []models.ScoredCustomer
	Summaries    []models.SegmentSummary
	Opportunity  models.RetentionOpportunity
}

// Analyze runs the full pipeline over an order ledger: derive metrics, score,
// classify, aggregate, estimate. Returns ErrNoCompletedOrders when the ledger
// holds nothing to analyze.
func Analyze(orders []models.Order) (*Result, error) {
	analysisDate, metrics, err := DeriveMetrics(orders)
	if err != nil {
		return nil, err
	}
	customers := Classify(ScoreCustomers(metrics))
	return &Result{
		AnalysisDate: analysisDate,
		Customers:    customers,
		Summaries:    Summarize(customers),
		Opportunity:  EstimateRetention(customers),
	}, nil
}
