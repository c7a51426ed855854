// Package rfm contains the pure business logic of the segmentation engine:
// metric derivation, quantile scoring, segment classification, aggregation
// and the retention opportunity estimate. No I/O happens here; callers feed
// it an order slice and consume plain result values.
package rfm

import (
	"errors"
	"sort"
	"time"

	"github.com/example/shopsight/internal/models"
)

// ErrNoCompletedOrders is returned when the ledger has no completed orders,
// leaving no basis for an analysis date. Callers must surface this rather
// than report an empty segmentation.
var ErrNoCompletedOrders = errors.New("no completed orders in ledger")

// DeriveMetrics filters the ledger to completed orders and produces one
// CustomerMetrics row per customer, sorted by customer ID. The returned
// analysis date is one day past the latest completed order, so recency is
// deterministic for a given input snapshot and always at least one day.
func DeriveMetrics(orders []models.Order) (time.Time, []models.CustomerMetrics, error) {
	var latest time.Time
	found := false
	for _, o := range orders {
		if !o.Completed() {
			continue
		}
		found = true
		if o.OrderDate.After(latest) {
			latest = o.OrderDate
		}
	}
	if !found {
		return time.Time{}, nil, ErrNoCompletedOrders
	}
	analysisDate := latest.AddDate(0, 0, 1)

	type acc struct {
		last     time.Time
		count    int
		monetary float64
	}
	byCustomer := make(map[int]*acc)
	for _, o := range orders {
		if !o.Completed() {
			continue
		}
		a, ok := byCustomer[o.CustomerID]
		if !ok {
			a = &acc{}
			byCustomer[o.CustomerID] = a
		}
		if o.OrderDate.After(a.last) {
			a.last = o.OrderDate
		}
		a.count++
		a.monetary += o.TotalAmount
	}

	ids := make([]int, 0, len(byCustomer))
	for id := range byCustomer {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	metrics := make([]models.CustomerMetrics, 0, len(ids))
	for _, id := range ids {
		a := byCustomer[id]
		metrics = append(metrics, models.CustomerMetrics{
			CustomerID: id,
			Recency:    daysBetween(a.last, analysisDate),
			Frequency:  a.count,
			Monetary:   a.monetary,
		})
	}
	return analysisDate, metrics, nil
}

// daysBetween counts whole calendar days from a to b. Order dates are
// midnight-UTC values, so the division is exact.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
