// Package revenue builds the daily revenue series consumed by the external
// forecasting collaborator and summarizes forecast series it hands back.
package revenue

import (
	"sort"
	"time"

	"github.com/example/shopsight/internal/models"
)

// DailySeries groups completed-order revenue by calendar day, sorted
// ascending by date. Non-completed orders never contribute.
func DailySeries(orders []models.Order) []models.DailyRevenue {
	byDay := make(map[time.Time]float64)
	for _, o := range orders {
		if !o.Completed() {
			continue
		}
		day := o.OrderDate.Truncate(24 * time.Hour)
		byDay[day] += o.TotalAmount
	}

	series := make([]models.DailyRevenue, 0, len(byDay))
	for day, total := range byDay {
		series = append(series, models.DailyRevenue{Date: day, Revenue: total})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

// ForecastSummary aggregates a forecast horizon for reporting.
type ForecastSummary struct {
	Days       int
	Predicted  float64
	AvgDaily   float64
	LowerBound float64
	UpperBound float64
}

// SummarizeForecast totals the forecast points strictly after the cutoff
// date. A zero cutoff summarizes the whole series.
func SummarizeForecast(points []models.ForecastPoint, after time.Time) ForecastSummary {
	var s ForecastSummary
	for _, p := range points {
		if !after.IsZero() && !p.Date.After(after) {
			continue
		}
		s.Days++
		s.Predicted += p.Predicted
		s.LowerBound += p.Lower
		s.UpperBound += p.Upper
	}
	if s.Days > 0 {
		s.AvgDaily = s.Predicted / float64(s.Days)
	}
	return s
}
