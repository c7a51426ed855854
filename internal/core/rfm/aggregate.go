package rfm

import (
	"math"
	"sort"

	"github.com/example/shopsight/internal/models"
)

// Summarize rolls segmented customers up into one row per populated segment,
// sorted by total revenue descending. Ties keep the canonical segment order
// (stable sort over rows built in models.AllSegments order). The numeric
// fields are rounded to two decimals; callers needing exact figures must go
// back to the per-customer rows.
func Summarize(customers []models.ScoredCustomer) []models.SegmentSummary {
	type acc struct {
		count     int
		revenue   float64
		frequency int
		recency   int
	}
	bySegment := make(map[models.Segment]*acc)
	for _, c := range customers {
		a, ok := bySegment[c.Segment]
		if !ok {
			a = &acc{}
			bySegment[c.Segment] = a
		}
		a.count++
		a.revenue += c.Monetary
		a.frequency += c.Frequency
		a.recency += c.Recency
	}

	summaries := make([]models.SegmentSummary, 0, len(bySegment))
	for _, seg := range models.AllSegments {
		a, ok := bySegment[seg]
		if !ok {
			continue
		}
		n := float64(a.count)
		summaries = append(summaries, models.SegmentSummary{
			Segment:       seg,
			CustomerCount: a.count,
			TotalRevenue:  Round2(a.revenue),
			AvgRevenue:    Round2(a.revenue / n),
			AvgFrequency:  Round2(float64(a.frequency) / n),
			AvgRecency:    Round2(float64(a.recency) / n),
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalRevenue > summaries[j].TotalRevenue
	})
	return summaries
}

// Round2 rounds to two decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
