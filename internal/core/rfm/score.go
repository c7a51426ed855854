package rfm

import (
	"sort"

	"github.com/example/shopsight/internal/models"
)

const scoreBins = 5

// uniformScore is assigned to every customer when a dimension has a single
// distinct value and no binning can spread it. Middle of the 1-5 range.
const uniformScore = 3

// ScoreDimension maps each value to an integer bin index in [1,5], higher
// values landing in higher bins. Three strategies are tried in order:
//
//  1. equal-population quintile binning over the sorted values;
//  2. equal-width binning over [min,max] when the distribution is too
//     duplicate-heavy for five distinct quantile boundaries;
//  3. a uniform score when every value is identical.
//
// The fallbacks are defined degenerate-case behavior, not errors: the result
// always has one score per input and every score is in range.
func ScoreDimension(values []float64) []int {
	if len(values) == 0 {
		return nil
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	if sorted[0] == sorted[len(sorted)-1] {
		scores := make([]int, len(values))
		for i := range scores {
			scores[i] = uniformScore
		}
		return scores
	}

	if edges, ok := quantileEdges(sorted); ok {
		return assignBins(values, edges)
	}
	return assignBins(values, equalWidthEdges(sorted[0], sorted[len(sorted)-1]))
}

// quantileEdges computes the four interior quintile boundaries of the sorted
// values using linear interpolation. It reports false when the distribution
// cannot support five equal-population bins: fewer than five distinct values,
// or boundaries that collapse onto each other.
func quantileEdges(sorted []float64) ([scoreBins - 1]float64, bool) {
	var edges [scoreBins - 1]float64

	distinct := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1] {
			distinct++
		}
	}
	if distinct < scoreBins {
		return edges, false
	}

	for k := 1; k < scoreBins; k++ {
		edges[k-1] = quantile(sorted, float64(k)/scoreBins)
	}
	prev := sorted[0]
	for _, e := range edges {
		if e <= prev {
			return edges, false
		}
		prev = e
	}
	if edges[scoreBins-2] >= sorted[len(sorted)-1] {
		return edges, false
	}
	return edges, true
}

// quantile returns the q-quantile of sorted values with linear interpolation
// between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(pos)
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// equalWidthEdges splits [min,max] into five bins of equal value width.
func equalWidthEdges(min, max float64) [scoreBins - 1]float64 {
	var edges [scoreBins - 1]float64
	width := (max - min) / scoreBins
	for k := 1; k < scoreBins; k++ {
		edges[k-1] = min + float64(k)*width
	}
	return edges
}

// assignBins places each value in the first bin whose upper edge is not
// below it. Values above the last interior edge land in bin 5.
func assignBins(values []float64, edges [scoreBins - 1]float64) []int {
	scores := make([]int, len(values))
	for i, v := range values {
		bin := scoreBins
		for k, e := range edges {
			if v <= e {
				bin = k + 1
				break
			}
		}
		scores[i] = bin
	}
	return scores
}

// ScoreCustomers scores all three dimensions across the metric rows.
// Recency is inverted (6 - bin) so that the most recent customers score 5;
// frequency and monetary use the raw bin index. Segments are not assigned
// here; see Classify.
func ScoreCustomers(metrics []models.CustomerMetrics) []models.ScoredCustomer {
	recency := make([]float64, len(metrics))
	frequency := make([]float64, len(metrics))
	monetary := make([]float64, len(metrics))
	for i, m := range metrics {
		recency[i] = float64(m.Recency)
		frequency[i] = float64(m.Frequency)
		monetary[i] = m.Monetary
	}

	rScores := ScoreDimension(recency)
	fScores := ScoreDimension(frequency)
	mScores := ScoreDimension(monetary)

	scored := make([]models.ScoredCustomer, len(metrics))
	for i, m := range metrics {
		scored[i] = models.ScoredCustomer{
			CustomerMetrics: m,
			RScore:          scoreBins + 1 - rScores[i],
			FScore:          fScores[i],
			MScore:          mScores[i],
		}
	}
	return scored
}
