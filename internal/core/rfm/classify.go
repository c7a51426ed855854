package rfm

import "github.com/example/shopsight/internal/models"

// rule pairs a predicate over the score triple with the segment it assigns.
type rule struct {
	match   func(r, f, m int) bool
	segment models.Segment
}

// rules is evaluated top to bottom with first-match-wins semantics. The
// predicates overlap, so the ordering itself defines correctness: a (4,2,4)
// customer is a Potential Loyalist, never a New Customer, because rule 3 is
// checked before rule 7. Do not reorder.
var rules = []rule{
	{func(r, f, m int) bool { return r >= 4 && f >= 4 && m >= 4 }, models.SegmentChampions},
	{func(r, f, m int) bool { return r >= 3 && f >= 3 && m >= 3 }, models.SegmentLoyalCustomers},
	{func(r, f, m int) bool { return r >= 4 && f >= 2 && m >= 2 }, models.SegmentPotentialLoyalists},
	{func(r, f, m int) bool { return r <= 2 && f >= 3 }, models.SegmentAtRisk},
	{func(r, f, m int) bool { return r <= 2 && m >= 4 }, models.SegmentCantLoseThem},
	{func(r, f, m int) bool { return r <= 2 && f <= 2 }, models.SegmentHibernating},
	{func(r, f, m int) bool { return r >= 4 && f <= 2 }, models.SegmentNewCustomers},
}

// ClassifySegment assigns exactly one segment from a score triple. Pure and
// stateless: identical triples always yield the same segment.
func ClassifySegment(r, f, m int) models.Segment {
	for _, ru := range rules {
		if ru.match(r, f, m) {
			return ru.segment
		}
	}
	return models.SegmentRegular
}

// Classify fills the Segment field of every scored customer in place of a
// fresh slice; the input is not mutated.
func Classify(scored []models.ScoredCustomer) []models.ScoredCustomer {
	out := make([]models.ScoredCustomer, len(scored))
	for i, c := range scored {
		c.Segment = ClassifySegment(c.RScore, c.FScore, c.MScore)
		out[i] = c
	}
	return out
}
