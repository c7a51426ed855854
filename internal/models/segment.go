package models

// Segment is one of the fixed behavioral labels a customer can carry.
// The set is closed: the classifier can only produce the values below,
// with SegmentRegular as the catch-all.
type Segment string

const (
	SegmentChampions          Segment = "Champions"
	SegmentLoyalCustomers     Segment = "Loyal Customers"
	SegmentPotentialLoyalists Segment = "Potential Loyalists"
	SegmentAtRisk             Segment = "At Risk"
	SegmentCantLoseThem       Segment = "Can't Lose Them"
	SegmentHibernating        Segment = "Hibernating"
	SegmentNewCustomers       Segment = "New Customers"
	SegmentRegular            Segment = "Regular"
)

// AllSegments lists every segment in its canonical order. Aggregation uses
// this order for stable tie-breaking, so it must not be reordered casually.
var AllSegments = []Segment{
	SegmentChampions,
	SegmentLoyalCustomers,
	SegmentPotentialLoyalists,
	SegmentAtRisk,
	SegmentCantLoseThem,
	SegmentHibernating,
	SegmentNewCustomers,
	SegmentRegular,
}
