package rfm

import (
	"testing"

	"github.com/example/shopsight/internal/models"
)

func TestClassifySegment(t *testing.T) {
	tests := []struct {
		name    string
		r, f, m int
		want    models.Segment
	}{
		{"champions", 5, 5, 5, models.SegmentChampions},
		{"champions lower bound", 4, 4, 4, models.SegmentChampions},
		{"loyal customers", 3, 3, 3, models.SegmentLoyalCustomers},
		{"loyal beats potential when all three mid-high", 3, 5, 5, models.SegmentLoyalCustomers},
		{"potential loyalists", 4, 2, 2, models.SegmentPotentialLoyalists},
		{"at risk", 2, 3, 1, models.SegmentAtRisk},
		{"at risk beats cant-lose on frequency", 1, 5, 5, models.SegmentAtRisk},
		{"cant lose them", 2, 1, 4, models.SegmentCantLoseThem},
		{"hibernating", 1, 1, 1, models.SegmentHibernating},
		{"new customers", 5, 1, 1, models.SegmentNewCustomers},
		{"regular catch-all", 3, 2, 2, models.SegmentRegular},
		{"regular mid scores", 3, 2, 5, models.SegmentRegular},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySegment(tt.r, tt.f, tt.m); got != tt.want {
				t.Errorf("ClassifySegment(%d,%d,%d) = %q, want %q", tt.r, tt.f, tt.m, got, tt.want)
			}
		})
	}
}

func TestClassifySegment_FirstMatchWins(t *testing.T) {
	// (4,2,4) satisfies both the Potential Loyalists and New Customers
	// predicates; the earlier rule must win.
	if got := ClassifySegment(4, 2, 4); got != models.SegmentPotentialLoyalists {
		t.Errorf("ClassifySegment(4,2,4) = %q, want %q", got, models.SegmentPotentialLoyalists)
	}
}

func TestClassifySegment_Exhaustive(t *testing.T) {
	// Every triple in the score space gets exactly one of the eight defined
	// segments, and classification is a pure function of the triple.
	valid := make(map[models.Segment]bool, len(models.AllSegments))
	for _, s := range models.AllSegments {
		valid[s] = true
	}
	for r := 1; r <= 5; r++ {
		for f := 1; f <= 5; f++ {
			for m := 1; m <= 5; m++ {
				first := ClassifySegment(r, f, m)
				if !valid[first] {
					t.Fatalf("ClassifySegment(%d,%d,%d) = %q, not a defined segment", r, f, m, first)
				}
				if again := ClassifySegment(r, f, m); again != first {
					t.Fatalf("ClassifySegment(%d,%d,%d) not deterministic: %q then %q", r, f, m, first, again)
				}
			}
		}
	}
}
