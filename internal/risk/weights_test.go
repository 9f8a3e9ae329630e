package risk_test

import (
	"testing"

	"github.com/jonesrussell/north-cloud/crime-risk/internal/domain"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/risk"
)

func TestWeights_Resolve(t *testing.T) {
	t.Parallel()

	rules := []domain.WeightRule{
		{Factor: "gender", Condition: "female", Weight: 1.3},
		{Factor: "gender", Condition: "female", Weight: 9},
		{Factor: "case", Condition: "pending", Weight: 1.2},
	}
	w := risk.NewWeights(rules)
	rules[0].Weight = 0

	if got := w.Resolve("gender", "female"); got != 1.3 {
		t.Errorf("first matching rule should win and be isolated from input, got %v", got)
	}
	if got := w.Resolve("gender", "other"); got != risk.NeutralWeight {
		t.Errorf("absent pair = %v, want %v", got, risk.NeutralWeight)
	}
	if got := w.Resolve("case", "Pending"); got != risk.NeutralWeight {
		t.Errorf("conditions match exactly, got %v", got)
	}
	if _, ok := w.Lookup("fatal", "fatal"); ok {
		t.Error("Lookup reported a match for an absent factor")
	}
}

func TestWeights_Empty(t *testing.T) {
	t.Parallel()

	var w risk.Weights
	if got := w.Resolve("gender", "male"); got != 1.0 {
		t.Fatalf("empty weights Resolve = %v, want 1.0", got)
	}
}
