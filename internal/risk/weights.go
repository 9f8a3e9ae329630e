package risk

import "github.com/jonesrussell/north-cloud/crime-risk/internal/domain"

// NeutralWeight is applied when no rule matches a factor and condition.
const NeutralWeight = 1.0

// Weight factors used by the assessor.
const (
	FactorGender = "gender"
	FactorFatal  = "fatal"
	FactorCase   = "case"
)

// Weights is an ordered set of weighting rules. Order matters: the first
// matching rule wins.
type Weights struct {
	rules []domain.WeightRule
}

// NewWeights copies rules so later changes to the slice are not observed.
func NewWeights(rules []domain.WeightRule) Weights {
	copied := make([]domain.WeightRule, len(rules))
	copy(copied, rules)
	return Weights{rules: copied}
}

// Lookup returns the weight of the first rule whose factor and condition equal
// the arguments exactly.
func (w Weights) Lookup(factor, condition string) (float64, bool) {
	for _, r := range w.rules {
		if r.Factor == factor && r.Condition == condition {
			return r.Weight, true
		}
	}
	return 0, false
}

// Resolve is Lookup with NeutralWeight on a miss.
func (w Weights) Resolve(factor, condition string) float64 {
	if v, ok := w.Lookup(factor, condition); ok {
		return v
	}
	return NeutralWeight
}

// Len reports the number of rules.
func (w Weights) Len() int {
	return len(w.rules)
}
