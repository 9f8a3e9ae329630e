package risk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/north-cloud/crime-risk/internal/domain"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/risk"
)

func TestComputeRisk(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    float64
		max     float64
		weights [3]float64
		want    float64
	}{
		{"weighted", 40, 100, [3]float64{1.0, 0.8, 1.2}, 38.4},
		{"neutral", 25, 50, [3]float64{1, 1, 1}, 50},
		{"clamped to 100", 90, 100, [3]float64{1.5, 1.5, 1}, 100},
		{"max row", 100, 100, [3]float64{1, 1, 1}, 100},
		{"zero rate", 0, 100, [3]float64{2, 2, 2}, 0},
		{"negative weight clamps to 0", 10, 100, [3]float64{-1, 1, 1}, 0},
		{"rounded to two decimals", 1, 3, [3]float64{1, 1, 1}, 33.33},
		{"exact tie rounds to even", 1, 800, [3]float64{1, 1, 1}, 0.12},
		{"exact tie rounds up to even", 3, 800, [3]float64{1, 1, 1}, 0.38},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.InDelta(t, tt.want, risk.ComputeRisk(tt.base, tt.max, tt.weights), 1e-9)
		})
	}
}

func TestComputeRisk_AlwaysInRange(t *testing.T) {
	t.Parallel()

	weights := []float64{0, 0.5, 0.8, 1, 1.2, 1.5, 3}
	for base := 0.0; base <= 200; base += 12.5 {
		for _, a := range weights {
			for _, b := range weights {
				for _, c := range weights {
					p := risk.ComputeRisk(base, 200, [3]float64{a, b, c})
					if p < 0 || p > 100 {
						t.Fatalf("ComputeRisk(%v, 200, %v %v %v) = %v out of range", base, a, b, c, p)
					}
				}
			}
		}
	}
}

func TestClassifyRisk_Boundaries(t *testing.T) {
	t.Parallel()

	tests := []struct {
		percent float64
		want    domain.RiskLevel
	}{
		{0, domain.RiskLow},
		{20, domain.RiskLow},
		{20.01, domain.RiskModerate},
		{50, domain.RiskModerate},
		{50.01, domain.RiskHigh},
		{80, domain.RiskHigh},
		{80.01, domain.RiskVeryHigh},
		{100, domain.RiskVeryHigh},
	}

	for _, tt := range tests {
		if got := risk.ClassifyRisk(tt.percent); got != tt.want {
			t.Errorf("ClassifyRisk(%v) = %q, want %q", tt.percent, got, tt.want)
		}
	}
}

func TestClassifyRisk_Monotonic(t *testing.T) {
	t.Parallel()

	prev := risk.ClassifyRisk(0).Rank()
	for p := 0.0; p <= 100; p += 0.01 {
		rank := risk.ClassifyRisk(p).Rank()
		if rank < prev {
			t.Fatalf("rank decreased at %v: %d < %d", p, rank, prev)
		}
		prev = rank
	}
}
