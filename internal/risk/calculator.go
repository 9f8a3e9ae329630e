// Package risk turns reference data and a query into an exposure estimate.
package risk

import (
	"math"
	"strconv"

	"github.com/jonesrussell/north-cloud/crime-risk/internal/domain"
)

// Band upper bounds, inclusive.
const (
	lowUpperBound      = 20.0
	moderateUpperBound = 50.0
	highUpperBound     = 80.0
)

const (
	maxPercent = 100.0
	minPercent = 0.0
)

// ComputeRisk scales baseRate against maxRate, applies every weight, clamps to
// [0, 100] and rounds to two decimals. Exact ties round to the even digit.
func ComputeRisk(baseRate, maxRate float64, weights [3]float64) float64 {
	percent := baseRate / maxRate * maxPercent
	for _, w := range weights {
		percent *= w
	}

	if math.IsNaN(percent) {
		percent = minPercent
	}
	percent = math.Max(minPercent, math.Min(percent, maxPercent))

	return roundTo2(percent)
}

// roundTo2 rounds the exact binary value of v, so 0.125 becomes 0.12 and
// 0.135 (stored as 0.13500000000000000888) becomes 0.14.
func roundTo2(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// ClassifyRisk maps a percentage onto a risk band.
func ClassifyRisk(percent float64) domain.RiskLevel {
	switch {
	case percent <= lowUpperBound:
		return domain.RiskLow
	case percent <= moderateUpperBound:
		return domain.RiskModerate
	case percent <= highUpperBound:
		return domain.RiskHigh
	default:
		return domain.RiskVeryHigh
	}
}
