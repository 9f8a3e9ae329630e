package domain

// RiskLevel is the qualitative band of an exposure percentage.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskModerate RiskLevel = "Moderate"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
)

// Rank orders levels from 1 (Low) to 4 (Very High); unknown levels rank 0.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLow:
		return 1
	case RiskModerate:
		return 2
	case RiskHigh:
		return 3
	case RiskVeryHigh:
		return 4
	default:
		return 0
	}
}

func (l RiskLevel) String() string {
	return string(l)
}
