package risk

import (
	"errors"
	"strings"

	"github.com/jonesrussell/north-cloud/crime-risk/internal/domain"
)

// ErrNotFound means no crime record matches the queried city and crime type.
var ErrNotFound = errors.New("city or crime type not found")

// PrecautionLookup returns advisories for a lowercase crime type.
type PrecautionLookup interface {
	Lookup(crimeType string) []string
}

// Assessor answers risk queries against loaded reference data. It is safe for
// concurrent use because nothing it holds is mutated after construction.
type Assessor struct {
	crimes      []domain.CrimeRecord
	weights     Weights
	maxRate     float64
	precautions PrecautionLookup
}

// NewAssessor builds an assessor. maxRate must be positive.
func NewAssessor(crimes []domain.CrimeRecord, weights Weights, maxRate float64, precautions PrecautionLookup) *Assessor {
	copied := make([]domain.CrimeRecord, len(crimes))
	copy(copied, crimes)
	return &Assessor{
		crimes:      copied,
		weights:     weights,
		maxRate:     maxRate,
		precautions: precautions,
	}
}

// Assess computes the exposure risk for q. Only the first record for a city
// and crime type is used.
func (a *Assessor) Assess(q domain.RiskQuery) (domain.RiskResult, error) {
	record, ok := a.find(q.City, q.Crime)
	if !ok {
		return domain.RiskResult{}, ErrNotFound
	}

	weights := [3]float64{
		a.weights.Resolve(FactorGender, strings.ToLower(q.Gender)),
		a.weights.Resolve(FactorFatal, q.FatalStatus),
		a.weights.Resolve(FactorCase, q.CaseStatus),
	}

	percent := ComputeRisk(record.RatePerLakh, a.maxRate, weights)

	precautions := []string{}
	if a.precautions != nil {
		if p := a.precautions.Lookup(strings.ToLower(q.Crime)); p != nil {
			precautions = p
		}
	}

	return domain.RiskResult{
		City:                q.City,
		Crime:               q.Crime,
		ExposureRiskPercent: percent,
		RiskLevel:           ClassifyRisk(percent),
		Precautions:         precautions,
		Disclaimer:          domain.Disclaimer,
	}, nil
}

func (a *Assessor) find(city, crime string) (domain.CrimeRecord, bool) {
	for _, r := range a.crimes {
		if strings.EqualFold(r.City, city) && strings.EqualFold(r.CrimeType, crime) {
			return r, true
		}
	}
	return domain.CrimeRecord{}, false
}
