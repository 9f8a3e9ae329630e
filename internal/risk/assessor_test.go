package risk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/north-cloud/crime-risk/internal/domain"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/precaution"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/risk"
)

func newAssessor() *risk.Assessor {
	crimes := []domain.CrimeRecord{
		{City: "Delhi", CrimeType: "theft", RatePerLakh: 40},
		{City: "Delhi", CrimeType: "theft", RatePerLakh: 99},
		{City: "Mumbai", CrimeType: "robbery", RatePerLakh: 100},
		{City: "Pune", CrimeType: "arson", RatePerLakh: 5},
	}
	weights := risk.NewWeights([]domain.WeightRule{
		{Factor: "gender", Condition: "male", Weight: 1.0},
		{Factor: "gender", Condition: "female", Weight: 1.5},
		{Factor: "fatal", Condition: "non-fatal", Weight: 0.8},
		{Factor: "case", Condition: "pending", Weight: 1.2},
	})
	return risk.NewAssessor(crimes, weights, 100, precaution.Default())
}

func TestAssess_DelhiTheft(t *testing.T) {
	t.Parallel()

	got, err := newAssessor().Assess(domain.RiskQuery{
		City: "Delhi", Crime: "theft", Gender: "male", FatalStatus: "non-fatal", CaseStatus: "pending",
	})
	require.NoError(t, err)

	assert.Equal(t, "Delhi", got.City)
	assert.Equal(t, "theft", got.Crime)
	assert.InDelta(t, 38.4, got.ExposureRiskPercent, 1e-9)
	assert.Equal(t, domain.RiskModerate, got.RiskLevel)
	assert.Equal(t, precaution.Default().Lookup("theft"), got.Precautions)
	assert.Equal(t, domain.Disclaimer, got.Disclaimer)
}

func TestAssess_CaseInsensitiveKeysEchoInput(t *testing.T) {
	t.Parallel()

	a := newAssessor()
	q := domain.RiskQuery{City: "dElHi", Crime: "THEFT", Gender: "MALE", FatalStatus: "non-fatal", CaseStatus: "pending"}

	got, err := a.Assess(q)
	require.NoError(t, err)
	assert.Equal(t, "dElHi", got.City)
	assert.Equal(t, "THEFT", got.Crime)
	assert.InDelta(t, 38.4, got.ExposureRiskPercent, 1e-9, "gender is lowercased before lookup")
	assert.Len(t, got.Precautions, 3)
}

func TestAssess_UnmatchedWeightsAreNeutral(t *testing.T) {
	t.Parallel()

	got, err := newAssessor().Assess(domain.RiskQuery{
		City: "Delhi", Crime: "theft", Gender: "unspecified", FatalStatus: "Non-Fatal", CaseStatus: "closed",
	})
	require.NoError(t, err)
	assert.InDelta(t, 40.0, got.ExposureRiskPercent, 1e-9)
}

func TestAssess_ClampsToHundred(t *testing.T) {
	t.Parallel()

	got, err := newAssessor().Assess(domain.RiskQuery{
		City: "Mumbai", Crime: "robbery", Gender: "female", FatalStatus: "x", CaseStatus: "pending",
	})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, got.ExposureRiskPercent, 1e-9)
	assert.Equal(t, domain.RiskVeryHigh, got.RiskLevel)
}

func TestAssess_UnknownCrimeTypeHasEmptyPrecautions(t *testing.T) {
	t.Parallel()

	got, err := newAssessor().Assess(domain.RiskQuery{City: "Pune", Crime: "arson", Gender: "male"})
	require.NoError(t, err)
	require.NotNil(t, got.Precautions)
	assert.Empty(t, got.Precautions)
	assert.Equal(t, domain.RiskLow, got.RiskLevel)
}

func TestAssess_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newAssessor().Assess(domain.RiskQuery{City: "Atlantis", Crime: "theft"})
	if !errors.Is(err, risk.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAssess_Idempotent(t *testing.T) {
	t.Parallel()

	a := newAssessor()
	q := domain.RiskQuery{City: "Delhi", Crime: "theft", Gender: "female", FatalStatus: "non-fatal", CaseStatus: "pending"}

	first, err := a.Assess(q)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, againErr := a.Assess(q)
		require.NoError(t, againErr)
		assert.Equal(t, first, again)
	}
}
