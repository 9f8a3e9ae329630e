package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/jonesrussell/north-cloud/crime-risk/internal/domain"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/metrics"
)

func TestObserveAssessment(t *testing.T) {
	t.Parallel()

	m := metrics.New(prometheus.NewRegistry())
	m.ObserveAssessment(domain.RiskResult{ExposureRiskPercent: 38.4, RiskLevel: domain.RiskModerate})
	m.ObserveAssessment(domain.RiskResult{ExposureRiskPercent: 12, RiskLevel: domain.RiskLow})
	m.ObserveFailure(metrics.OutcomeNotFound)

	if got := testutil.ToFloat64(m.AssessmentsTotal.WithLabelValues(metrics.OutcomeSuccess, "Moderate")); got != 1 {
		t.Errorf("moderate successes = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.AssessmentsTotal.WithLabelValues(metrics.OutcomeNotFound, metrics.LevelNone)); got != 1 {
		t.Errorf("not found = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.ExposurePercent); got != 1 {
		t.Errorf("histogram series = %d, want 1", got)
	}
}

func TestSetReference(t *testing.T) {
	t.Parallel()

	m := metrics.New(prometheus.NewRegistry())
	m.SetReference(12, 7, 250.5, time.Unix(1700000000, 0))

	if got := testutil.ToFloat64(m.ReferenceRecords.WithLabelValues("crime_rates")); got != 12 {
		t.Errorf("crime_rates = %v, want 12", got)
	}
	if got := testutil.ToFloat64(m.ReferenceRecords.WithLabelValues("risk_weights")); got != 7 {
		t.Errorf("risk_weights = %v, want 7", got)
	}
	if got := testutil.ToFloat64(m.ReferenceMaxRate); got != 250.5 {
		t.Errorf("max rate = %v, want 250.5", got)
	}
	if got := testutil.ToFloat64(m.ReferenceLoaded); got != 1700000000 {
		t.Errorf("loaded = %v", got)
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveFailure(metrics.OutcomeInvalid)

	w := httptest.NewRecorder()
	metrics.Handler(reg).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `crime_risk_assessments_total{level="none",outcome="invalid"} 1`) {
		t.Fatalf("exposition missing counter:\n%s", w.Body.String())
	}
}
