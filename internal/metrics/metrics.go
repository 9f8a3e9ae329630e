// Package metrics defines the Prometheus collectors of the crime-risk service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonesrussell/north-cloud/crime-risk/internal/domain"
)

// Namespace prefixes every crime-risk metric.
const Namespace = "crime_risk"

// Assessment outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
)

// LevelNone labels assessments that produced no risk level.
const LevelNone = "none"

// Metrics holds the service collectors.
type Metrics struct {
	AssessmentsTotal *prometheus.CounterVec
	ExposurePercent  prometheus.Histogram
	ReferenceRecords *prometheus.GaugeVec
	ReferenceMaxRate prometheus.Gauge
	ReferenceLoaded  prometheus.Gauge
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		AssessmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "assessments_total",
			Help:      "Risk assessment requests by outcome and risk level",
		}, []string{"outcome", "level"}),

		ExposurePercent: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "exposure_percent",
			Help:      "Distribution of computed exposure risk percentages",
			Buckets:   []float64{5, 10, 20, 30, 40, 50, 65, 80, 90, 100},
		}),

		ReferenceRecords: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "reference_records",
			Help:      "Rows loaded per reference table",
		}, []string{"table"}),

		ReferenceMaxRate: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "reference_max_rate",
			Help:      "Largest crime rate per lakh in the loaded reference data",
		}),

		ReferenceLoaded: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "reference_loaded_timestamp_seconds",
			Help:      "Unix time the reference data was loaded",
		}),
	}
}

// ObserveAssessment records a successful assessment.
func (m *Metrics) ObserveAssessment(result domain.RiskResult) {
	m.AssessmentsTotal.WithLabelValues(OutcomeSuccess, string(result.RiskLevel)).Inc()
	m.ExposurePercent.Observe(result.ExposureRiskPercent)
}

// ObserveFailure records a rejected request under LevelNone.
func (m *Metrics) ObserveFailure(outcome string) {
	m.AssessmentsTotal.WithLabelValues(outcome, LevelNone).Inc()
}

// SetReference publishes the shape of the loaded reference data.
func (m *Metrics) SetReference(crimes, weights int, maxRate float64, loadedAt time.Time) {
	m.ReferenceRecords.WithLabelValues("crime_rates").Set(float64(crimes))
	m.ReferenceRecords.WithLabelValues("risk_weights").Set(float64(weights))
	m.ReferenceMaxRate.Set(maxRate)
	m.ReferenceLoaded.Set(float64(loadedAt.Unix()))
}

// Handler exposes the collectors of g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
