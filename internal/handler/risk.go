package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	infralogger "github.com/jonesrussell/north-cloud/crime-risk/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/domain"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/metrics"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/risk"
)

const (
	errInvalidRequest = "invalid request"
	errNotFound       = "City or crime type not found"
)

// Assessor computes a risk result for a query.
type Assessor interface {
	Assess(q domain.RiskQuery) (domain.RiskResult, error)
}

// CalculateRequest is the body of POST /calculate.
type CalculateRequest struct {
	City        string `binding:"required" json:"city"`
	Crime       string `binding:"required" json:"crime"`
	Gender      string `binding:"required" json:"gender"`
	FatalStatus string `binding:"required" json:"fatal_status"`
	CaseStatus  string `binding:"required" json:"case_status"`
}

// RiskHandler serves risk calculations.
type RiskHandler struct {
	assessor Assessor
	metrics  *metrics.Metrics
	logger   infralogger.Logger
}

// NewRiskHandler creates a RiskHandler.
func NewRiskHandler(assessor Assessor, m *metrics.Metrics, log infralogger.Logger) *RiskHandler {
	return &RiskHandler{
		assessor: assessor,
		metrics:  m,
		logger:   log,
	}
}

// Calculate handles POST /calculate.
func (h *RiskHandler) Calculate(c *gin.Context) {
	log := h.requestLogger(c)

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.metrics.ObserveFailure(metrics.OutcomeInvalid)
		body := gin.H{"error": errInvalidRequest}
		if missing := missingFields(err); len(missing) > 0 {
			body["missing_fields"] = missing
		}
		log.Debug("Rejected risk request", infralogger.Error(err))
		c.JSON(http.StatusBadRequest, body)
		return
	}

	result, err := h.assessor.Assess(domain.RiskQuery{
		City:        req.City,
		Crime:       req.Crime,
		Gender:      req.Gender,
		FatalStatus: req.FatalStatus,
		CaseStatus:  req.CaseStatus,
	})
	if errors.Is(err, risk.ErrNotFound) {
		h.metrics.ObserveFailure(metrics.OutcomeNotFound)
		log.Debug("No reference data for query",
			infralogger.String("city", req.City),
			infralogger.String("crime", req.Crime),
		)
		c.JSON(http.StatusNotFound, gin.H{"error": errNotFound})
		return
	}
	if err != nil {
		log.Error("Risk assessment failed", infralogger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.metrics.ObserveAssessment(result)
	log.Debug("Risk assessed",
		infralogger.String("city", result.City),
		infralogger.String("crime", result.Crime),
		infralogger.Float64("exposure_risk_percent", result.ExposureRiskPercent),
		infralogger.String("risk_level", result.RiskLevel.String()),
	)

	c.JSON(http.StatusOK, result)
}

// requestLogger prefers the request-scoped logger set by the middleware.
func (h *RiskHandler) requestLogger(c *gin.Context) infralogger.Logger {
	return infralogger.FromContextOr(c.Request.Context(), h.logger)
}

// missingFields lists the JSON names of fields that failed "required".
func missingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	reqType := reflect.TypeOf(CalculateRequest{})
	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() != "required" {
			continue
		}
		name := fe.Field()
		if f, ok := reqType.FieldByName(fe.StructField()); ok {
			if tag, _, _ := strings.Cut(f.Tag.Get("json"), ","); tag != "" {
				name = tag
			}
		}
		missing = append(missing, name)
	}
	return missing
}
