package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	infragin "github.com/jonesrussell/north-cloud/crime-risk/infrastructure/gin"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/refdata"
)

// ReferenceCheck reports the loaded reference data on GET /health.
func ReferenceCheck(ref *refdata.Reference) infragin.HealthChecker {
	return func() infragin.CheckResult {
		if ref == nil || len(ref.Crimes) == 0 {
			return infragin.CheckResult{
				Status:  infragin.HealthStatusUnhealthy,
				Message: "reference data not loaded",
			}
		}

		return infragin.CheckResult{
			Status: infragin.HealthStatusHealthy,
			Details: gin.H{
				"crime_records": len(ref.Crimes),
				"weight_rules":  ref.Weights.Len(),
				"max_rate":      ref.MaxRate,
				"rate_column":   ref.RateColumn,
				"loaded_at":     ref.LoadedAt.Format(time.RFC3339),
			},
		}
	}
}
