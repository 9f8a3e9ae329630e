package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/north-cloud/crime-risk/internal/handler"
)

// SetupRoutes configures all API routes.
// Health routes are registered by the infrastructure gin builder.
func SetupRoutes(router *gin.Engine, riskHandler *handler.RiskHandler, metricsHandler http.Handler) {
	router.POST("/calculate", riskHandler.Calculate)
	router.GET("/metrics", gin.WrapH(metricsHandler))
}
