package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	infragin "github.com/jonesrussell/north-cloud/crime-risk/infrastructure/gin"
	infralogger "github.com/jonesrussell/north-cloud/crime-risk/infrastructure/logger"
	inframetrics "github.com/jonesrussell/north-cloud/crime-risk/infrastructure/metrics"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/config"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/handler"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/metrics"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/refdata"
)

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)

// NewServer creates a new HTTP server.
func NewServer(
	riskHandler *handler.RiskHandler,
	ref *refdata.Reference,
	registry *prometheus.Registry,
	cfg *config.Config,
	log infralogger.Logger,
) *infragin.Server {
	return infragin.NewServerBuilder(cfg.Service.Name, cfg.Service.Port).
		WithLogger(log).
		WithDebug(cfg.Service.Debug).
		WithVersion(cfg.Service.Version).
		WithTimeouts(defaultReadTimeout, defaultWriteTimeout, defaultIdleTimeout).
		WithMiddleware(inframetrics.NewHTTPMetrics(registry, metrics.Namespace).Middleware()).
		WithHealthCheck("reference_data", handler.ReferenceCheck(ref)).
		WithRoutes(func(router *gin.Engine) {
			SetupRoutes(router, riskHandler, metrics.Handler(registry))
		}).
		Build()
}
