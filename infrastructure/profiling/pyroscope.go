package profiling

import (
	"fmt"
	"os"
	"runtime"

	"github.com/grafana/pyroscope-go"

	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/logger"
)

// PyroscopeProfiler wraps a running Pyroscope profiler.
type PyroscopeProfiler struct {
	profiler *pyroscope.Profiler
}

// StartPyroscope starts continuous profiling when
// ENABLE_CONTINUOUS_PROFILING=true, reading PYROSCOPE_SERVER_URL
// (default http://pyroscope:4040), PYROSCOPE_ENVIRONMENT and APP_VERSION.
// It returns nil, nil when disabled.
func StartPyroscope(serviceName string, log logger.Logger) (*PyroscopeProfiler, error) {
	if os.Getenv("ENABLE_CONTINUOUS_PROFILING") != "true" {
		return nil, nil //nolint:nilnil // disabled is not an error
	}

	serverURL := envOr("PYROSCOPE_SERVER_URL", "http://pyroscope:4040")
	environment := envOr("PYROSCOPE_ENVIRONMENT", "development")

	cfg := pyroscope.Config{
		ApplicationName: "north-cloud." + serviceName,
		ServerAddress:   serverURL,
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
		},
		Tags: map[string]string{
			"environment": environment,
			"version":     envOr("APP_VERSION", "unknown"),
			"hostname":    hostname(),
			"go_version":  runtime.Version(),
		},
	}

	profiler, err := pyroscope.Start(cfg)
	if err != nil {
		return nil, fmt.Errorf("start pyroscope profiler: %w", err)
	}

	log.Info("Pyroscope continuous profiling started",
		logger.String("application", cfg.ApplicationName),
		logger.String("server", serverURL),
		logger.String("environment", environment),
	)
	return &PyroscopeProfiler{profiler: profiler}, nil
}

// Stop flushes and stops the profiler. It is safe on a nil receiver.
func (p *PyroscopeProfiler) Stop() error {
	if p == nil || p.profiler == nil {
		return nil
	}
	return p.profiler.Stop()
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func hostname() string {
	name, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return name
}
