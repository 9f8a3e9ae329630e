package main

import (
	"context"
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	infraconfig "github.com/jonesrussell/north-cloud/crime-risk/infrastructure/config"
	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/profiling"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/api"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/config"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/handler"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/metrics"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/precaution"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/refdata"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/risk"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load configuration
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	// Initialize logger
	log, err := createLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	// Start profiling (if enabled)
	profiling.StartPprofServer(log)
	profiler, err := profiling.StartPyroscope(cfg.Service.Name, log)
	if err != nil {
		log.Warn("Continuous profiling unavailable", logger.Error(err))
	}
	defer func() { _ = profiler.Stop() }()

	// Load reference data once; the server never starts without it
	ref, err := loadReference(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to load reference data", logger.Error(err))
		return 1
	}

	return runServer(cfg, log, ref)
}

// loadConfig loads and validates configuration.
func loadConfig() (*config.Config, error) {
	configPath := infraconfig.GetConfigPath("config.yml")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// createLogger creates a logger instance from configuration.
func createLogger(cfg *config.Config) (logger.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(logger.String("service", cfg.Service.Name)), nil
}

// runServer wires the assessor into the HTTP server and serves until shutdown.
func runServer(cfg *config.Config, log logger.Logger, ref *refdata.Reference) int {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)
	m.SetReference(len(ref.Crimes), ref.Weights.Len(), ref.MaxRate, ref.LoadedAt)

	assessor := risk.NewAssessor(ref.Crimes, ref.Weights, ref.MaxRate, precaution.Default())
	riskHandler := handler.NewRiskHandler(assessor, m, log)

	server := api.NewServer(riskHandler, ref, registry, cfg, log)

	log.Info("Crime-risk starting",
		logger.Int("port", cfg.Service.Port),
		logger.String("data_source", cfg.Data.Source),
	)

	if err := server.Run(); err != nil {
		log.Error("Server error", logger.Error(err))
		return 1
	}

	log.Info("Crime-risk exited cleanly")
	return 0
}
