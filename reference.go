package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/retry"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/config"
	"github.com/jonesrussell/north-cloud/crime-risk/internal/refdata"
)

const (
	dbPingTimeout    = 5 * time.Second
	dbConnectRetries = 5
	dbInitialBackoff = 500 * time.Millisecond
)

// loadReference reads both reference tables from the configured source.
func loadReference(ctx context.Context, cfg *config.Config, log logger.Logger) (*refdata.Reference, error) {
	opts := refdata.Options{
		RateColumn: cfg.Data.RateColumn,
		RateMarker: cfg.Data.Marker(),
	}

	if cfg.Data.Source == config.SourcePostgres {
		db, err := connectDatabase(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		defer func() { _ = db.Close() }()

		loader := refdata.NewLoader(
			&refdata.SQLSource{DB: db, Table: cfg.Data.CrimeRatesTable, OrderBy: cfg.Data.OrderColumn},
			&refdata.SQLSource{DB: db, Table: cfg.Data.WeightsTable, OrderBy: cfg.Data.OrderColumn},
			opts, log,
		)
		return loader.Load(ctx)
	}

	crimes, err := refdata.FileSource(cfg.Data.CrimeRates, cfg.Data.CrimeRatesSheet)
	if err != nil {
		return nil, err
	}
	weights, err := refdata.FileSource(cfg.Data.Weights, cfg.Data.WeightsSheet)
	if err != nil {
		return nil, err
	}

	return refdata.NewLoader(crimes, weights, opts, log).Load(ctx)
}

// connectDatabase opens and verifies a database connection, retrying while
// the server is unreachable or still starting.
func connectDatabase(ctx context.Context, cfg *config.Config, log logger.Logger) (*sql.DB, error) {
	conn := cfg.Database.Connection()

	db, err := sql.Open("postgres", conn.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxAttempts = dbConnectRetries
	retryCfg.InitialDelay = dbInitialBackoff

	pingErr := retry.Retry(ctx, retryCfg, func() error {
		pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
		defer cancel()
		return db.PingContext(pingCtx)
	})
	if pingErr != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", pingErr)
	}

	log.Info("Database connected",
		logger.String("host", conn.Host),
		logger.Int("port", conn.Port),
		logger.String("database", conn.Database),
	)

	return db, nil
}
