// Package profiling starts optional pprof and Pyroscope profilers.
package profiling

import (
	"errors"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // registered on a localhost-only listener
	"os"
	"time"

	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/logger"
)

const pprofReadHeaderTimeout = 5 * time.Second

// StartPprofServer serves the net/http/pprof endpoints on localhost when
// ENABLE_PROFILING=true. PPROF_PORT selects the port (default 6060).
func StartPprofServer(log logger.Logger) {
	if os.Getenv("ENABLE_PROFILING") != "true" {
		return
	}

	port := os.Getenv("PPROF_PORT")
	if port == "" {
		port = "6060"
	}
	addr := "localhost:" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           http.DefaultServeMux,
		ReadHeaderTimeout: pprofReadHeaderTimeout,
	}

	go func() {
		log.Info("Starting pprof server", logger.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("pprof server error", logger.Error(err))
		}
	}()
}
