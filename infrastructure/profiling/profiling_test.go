package profiling_test

import (
	"testing"

	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/profiling"
)

func TestStartPyroscope_DisabledReturnsNil(t *testing.T) {
	t.Setenv("ENABLE_CONTINUOUS_PROFILING", "")

	p, err := profiling.StartPyroscope("crime-risk", logger.NewNop())
	if err != nil {
		t.Fatalf("StartPyroscope() error = %v", err)
	}
	if p != nil {
		t.Fatalf("StartPyroscope() = %v, want nil when disabled", p)
	}
	if stopErr := p.Stop(); stopErr != nil {
		t.Errorf("Stop() on nil profiler = %v, want nil", stopErr)
	}
}

func TestStartPprofServer_DisabledIsNoop(t *testing.T) {
	t.Setenv("ENABLE_PROFILING", "false")

	profiling.StartPprofServer(logger.NewNop())
}
