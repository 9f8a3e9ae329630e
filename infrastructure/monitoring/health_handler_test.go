package monitoring_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonesrussell/north-cloud/crime-risk/infrastructure/monitoring"
)

func TestMemoryHealthHandler(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	monitoring.MemoryHealthHandler(w, httptest.NewRequest(http.MethodGet, "/health/memory", http.NoBody))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var body monitoring.MemoryHealth
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.NumGoroutine < 1 || body.GOMaxProcs < 1 {
		t.Errorf("implausible runtime stats: %+v", body)
	}
}
