package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestManagerScrape(t *testing.T) {
	m := New()

	m.RecordEvaluation(120 * time.Millisecond)
	m.RecordSourceFailure("usage")
	m.RecordSourceFailure("usage")
	m.RecordHTTPRequest("/api/evaluate", "200")
	m.RecordResolutionFailure()

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	body := rec.Body.String()
	checks := []string{
		"portalwatch_evaluations_total 1",
		`portalwatch_source_failures_total{source="usage"} 2`,
		`portalwatch_http_requests_total{path="/api/evaluate",status="200"} 1`,
		"portalwatch_resolution_failures_total 1",
	}
	for _, want := range checks {
		if !strings.Contains(body, want) {
			t.Errorf("scrape output missing %q", want)
		}
	}
}
