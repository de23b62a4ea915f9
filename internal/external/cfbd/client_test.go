package cfbd

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/portalwatch/backend/pkg/config"
	"github.com/portalwatch/backend/pkg/httputil"
	"github.com/portalwatch/backend/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		HTTPTimeout: 5 * time.Second,
		CFBD: config.CFBDConfig{
			BaseURL: srv.URL,
			APIKey:  "test-key",
		},
	}
	var buf bytes.Buffer
	log := logger.NewWriter(&buf)
	httpClient := httputil.New(cfg, log).DisableRetry()

	return NewClient(cfg, httpClient, log), srv
}

func TestPlayerUsage(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name": "Marcus Webb", "team": "Akron", "usage": {"overall": 0.38, "pass": 0.41}},
			{"name": "DeShawn Cole", "team": "Akron", "snaps": "512"}
		]`))
	})

	records, err := c.PlayerUsage(context.Background(), 2025, "Akron")
	if err != nil {
		t.Fatalf("PlayerUsage() failed: %v", err)
	}

	if gotPath != "/player/usage" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotQuery != "team=Akron&year=2025" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if v, ok := records[0].Float("usage.overall"); !ok || v != 0.38 {
		t.Errorf("nested usage probe = %v, %v", v, ok)
	}
	if v, ok := records[1].Float("snaps"); !ok || v != 512 {
		t.Errorf("string snaps probe = %v, %v", v, ok)
	}
}

func TestSearchPlayers(t *testing.T) {
	var gotQuery string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`[{"name": "Marcus Webb", "team": "Akron"}]`))
	})

	records, err := c.SearchPlayers(context.Background(), 2025, "Marcus Webb")
	if err != nil {
		t.Fatalf("SearchPlayers() failed: %v", err)
	}
	if gotQuery != "searchTerm=Marcus+Webb&year=2025" {
		t.Errorf("query = %q", gotQuery)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if team, _ := records[0].Str("team"); team != "Akron" {
		t.Errorf("team = %q", team)
	}
}

func TestGetRejectsNon200(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	if _, err := c.TeamRecords(context.Background(), 2025, "Akron"); err == nil {
		t.Error("TeamRecords() should fail on 403")
	}
}

func TestGetRejectsMalformedJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not": "an array"}`))
	})

	if _, err := c.TeamRoster(context.Background(), 2025, "Akron"); err == nil {
		t.Error("TeamRoster() should fail on non-array payload")
	}
}
