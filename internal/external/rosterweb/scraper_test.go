package rosterweb

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

const rosterHTML = `<!DOCTYPE html>
<html><body>
<table class="roster">
<thead><tr><th>Name</th><th>Pos</th><th>Hometown</th></tr></thead>
<tbody>
<tr><td>Marcus Webb</td><td>WR</td><td>Akron, OH</td></tr>
<tr><td>DeShawn Cole</td><td>RB</td><td></td></tr>
<tr><td></td><td>QB</td><td>Columbus, OH</td></tr>
<tr><td colspan="3">Coaching staff</td></tr>
</tbody>
</table>
</body></html>`

func newTestScraper(t *testing.T, handler http.HandlerFunc) (*Scraper, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		HTTPTimeout: 5 * time.Second,
		Roster: config.RosterConfig{
			Enabled: true,
			BaseURL: srv.URL,
		},
	}
	var buf bytes.Buffer
	log := logger.NewWriter(&buf)

	return New(cfg, httputil.New(cfg, log).DisableRetry(), log), srv
}

func TestTeamRoster(t *testing.T) {
	var gotPath string
	s, _ := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(rosterHTML))
	})

	rows, err := s.TeamRoster(context.Background(), "Ohio State")
	if err != nil {
		t.Fatalf("TeamRoster() failed: %v", err)
	}

	if gotPath != "/ohio-state/roster" {
		t.Errorf("path = %q, want /ohio-state/roster", gotPath)
	}

	// Nameless and single-cell rows are skipped.
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	if name, _ := rows[0].Str("name"); name != "Marcus Webb" {
		t.Errorf("row 0 name = %q", name)
	}
	if hometown, _ := rows[0].Str("hometown"); hometown != "Akron, OH" {
		t.Errorf("row 0 hometown = %q", hometown)
	}
	if _, ok := rows[1].Str("hometown"); ok {
		t.Error("row 1 should have no hometown")
	}
	if pos, _ := rows[1].Str("position"); pos != "RB" {
		t.Errorf("row 1 position = %q", pos)
	}
}

func TestTeamRosterRejectsNon200(t *testing.T) {
	s, _ := newTestScraper(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	if _, err := s.TeamRoster(context.Background(), "Akron"); err == nil {
		t.Error("TeamRoster() should fail on 404")
	}
}
