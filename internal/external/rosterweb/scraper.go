package rosterweb

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/portalwatch/backend/internal/contracts"
	"github.com/portalwatch/backend/pkg/config"
	"github.com/portalwatch/backend/pkg/httputil"
	"github.com/portalwatch/backend/pkg/logger"
)

// Scraper parses an athletics-site roster page into loose records,
// serving as the fallback roster source when the stats API has no
// roster for a team. Best effort only: rows it cannot parse are
// skipped.
type Scraper struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
}

var _ contracts.RosterFallback = (*Scraper)(nil)

// New creates a roster scraper from config.
func New(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Scraper {
	return &Scraper{
		httpClient: httpClient,
		logger:     log,
		baseURL:    strings.TrimRight(cfg.Roster.BaseURL, "/"),
	}
}

// TeamRoster fetches and parses the roster page for a team.
func (s *Scraper) TeamRoster(ctx context.Context, team string) ([]contracts.Record, error) {
	url := fmt.Sprintf("%s/%s/roster", s.baseURL, teamSlug(team))

	resp, err := s.httpClient.Get(ctx, url, map[string]string{
		"User-Agent": "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36",
	})
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse roster page: %w", err)
	}

	rows := s.parseRoster(doc)

	s.logger.WithFields(map[string]interface{}{
		"team":  team,
		"count": len(rows),
	}).Debug("Scraped fallback roster")

	return rows, nil
}

// parseRoster walks the roster table. Expected column order:
// name, position, hometown; extra columns are ignored.
func (s *Scraper) parseRoster(doc *goquery.Document) []contracts.Record {
	var rows []contracts.Record

	doc.Find("table tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}

		name := strings.TrimSpace(cells.Eq(0).Text())
		if name == "" {
			return
		}

		rec := contracts.Record{"name": name}
		if pos := strings.TrimSpace(cells.Eq(1).Text()); pos != "" {
			rec["position"] = pos
		}
		if cells.Length() >= 3 {
			if hometown := strings.TrimSpace(cells.Eq(2).Text()); hometown != "" {
				rec["hometown"] = hometown
			}
		}

		rows = append(rows, rec)
	})

	return rows
}

// teamSlug converts a team name to a URL path segment.
func teamSlug(team string) string {
	slug := strings.ToLower(strings.TrimSpace(team))
	slug = strings.ReplaceAll(slug, " ", "-")
	return slug
}
