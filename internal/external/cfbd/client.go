package cfbd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/portalwatch/backend/internal/contracts"
	"github.com/portalwatch/backend/pkg/config"
	"github.com/portalwatch/backend/pkg/httputil"
	"github.com/portalwatch/backend/pkg/logger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client queries a CollegeFootballData-style statistics API. Responses
// are decoded into loosely-typed records on purpose: the upstream
// schema drifts, and the probing layer above tolerates that.
type Client struct {
	httpClient *httputil.Client
	logger     *logger.Logger
	baseURL    string
	apiKey     string
}

// Compile-time check that the client satisfies the source contract.
var _ contracts.StatsSource = (*Client)(nil)

// NewClient creates a stats API client from config.
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		httpClient: httpClient,
		logger:     log,
		baseURL:    cfg.CFBD.BaseURL,
		apiKey:     cfg.CFBD.APIKey,
	}
}

// SearchPlayers returns candidate (name, team) records for a name query.
func (c *Client) SearchPlayers(ctx context.Context, year int, name string) ([]contracts.Record, error) {
	params := url.Values{}
	params.Set("searchTerm", name)
	if year > 0 {
		params.Set("year", strconv.Itoa(year))
	}
	return c.get(ctx, "/player/search", params)
}

// PlayerUsage returns per-player usage records for a team season.
func (c *Client) PlayerUsage(ctx context.Context, year int, team string) ([]contracts.Record, error) {
	return c.get(ctx, "/player/usage", teamParams(year, team))
}

// TeamRoster returns the team roster for a season.
func (c *Client) TeamRoster(ctx context.Context, year int, team string) ([]contracts.Record, error) {
	return c.get(ctx, "/roster", teamParams(year, team))
}

// TeamRecruits returns recruiting records for a team's signing class.
func (c *Client) TeamRecruits(ctx context.Context, year int, team string) ([]contracts.Record, error) {
	return c.get(ctx, "/recruiting/players", teamParams(year, team))
}

// TeamRecords returns season win/loss records for a team season.
func (c *Client) TeamRecords(ctx context.Context, year int, team string) ([]contracts.Record, error) {
	return c.get(ctx, "/records", teamParams(year, team))
}

func teamParams(year int, team string) url.Values {
	params := url.Values{}
	params.Set("year", strconv.Itoa(year))
	params.Set("team", team)
	return params
}

// get performs an authenticated GET and decodes the JSON array of
// objects into records.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]contracts.Record, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL = fmt.Sprintf("%s?%s", fullURL, params.Encode())
	}

	headers := map[string]string{"Accept": "application/json"}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	resp, err := c.httpClient.Get(ctx, fullURL, headers)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode %s response: %w", path, err)
	}

	records := make([]contracts.Record, len(rows))
	for i, row := range rows {
		records[i] = contracts.Record(row)
	}

	c.logger.WithFields(map[string]interface{}{
		"path":  path,
		"count": len(records),
	}).Debug("Fetched records")

	return records, nil
}
