package signals

import (
	"context"
	"strings"
	"sync"

	"github.com/portalwatch/backend/internal/contracts"
	"github.com/portalwatch/backend/pkg/logger"
	"github.com/portalwatch/backend/pkg/metrics"
)

// Aggregator reconciles the external statistics sources into a single
// normalized signal record. Each aggregation call is independent and
// stateless; the record is built once and never mutated afterwards.
type Aggregator struct {
	source  contracts.StatsSource
	roster  contracts.RosterFallback
	metrics *metrics.Manager
	logger  *logger.Logger
}

// Request describes one aggregation: a season year plus a team and/or
// player name, with optional manual overrides.
type Request struct {
	Year      int
	Team      string
	Player    string
	Overrides Overrides
}

// Overrides are caller-supplied signal values. They are merged last and
// win unconditionally over anything derived from the sources.
type Overrides struct {
	PlayingTime           *float64
	DistanceFromHomeMiles *float64
	RecruitingRank        *float64
	TeamWinRate           *float64
	NILScore              *float64
	SnapsPlayed           *float64
	SocialSentiment       *float64
	Weights               contracts.Weights
}

// New creates an aggregator over a stats source.
func New(source contracts.StatsSource, log *logger.Logger) *Aggregator {
	return &Aggregator{
		source: source,
		logger: log,
	}
}

// WithRosterFallback adds a secondary roster source consulted when the
// primary roster read returns nothing.
func (a *Aggregator) WithRosterFallback(r contracts.RosterFallback) *Aggregator {
	a.roster = r
	return a
}

// WithMetrics enables instrumentation of degraded source fetches.
func (a *Aggregator) WithMetrics(m *metrics.Manager) *Aggregator {
	a.metrics = m
	return a
}

// Aggregate resolves the request into a signal record. Exactly two
// error kinds are fatal: InputError (no team and no player) and
// ResolutionError (player name could not be mapped to a team). Every
// individual source failure past that point degrades to an empty result
// so a best-effort record is always produced.
func (a *Aggregator) Aggregate(ctx context.Context, req Request) (*contracts.SignalRecord, error) {
	team := strings.TrimSpace(req.Team)
	player := strings.TrimSpace(req.Player)

	if team == "" && player == "" {
		return nil, &InputError{Reason: "either a team or a player name is required"}
	}

	displayName := player
	if team == "" {
		resolvedTeam, resolvedName, err := a.resolveTeam(ctx, req.Year, player)
		if err != nil {
			if a.metrics != nil {
				a.metrics.RecordResolutionFailure()
			}
			return nil, err
		}
		team = resolvedTeam
		if resolvedName != "" {
			displayName = resolvedName
		}
	}

	bySource := a.fetchSources(ctx, req.Year, team)

	rosterRows := bySource["roster"]
	if len(rosterRows) == 0 && a.roster != nil {
		rosterRows = a.fetchFallbackRoster(ctx, team)
	}

	usageSel := selectRecords(bySource["usage"], player)
	rosterSel := selectRecords(rosterRows, player)
	recruitSel := selectRecords(bySource["recruiting"], player)

	if displayName == "" {
		displayName = firstName(usageSel, rosterSel)
	}

	rec := &contracts.SignalRecord{
		Player: displayName,
		Team:   team,
		Year:   req.Year,
	}

	rec.PlayingTime = normalizeUsage(usageSel)
	rec.SnapsPlayed = sumSnaps(usageSel)
	rec.TeamWinRate = deriveWinRate(bySource["records"])
	rec.DistanceFromHomeMiles = estimateDistance(rosterSel)

	for _, recruit := range recruitSel {
		if rating, ok := recruit.Float(recruitRatingKeys...); ok {
			v := normalizeRecruitRating(rating)
			rec.RecruitingRank = &v
			break
		}
	}

	applyOverrides(rec, req.Overrides)

	a.logger.WithFields(map[string]interface{}{
		"player": rec.Player,
		"team":   rec.Team,
		"year":   rec.Year,
	}).Debug("Aggregated signal record")

	return rec, nil
}

// resolveTeam maps a player name to a team via the name search.
// Case-insensitive exact matches are preferred over the first
// substring match.
func (a *Aggregator) resolveTeam(ctx context.Context, year int, player string) (string, string, error) {
	candidates, err := a.source.SearchPlayers(ctx, year, player)
	if err != nil {
		return "", "", &ResolutionError{Name: player, Err: err}
	}

	query := strings.ToLower(player)
	var match contracts.Record
	for _, cand := range candidates {
		name, ok := cand.Str(playerNameKeys...)
		if !ok {
			continue
		}
		lower := strings.ToLower(name)
		if lower == query {
			match = cand
			break
		}
		if match == nil && strings.Contains(lower, query) {
			match = cand
		}
	}

	if match == nil {
		return "", "", &ResolutionError{Name: player}
	}

	team, ok := match.Str(candidateTeamKeys...)
	if !ok {
		return "", "", &ResolutionError{Name: player}
	}

	name, _ := match.Str(playerNameKeys...)
	return team, name, nil
}

// fetchSources runs the four team-season reads concurrently and joins
// them. A failing source degrades to an empty slice; it never aborts
// the aggregation.
func (a *Aggregator) fetchSources(ctx context.Context, year int, team string) map[string][]contracts.Record {
	fetches := []struct {
		name string
		fn   func(context.Context) ([]contracts.Record, error)
	}{
		{"usage", func(ctx context.Context) ([]contracts.Record, error) { return a.source.PlayerUsage(ctx, year, team) }},
		{"roster", func(ctx context.Context) ([]contracts.Record, error) { return a.source.TeamRoster(ctx, year, team) }},
		{"recruiting", func(ctx context.Context) ([]contracts.Record, error) { return a.source.TeamRecruits(ctx, year, team) }},
		{"records", func(ctx context.Context) ([]contracts.Record, error) { return a.source.TeamRecords(ctx, year, team) }},
	}

	type fetchResult struct {
		name    string
		records []contracts.Record
	}

	resultCh := make(chan fetchResult, len(fetches))
	var wg sync.WaitGroup

	for _, f := range fetches {
		wg.Add(1)
		go func(name string, fn func(context.Context) ([]contracts.Record, error)) {
			defer wg.Done()

			records, err := fn(ctx)
			if err != nil {
				a.logger.WithError(err).WithField("source", name).Warn("Source fetch failed, degrading to empty result")
				if a.metrics != nil {
					a.metrics.RecordSourceFailure(name)
				}
				records = nil
			}
			resultCh <- fetchResult{name: name, records: records}
		}(f.name, f.fn)
	}

	wg.Wait()
	close(resultCh)

	bySource := make(map[string][]contracts.Record, len(fetches))
	for r := range resultCh {
		bySource[r.name] = r.records
	}
	return bySource
}

// fetchFallbackRoster consults the secondary roster source. Its failure
// is non-fatal like any other source.
func (a *Aggregator) fetchFallbackRoster(ctx context.Context, team string) []contracts.Record {
	rows, err := a.roster.TeamRoster(ctx, team)
	if err != nil {
		a.logger.WithError(err).WithField("team", team).Warn("Roster fallback failed")
		if a.metrics != nil {
			a.metrics.RecordSourceFailure("roster_fallback")
		}
		return nil
	}
	return rows
}

// firstName probes the selected rows for a display name.
func firstName(rowSets ...[]contracts.Record) string {
	for _, rows := range rowSets {
		for _, rec := range rows {
			if name, ok := rec.Str(playerNameKeys...); ok {
				return name
			}
		}
	}
	return ""
}

// applyOverrides merges manual values last; they win unconditionally.
func applyOverrides(rec *contracts.SignalRecord, o Overrides) {
	if o.PlayingTime != nil {
		rec.PlayingTime = o.PlayingTime
	}
	if o.DistanceFromHomeMiles != nil {
		rec.DistanceFromHomeMiles = o.DistanceFromHomeMiles
	}
	if o.RecruitingRank != nil {
		rec.RecruitingRank = o.RecruitingRank
	}
	if o.TeamWinRate != nil {
		rec.TeamWinRate = o.TeamWinRate
	}
	if o.NILScore != nil {
		rec.NILScore = o.NILScore
	}
	if o.SnapsPlayed != nil {
		rec.SnapsPlayed = o.SnapsPlayed
	}
	if o.SocialSentiment != nil {
		rec.SocialSentiment = o.SocialSentiment
	}
	if len(o.Weights) > 0 {
		rec.Weights = o.Weights.Clone()
	}
}
