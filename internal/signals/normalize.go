package signals

import (
	"strings"

	"github.com/portalwatch/backend/internal/contracts"
)

// selectRecords picks the rows from one source that belong to the
// requested player: exact case-insensitive name matches preferred, else
// the first row whose name matches by substring in either direction.
// With no player named, the source's first row is taken as-is -- a
// documented simplification, the caller gets "some" player's stats.
func selectRecords(records []contracts.Record, player string) []contracts.Record {
	if len(records) == 0 {
		return nil
	}
	if player == "" {
		return records[:1]
	}

	query := strings.ToLower(strings.TrimSpace(player))
	var exact []contracts.Record
	var partial contracts.Record

	for _, rec := range records {
		name, ok := rec.Str(playerNameKeys...)
		if !ok {
			continue
		}
		lower := strings.ToLower(name)
		switch {
		case lower == query:
			exact = append(exact, rec)
		case partial == nil && (strings.Contains(lower, query) || strings.Contains(query, lower)):
			partial = rec
		}
	}

	if len(exact) > 0 {
		return exact
	}
	if partial != nil {
		return []contracts.Record{partial}
	}
	return nil
}

// normalizeUsage extracts a 0-1 usage share from the selected usage
// rows. An explicit overall usage value wins, rescaled when expressed
// as a 0-100 percent; otherwise usage is estimated from summed snap
// counts against the assumed full-season ceiling.
func normalizeUsage(rows []contracts.Record) *float64 {
	for _, rec := range rows {
		v, ok := rec.Float(usageOverallKeys...)
		if !ok {
			continue
		}
		if v > 1 {
			v /= 100
		}
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		return &v
	}

	if snaps := sumSnaps(rows); snaps != nil {
		v := *snaps / (assumedSnapsPerGame * assumedGamesPerSeason)
		if v > 1 {
			v = 1
		}
		return &v
	}
	return nil
}

// sumSnaps totals snap counts across the selected rows. A player often
// has separate offense/defense/special-teams rows.
func sumSnaps(rows []contracts.Record) *float64 {
	var total float64
	found := false
	for _, rec := range rows {
		if v, ok := rec.Float(snapCountKeys...); ok && v >= 0 {
			total += v
			found = true
		}
	}
	if !found {
		return nil
	}
	return &total
}

// normalizeRecruitRating maps a raw recruiting rating onto [0,1] using
// the configured scale thresholds.
func normalizeRecruitRating(v float64) float64 {
	for _, scale := range RecruitingScales {
		if v <= scale.Max {
			return clamp01(v / scale.Divisor)
		}
	}
	return clamp01(v / RecruitingFallbackDivisor)
}

// deriveWinRate computes the team's season win fraction. Season totals
// win; when absent or degenerate the rate is rebuilt from per-game
// scores. Returns nil when neither is available, which downstream
// scoring treats as neutral.
func deriveWinRate(records []contracts.Record) *float64 {
	for _, rec := range records {
		wins, ok := rec.Float(winKeys...)
		if !ok {
			continue
		}
		if losses, lok := rec.Float(lossKeys...); lok && wins+losses > 0 {
			v := wins / (wins + losses)
			return &v
		}
		if games, gok := rec.Float(gamesKeys...); gok && games > 0 {
			v := wins / games
			return &v
		}
	}

	// Per-game fallback: a win is a game where the team outscored the
	// opponent.
	var wins, games float64
	for _, rec := range records {
		teamPts, tok := rec.Float(teamPointsKeys...)
		oppPts, ook := rec.Float(oppPointsKeys...)
		if !tok || !ook {
			continue
		}
		games++
		if teamPts > oppPts {
			wins++
		}
	}
	if games > 0 {
		v := wins / games
		return &v
	}
	return nil
}

// estimateDistance applies the coarse hometown heuristic: if the
// player's home state matches the school's state the distance is an
// in-state constant, otherwise a fixed cross-state constant. Requires
// some hometown information; returns nil without it.
func estimateDistance(rows []contracts.Record) *float64 {
	for _, rec := range rows {
		hometown, hasTown := rec.Str(hometownKeys...)
		homeState, hasState := rec.Str(homeStateKeys...)
		if !hasTown && !hasState {
			if city, ok := rec.Str(homeCityKeys...); ok {
				hometown, hasTown = city, true
			} else {
				continue
			}
		}

		if !hasState {
			homeState = stateFromHometown(hometown)
		}

		schoolState, _ := rec.Str(schoolStateKeys...)
		if homeState != "" && schoolState != "" && strings.EqualFold(homeState, schoolState) {
			v := sameStateMiles
			return &v
		}
		v := crossStateMiles
		return &v
	}
	return nil
}

// stateFromHometown pulls the state token out of a "City, ST" string.
func stateFromHometown(hometown string) string {
	idx := strings.LastIndex(hometown, ",")
	if idx < 0 || idx+1 >= len(hometown) {
		return ""
	}
	return strings.TrimSpace(hometown[idx+1:])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
