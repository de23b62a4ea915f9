package contracts

import "context"

// StatsSource is the read surface of the external statistics API. Four
// team-level reads plus a player name search; every method returns rows
// in the source's own order and with the source's own (variable) schema.
type StatsSource interface {
	// SearchPlayers returns candidate (name, team) records for a name query.
	SearchPlayers(ctx context.Context, year int, name string) ([]Record, error)

	// PlayerUsage returns per-player usage records for a team season.
	PlayerUsage(ctx context.Context, year int, team string) ([]Record, error)

	// TeamRoster returns the team roster for a season.
	TeamRoster(ctx context.Context, year int, team string) ([]Record, error)

	// TeamRecruits returns recruiting records for a team's signing class.
	TeamRecruits(ctx context.Context, year int, team string) ([]Record, error)

	// TeamRecords returns season win/loss records (or per-game results)
	// for a team season.
	TeamRecords(ctx context.Context, year int, team string) ([]Record, error)
}

// RosterFallback supplies roster rows from a secondary source when the
// primary roster read comes back empty. Used for hometown and position
// lookup only.
type RosterFallback interface {
	TeamRoster(ctx context.Context, team string) ([]Record, error)
}
