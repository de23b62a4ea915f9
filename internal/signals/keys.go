package signals

// Accessor key orders for each probed field, per source. External record
// schemas drift between API versions and even between rows, so every
// field read tries these keys in order and takes the first usable value.
// Keeping the lists here, rather than inline at each call site, makes
// the tolerated variance auditable.
var (
	// All sources: player identity.
	playerNameKeys = []string{"name", "player", "fullName", "athlete"}

	// Name search: candidate team affiliation.
	candidateTeamKeys = []string{"team", "school", "currentTeam"}

	// Usage source: overall usage share (0-1 fraction or 0-100 percent)
	// and raw snap participation.
	usageOverallKeys = []string{"usage.overall", "overallUsage", "usage", "usg"}
	snapCountKeys    = []string{"snaps", "countablePlays", "plays"}

	// Roster source: hometown and school location.
	hometownKeys    = []string{"hometown", "homeTown", "home_town"}
	homeCityKeys    = []string{"homeCity", "home_city", "city"}
	homeStateKeys   = []string{"homeState", "home_state", "stateProvince"}
	schoolStateKeys = []string{"teamState", "schoolState"}

	// Recruiting source: recruit quality on one of several scales.
	recruitRatingKeys = []string{"rating", "compositeRating", "stars", "score"}

	// Records source: season totals, or per-game scores when totals
	// are missing.
	winKeys        = []string{"total.wins", "wins"}
	lossKeys       = []string{"total.losses", "losses"}
	gamesKeys      = []string{"total.games", "games"}
	teamPointsKeys = []string{"teamPoints", "points", "pointsFor"}
	oppPointsKeys  = []string{"opponentPoints", "pointsAgainst", "allowed"}
)

// RecruitingScale maps a raw rating below Max onto [0,1] by Divisor.
type RecruitingScale struct {
	Max     float64
	Divisor float64
}

// RecruitingScales normalizes the upstream API's inconsistent rating
// scales: already-normalized values, star counts, percentiles and
// extended composite scores. The thresholds are a heuristic guess at an
// external API's conventions and a known source of misclassification;
// they are variables, not constants, so deployments can correct them
// without a code change.
var RecruitingScales = []RecruitingScale{
	{Max: 1, Divisor: 1},
	{Max: 5, Divisor: 5},
	{Max: 100, Divisor: 100},
	{Max: 255, Divisor: 255},
}

// RecruitingFallbackDivisor applies to ratings beyond every scale in
// RecruitingScales.
var RecruitingFallbackDivisor = 300.0

const (
	// Usage derivation ceiling when only snap counts are available:
	// an assumed 70 snaps per game over a 12 game season.
	assumedSnapsPerGame   = 70.0
	assumedGamesPerSeason = 12.0

	// Distance heuristic constants. Coarse by contract: an exact state
	// match counts as in-state distance, anything else as a fixed
	// approximate cross-state distance. Not a geocoded calculation.
	sameStateMiles  = 100.0
	crossStateMiles = 800.0
)
