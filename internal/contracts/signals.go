package contracts

// Factor identifies one of the seven transfer risk factors.
type Factor string

const (
	FactorPlayingTime      Factor = "playingTime"
	FactorRecruitingRank   Factor = "recruitingRank"
	FactorDistanceFromHome Factor = "distanceFromHome"
	FactorTeamPerformance  Factor = "teamPerformance"
	FactorSnapsPlayed      Factor = "snapsPlayed"
	FactorNILCollectives   Factor = "nilCollectives"
	FactorSocialSentiment  Factor = "socialSentiment"
)

// FactorOrder is the fixed ordering used for scoring and for the
// breakdown returned to callers. Every result carries all seven
// factors in this order, regardless of which signals were present.
var FactorOrder = [7]Factor{
	FactorPlayingTime,
	FactorRecruitingRank,
	FactorDistanceFromHome,
	FactorTeamPerformance,
	FactorSnapsPlayed,
	FactorNILCollectives,
	FactorSocialSentiment,
}

// Weights maps factor name to a non-negative weight.
type Weights map[Factor]float64

// Clone returns a shallow copy of the weight table.
func (w Weights) Clone() Weights {
	out := make(Weights, len(w))
	for k, v := range w {
		out[k] = v
	}
	return out
}

// SignalRecord is the complete set of normalized signals consumed by the
// scorer. A nil pointer means the underlying signal is unknown; the scorer
// maps unknown signals to neutral risk, it never rejects them.
type SignalRecord struct {
	PlayingTime           *float64 `json:"playingTime,omitempty"`
	DistanceFromHomeMiles *float64 `json:"distanceFromHighSchoolMiles,omitempty"`
	RecruitingRank        *float64 `json:"recruitingRank,omitempty"`
	TeamWinRate           *float64 `json:"teamWinRate,omitempty"`
	NILScore              *float64 `json:"nilScore,omitempty"`
	SnapsPlayed           *float64 `json:"snapsPlayed,omitempty"`
	SocialSentiment       *float64 `json:"socialSentiment,omitempty"`

	// Optional per-record weight overrides, keyed by factor name.
	Weights Weights `json:"weights,omitempty"`

	// Contextual metadata carried alongside the signals. The scorer
	// never reads these.
	Player string `json:"player,omitempty"`
	Team   string `json:"team,omitempty"`
	Year   int    `json:"year,omitempty"`
}

// BreakdownEntry reports one factor's share of the combined probability.
type BreakdownEntry struct {
	Factor       Factor  `json:"factor"`
	Risk         float64 `json:"risk"`
	Weight       float64 `json:"weight"`
	Contribution float64 `json:"contribution"`
}

// Result is the scorer output: a 0-100 probability plus the full
// seven-entry breakdown behind it.
type Result struct {
	Probability float64            `json:"probability"`
	Breakdown   []BreakdownEntry   `json:"breakdown"`
	Factors     map[Factor]float64 `json:"factors"`
}

// Entry returns the breakdown entry for a factor.
func (r *Result) Entry(f Factor) (BreakdownEntry, bool) {
	for _, e := range r.Breakdown {
		if e.Factor == f {
			return e, true
		}
	}
	return BreakdownEntry{}, false
}
