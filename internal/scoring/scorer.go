package scoring

import (
	"math"

	"github.com/portalwatch/backend/internal/contracts"
	"github.com/portalwatch/backend/pkg/logger"
)

// Scorer computes a transfer probability from a signal record. It is a
// pure function of its inputs: no I/O, no hidden state, and no error
// path. Malformed or missing signals degrade to neutral risk per factor
// instead of failing the computation.
type Scorer struct {
	defaults contracts.Weights
	logger   *logger.Logger
}

// New creates a scorer with an immutable default weight table. The
// table is cloned so later mutation by the caller cannot leak in.
func New(defaults contracts.Weights, log *logger.Logger) *Scorer {
	return &Scorer{
		defaults: defaults.Clone(),
		logger:   log,
	}
}

// Score evaluates a signal record into a 0-100 transfer probability with
// a full seven-factor breakdown. Weight resolution order: scorer defaults,
// then the record's embedded weights, then the explicit overrides argument,
// later sources winning per key. A nil record scores as fully neutral.
func (s *Scorer) Score(rec *contracts.SignalRecord, overrides contracts.Weights) contracts.Result {
	if rec == nil {
		rec = &contracts.SignalRecord{}
	}

	merged := MergeWeights(s.defaults, rec.Weights, overrides)

	risks := map[contracts.Factor]float64{
		contracts.FactorPlayingTime:      playingTimeRisk(rec.PlayingTime),
		contracts.FactorRecruitingRank:   recruitingRankRisk(rec.RecruitingRank, rec.PlayingTime),
		contracts.FactorDistanceFromHome: distanceRisk(rec.DistanceFromHomeMiles),
		contracts.FactorTeamPerformance:  teamPerformanceRisk(rec.TeamWinRate),
		contracts.FactorSnapsPlayed:      snapsRisk(rec.SnapsPlayed),
		contracts.FactorNILCollectives:   nilRisk(rec.NILScore),
		contracts.FactorSocialSentiment:  sentimentRisk(rec.SocialSentiment),
	}

	breakdown := make([]contracts.BreakdownEntry, 0, len(contracts.FactorOrder))
	factors := make(map[contracts.Factor]float64, len(contracts.FactorOrder))

	var weightedSum, totalWeight float64
	for _, f := range contracts.FactorOrder {
		risk := risks[f]
		weight := merged[f]
		if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
			weight = 0
		}

		// Only strictly positive weights enter the combination; a
		// zero weight excludes the factor, an unknown signal does not.
		if weight > 0 {
			weightedSum += weight * risk
			totalWeight += weight
		}

		breakdown = append(breakdown, contracts.BreakdownEntry{
			Factor:       f,
			Risk:         round2(risk),
			Weight:       weight,
			Contribution: round2(weight * risk),
		})
		factors[f] = round2(risk)
	}

	probability := 50.0
	if totalWeight > 0 {
		probability = round1(100 * weightedSum / totalWeight)
	}

	s.logger.WithFields(map[string]interface{}{
		"player":       rec.Player,
		"team":         rec.Team,
		"probability":  probability,
		"total_weight": totalWeight,
	}).Debug("Computed transfer probability")

	return contracts.Result{
		Probability: probability,
		Breakdown:   breakdown,
		Factors:     factors,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
