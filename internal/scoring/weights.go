package scoring

import "github.com/portalwatch/backend/internal/contracts"

// DefaultWeights returns the built-in factor weight table. The defaults
// sum to 1.0 but nothing downstream depends on that: the scorer always
// normalizes by the effective total weight.
func DefaultWeights() contracts.Weights {
	return contracts.Weights{
		contracts.FactorPlayingTime:      0.22,
		contracts.FactorRecruitingRank:   0.18,
		contracts.FactorDistanceFromHome: 0.15,
		contracts.FactorTeamPerformance:  0.15,
		contracts.FactorSnapsPlayed:      0.12,
		contracts.FactorNILCollectives:   0.10,
		contracts.FactorSocialSentiment:  0.08,
	}
}

// MergeWeights overlays each override table onto base in order, later
// tables winning per key. Pure: inputs are never mutated. Keys that do
// not name one of the seven factors are carried through but ignored by
// the scorer's fixed factor loop.
func MergeWeights(base contracts.Weights, overrides ...contracts.Weights) contracts.Weights {
	merged := base.Clone()
	for _, o := range overrides {
		for k, v := range o {
			merged[k] = v
		}
	}
	return merged
}
