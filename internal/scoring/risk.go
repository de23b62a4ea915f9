package scoring

import "math"

const (
	// neutralRisk is the risk assigned to any factor whose underlying
	// signal is unknown. Unknown never means excluded: only a zero
	// weight removes a factor from the combination.
	neutralRisk = 0.5

	// distanceSaturationMiles is the distance at which relocation risk
	// saturates at 1.0.
	distanceSaturationMiles = 1500.0

	// snapsSaturation is the participation count treated as "heavily
	// used". A fixed threshold, not derived from data.
	snapsSaturation = 800.0
)

// known dereferences an optional signal, rejecting NaN and infinities
// so garbage inputs read as absent.
func known(p *float64) (float64, bool) {
	if p == nil || math.IsNaN(*p) || math.IsInf(*p, 0) {
		return 0, false
	}
	return *p, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// playingTimeRisk maps usage share to risk: the less a player plays,
// the likelier the transfer. Usage is already a 0-1 fraction; values
// outside the range are clamped, not rescaled.
func playingTimeRisk(usage *float64) float64 {
	v, ok := known(usage)
	if !ok {
		return neutralRisk
	}
	return 1 - clamp(v, 0, 1)
}

// distanceRisk interpolates miles-from-home linearly over
// [0, distanceSaturationMiles] onto [0, 1].
func distanceRisk(miles *float64) float64 {
	v, ok := known(miles)
	if !ok {
		return neutralRisk
	}
	return clamp(v, 0, distanceSaturationMiles) / distanceSaturationMiles
}

// recruitingRankRisk captures the "high-pedigree recruit with low
// usage" pattern: a bench-warming former five-star is the worst case, a
// lightly-recruited starter the best. The rank is treated as already
// normalized when <= 1, otherwise as a 0-100 percentile. Usage falls
// back to neutral when unknown.
func recruitingRankRisk(rank, usage *float64) float64 {
	v, ok := known(rank)
	if !ok {
		return neutralRisk
	}

	norm := v
	if norm > 1 {
		norm /= 100
	}
	norm = clamp(norm, 0, 1)

	pt := neutralRisk
	if u, uok := known(usage); uok {
		pt = clamp(u, 0, 1)
	}

	return norm * (1 - pt)
}

// teamPerformanceRisk: losing teams push players toward the portal.
func teamPerformanceRisk(winRate *float64) float64 {
	v, ok := known(winRate)
	if !ok {
		return neutralRisk
	}
	return 1 - clamp(v, 0, 1)
}

// nilRisk: weak NIL compensation raises transfer risk.
func nilRisk(score *float64) float64 {
	v, ok := known(score)
	if !ok {
		return neutralRisk
	}
	return 1 - clamp(v, 0, 1)
}

// snapsRisk maps raw participation onto risk with a fixed saturation
// ceiling: at snapsSaturation snaps and beyond the risk is 0.
func snapsRisk(snaps *float64) float64 {
	v, ok := known(snaps)
	if !ok {
		return neutralRisk
	}
	return 1 - clamp(v, 0, snapsSaturation)/snapsSaturation
}

// sentimentRisk passes negativity through directly: the input scale is
// already risk-oriented, higher means likelier to leave.
func sentimentRisk(sentiment *float64) float64 {
	v, ok := known(sentiment)
	if !ok {
		return neutralRisk
	}
	return clamp(v, 0, 1)
}
