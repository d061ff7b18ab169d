package analysis

import "math"

// DecayStats describes how a recorded heat series falls off frame to frame.
type DecayStats struct {
	// MeanFactor is the average frame-to-frame ratio of total heat.
	MeanFactor float64
	// HalfLife is the number of frames for total heat to halve at
	// MeanFactor. Infinite when the series is not decaying.
	HalfLife float64
}

// DecayRate fits the mean geometric decay factor of a heat-sum series.
// Frames where the previous sum is zero contribute nothing to the fit.
func DecayRate(series []float64) DecayStats {
	if len(series) < 2 {
		return DecayStats{}
	}

	sum := 0.0
	count := 0
	for i := 1; i < len(series); i++ {
		if series[i-1] <= 0 {
			continue
		}
		sum += series[i] / series[i-1]
		count++
	}
	if count == 0 {
		return DecayStats{}
	}

	factor := sum / float64(count)
	stats := DecayStats{MeanFactor: factor}

	switch {
	case factor >= 1:
		stats.HalfLife = math.Inf(1)
	case factor <= 0:
		stats.HalfLife = 0
	default:
		stats.HalfLife = math.Log(0.5) / math.Log(factor)
	}

	return stats
}
