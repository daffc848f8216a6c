package analytics

import "math"

// round2 rounds to two decimal places, half away from zero. All percentages
// and monetary results in the catalogue go through this helper.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
