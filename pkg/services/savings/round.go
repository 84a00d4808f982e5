package savings

import "math"

// round2 applies the 2-decimal output rounding. Intermediate sums stay at
// full float precision; only reported figures are rounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
