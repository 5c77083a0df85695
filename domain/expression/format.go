package expression

import (
	"math"
	"strconv"
)

// Format renders a computed value for display. Values within Tolerance of
// an integer are shown as that integer.
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if r := math.Round(v); ApproxEqual(v, r) {
		return strconv.FormatFloat(r+0, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
