package expression

import "math"

// Tolerance is the absolute difference under which two values are treated as
// equal, and at or under which a divisor is treated as zero.
const Tolerance = 1e-6

// Target is the value every solution must reach.
const Target = 24.0

// ApproxEqual reports whether a and b differ by less than Tolerance.
// NaN is never equal to anything.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

// IsTarget reports whether v equals Target within Tolerance.
func IsTarget(v float64) bool {
	return ApproxEqual(v, Target)
}

// NearZero reports whether v is too close to zero to divide by.
func NearZero(v float64) bool {
	return math.Abs(v) <= Tolerance
}
