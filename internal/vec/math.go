package vec

import "math"

// Angle conversion factors.
const (
	DegToRad = math.Pi / 180.0
	RadToDeg = 180.0 / math.Pi
)

// approxEpsilon is the default tolerance for Approx.
const approxEpsilon = 1e-6

// Clamp limits v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// Lerp linearly interpolates from a to b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Approx reports whether a and b are within 1e-6 of each other.
func Approx(a, b float64) bool {
	return math.Abs(a-b) < approxEpsilon
}

// MoveTowards moves current toward target by at most maxDelta,
// landing exactly on target when within range.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	return current + Sign(target-current)*maxDelta
}

// Sign returns -1, 0, or 1 for negative, zero, or positive v.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
