package blackhole

import "math"

func isFinite(x Real) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func clamp(x, lo, hi Real) Real {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func clamp01(x Real) Real { return clamp(x, 0, 1) }

func mix(a, b, t Real) Real { return a + (b-a)*t }

// smoothstep is the Hermite threshold 0 below e0, 1 above e1.
func smoothstep(e0, e1, x Real) Real {
	t := clamp01((x - e0) / (e1 - e0))
	return t * t * (3 - 2*t)
}

// wrapAngle maps a to (-π, π].
func wrapAngle(a Real) Real {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

func imax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
