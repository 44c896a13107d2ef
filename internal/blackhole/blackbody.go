package blackhole

import "math"

// blackbody ramp: five temperature bands, linear inside each band
var (
	bbKnotsK = [...]Real{0, 2000, 4000, 6500, 10000, 20000}
	bbKnots  = [...]RGB{
		{0, 0, 0},
		{1.0, 0.22, 0.0},
		{1.0, 0.55, 0.2},
		{1.0, 0.94, 0.88},
		{0.8, 0.85, 1.0},
		{0.62, 0.73, 1.0},
	}
)

const (
	bbRefTempK     = 6500.0
	bbMaxIntensity = 16.0
)

// BlackbodyHue is the normalized color of a blackbody at temperature t (Kelvin).
func BlackbodyHue(t Real) RGB {
	if !(t > 0) {
		return RGB{}
	}
	last := len(bbKnotsK) - 1
	if t >= bbKnotsK[last] {
		return bbKnots[last]
	}
	for i := 1; i <= last; i++ {
		if t < bbKnotsK[i] {
			f := (t - bbKnotsK[i-1]) / (bbKnotsK[i] - bbKnotsK[i-1])
			return lerpRGB(bbKnots[i-1], bbKnots[i], f)
		}
	}
	return bbKnots[last]
}

// BlackbodyIntensity follows the Stefan-Boltzmann T⁴ law relative to 6500 K.
func BlackbodyIntensity(t Real) Real {
	if !(t > 0) {
		return 0
	}
	x := t / bbRefTempK
	return math.Min(x*x*x*x, bbMaxIntensity)
}

// BlackbodyColor is hue times intensity.
func BlackbodyColor(t Real) RGB {
	return BlackbodyHue(t).Mul(BlackbodyIntensity(t))
}
