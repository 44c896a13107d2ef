package blackhole

import "math"

var photonRingColor = RGB{1.0, 0.86, 0.64}

// PhotonRingIntensity is e^(-2πn) for the n-th winding image, 0 for n <= 0.
func PhotonRingIntensity(n int) Real {
	if n <= 0 {
		return 0
	}
	return math.Exp(-2 * math.Pi * Real(n))
}

// EinsteinRingRadius is the screen-space radius (in normalized units where the
// vertical half-extent is 1) of a ring of world radius sqrt(4 rs d) seen from d.
func EinsteinRingRadius(rs, camDist, fovDeg Real) Real {
	if camDist <= 0 {
		return 0
	}
	world := math.Sqrt(4 * rs * camDist)
	half := math.Tan(fovDeg * math.Pi / 360)
	return (world / camDist) / half
}

// EinsteinRing is a thin Gaussian band around radius at screen distance l.
func EinsteinRing(l, radius Real) Real {
	x := (l - radius) / EinsteinRingWidth
	return math.Exp(-x * x)
}
