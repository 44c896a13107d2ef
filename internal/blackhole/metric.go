package blackhole

import "math"

// HorizonRadius is the Schwarzschild radius rs = 2GM.
func HorizonRadius(mass Real) Real { return 2 * G * mass }

// PhotonSphere is the radius of circular light orbits.
func PhotonSphere(rs Real) Real { return 1.5 * rs }

// CriticalImpact is the impact parameter separating captured from scattered photons.
func CriticalImpact(rs Real) Real { return 1.5 * math.Sqrt(3) * rs }

// KerrHorizon is the outer horizon r+ = M(1 + sqrt(1 - a²)) for dimensionless spin a.
func KerrHorizon(mass, spin Real) Real {
	m := G * mass
	a := clamp(spin, 0, MaxSpin)
	return m * (1 + math.Sqrt(1-a*a))
}

// ISCO is the prograde innermost stable circular orbit (Bardeen, Press & Teukolsky).
// For spin 0 it is 3 rs.
func ISCO(mass, spin Real) Real {
	m := G * mass
	a := clamp(spin, 0, MaxSpin)
	z1 := 1 + math.Cbrt(1-a*a)*(math.Cbrt(1+a)+math.Cbrt(1-a))
	z2 := math.Sqrt(3*a*a + z1*z1)
	return m * (3 + z2 - math.Sqrt((3-z1)*(3+z1+2*z2)))
}

// Lapse is the Schwarzschild radial function f(r) = 1 - rs/r.
func Lapse(r, rs Real) Real {
	if r <= 0 {
		return math.Inf(-1)
	}
	return 1 - rs/r
}

// LapseDerivative is df/dr = rs/r².
func LapseDerivative(r, rs Real) Real {
	if r <= 0 {
		return 0
	}
	return rs / (r * r)
}

// DeflectionAngle is the weak-field total deflection for impact parameter b,
// to second order in rs/b.
func DeflectionAngle(b, rs Real) Real {
	if b <= 0 {
		return math.Pi
	}
	u := rs / b
	return 2*u + (15*math.Pi/16)*u*u
}

// RemainingDeflection is the straight-line (Born) deflection a photon with impact
// parameter b still accumulates on its way from radius r out to infinity.
// At or inside periapsis (r <= b) it is half of the first-order total.
func RemainingDeflection(r, b, rs Real) Real {
	if b <= 0 || r <= 0 {
		return 0
	}
	if r <= b {
		return rs / b
	}
	q := b / r
	return (rs / b) * (1 - math.Sqrt(1-q*q))
}
