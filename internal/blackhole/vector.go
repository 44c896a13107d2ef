package blackhole

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a position or direction in world space (y is the spin axis).
type Vec3 = mgl64.Vec3

var (
	axisY = Vec3{0, 1, 0}
	zero3 = Vec3{}
)

// norm returns a unit-length version of v, or v itself when it is (near) zero.
func norm(v Vec3) Vec3 {
	l := v.Len()
	if l == 0 || !isFinite(l) {
		return v
	}
	return v.Mul(1 / l)
}

// azimuth is the angle of p around the spin axis, in (-π, π].
func azimuth(p Vec3) Real { return math.Atan2(p.Z(), p.X()) }

// cylR is the in-plane (x, z) radius of p.
func cylR(p Vec3) Real { return math.Hypot(p.X(), p.Z()) }

// RGB stores linear color components.
type RGB struct {
	R, G, B Real
}

func (c RGB) Add(o RGB) RGB  { return RGB{c.R + o.R, c.G + o.G, c.B + o.B} }
func (c RGB) Mul(s Real) RGB { return RGB{c.R * s, c.G * s, c.B * s} }

// Max returns the largest channel.
func (c RGB) Max() Real { return math.Max(c.R, math.Max(c.G, c.B)) }

// Luma is the Rec.709 luminance.
func (c RGB) Luma() Real { return 0.2126*c.R + 0.7152*c.G + 0.0722*c.B }

// sanitize replaces non-finite or negative channels with 0.
func (c RGB) sanitize() RGB {
	cl := func(x Real) Real {
		if !isFinite(x) || x < 0 {
			return 0
		}
		return x
	}
	return RGB{cl(c.R), cl(c.G), cl(c.B)}
}

func lerpRGB(a, b RGB, t Real) RGB {
	return RGB{mix(a.R, b.R, t), mix(a.G, b.G, t), mix(a.B, b.B, t)}
}
