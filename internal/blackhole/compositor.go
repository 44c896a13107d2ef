package blackhole

import (
	"math"
)

var (
	horizonGlowColor = RGB{1.0, 0.45, 0.15}
	einsteinTint     = RGB{0.75, 0.85, 1.0}
)

const (
	einsteinGain   = 0.6
	maxAsymptotic  = 0.5 // radians
	diskSlabMargin = 1e-9
)

// Shaded is the result of the per-pixel program.
type Shaded struct {
	Color   RGB // display-referred, in [0,1)
	Alpha   Real
	Outcome Outcome // resolved outcome used for compositing
	Ray     RayState
}

// diskAccum is front-to-back alpha compositing.
type diskAccum struct {
	Color RGB
	Alpha Real
}

// add composites one sample and reports whether the accumulation is opaque.
func (a *diskAccum) add(emission RGB, opacity Real) bool {
	w := clamp01(opacity) * (1 - a.Alpha)
	a.Color = a.Color.Add(emission.Mul(w))
	a.Alpha += w
	return a.Alpha > DiskAlphaThreshold
}

// Shade runs the per-pixel program for pixel (x, y).
func (f *Frame) Shade(x, y int) Shaded {
	u, v := f.View.UV(x, y)
	return f.ShadeUV(u, v)
}

// ShadeUV runs the per-pixel program for screen point (u, v).
func (f *Frame) ShadeUV(u, v Real) Shaded {
	origin := f.View.Pos
	dir := f.View.Ray(u, v)
	ray := f.Integrator.Trace(origin, dir)
	outcome := ray.Resolve(f.Rs)
	orbits := ray.Orbits
	if orbits < 0 {
		orbits = -orbits
	}

	var c RGB
	if outcome == Escaped {
		mag := 1 + OrbitMagnification*Real(orbits)
		c = Starfield(f.asymptotic(&ray), f.Time, mag)
		if f.State.EinsteinRings {
			c = c.Add(einsteinTint.Mul(einsteinGain * EinsteinRing(math.Hypot(u, v), f.EinsteinRadius)))
		}
	}
	if f.State.PhotonRings && orbits >= 1 {
		c = c.Add(photonRingColor.Mul(PhotonRingGain * PhotonRingIntensity(orbits)))
	}
	alpha := 0.0
	if outcome != Captured && f.State.Disk {
		dc, da := f.marchDisk(origin, dir, nil)
		c = dc.Add(c.Mul(1 - da))
		alpha = da
	}
	if f.State.Jets {
		c = c.Add(f.Jet.Emission(origin, dir))
	}
	if outcome == Captured {
		c = RGB{}
		alpha = 1
	}

	c = c.Add(horizonGlowColor.Mul(AmbientGlow * math.Exp(-(ray.MinRadius-f.Rs)/f.Rs)))
	r2 := (u/f.View.Aspect)*(u/f.View.Aspect) + v*v
	c = c.Mul(clamp01(1 - 0.5*VignetteStrength*r2))
	return Shaded{Color: toneMap(c.sanitize()), Alpha: alpha, Outcome: outcome, Ray: ray}
}

// toneMap is Reinhard c/(c+k) followed by gamma correction.
func toneMap(c RGB) RGB {
	m := func(x Real) Real {
		return math.Pow(x/(x+ToneMapK), 1/DisplayGamma)
	}
	return RGB{m(c.R), m(c.G), m(c.B)}
}

// asymptotic bends the final direction of an escaping ray by the deflection it
// would still pick up between its current radius and infinity.
func (f *Frame) asymptotic(ray *RayState) Vec3 {
	r := ray.Pos.Len()
	b := ray.ImpactParameter()
	if r == 0 || b == 0 {
		return ray.Vel
	}
	var rem Real
	if f.Tables != nil && f.Tables.Deflection != nil {
		rem = f.Tables.Deflection.Sample(r/f.Rs, b/f.Rs)
	} else {
		rem = RemainingDeflection(r, b, f.Rs)
	}
	rem = math.Min(rem, maxAsymptotic)
	in := ray.Pos.Mul(-1)
	n := in.Sub(ray.Vel.Mul(in.Dot(ray.Vel)))
	if n.Len() < 1e-12 {
		return ray.Vel
	}
	n = norm(n)
	return norm(ray.Vel.Mul(math.Cos(rem)).Add(n.Mul(math.Sin(rem))))
}

// marchDisk walks a fixed number of equal steps through the slab holding the
// disk along the camera ray, compositing front to back. trace, when set, sees the
// accumulated alpha after every composited sample.
func (f *Frame) marchDisk(origin, dir Vec3, trace func(alpha Real)) (RGB, Real) {
	half := f.Disk.MaxHalfHeight()
	oy, dy := origin.Y(), dir.Y()
	far := origin.Len() + f.Disk.Outer
	var t0, t1 Real
	if math.Abs(dy) < diskSlabMargin {
		if math.Abs(oy) > half {
			return RGB{}, 0
		}
		t0, t1 = 0, far
	} else {
		ta, tb := (half-oy)/dy, (-half-oy)/dy
		t0, t1 = math.Min(ta, tb), math.Max(ta, tb)
		t0 = math.Max(t0, 0)
		t1 = math.Min(t1, far)
	}
	if t1 <= t0 {
		return RGB{}, 0
	}

	n := f.State.Quality.DiskSteps()
	dt := (t1 - t0) / Real(n)
	var acc diskAccum
	for i := 0; i < n; i++ {
		p := origin.Add(dir.Mul(t0 + (Real(i)+0.5)*dt))
		s := f.Disk.Sample(p)
		if s.Opacity <= 0 {
			continue
		}
		d := DopplerFactor(s.Velocity, dir)
		z := RedshiftFactor(p.Len(), f.CamDist, f.Rs)
		emission := s.Color.Mul(f.Disk.Brightness * Beaming(d, 0) / z)
		done := acc.add(emission, s.Opacity)
		if trace != nil {
			trace(acc.Alpha)
		}
		if done {
			break
		}
	}
	return acc.Color, acc.Alpha
}
