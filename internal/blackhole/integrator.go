package blackhole

import (
	"math"
)

// IntegratorConfig holds the step-size policy. Step lengths and the far radius are
// in horizon-radius units, MaxDistance is in world units.
type IntegratorConfig struct {
	MinStep     Real `json:"minStep,omitempty" toml:"minStep,omitempty"`
	InitialStep Real `json:"initialStep,omitempty" toml:"initialStep,omitempty"`
	FarRadius   Real `json:"farRadius,omitempty" toml:"farRadius,omitempty"`
	MaxDistance Real `json:"maxDistance,omitempty" toml:"maxDistance,omitempty"`
}

// DefaultIntegratorConfig returns the built-in step policy.
func DefaultIntegratorConfig() IntegratorConfig {
	return IntegratorConfig{
		MinStep:     MinStep,
		InitialStep: InitialStep,
		FarRadius:   FarRadius,
		MaxDistance: MaxDistance,
	}
}

// withDefaults fills zero fields from the built-in policy.
func (c IntegratorConfig) withDefaults() IntegratorConfig {
	d := DefaultIntegratorConfig()
	if c.MinStep <= 0 {
		c.MinStep = d.MinStep
	}
	if c.InitialStep <= 0 {
		c.InitialStep = d.InitialStep
	}
	if c.InitialStep < c.MinStep {
		c.InitialStep = c.MinStep
	}
	if c.FarRadius <= CaptureFactor {
		c.FarRadius = d.FarRadius
	}
	if c.MaxDistance <= 0 {
		c.MaxDistance = d.MaxDistance
	}
	return c
}

// Outcome is the terminal state of a traced ray.
type Outcome uint8

const (
	Integrating Outcome = iota // still inside the loop
	Captured                   // fell below the capture radius
	Escaped                    // left the max distance
	Exhausted                  // step budget used up
)

func (o Outcome) String() string {
	switch o {
	case Captured:
		return "captured"
	case Escaped:
		return "escaped"
	case Exhausted:
		return "exhausted"
	}
	return "integrating"
}

// RayState is one photon path. Vel is always unit length.
type RayState struct {
	Pos, Vel  Vec3
	Affine    Real // accumulated affine parameter (path length)
	Orbits    int  // signed whole windings around the spin axis
	Escaped   bool
	Captured  bool
	Steps     int
	MinRadius Real // closest approach to the center

	phi       Real // last azimuth
	winding   Real // unwrapped accumulated azimuth
	exhausted bool
}

// Outcome reports the terminal state. Captured wins over escaped.
func (s *RayState) Outcome() Outcome {
	switch {
	case s.Captured:
		return Captured
	case s.Escaped:
		return Escaped
	case s.exhausted:
		return Exhausted
	}
	return Integrating
}

// Resolve collapses Exhausted into Captured or Escaped: a ray that ran out of steps
// inside the photon sphere while still falling in is treated as captured.
func (s *RayState) Resolve(rs Real) Outcome {
	o := s.Outcome()
	if o != Exhausted {
		return o
	}
	if s.Pos.Len() < PhotonSphere(rs) && s.Pos.Dot(s.Vel) < 0 {
		return Captured
	}
	return Escaped
}

// ImpactParameter is |x × v| for the current position and direction.
func (s *RayState) ImpactParameter() Real { return s.Pos.Cross(s.Vel).Len() }

// Integrator advances null geodesics around one black hole. All lengths are in
// world units.
type Integrator struct {
	Rs          Real
	Capture     Real
	Safety      Real
	MinStep     Real
	InitialStep Real
	Far         Real
	FarField    Real // straight-line region boundary
	MaxDistance Real
	J           Real // angular momentum a·M², 0 for Schwarzschild
	Budget      int
}

// NewIntegrator builds the integrator for a mass, spin and quality tier.
func NewIntegrator(cfg IntegratorConfig, mass, spin Real, q Quality) Integrator {
	cfg = cfg.withDefaults()
	rs := HorizonRadius(mass)
	m := G * mass
	return Integrator{
		Rs:          rs,
		Capture:     CaptureFactor * rs,
		Safety:      SafetyFactor * rs,
		MinStep:     cfg.MinStep * rs,
		InitialStep: cfg.InitialStep * rs,
		Far:         cfg.FarRadius * rs,
		FarField:    FarFieldFactor * rs,
		MaxDistance: cfg.MaxDistance,
		J:           FrameDraggingScale * clamp(spin, 0, MaxSpin) * m * m,
		Budget:      q.StepBudget(),
	}
}

// Acceleration is the bending of a photon at p moving along v:
// a = -3/2 f'(r) h²/r³ x, with h = |x × v|. Spin adds a frame-dragging term
// that pushes rays along the disk's sense of rotation.
func (in *Integrator) Acceleration(p, v Vec3) Vec3 {
	r := p.Len()
	if r < in.Safety {
		return zero3
	}
	h := p.Cross(v)
	r3 := r * r * r
	a := p.Mul(-1.5 * LapseDerivative(r, in.Rs) * h.Dot(h) / r3)
	if in.J != 0 {
		a = a.Add(axisY.Cross(v).Mul(2 * in.J / r3))
	}
	return a
}

// StepSize is large far away and shrinks smoothly towards the horizon.
func (in *Integrator) StepSize(r Real) Real {
	return clamp(in.InitialStep*smoothstep(in.Capture, in.Far, r), in.MinStep, in.InitialStep)
}

// Step advances s by dt with a velocity-Verlet update and renormalizes the velocity.
func (in *Integrator) Step(s *RayState, dt Real) {
	a0 := in.Acceleration(s.Pos, s.Vel)
	p := s.Pos.Add(s.Vel.Mul(dt)).Add(a0.Mul(0.5 * dt * dt))
	a1 := in.Acceleration(p, s.Vel)
	v := norm(s.Vel.Add(a0.Add(a1).Mul(0.5 * dt)))

	s.Pos, s.Vel = p, v
	s.Affine += dt
	s.Steps++

	phi := azimuth(p)
	s.winding += wrapAngle(phi - s.phi)
	s.phi = phi
	s.Orbits = int(s.winding / (2 * math.Pi))

	if r := p.Len(); r < s.MinRadius {
		s.MinRadius = r
	}
}

// Trace integrates a ray from origin along dir until it is captured, escapes or
// runs out of budget.
func (in *Integrator) Trace(origin, dir Vec3) RayState {
	return in.TraceFunc(origin, dir, nil)
}

// TraceFunc is Trace calling fn after every step.
func (in *Integrator) TraceFunc(origin, dir Vec3, fn func(*RayState)) RayState {
	r := origin.Len()
	s := RayState{
		Pos:       origin,
		Vel:       norm(dir),
		phi:       azimuth(origin),
		MinRadius: r,
	}
	if r < in.Capture {
		s.Captured = true
		return s
	}
	if !in.enterFarField(&s) {
		s.Escaped = true
		return s
	}
	r = s.Pos.Len()
	// escape radius and path budget both scale with where integration starts
	reach := math.Max(in.MaxDistance, EscapeMargin*r)
	maxAffine := s.Affine + reach
	for s.Steps < in.Budget {
		in.Step(&s, in.StepSize(r))
		r = s.Pos.Len()
		if r < in.Capture {
			s.Captured = true
		} else if r > reach || s.Affine > maxAffine {
			s.Escaped = true
		}
		if fn != nil {
			fn(&s)
		}
		if s.Captured || s.Escaped {
			return s
		}
	}
	s.exhausted = true
	return s
}

// enterFarField moves a ray starting beyond the far field straight onto its
// boundary sphere. It returns false when the straight line never reaches it.
func (in *Integrator) enterFarField(s *RayState) bool {
	r := s.Pos.Len()
	if r <= in.FarField {
		return true
	}
	b := s.Pos.Dot(s.Vel)
	disc := b*b - (r*r - in.FarField*in.FarField)
	if b < 0 {
		s.MinRadius = math.Sqrt(math.Max(r*r-b*b, 0))
	}
	if disc <= 0 {
		return false
	}
	t := -b - math.Sqrt(disc)
	if t <= 0 {
		return false
	}
	s.Pos = s.Pos.Add(s.Vel.Mul(t))
	s.Affine += t
	phi := azimuth(s.Pos)
	s.winding += wrapAngle(phi - s.phi)
	s.phi = phi
	s.MinRadius = s.Pos.Len()
	return true
}
