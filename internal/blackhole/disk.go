package blackhole

import "math"

// Disk is a thin, Novikov-Thorne inspired accretion disk in the y=0 plane.
type Disk struct {
	Rs         Real
	Inner      Real // ISCO
	Outer      Real
	Thickness  Real // half-thickness per unit radius
	Brightness Real
	TempScale  Real
	Opacity    Real
	Time       Real
	Table      *BlackbodyTable // optional; closed form when nil
}

// DiskSample is the local state of the disk at one point.
type DiskSample struct {
	Temperature Real // Kelvin
	Density     Real
	Speed       Real // orbital speed in units of c
	Velocity    Vec3
	Color       RGB
	Opacity     Real
}

// NewDisk builds the disk for the current parameters.
func NewDisk(mass, spin, brightness, tempScale, opacity, time Real, table *BlackbodyTable) Disk {
	rs := HorizonRadius(mass)
	return Disk{
		Rs:         rs,
		Inner:      ISCO(mass, spin),
		Outer:      DiskOuterFactor * rs,
		Thickness:  DiskThickness,
		Brightness: brightness,
		TempScale:  tempScale,
		Opacity:    opacity,
		Time:       time,
		Table:      table,
	}
}

// HalfThickness is the Gaussian scale height H(r).
func (d *Disk) HalfThickness(r Real) Real { return d.Thickness * r }

// MaxHalfHeight bounds the slab that contains the disk.
func (d *Disk) MaxHalfHeight() Real { return DiskHeightSigmas * d.HalfThickness(d.Outer) }

// Contains reports whether p lies inside the disk volume.
func (d *Disk) Contains(p Vec3) bool {
	r := cylR(p)
	if r < d.Inner || r > d.Outer {
		return false
	}
	return math.Abs(p.Y()) <= DiskHeightSigmas*d.HalfThickness(r)
}

// OrbitalSpeed is the Keplerian speed sqrt(rs/2r), zero inside the ISCO.
func (d *Disk) OrbitalSpeed(r Real) Real {
	if r < d.Inner || r <= 0 {
		return 0
	}
	return math.Min(math.Sqrt(d.Rs/(2*r)), MaxBeta)
}

// angularSpeed drives the co-rotating patterns.
func (d *Disk) angularSpeed(r Real) Real {
	if r <= 0 {
		return 0
	}
	return d.OrbitalSpeed(r) / r
}

// Temperature is the midplane temperature at in-plane radius r and azimuth phi,
// zero outside [Inner, Outer] and at the inner edge.
func (d *Disk) Temperature(r, phi Real) Real {
	if r < d.Inner || r > d.Outer || d.Inner <= 0 {
		return 0
	}
	x := r / d.Inner
	base := DiskPeakTempK * d.TempScale * math.Pow(x, -0.75) * math.Pow(1-1/math.Sqrt(x), 0.25)
	return base * d.turbulence(r, phi)
}

// turbulence stays within [0.7, 1.3].
func (d *Disk) turbulence(r, phi Real) Real {
	rot := phi + d.angularSpeed(r)*d.Time
	return 1 + 0.2*math.Sin(3*rot-2*math.Log(r))*math.Cos(0.3*d.Time+r) + 0.1*math.Sin(7*rot+1.3*d.Time)
}

// spiral is a logarithmic density wave in [0.5, 1].
func (d *Disk) spiral(r, phi Real) Real {
	rot := phi + d.angularSpeed(r)*d.Time
	return 0.75 + 0.25*math.Sin(2*rot-4*math.Log(r)+0.2*d.Time)
}

// LocalOpacity grows towards the inner edge and follows the spiral pattern.
func (d *Disk) LocalOpacity(r, phi, density Real) Real {
	if r < d.Inner || r > d.Outer {
		return 0
	}
	edge := 0.5 + 0.5*math.Exp(-(r-d.Inner)/d.Inner)
	return clamp01(d.Opacity * density * edge * d.spiral(r, phi))
}

// Color is the emitted blackbody color at temperature t.
func (d *Disk) Color(t Real) RGB {
	if d.Table != nil {
		return d.Table.Color(t)
	}
	return BlackbodyColor(t)
}

// Sample evaluates the disk at p. Points outside the disk return a zero sample.
func (d *Disk) Sample(p Vec3) DiskSample {
	if !d.Contains(p) {
		return DiskSample{}
	}
	r := cylR(p)
	h := d.HalfThickness(r)
	y := p.Y()
	density := math.Exp(-y * y / (2 * h * h))
	phi := azimuth(p)
	t := d.Temperature(r, phi)
	speed := d.OrbitalSpeed(r)
	vel := norm(axisY.Cross(Vec3{p.X(), 0, p.Z()})).Mul(speed)
	return DiskSample{
		Temperature: t,
		Density:     density,
		Speed:       speed,
		Velocity:    vel,
		Color:       d.Color(t),
		Opacity:     d.LocalOpacity(r, phi, density),
	}
}
