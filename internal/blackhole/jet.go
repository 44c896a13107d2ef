package blackhole

import "math"

var jetColor = RGB{0.45, 0.62, 1.0}

const jetGain = 0.05

// Jet is a pair of collimated outflows along the spin axis.
type Jet struct {
	Base   Real
	Length Real
	Width  Real
	Spread Real
	Time   Real
}

// NewJet sizes the jets for a horizon radius.
func NewJet(rs, time Real) Jet {
	return Jet{
		Base:   JetBaseFactor * rs,
		Length: JetLengthFactor * rs,
		Width:  JetWidthFactor * rs,
		Spread: JetSpread,
		Time:   time,
	}
}

// Emission is the beamed jet light picked up by a straight ray, evaluated at the
// ray's closest approach to the axis.
func (j *Jet) Emission(origin, dir Vec3) RGB {
	dx, dz := dir.X(), dir.Z()
	den := dx*dx + dz*dz
	if den < 1e-12 {
		return RGB{}
	}
	t := -(origin.X()*dx + origin.Z()*dz) / den
	if t < 0 {
		return RGB{}
	}
	p := origin.Add(dir.Mul(t))
	h := math.Abs(p.Y())
	fade := smoothstep(j.Base, 1.5*j.Base, h) * (1 - smoothstep(0.7*j.Length, j.Length, h))
	if fade <= 0 {
		return RGB{}
	}
	w := j.Width + j.Spread*h
	d := cylR(p) / w
	core := math.Exp(-d * d)
	axis := axisY
	if p.Y() < 0 {
		axis = axisY.Mul(-1)
	}
	knots := 0.7 + 0.3*math.Sin(2*h/w-3*j.Time)
	return jetColor.Mul(jetGain * core * fade * knots * JetBeaming(axis, dir))
}
