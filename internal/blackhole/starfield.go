package blackhole

import "math"

var (
	starClasses = [...]RGB{
		{0.65, 0.78, 1.0}, // blue-white
		{1.0, 1.0, 1.0},
		{1.0, 0.93, 0.78},
		{1.0, 0.68, 0.48},
	}
	spaceTint = RGB{0.0015, 0.0015, 0.003}
)

// hashCell maps a grid cell and salt to [0,1).
func hashCell(i, j int, salt uint32) Real {
	h := uint32(i)*0x8da6b343 ^ uint32(j)*0xd8163841 ^ (salt+1)*0xcb1ab31f
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return Real(h) / 4294967296.0
}

// Starfield is the background seen along dir. Lensing comes from passing the
// ray's final direction rather than the screen direction.
func Starfield(dir Vec3, time, magnification Real) RGB {
	d := norm(dir)
	theta := math.Acos(clamp(d.Y(), -1, 1))
	phi := math.Atan2(d.Z(), d.X())
	u := (phi + math.Pi) / (2 * math.Pi) * StarCellsPhi
	v := theta / math.Pi * StarCellsTheta
	ci, cj := int(math.Floor(u)), int(math.Floor(v))
	fu, fv := u-Real(ci), v-Real(cj)

	if hashCell(ci, cj, 0) > StarDensity {
		return spaceTint
	}
	cx := 0.2 + 0.6*hashCell(ci, cj, 1)
	cy := 0.2 + 0.6*hashCell(ci, cj, 2)
	size := 0.04 + 0.12*hashCell(ci, cj, 3)
	b := hashCell(ci, cj, 4)
	brightness := 0.2 + 3*b*b*b
	class := starClasses[int(hashCell(ci, cj, 5)*Real(len(starClasses)))%len(starClasses)]
	tw := hashCell(ci, cj, 6)
	twinkle := 0.8 + 0.2*math.Sin(time*(1+3*tw)+2*math.Pi*tw)

	dist := math.Hypot(fu-cx, fv-cy) / size
	g := math.Exp(-dist * dist)
	return spaceTint.Add(class.Mul(g * brightness * twinkle * magnification))
}
