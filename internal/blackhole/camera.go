package blackhole

import "math"

// View is the camera basis for one frame.
type View struct {
	Pos, Forward, Right, Up Vec3
	TanHalf                 Real // tan(fov/2)
	Aspect                  Real // width / height
	Width, Height           int
}

// NewView looks from the orbit camera towards the center. The camera is pushed
// out to minDist when it would sit closer than that.
func NewView(c Camera, width, height int, minDist Real) View {
	pos := c.Position()
	if l := pos.Len(); l < minDist {
		if l == 0 {
			pos = Vec3{0, 0, minDist}
		} else {
			pos = pos.Mul(minDist / l)
		}
	}
	forward := norm(pos.Mul(-1))
	ref := axisY
	if math.Abs(forward.Dot(ref)) > 0.999 {
		ref = Vec3{0, 0, -1}
	}
	right := norm(forward.Cross(ref))
	up := right.Cross(forward)
	aspect := 1.0
	if height > 0 {
		aspect = Real(width) / Real(height)
	}
	return View{
		Pos:     pos,
		Forward: forward,
		Right:   right,
		Up:      up,
		TanHalf: math.Tan(c.FOV * math.Pi / 360),
		Aspect:  aspect,
		Width:   width,
		Height:  height,
	}
}

// UV maps pixel (x, y) (y down) to screen coordinates with v in [-1, 1] up and
// u scaled by the aspect ratio.
func (v *View) UV(x, y int) (Real, Real) {
	u := (2*(Real(x)+0.5)/Real(v.Width) - 1) * v.Aspect
	w := 1 - 2*(Real(y)+0.5)/Real(v.Height)
	return u, w
}

// Ray is the unit world direction through screen point (u, w).
func (v *View) Ray(u, w Real) Vec3 {
	return norm(v.Forward.Add(v.Right.Mul(u * v.TanHalf)).Add(v.Up.Mul(w * v.TanHalf)))
}
