package blackhole

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	hudText     = color.NRGBA{0xE8, 0xE8, 0xF0, 0xFF}
	hudBackdrop = color.NRGBA{0x00, 0x00, 0x00, 0xA0}
)

const hudPad = 4

// DrawHUD writes lines of status text into the top-left corner of dst over a
// translucent backdrop.
func DrawHUD(dst draw.Image, lines []string) {
	if len(lines) == 0 {
		return
	}
	face := basicfont.Face7x13
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(hudText), Face: face}

	width := 0
	for _, l := range lines {
		if w := d.MeasureString(l).Ceil(); w > width {
			width = w
		}
	}
	lineH := face.Metrics().Height.Ceil()
	b := dst.Bounds()
	box := image.Rect(b.Min.X, b.Min.Y, b.Min.X+width+2*hudPad, b.Min.Y+len(lines)*lineH+2*hudPad).Intersect(b)
	draw.Draw(dst, box, image.NewUniform(hudBackdrop), image.Point{}, draw.Over)

	ascent := face.Metrics().Ascent.Ceil()
	for i, l := range lines {
		d.Dot = fixed.P(b.Min.X+hudPad, b.Min.Y+hudPad+ascent+i*lineH)
		d.DrawString(l)
	}
}
