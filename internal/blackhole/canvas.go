package blackhole

import (
	"image"
	"math"
)

// Canvas is one rendered frame: display-referred RGB in [0,1], row 0 at the top.
type Canvas struct {
	Width, Height int
	Buf           []Real // flat: (j*Width + i)*3 + c
}

// NewCanvas allocates a black canvas.
func NewCanvas(width, height int) *Canvas {
	if width <= 0 || height <= 0 {
		panic("canvas resolution must be positive")
	}
	return &Canvas{Width: width, Height: height, Buf: make([]Real, width*height*3)}
}

// Flat buffer index helper (c ∈ {ChR,ChG,ChB}).
func (c *Canvas) idx(i, j, ch int) int {
	return (j*c.Width+i)*3 + ch
}

// Set stores pixel (i, j).
func (c *Canvas) Set(i, j int, col RGB) {
	base := c.idx(i, j, ChR)
	c.Buf[base+ChR] = col.R
	c.Buf[base+ChG] = col.G
	c.Buf[base+ChB] = col.B
}

// At returns pixel (i, j).
func (c *Canvas) At(i, j int) RGB {
	base := c.idx(i, j, ChR)
	return RGB{c.Buf[base+ChR], c.Buf[base+ChG], c.Buf[base+ChB]}
}

func toByte(v Real) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(math.Round(v * 255))
}

func toU16(v Real) uint16 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 65535
	}
	return uint16(math.Round(v * 65535))
}

// NRGBA converts to an 8-bit image.
func (c *Canvas) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	c.FillNRGBA(img)
	return img
}

// FillNRGBA writes the canvas into img, which must have the same size.
func (c *Canvas) FillNRGBA(img *image.NRGBA) {
	for j := 0; j < c.Height; j++ {
		rowOff := j * img.Stride
		for i := 0; i < c.Width; i++ {
			base := c.idx(i, j, ChR)
			p := rowOff + i*4
			img.Pix[p+0] = toByte(c.Buf[base+ChR])
			img.Pix[p+1] = toByte(c.Buf[base+ChG])
			img.Pix[p+2] = toByte(c.Buf[base+ChB])
			img.Pix[p+3] = 255
		}
	}
}

// NRGBA64 converts to a 16-bit image.
func (c *Canvas) NRGBA64() *image.NRGBA64 {
	img := image.NewNRGBA64(image.Rect(0, 0, c.Width, c.Height))
	const pxBytes = 8 // 4 channels * 2 bytes/channel
	for j := 0; j < c.Height; j++ {
		rowOff := j * img.Stride
		for i := 0; i < c.Width; i++ {
			base := c.idx(i, j, ChR)
			r := toU16(c.Buf[base+ChR])
			g := toU16(c.Buf[base+ChG])
			b := toU16(c.Buf[base+ChB])
			p := rowOff + i*pxBytes
			// NRGBA64 stores big-endian uint16 per channel: R, G, B, A.
			img.Pix[p+0] = uint8(r >> 8)
			img.Pix[p+1] = uint8(r)
			img.Pix[p+2] = uint8(g >> 8)
			img.Pix[p+3] = uint8(g)
			img.Pix[p+4] = uint8(b >> 8)
			img.Pix[p+5] = uint8(b)
			img.Pix[p+6] = 0xFF
			img.Pix[p+7] = 0xFF
		}
	}
	return img
}

// Film is a sequence of equally sized frames sharing one flat buffer.
type Film struct {
	Nx, Ny, Nz int
	Buf        []Real     // flat: ((k*Ny + j)*Nx + i)*3 + c
	Labels     [][]string // optional HUD lines per frame
}

// NewFilm allocates nz black frames of nx by ny pixels.
func NewFilm(nx, ny, nz int) *Film {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		panic("film resolution must be positive")
	}
	f := &Film{
		Nx:     nx,
		Ny:     ny,
		Nz:     nz,
		Buf:    make([]Real, nx*ny*nz*3),
		Labels: make([][]string, nz),
	}
	DebugLog("Created film %dx%d, frames=%d", nx, ny, nz)
	return f
}

// Frame returns frame k as a canvas backed by the film buffer.
func (f *Film) Frame(k int) *Canvas {
	n := f.Nx * f.Ny * 3
	return &Canvas{Width: f.Nx, Height: f.Ny, Buf: f.Buf[k*n : (k+1)*n : (k+1)*n]}
}
