package blackhole

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
)

// SaveAnimatedGIF writes a looping GIF with one image per frame.
// delay is in 100ths of a second (e.g., 4 => 25 fps).
func SaveAnimatedGIF(film *Film, path string, delay int) error {
	Nz := film.Nz
	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, Nz),
		Delay:     make([]int, 0, Nz),
		LoopCount: 0,
	}
	for k := 0; k < Nz; k++ {
		if k%max(1, Nz/10) == 0 {
			DebugLog("[GIF] %.0f%%", Real(k+1)*100/Real(Nz))
		}
		rgba := film.Frame(k).NRGBA()
		if HUD && len(film.Labels[k]) > 0 {
			DrawHUD(rgba, film.Labels[k])
		}

		// Quantize to paletted for GIF
		pimg := image.NewPaletted(rgba.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), rgba, image.Point{})

		out.Image = append(out.Image, pimg)
		out.Delay = append(out.Delay, delay)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, out)
}
