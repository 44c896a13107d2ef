package blackhole

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// SavePNGSequence16 writes one 16-bit PNG per frame as prefix_NN.png, encoding
// frames in parallel.
func SavePNGSequence16(film *Film, prefix string) error {
	Nz := film.Nz

	// Zero-padding width based on number of frames.
	width := 1
	if Nz > 1 {
		width = int(math.Log10(Real(Nz-1))) + 1
	}

	if err := os.MkdirAll(filepath.Dir(prefix), 0o755); err != nil {
		return err
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for k := 0; k < Nz; k++ {
		k := k
		g.Go(func() error {
			img := film.Frame(k).NRGBA64()
			if HUD && len(film.Labels[k]) > 0 {
				DrawHUD(img, film.Labels[k])
			}
			full := fmt.Sprintf("%s_%0*d.png", prefix, width, k)
			if err := writePNG(full, img); err != nil {
				return fmt.Errorf("frame %d: %w", k, err)
			}
			DebugLog("[PNG] %s", full)
			return nil
		})
	}
	return g.Wait()
}

// SavePNG writes a single 8-bit frame.
func SavePNG(c *Canvas, path string, lines []string) error {
	img := c.NRGBA()
	if HUD && len(lines) > 0 {
		DrawHUD(img, lines)
	}
	return writePNG(path, img)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression} // still lossless
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
