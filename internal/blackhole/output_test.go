package blackhole

import (
	"bufio"
	"encoding/binary"
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyFilm() *Film {
	f := NewFilm(8, 6, 3)
	// one bright pixel per frame so files are not all black
	for k := 0; k < f.Nz; k++ {
		f.Frame(k).Set(k, k, RGB{1.0, 0.5, 0.25})
		f.Labels[k] = []string{"frame"}
	}
	return f
}

func TestSaveAnimatedGIF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	require.NoError(t, SaveAnimatedGIF(tinyFilm(), path, 5))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	g, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, g.Image, 3)
	assert.Equal(t, []int{5, 5, 5}, g.Delay)
}

func TestSavePNGSequence16(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "pngs", "frame")
	require.NoError(t, SavePNGSequence16(tinyFilm(), prefix))
	for _, name := range []string{"frame_0.png", "frame_1.png", "frame_2.png"} {
		f, err := os.Open(filepath.Join(filepath.Dir(prefix), name))
		require.NoError(t, err, name)
		img, err := png.Decode(f)
		f.Close()
		require.NoError(t, err, name)
		assert.Equal(t, image.Rect(0, 0, 8, 6), img.Bounds())
		_, is16 := img.(*image.NRGBA64)
		_, isRGBA64 := img.(*image.RGBA64)
		assert.True(t, is16 || isRGBA64, "%s decoded as %T", name, img)
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "one.png")
	c := NewCanvas(4, 4)
	c.Set(1, 1, RGB{1, 1, 1})
	require.NoError(t, SavePNG(c, path, nil))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestFilmSaveRawRGB64(t *testing.T) {
	film := tinyFilm()
	path := filepath.Join(t.TempDir(), "raw", "film.raw")
	require.NoError(t, film.SaveRawRGB64(path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	r := bufio.NewReader(f)

	var hdr [3]int32
	require.NoError(t, binary.Read(r, binary.LittleEndian, &hdr))
	assert.Equal(t, [3]int32{8, 6, 3}, hdr)

	got := make([]float64, len(film.Buf))
	require.NoError(t, binary.Read(r, binary.LittleEndian, got))
	assert.Equal(t, film.Buf, got)

	st, err := f.Stat()
	require.NoError(t, err)
	assert.Equal(t, int64(12+8*len(film.Buf)), st.Size())
}

func TestFilmSaveRawRGB64Errors(t *testing.T) {
	t.Run("negative dims", func(t *testing.T) {
		f := &Film{Nx: -1, Ny: 1, Nz: 1, Buf: make([]Real, 3)}
		assert.Error(t, f.SaveRawRGB64(filepath.Join(t.TempDir(), "neg.raw")))
	})
	t.Run("buf length mismatch", func(t *testing.T) {
		f := &Film{Nx: 1, Ny: 1, Nz: 1, Buf: make([]Real, 2)}
		assert.Error(t, f.SaveRawRGB64(filepath.Join(t.TempDir(), "mismatch.raw")))
	})
}

func TestDrawHUD(t *testing.T) {
	img := NewCanvas(200, 60).NRGBA()
	DrawHUD(img, []string{"mass 1.00", "quality high"})
	lit := 0
	for y := 0; y < 60; y++ {
		for x := 0; x < 200; x++ {
			if img.NRGBAAt(x, y).R > 128 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 10)
	// nothing drawn below the text block
	assert.Equal(t, uint8(0), img.NRGBAAt(199, 59).R)

	blank := NewCanvas(10, 10).NRGBA()
	DrawHUD(blank, nil)
	assert.Equal(t, NewCanvas(10, 10).NRGBA().Pix, blank.Pix)
}
