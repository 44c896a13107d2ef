package blackhole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderIndependentOfWorkers(t *testing.T) {
	s := DefaultState()
	s.Quality = QualityLow
	s.Jets = true
	f := testFrame(t, s, 24, 16)

	one := NewCanvas(24, 16)
	many := NewCanvas(24, 16)
	st1 := RenderFrameWorkers(f, one, 1)
	stN := RenderFrameWorkers(f, many, 5)
	require.Equal(t, one.Buf, many.Buf)
	assert.Equal(t, st1, stN)
	assert.Equal(t, 24*16, st1.Pixels)
	assert.Equal(t, st1.Pixels, st1.Outcomes[Captured]+st1.Outcomes[Escaped])
	assert.Greater(t, st1.Outcomes[Captured], 0)
	assert.Greater(t, st1.Outcomes[Escaped], 0)

	// more workers than rows
	tiny := NewCanvas(3, 2)
	st := RenderFrameWorkers(testFrame(t, s, 3, 2), tiny, 64)
	assert.Equal(t, 6, st.Pixels)
}

func TestRenderFrameFillsCanvas(t *testing.T) {
	s := DefaultState()
	s.Quality = QualityLow
	f := testFrame(t, s, 32, 18)
	c := NewCanvas(32, 18)
	st := RenderFrame(f, c)
	lit := 0
	for j := 0; j < c.Height; j++ {
		for i := 0; i < c.Width; i++ {
			if c.At(i, j).Luma() > 0.3 {
				lit++
			}
		}
	}
	assert.Greater(t, lit, 0)
	assert.Greater(t, st.MeanSteps(), 0.0)
	assert.LessOrEqual(t, st.MaxSteps, QualityLow.StepBudget())
}

func TestRenderStatsMerge(t *testing.T) {
	a := RenderStats{Pixels: 2, Steps: 10, MaxSteps: 6, Exhausted: 1}
	a.Outcomes[Captured] = 1
	a.Outcomes[Escaped] = 1
	b := RenderStats{Pixels: 2, Steps: 30, MaxSteps: 20, Orbiting: 1}
	b.Outcomes[Escaped] = 2
	a.Merge(b)
	assert.Equal(t, 4, a.Pixels)
	assert.Equal(t, 0.25, a.Fraction(Captured))
	assert.Equal(t, 0.75, a.Fraction(Escaped))
	assert.Equal(t, 10.0, a.MeanSteps())
	assert.Equal(t, 20, a.MaxSteps)
	assert.Contains(t, a.String(), "captured=25.0%")
	assert.Contains(t, a.String(), "exhausted=1 orbiting=1")

	var empty RenderStats
	assert.Equal(t, 0.0, empty.Fraction(Captured))
	assert.Equal(t, 0.0, empty.MeanSteps())
}

func TestEstimateFrame(t *testing.T) {
	s := DefaultState()
	s.Quality = QualityLow
	f := testFrame(t, s, 64, 36)
	e := EstimateFrame(f, 200)
	require.Greater(t, e.Probes, 100)
	assert.LessOrEqual(t, e.Probes, 200)
	assert.Greater(t, e.Captured, 0.0)
	assert.Greater(t, e.Escaped, 0.0)
	assert.InDelta(t, 1.0, e.Captured+e.Escaped, 1e-9)
	assert.Greater(t, e.MeanSteps, 0.0)

	assert.Equal(t, Estimate{}, EstimateFrame(f, 0))
}

func TestCanvasAndFilm(t *testing.T) {
	film := NewFilm(4, 3, 2)
	film.Frame(1).Set(3, 2, RGB{0.5, 0.25, 1})
	assert.Equal(t, RGB{0.5, 0.25, 1}, film.Frame(1).At(3, 2))
	assert.Equal(t, RGB{}, film.Frame(0).At(3, 2))
	assert.Equal(t, 1.0, film.Buf[len(film.Buf)-1])

	img := film.Frame(1).NRGBA()
	px := img.NRGBAAt(3, 2)
	assert.Equal(t, uint8(128), px.R)
	assert.Equal(t, uint8(255), px.B)
	assert.Equal(t, uint8(255), px.A)

	img16 := film.Frame(1).NRGBA64()
	assert.Equal(t, uint16(65535), img16.NRGBA64At(3, 2).B)

	assert.Panics(t, func() { NewCanvas(0, 1) })
	assert.Panics(t, func() { NewFilm(1, 1, 0) })
}
