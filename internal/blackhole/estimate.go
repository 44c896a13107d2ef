package blackhole

import (
	"math"
	"runtime"
	"sync"
)

// Estimate is a cheap preview of what rendering a frame will cost.
type Estimate struct {
	Probes    int
	MeanSteps Real
	Captured  Real // fraction of probes
	Escaped   Real
	Exhausted Real // fraction that hit the step budget before resolution
}

// EstimateFrame traces roughly probes rays on an even pixel grid across all CPUs.
func EstimateFrame(f *Frame, probes int) Estimate {
	if probes <= 0 || f.Width <= 0 || f.Height <= 0 {
		return Estimate{}
	}
	// grid with the frame's aspect ratio
	ny := imax(1, int(Real(f.Height)*sqrtRatio(probes, f.Width*f.Height)))
	nx := imax(1, probes/ny)
	total := nx * ny

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	var wg sync.WaitGroup
	statsCh := make(chan RenderStats, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(wid int) {
			defer wg.Done()
			var local RenderStats
			for n := wid; n < total; n += workers {
				u, v := n%nx, n/nx
				x := (2*u + 1) * f.Width / (2 * nx)
				y := (2*v + 1) * f.Height / (2 * ny)
				sh := f.Shade(x, y)
				local.add(&sh)
			}
			statsCh <- local
		}(w)
	}
	wg.Wait()
	close(statsCh)

	var st RenderStats
	for s := range statsCh {
		st.Merge(s)
	}
	return Estimate{
		Probes:    st.Pixels,
		MeanSteps: st.MeanSteps(),
		Captured:  st.Fraction(Captured),
		Escaped:   st.Fraction(Escaped),
		Exhausted: Real(st.Exhausted) / Real(imax(1, st.Pixels)),
	}
}

func sqrtRatio(a, b int) Real {
	if b <= 0 {
		return 0
	}
	r := Real(a) / Real(b)
	if r > 1 {
		r = 1
	}
	return math.Sqrt(r)
}
