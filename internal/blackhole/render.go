package blackhole

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// RenderFrame shades every pixel of c using one worker per CPU.
func RenderFrame(f *Frame, c *Canvas) RenderStats {
	return RenderFrameWorkers(f, c, runtime.NumCPU())
}

// RenderFrameWorkers shades every pixel of c with the given number of workers.
// Rows are interleaved across workers; each pixel is written by exactly one of
// them, so the result does not depend on the worker count.
func RenderFrameWorkers(f *Frame, c *Canvas, workers int) RenderStats {
	if workers < 1 {
		workers = 1
	}
	if workers > c.Height {
		workers = c.Height
	}

	var rows int64
	nextPrint := int64(c.Height / 10)
	if nextPrint < 1 {
		nextPrint = 1
	}

	local := make([]RenderStats, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		wid := w
		go func() {
			defer wg.Done()
			st := &local[wid]
			for j := wid; j < c.Height; j += workers {
				for i := 0; i < c.Width; i++ {
					sh := f.Shade(i, j)
					c.Set(i, j, sh.Color)
					st.add(&sh)
				}
				if done := atomic.AddInt64(&rows, 1); Debug && done%nextPrint == 0 {
					DebugLog("[PROGRESS] %.0f%%", Real(done)*100/Real(c.Height))
				}
			}
		}()
	}
	wg.Wait()

	var stats RenderStats
	for i := range local {
		stats.Merge(local[i])
	}
	return stats
}
