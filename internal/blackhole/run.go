package blackhole

import (
	"math"
	"path/filepath"
	"strings"
	"time"
)

// Run renders cfg.Frames frames without a window, orbiting the camera by
// OrbitDegPerFrame and advancing time by 1/FPS per frame, then writes a GIF
// (or a PNG sequence when PNG is set) and optionally a raw dump.
func Run(cfg *Config) error {
	tables := NewTables(cfg.Tables)
	defer tables.Close()
	DebugLog("Tables: %s", tables)

	s := cfg.InitialState()
	W, H, N := cfg.Width, cfg.Height, cfg.Frames

	est := EstimateFrame(NewFrame(s, W, H, cfg.Integrator, tables), cfg.ProbeRays)
	Logger().Info("estimate",
		"probes", est.Probes,
		"meanSteps", est.MeanSteps,
		"captured", est.Captured,
		"escaped", est.Escaped,
		"exhausted", est.Exhausted,
	)

	film := NewFilm(W, H, N)
	orbit := cfg.OrbitDegPerFrame * math.Pi / 180
	dt := 1 / cfg.FPS

	start := time.Now()
	var total RenderStats
	for k := 0; k < N; k++ {
		f := NewFrame(s, W, H, cfg.Integrator, tables)
		st := RenderFrame(f, film.Frame(k))
		total.Merge(st)
		film.Labels[k] = s.Summary()
		DebugLog("Frame %d/%d: %s", k+1, N, st)
		s = Reduce(s, Tick(dt), Adjust(EventOrbit, orbit))
	}
	Logger().Info("rendered", "frames", N, "elapsed", time.Since(start), "stats", total.String())

	base := strings.TrimSuffix(cfg.GIFOut, filepath.Ext(cfg.GIFOut))
	if RAW {
		path := base + ".raw"
		if err := film.SaveRawRGB64(path); err != nil {
			return err
		}
		Logger().Info("saved raw frames", "path", path)
	}
	if PNG {
		prefix := strings.Replace(base, "gifs/", "pngs/", 1)
		if err := SavePNGSequence16(film, prefix); err != nil {
			return err
		}
		Logger().Info("saved PNG sequence", "prefix", prefix)
		return nil
	}
	if err := SaveAnimatedGIF(film, cfg.GIFOut, cfg.GIFDelay); err != nil {
		return err
	}
	Logger().Info("saved animated GIF", "path", cfg.GIFOut)
	return nil
}
