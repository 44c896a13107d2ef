package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/lukaszgryglicki/blackhole/internal/blackhole"
	"github.com/lukaszgryglicki/blackhole/internal/viewer"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	blackhole.Debug = os.Getenv("DEBUG") != ""
	blackhole.PNG = os.Getenv("PNG") != ""
	blackhole.RAW = os.Getenv("RAW") != ""
	blackhole.HUD = os.Getenv("NO_HUD") == ""
	headless := os.Getenv("HEADLESS") != ""
	profile := os.Getenv("PROFILE") != ""

	level := slog.LevelInfo
	if blackhole.Debug {
		level = slog.LevelDebug
	}
	blackhole.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	stop := func() {}
	if profile {
		stop = startProfile("cpu.out")
	}

	path := "scenes/config.json"
	explicit := len(os.Args) > 1
	if explicit {
		path = os.Args[1]
	}
	err := run(path, explicit, headless)
	// os.Exit skips defers, the profile must be flushed first
	stop()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

// startProfile starts CPU profiling into path and returns the function that
// flushes and closes it.
func startProfile(path string) func() {
	f, err := os.Create(path)
	if err != nil {
		panic(err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		panic(err)
	}
	return func() {
		pprof.StopCPUProfile()
		_ = f.Close()
	}
}

func run(path string, explicit, headless bool) error {
	cfg, err := blackhole.LoadConfig(path)
	if err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		blackhole.Logger().Warn("no config, using defaults", "path", path)
		cfg, path = blackhole.DefaultConfig(), ""
	}
	if headless {
		return blackhole.Run(cfg)
	}
	return viewer.New(cfg).Run(path)
}
