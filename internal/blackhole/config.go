package blackhole

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ErrUnknownConfigFormat is returned for config files that are neither JSON nor TOML.
var ErrUnknownConfigFormat = errors.New("unknown config format")

// CameraParams overrides parts of the default camera. Angle is in degrees.
type CameraParams struct {
	Distance *Real `json:"distance,omitempty" toml:"distance,omitempty"`
	AngleDeg *Real `json:"angleDeg,omitempty" toml:"angleDeg,omitempty"`
	Height   *Real `json:"height,omitempty" toml:"height,omitempty"`
	FOV      *Real `json:"fov,omitempty" toml:"fov,omitempty"`
}

// Params overrides parts of the default state; unset fields keep their defaults.
type Params struct {
	Mass            *Real        `json:"mass,omitempty" toml:"mass,omitempty"`
	Spin            *Real        `json:"spin,omitempty" toml:"spin,omitempty"`
	DiskBrightness  *Real        `json:"diskBrightness,omitempty" toml:"diskBrightness,omitempty"`
	DiskTemperature *Real        `json:"diskTemperature,omitempty" toml:"diskTemperature,omitempty"`
	DiskOpacity     *Real        `json:"diskOpacity,omitempty" toml:"diskOpacity,omitempty"`
	Quality         *Quality     `json:"quality,omitempty" toml:"quality,omitempty"`
	PhotonRings     *bool        `json:"photonRings,omitempty" toml:"photonRings,omitempty"`
	EinsteinRings   *bool        `json:"einsteinRings,omitempty" toml:"einsteinRings,omitempty"`
	Jets            *bool        `json:"jets,omitempty" toml:"jets,omitempty"`
	Disk            *bool        `json:"disk,omitempty" toml:"disk,omitempty"`
	Paused          *bool        `json:"paused,omitempty" toml:"paused,omitempty"`
	TimeScale       *Real        `json:"timeScale,omitempty" toml:"timeScale,omitempty"`
	Camera          CameraParams `json:"camera" toml:"camera"`
}

func setReal(dst *Real, src *Real) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

// Apply overlays the set fields onto s and clamps the result.
func (p *Params) Apply(s State) State {
	setReal(&s.Mass, p.Mass)
	setReal(&s.Spin, p.Spin)
	setReal(&s.DiskBrightness, p.DiskBrightness)
	setReal(&s.DiskTemperature, p.DiskTemperature)
	setReal(&s.DiskOpacity, p.DiskOpacity)
	if p.Quality != nil {
		s.Quality = *p.Quality
	}
	setBool(&s.PhotonRings, p.PhotonRings)
	setBool(&s.EinsteinRings, p.EinsteinRings)
	setBool(&s.Jets, p.Jets)
	setBool(&s.Disk, p.Disk)
	setBool(&s.Paused, p.Paused)
	setReal(&s.TimeScale, p.TimeScale)
	setReal(&s.Camera.Distance, p.Camera.Distance)
	if p.Camera.AngleDeg != nil {
		s.Camera.Angle = *p.Camera.AngleDeg * math.Pi / 180
	}
	setReal(&s.Camera.Height, p.Camera.Height)
	setReal(&s.Camera.FOV, p.Camera.FOV)
	return s.Clamp()
}

// Config drives both the viewer and the headless renderer.
type Config struct {
	Width       int    `json:"width" toml:"width"`
	Height      int    `json:"height" toml:"height"`
	Title       string `json:"title,omitempty" toml:"title,omitempty"`
	RenderScale Real   `json:"renderScale,omitempty" toml:"renderScale,omitempty"` // viewer: internal resolution / window resolution
	ProbeRays   int    `json:"probeRays,omitempty" toml:"probeRays,omitempty"`

	// headless output
	Frames           int    `json:"frames,omitempty" toml:"frames,omitempty"`
	FPS              Real   `json:"fps,omitempty" toml:"fps,omitempty"`
	OrbitDegPerFrame Real   `json:"orbitDegPerFrame,omitempty" toml:"orbitDegPerFrame,omitempty"`
	GIFOut           string `json:"gifOut,omitempty" toml:"gifOut,omitempty"`
	GIFDelay         int    `json:"gifDelay,omitempty" toml:"gifDelay,omitempty"`

	Params     Params           `json:"params" toml:"params"`
	Integrator IntegratorConfig `json:"integrator" toml:"integrator"`
	Tables     TablesConfig     `json:"tables" toml:"tables"`
}

const (
	defaultTitle       = "Black Hole"
	defaultRenderScale = 0.5
	defaultProbeRays   = 4096
)

// InitialState is the default state with the configured overrides.
func (c *Config) InitialState() State {
	return c.Params.Apply(DefaultState())
}

func (c *Config) withDefaults() error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid resolution %dx%d", c.Width, c.Height)
	}
	if c.Width == 0 {
		c.Width = FrameWidth
	}
	if c.Height == 0 {
		c.Height = FrameHeight
	}
	if c.Title == "" {
		c.Title = defaultTitle
	}
	if c.RenderScale <= 0 || c.RenderScale > 1 {
		c.RenderScale = defaultRenderScale
	}
	if c.ProbeRays <= 0 {
		c.ProbeRays = defaultProbeRays
	}
	if c.Frames <= 0 {
		c.Frames = Frames
	}
	if c.FPS <= 0 {
		c.FPS = FPS
	}
	if c.GIFOut == "" {
		c.GIFOut = GIFOut
	}
	if c.GIFDelay <= 0 {
		c.GIFDelay = GIFDelay
	}
	c.Integrator = c.Integrator.withDefaults()
	c.Tables = c.Tables.withDefaults()
	return nil
}

// DefaultConfig is the configuration used when no file is given.
func DefaultConfig() *Config {
	c := &Config{}
	_ = c.withDefaults()
	return c
}

// ParseConfig decodes data in the given format ("json" or "toml") and fills defaults.
func ParseConfig(data []byte, format string) (*Config, error) {
	var cfg Config
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConfigFormat, format)
	}
	if err := cfg.withDefaults(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConfig reads a JSON or TOML config, chosen by file extension.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := ParseConfig(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	DebugLog("Loaded config %s: %dx%d frames=%d", path, cfg.Width, cfg.Height, cfg.Frames)
	return cfg, nil
}
