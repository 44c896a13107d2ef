package blackhole

import (
	"fmt"
	"math"
)

// Camera orbits the black hole: Angle around the spin axis, Height above the disk
// plane, FOV is the vertical field of view in degrees.
type Camera struct {
	Distance Real `json:"distance" toml:"distance"`
	Angle    Real `json:"angle" toml:"angle"`
	Height   Real `json:"height" toml:"height"`
	FOV      Real `json:"fov" toml:"fov"`
}

// Position is the camera location in world space.
func (c Camera) Position() Vec3 {
	return Vec3{c.Distance * math.Sin(c.Angle), c.Height, c.Distance * math.Cos(c.Angle)}
}

// State is the full set of user-controlled simulation parameters. It is a value:
// change it only through Apply.
type State struct {
	Mass            Real    `json:"mass" toml:"mass"`
	Spin            Real    `json:"spin" toml:"spin"`
	DiskBrightness  Real    `json:"diskBrightness" toml:"diskBrightness"`
	DiskTemperature Real    `json:"diskTemperature" toml:"diskTemperature"`
	DiskOpacity     Real    `json:"diskOpacity" toml:"diskOpacity"`
	Quality         Quality `json:"quality" toml:"quality"`
	PhotonRings     bool    `json:"photonRings" toml:"photonRings"`
	EinsteinRings   bool    `json:"einsteinRings" toml:"einsteinRings"`
	Jets            bool    `json:"jets" toml:"jets"`
	Disk            bool    `json:"disk" toml:"disk"`
	Paused          bool    `json:"paused" toml:"paused"`
	TimeScale       Real    `json:"timeScale" toml:"timeScale"`
	Time            Real    `json:"time" toml:"time"`
	Camera          Camera  `json:"camera" toml:"camera"`
}

// DefaultState is the startup (and reset) state.
func DefaultState() State {
	return State{
		Mass:            DefaultMass,
		Spin:            DefaultSpin,
		DiskBrightness:  DefaultDiskBrightness,
		DiskTemperature: DefaultDiskTemperature,
		DiskOpacity:     DefaultDiskOpacity,
		Quality:         DefaultQuality,
		PhotonRings:     true,
		EinsteinRings:   false,
		Jets:            false,
		Disk:            true,
		TimeScale:       DefaultTimeScale,
		Camera: Camera{
			Distance: DefaultCameraDistance,
			Angle:    DefaultCameraAngle,
			Height:   DefaultCameraHeight,
			FOV:      DefaultCameraFOV,
		},
	}
}

// Clamp brings every parameter inside its documented bounds.
func (s State) Clamp() State {
	s.Mass = clamp(s.Mass, MinMass, MaxMass)
	s.Spin = clamp(s.Spin, 0, MaxSpin)
	s.DiskBrightness = clamp(s.DiskBrightness, 0, MaxDiskBrightness)
	s.DiskTemperature = clamp(s.DiskTemperature, MinDiskTemperature, MaxDiskTemperature)
	s.DiskOpacity = clamp01(s.DiskOpacity)
	s.Quality = s.Quality.clamp()
	s.TimeScale = clamp(s.TimeScale, 0, MaxTimeScale)
	if !(s.Time >= 0) {
		s.Time = 0
	}
	s.Camera.Distance = clamp(s.Camera.Distance, MinCameraDistance, MaxCameraDistance)
	s.Camera.Angle = wrapAngle(s.Camera.Angle)
	s.Camera.Height = clamp(s.Camera.Height, -MaxCameraHeight, MaxCameraHeight)
	s.Camera.FOV = clamp(s.Camera.FOV, MinCameraFOV, MaxCameraFOV)
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Summary is the status printout, one parameter group per line.
func (s State) Summary() []string {
	rs := HorizonRadius(s.Mass)
	return []string{
		fmt.Sprintf("mass %.2f  spin %.3f  rs %.2f  isco %.2f", s.Mass, s.Spin, rs, ISCO(s.Mass, s.Spin)),
		fmt.Sprintf("disk %s  brightness %.2f  temperature %.2f  opacity %.2f", onOff(s.Disk), s.DiskBrightness, s.DiskTemperature, s.DiskOpacity),
		fmt.Sprintf("rings %s  einstein %s  jets %s  quality %s", onOff(s.PhotonRings), onOff(s.EinsteinRings), onOff(s.Jets), s.Quality),
		fmt.Sprintf("camera d=%.1f angle=%.0f° h=%.1f fov=%.0f°", s.Camera.Distance, s.Camera.Angle*180/math.Pi, s.Camera.Height, s.Camera.FOV),
		fmt.Sprintf("time %.2f  scale %.2f  paused %s", s.Time, s.TimeScale, onOff(s.Paused)),
	}
}
