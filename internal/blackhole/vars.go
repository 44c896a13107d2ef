package blackhole

var (
	Debug = false // set to true for verbose debug output
	PNG   = false // set to true to save a PNG sequence (16-bit per channel) instead of a GIF
	RAW   = false // set to true to also dump every frame as raw float64 RGB
	HUD   = true  // set to false to skip the status overlay on written frames
)
