package blackhole

type Real = float64

// Channel indices for readability.
const (
	ChR = 0
	ChG = 1
	ChB = 2
	// geometric units: c = 1, G = 0.5 so that a unit mass has a unit Schwarzschild radius
	G = 0.5
	// parameter defaults (see DefaultState)
	DefaultMass            = 1.0
	DefaultSpin            = 0.0
	DefaultDiskBrightness  = 1.0
	DefaultDiskTemperature = 1.0
	DefaultDiskOpacity     = 0.8
	DefaultTimeScale       = 1.0
	DefaultQuality         = QualityHigh
	DefaultCameraDistance  = 10.0
	DefaultCameraAngle     = 0.0
	DefaultCameraHeight    = 2.0
	DefaultCameraFOV       = 60.0
	// parameter bounds
	MinMass            = 0.1
	MaxMass            = 5.0
	MaxSpin            = 0.998
	MaxDiskBrightness  = 5.0
	MinDiskTemperature = 0.1
	MaxDiskTemperature = 5.0
	MaxTimeScale       = 10.0
	MinCameraDistance  = 3.0
	MaxCameraDistance  = 100.0
	MaxCameraHeight    = 50.0
	MinCameraFOV       = 20.0
	MaxCameraFOV       = 120.0
	// integrator defaults, in horizon-radius units unless noted
	CaptureFactor      = 1.05 // captured below CaptureFactor * rs
	SafetyFactor       = 0.1  // no acceleration below SafetyFactor * rs
	MinStep            = 0.02
	InitialStep        = 2.0
	FarRadius          = 5.0
	MaxDistance        = 50.0 // world units
	FarFieldFactor     = 20.0 // rays travel straight beyond FarFieldFactor * rs
	EscapeMargin       = 1.5  // escape radius is at least EscapeMargin * start radius
	FrameDraggingScale = 1.0
	// disk model
	DiskOuterFactor    = 12.0 // outer edge in rs
	DiskThickness      = 0.02 // half-thickness per unit radius
	DiskHeightSigmas   = 3.0
	DiskPeakTempK      = 20000.0
	DiskAlphaThreshold = 0.99
	// relativistic shading
	JetSpeed        = 0.95
	JetLengthFactor = 15.0 // jet length in rs
	JetBaseFactor   = 1.5  // jets start at JetBaseFactor * rs above the horizon
	JetWidthFactor  = 0.15 // base radius in rs
	JetSpread       = 0.08 // radius growth per unit height
	MaxBeta         = 0.999
	MinLapse        = 1e-3
	// rings & background
	PhotonRingGain     = 250.0
	EinsteinRingWidth  = 0.012
	StarCellsPhi       = 240
	StarCellsTheta     = 120
	StarDensity        = 0.12
	OrbitMagnification = 0.5
	// post
	AmbientGlow      = 0.02
	VignetteStrength = 0.35
	ToneMapK         = 1.0
	DisplayGamma     = 2.2
	// lookup tables
	DeflectionRadiusBins = 128
	DeflectionImpactBins = 128
	DeflectionMinRadius  = 2.0
	DeflectionMaxRadius  = 52.0
	DeflectionMinImpact  = 0.1
	DeflectionMaxImpact  = 10.1
	BlackbodySize        = 256
	BlackbodyMaxTempK    = 20000.0
	// output defaults
	FrameWidth  = 480
	FrameHeight = 270
	Frames      = 48
	FPS         = 24.0
	GIFOut      = "blackhole.gif"
	GIFDelay    = 4 // 100ths of a second per frame
	PNGDepth    = 16
)
