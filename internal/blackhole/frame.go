package blackhole

// Frame is everything the per-pixel program reads. It is built once per frame
// from the State and never modified, so pixels can be shaded in any order.
type Frame struct {
	State          State
	Width, Height  int
	Time           Real
	Rs             Real
	View           View
	CamDist        Real
	Integrator     Integrator
	Disk           Disk
	Jet            Jet
	Tables         *Tables
	EinsteinRadius Real
}

// NewFrame builds the immutable per-frame parameters. tables may be nil, in
// which case the closed-form formulas are evaluated directly.
func NewFrame(s State, width, height int, icfg IntegratorConfig, tables *Tables) *Frame {
	s = s.Clamp()
	rs := HorizonRadius(s.Mass)
	view := NewView(s.Camera, width, height, 2*PhotonSphere(rs))
	camDist := view.Pos.Len()
	var bb *BlackbodyTable
	if tables != nil {
		bb = tables.Blackbody
	}
	f := &Frame{
		State:          s,
		Width:          width,
		Height:         height,
		Time:           s.Time,
		Rs:             rs,
		View:           view,
		CamDist:        camDist,
		Integrator:     NewIntegrator(icfg, s.Mass, s.Spin, s.Quality),
		Disk:           NewDisk(s.Mass, s.Spin, s.DiskBrightness, s.DiskTemperature, s.DiskOpacity, s.Time, bb),
		Jet:            NewJet(rs, s.Time),
		Tables:         tables,
		EinsteinRadius: EinsteinRingRadius(rs, camDist, s.Camera.FOV),
	}
	DebugLogOnce("Frame %dx%d rs=%.3f isco=%.3f budget=%d", width, height, rs, f.Disk.Inner, f.Integrator.Budget)
	return f
}
