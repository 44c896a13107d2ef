package blackhole

// EventKind names one discrete user action.
type EventKind uint8

const (
	EventNone  EventKind = iota
	EventTick            // advance simulation time by Value seconds
	EventZoom            // camera distance += Value
	EventOrbit           // camera angle += Value (radians)
	EventRaise           // camera height += Value
	EventDrag            // mouse look-around by (DX, DY) pixels
	EventFOV             // field of view += Value (degrees)
	EventMass
	EventSpin
	EventBrightness
	EventTemperature
	EventOpacity
	EventSetQuality
	EventCycleQuality
	EventTogglePhotonRings
	EventToggleEinsteinRings
	EventToggleJets
	EventToggleDisk
	EventTogglePause
	EventTimeScale
	EventReset
)

const (
	dragAngleSens  = 0.005 // radians per pixel
	dragHeightSens = 0.02  // world units per pixel
)

// Event is one input delta.
type Event struct {
	Kind   EventKind
	Value  Real
	DX, DY Real
}

// Tick advances time by dt (scaled by TimeScale, ignored while paused).
func Tick(dt Real) Event { return Event{Kind: EventTick, Value: dt} }

// Adjust is a generic additive event.
func Adjust(kind EventKind, delta Real) Event { return Event{Kind: kind, Value: delta} }

// Toggle flips a boolean parameter.
func Toggle(kind EventKind) Event { return Event{Kind: kind} }

// Drag is a mouse look-around.
func Drag(dx, dy Real) Event { return Event{Kind: EventDrag, DX: dx, DY: dy} }

// SetQuality selects a quality tier.
func SetQuality(q Quality) Event { return Event{Kind: EventSetQuality, Value: Real(q)} }

// Reset restores the defaults.
func Reset() Event { return Event{Kind: EventReset} }

// Apply is the reducer: it returns the state after e, always within bounds.
func Apply(s State, e Event) State {
	switch e.Kind {
	case EventTick:
		if !s.Paused && e.Value > 0 {
			s.Time += e.Value * s.TimeScale
		}
	case EventZoom:
		s.Camera.Distance += e.Value
	case EventOrbit:
		s.Camera.Angle += e.Value
	case EventRaise:
		s.Camera.Height += e.Value
	case EventDrag:
		s.Camera.Angle += e.DX * dragAngleSens
		s.Camera.Height -= e.DY * dragHeightSens
	case EventFOV:
		s.Camera.FOV += e.Value
	case EventMass:
		s.Mass += e.Value
	case EventSpin:
		s.Spin += e.Value
	case EventBrightness:
		s.DiskBrightness += e.Value
	case EventTemperature:
		s.DiskTemperature += e.Value
	case EventOpacity:
		s.DiskOpacity += e.Value
	case EventSetQuality:
		s.Quality = Quality(e.Value)
	case EventCycleQuality:
		s.Quality = (s.Quality + 1) % (QualityUltra + 1)
	case EventTogglePhotonRings:
		s.PhotonRings = !s.PhotonRings
	case EventToggleEinsteinRings:
		s.EinsteinRings = !s.EinsteinRings
	case EventToggleJets:
		s.Jets = !s.Jets
	case EventToggleDisk:
		s.Disk = !s.Disk
	case EventTogglePause:
		s.Paused = !s.Paused
	case EventTimeScale:
		s.TimeScale += e.Value
	case EventReset:
		return DefaultState()
	}
	return s.Clamp()
}

// Reduce folds a batch of events into s.
func Reduce(s State, events ...Event) State {
	for _, e := range events {
		s = Apply(s, e)
	}
	return s
}
