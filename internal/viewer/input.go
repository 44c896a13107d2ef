package viewer

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	bh "github.com/lukaszgryglicki/blackhole/internal/blackhole"
)

// per key press (or repeat)
const (
	zoomStep        = 0.5
	orbitStep       = 0.05 // radians
	heightStep      = 0.2
	massStep        = 0.1
	spinStep        = 0.05
	brightnessStep  = 0.1
	temperatureStep = 0.1
	opacityStep     = 0.05
	timeScaleStep   = 0.1
	scrollZoom      = 0.8 // per wheel notch
)

// command is a host action that is not a parameter change.
type command uint8

const (
	cmdNone command = iota
	cmdHelp
	cmdStatus
	cmdQuit
)

// keyEvents maps one key press to parameter events or a host command.
func keyEvents(key glfw.Key) ([]bh.Event, command) {
	adj := func(kind bh.EventKind, d bh.Real) ([]bh.Event, command) {
		return []bh.Event{bh.Adjust(kind, d)}, cmdNone
	}
	toggle := func(kind bh.EventKind) ([]bh.Event, command) {
		return []bh.Event{bh.Toggle(kind)}, cmdNone
	}
	switch key {
	case glfw.KeyW:
		return adj(bh.EventZoom, -zoomStep)
	case glfw.KeyS:
		return adj(bh.EventZoom, zoomStep)
	case glfw.KeyA, glfw.KeyLeft:
		return adj(bh.EventOrbit, -orbitStep)
	case glfw.KeyD, glfw.KeyRight:
		return adj(bh.EventOrbit, orbitStep)
	case glfw.KeyQ, glfw.KeyDown:
		return adj(bh.EventRaise, -heightStep)
	case glfw.KeyE, glfw.KeyUp:
		return adj(bh.EventRaise, heightStep)
	case glfw.KeyEqual, glfw.KeyKPAdd:
		return adj(bh.EventMass, massStep)
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		return adj(bh.EventMass, -massStep)
	case glfw.KeyLeftBracket:
		return adj(bh.EventSpin, -spinStep)
	case glfw.KeyRightBracket:
		return adj(bh.EventSpin, spinStep)
	case glfw.KeyB:
		return adj(bh.EventBrightness, brightnessStep)
	case glfw.KeyN:
		return adj(bh.EventBrightness, -brightnessStep)
	case glfw.KeyT:
		return adj(bh.EventTemperature, temperatureStep)
	case glfw.KeyY:
		return adj(bh.EventTemperature, -temperatureStep)
	case glfw.KeyO:
		return adj(bh.EventOpacity, -opacityStep)
	case glfw.KeyP:
		return adj(bh.EventOpacity, opacityStep)
	case glfw.KeyComma:
		return adj(bh.EventTimeScale, -timeScaleStep)
	case glfw.KeyPeriod:
		return adj(bh.EventTimeScale, timeScaleStep)
	case glfw.Key1, glfw.Key2, glfw.Key3, glfw.Key4:
		return []bh.Event{bh.SetQuality(bh.Quality(key - glfw.Key1))}, cmdNone
	case glfw.KeyR:
		return toggle(bh.EventTogglePhotonRings)
	case glfw.KeyI:
		return toggle(bh.EventToggleEinsteinRings)
	case glfw.KeyJ:
		return toggle(bh.EventToggleJets)
	case glfw.KeyK:
		return toggle(bh.EventToggleDisk)
	case glfw.KeySpace:
		return toggle(bh.EventTogglePause)
	case glfw.KeyBackspace:
		return []bh.Event{bh.Reset()}, cmdNone
	case glfw.KeyH:
		return nil, cmdHelp
	case glfw.KeyF1:
		return nil, cmdStatus
	case glfw.KeyEscape:
		return nil, cmdQuit
	}
	return nil, cmdNone
}

// pointer turns mouse motion into drag events while the left button is held.
type pointer struct {
	dragging   bool
	lastX      float64
	lastY      float64
	hasLastPos bool
}

func (p *pointer) button(down bool, x, y float64) {
	p.dragging = down
	p.lastX, p.lastY, p.hasLastPos = x, y, true
}

func (p *pointer) move(x, y float64) (bh.Event, bool) {
	if !p.hasLastPos {
		p.lastX, p.lastY, p.hasLastPos = x, y, true
		return bh.Event{}, false
	}
	dx, dy := x-p.lastX, y-p.lastY
	p.lastX, p.lastY = x, y
	if !p.dragging || (dx == 0 && dy == 0) {
		return bh.Event{}, false
	}
	return bh.Drag(dx, dy), true
}

func scrollEvent(yoff float64) bh.Event {
	return bh.Adjust(bh.EventZoom, -yoff*scrollZoom)
}
