package viewer

import (
	"fmt"
	"image"
	"io"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	bh "github.com/lukaszgryglicki/blackhole/internal/blackhole"
)

// Viewer is the interactive host: it owns the window, the input queue, the
// parameter state and the presentation resources.
type Viewer struct {
	cfg    *bh.Config
	state  bh.State
	events []bh.Event
	tables *bh.Tables
	ptr    pointer
	out    io.Writer

	window  *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32
	tex     uint32
	canvas  *bh.Canvas
	img     *image.NRGBA
}

// New prepares a viewer for cfg; nothing is created until Run.
func New(cfg *bh.Config) *Viewer {
	return &Viewer{cfg: cfg, state: cfg.InitialState(), out: os.Stdout}
}

// State is the current parameter state.
func (v *Viewer) State() bh.State { return v.state }

func (v *Viewer) push(e ...bh.Event) { v.events = append(v.events, e...) }

// step folds the queued input and dt seconds of time into the state.
func (v *Viewer) step(dt float64) {
	v.push(bh.Tick(dt))
	v.state = bh.Reduce(v.state, v.events...)
	v.events = v.events[:0]
}

// reload applies a new config on top of the running state.
func (v *Viewer) reload(cfg *bh.Config) {
	if cfg.Tables != v.cfg.Tables {
		v.tables.Close()
		v.tables = bh.NewTables(cfg.Tables)
	}
	v.state = cfg.Params.Apply(v.state)
	v.cfg = cfg
}

// renderSize is the internal resolution for a framebuffer of w by h pixels.
func renderSize(w, h int, scale float64) (int, int) {
	rw, rh := int(float64(w)*scale), int(float64(h)*scale)
	return max(rw, 1), max(rh, 1)
}

// Run opens the window and loops until it is closed. configPath, when not
// empty, is watched for live changes.
func (v *Viewer) Run(configPath string) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(v.cfg.Width, v.cfg.Height, v.cfg.Title, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	v.window = window
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	bh.Logger().Info("opengl", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	if v.program, err = newProgram(vertexShader, fragmentShader); err != nil {
		return fmt.Errorf("presentation program: %w", err)
	}
	defer gl.DeleteProgram(v.program)
	v.initQuad()
	defer v.freeQuad()

	v.tables = bh.NewTables(v.cfg.Tables)
	defer func() { v.tables.Close() }()

	var watcher *configWatcher
	if configPath != "" {
		if watcher, err = watchConfig(configPath); err != nil {
			bh.Logger().Warn("config watch disabled", "path", configPath, "err", err)
		} else {
			defer watcher.Close()
		}
	}

	window.SetKeyCallback(v.onKey)
	window.SetMouseButtonCallback(v.onMouseButton)
	window.SetCursorPosCallback(v.onCursor)
	window.SetScrollCallback(v.onScroll)

	bh.PrintHelp(v.out)

	last := glfw.GetTime()
	fpsStart, frames := last, 0
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now

		if watcher != nil {
			if cfg, ok := watcher.latest(); ok {
				v.reload(cfg)
			}
		}
		v.step(dt)

		fbw, fbh := window.GetFramebufferSize()
		rw, rh := renderSize(fbw, fbh, v.cfg.RenderScale)
		v.ensureCanvas(rw, rh)

		frame := bh.NewFrame(v.state, rw, rh, v.cfg.Integrator, v.tables)
		stats := bh.RenderFrame(frame, v.canvas)
		v.upload()

		gl.Viewport(0, 0, int32(fbw), int32(fbh))
		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.UseProgram(v.program)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, v.tex)
		gl.BindVertexArray(v.vao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		if now-fpsStart >= 1 {
			bh.DebugLog("fps=%.1f %dx%d %s", float64(frames)/(now-fpsStart), rw, rh, stats)
			fpsStart, frames = now, 0
		}
	}
	return nil
}

func (v *Viewer) initQuad() {
	vertices := []float32{-1, -1, -1, 1, 1, -1, 1, 1}
	gl.GenVertexArrays(1, &v.vao)
	gl.BindVertexArray(v.vao)
	gl.GenBuffers(1, &v.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, v.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	pos := uint32(gl.GetAttribLocation(v.program, gl.Str("position\x00")))
	gl.EnableVertexAttribArray(pos)
	gl.VertexAttribPointer(pos, 2, gl.FLOAT, false, 0, nil)

	gl.UseProgram(v.program)
	gl.Uniform1i(gl.GetUniformLocation(v.program, gl.Str("frame\x00")), 0)

	gl.GenTextures(1, &v.tex)
	gl.BindTexture(gl.TEXTURE_2D, v.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (v *Viewer) freeQuad() {
	gl.DeleteTextures(1, &v.tex)
	gl.DeleteBuffers(1, &v.vbo)
	gl.DeleteVertexArrays(1, &v.vao)
}

// ensureCanvas (re)allocates the canvas and texture storage on resize.
func (v *Viewer) ensureCanvas(w, h int) {
	if v.canvas != nil && v.canvas.Width == w && v.canvas.Height == h {
		return
	}
	v.canvas = bh.NewCanvas(w, h)
	v.img = image.NewNRGBA(image.Rect(0, 0, w, h))
	gl.BindTexture(gl.TEXTURE_2D, v.tex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(w), int32(h), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	bh.DebugLog("render target %dx%d", w, h)
}

func (v *Viewer) upload() {
	v.canvas.FillNRGBA(v.img)
	if bh.HUD {
		bh.DrawHUD(v.img, v.state.Summary())
	}
	gl.BindTexture(gl.TEXTURE_2D, v.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(v.canvas.Width), int32(v.canvas.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(v.img.Pix))
}

// handleKey queues the events for key and runs host commands.
func (v *Viewer) handleKey(key glfw.Key) command {
	events, cmd := keyEvents(key)
	v.push(events...)
	switch cmd {
	case cmdHelp:
		bh.PrintHelp(v.out)
	case cmdStatus:
		bh.PrintStatus(v.out, bh.Reduce(v.state, v.events...))
	}
	return cmd
}

func (v *Viewer) onKey(w *glfw.Window, key glfw.Key, _ int, act glfw.Action, _ glfw.ModifierKey) {
	if act != glfw.Press && act != glfw.Repeat {
		return
	}
	if v.handleKey(key) == cmdQuit {
		w.SetShouldClose(true)
	}
}

func (v *Viewer) onMouseButton(w *glfw.Window, button glfw.MouseButton, act glfw.Action, _ glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	x, y := w.GetCursorPos()
	v.ptr.button(act == glfw.Press, x, y)
}

func (v *Viewer) onCursor(_ *glfw.Window, x, y float64) {
	if e, ok := v.ptr.move(x, y); ok {
		v.push(e)
	}
}

func (v *Viewer) onScroll(_ *glfw.Window, _, yoff float64) {
	v.push(scrollEvent(yoff))
}
