package viewer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bh "github.com/lukaszgryglicki/blackhole/internal/blackhole"
)

func testViewer() (*Viewer, *bytes.Buffer) {
	var buf bytes.Buffer
	v := New(bh.DefaultConfig())
	v.out = &buf
	return v, &buf
}

func TestKeyBindings(t *testing.T) {
	def := bh.DefaultState()
	cases := []struct {
		key   glfw.Key
		check func(s bh.State) bool
	}{
		{glfw.KeyW, func(s bh.State) bool { return s.Camera.Distance < def.Camera.Distance }},
		{glfw.KeyS, func(s bh.State) bool { return s.Camera.Distance > def.Camera.Distance }},
		{glfw.KeyA, func(s bh.State) bool { return s.Camera.Angle < 0 }},
		{glfw.KeyRight, func(s bh.State) bool { return s.Camera.Angle > 0 }},
		{glfw.KeyE, func(s bh.State) bool { return s.Camera.Height > def.Camera.Height }},
		{glfw.KeyDown, func(s bh.State) bool { return s.Camera.Height < def.Camera.Height }},
		{glfw.KeyEqual, func(s bh.State) bool { return s.Mass > def.Mass }},
		{glfw.KeyMinus, func(s bh.State) bool { return s.Mass < def.Mass }},
		{glfw.KeyRightBracket, func(s bh.State) bool { return s.Spin > 0 }},
		{glfw.KeyB, func(s bh.State) bool { return s.DiskBrightness > def.DiskBrightness }},
		{glfw.KeyY, func(s bh.State) bool { return s.DiskTemperature < def.DiskTemperature }},
		{glfw.KeyP, func(s bh.State) bool { return s.DiskOpacity > def.DiskOpacity }},
		{glfw.KeyPeriod, func(s bh.State) bool { return s.TimeScale > def.TimeScale }},
		{glfw.Key1, func(s bh.State) bool { return s.Quality == bh.QualityLow }},
		{glfw.Key4, func(s bh.State) bool { return s.Quality == bh.QualityUltra }},
		{glfw.KeyR, func(s bh.State) bool { return !s.PhotonRings }},
		{glfw.KeyI, func(s bh.State) bool { return s.EinsteinRings }},
		{glfw.KeyJ, func(s bh.State) bool { return s.Jets }},
		{glfw.KeyK, func(s bh.State) bool { return !s.Disk }},
		{glfw.KeySpace, func(s bh.State) bool { return s.Paused }},
	}
	for _, c := range cases {
		events, cmd := keyEvents(c.key)
		require.Equal(t, cmdNone, cmd)
		require.NotEmpty(t, events, "key %d", c.key)
		assert.True(t, c.check(bh.Reduce(def, events...)), "key %d", c.key)
	}

	events, cmd := keyEvents(glfw.KeyBackspace)
	assert.Equal(t, cmdNone, cmd)
	assert.Equal(t, def, bh.Reduce(bh.Reduce(def, bh.Toggle(bh.EventToggleJets)), events...))

	for key, want := range map[glfw.Key]command{glfw.KeyH: cmdHelp, glfw.KeyF1: cmdStatus, glfw.KeyEscape: cmdQuit, glfw.KeyZ: cmdNone} {
		events, cmd := keyEvents(key)
		assert.Empty(t, events)
		assert.Equal(t, want, cmd)
	}
}

func TestPointerDrag(t *testing.T) {
	var p pointer
	_, ok := p.move(10, 10)
	assert.False(t, ok)
	_, ok = p.move(20, 10)
	assert.False(t, ok, "no drag without a button")

	p.button(true, 20, 10)
	e, ok := p.move(30, 5)
	require.True(t, ok)
	assert.Equal(t, bh.Drag(10, -5), e)

	p.button(false, 30, 5)
	_, ok = p.move(40, 5)
	assert.False(t, ok)

	s := bh.Apply(bh.DefaultState(), scrollEvent(1))
	assert.Less(t, s.Camera.Distance, bh.DefaultState().Camera.Distance)
}

func TestViewerStep(t *testing.T) {
	v, buf := testViewer()
	v.handleKey(glfw.KeyJ)
	v.handleKey(glfw.KeyF1)
	assert.Contains(t, buf.String(), "jets on")
	assert.False(t, v.State().Jets, "events apply on the next step")

	v.step(0.5)
	assert.True(t, v.State().Jets)
	assert.InDelta(t, 0.5, v.State().Time, 1e-12)
	assert.Empty(t, v.events)

	buf.Reset()
	assert.Equal(t, cmdHelp, v.handleKey(glfw.KeyH))
	assert.Contains(t, buf.String(), "controls")
	assert.Equal(t, cmdQuit, v.handleKey(glfw.KeyEscape))
}

func TestViewerReload(t *testing.T) {
	v, _ := testViewer()
	v.tables = bh.NewTables(v.cfg.Tables)
	v.step(1)

	spin := 0.5
	cfg, err := bh.ParseConfig([]byte(`{"params": {"spin": 0.5}, "tables": {"radiusBins": 8}}`), "json")
	require.NoError(t, err)
	v.reload(cfg)
	assert.Equal(t, spin, v.State().Spin)
	assert.InDelta(t, 1, v.State().Time, 1e-12, "reload keeps the running state")
	assert.Equal(t, 8, v.tables.Deflection.NR)
}

func TestRenderSize(t *testing.T) {
	w, h := renderSize(800, 600, 0.5)
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
	w, h = renderSize(1, 1, 0.1)
	assert.Equal(t, 1, w)
	assert.Equal(t, 1, h)
}

func TestShaderError(t *testing.T) {
	var err error = &ShaderError{Stage: "fragment", Log: "0:3: syntax error\n"}
	assert.Equal(t, "fragment shader compile error: 0:3: syntax error", err.Error())
	assert.Equal(t, "link error: missing main", (&ShaderError{Stage: "link", Log: "missing main"}).Error())
}

func TestConfigWatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 100}`), 0o644))
	cw, err := watchConfig(path)
	require.NoError(t, err)
	defer cw.Close()

	_, ok := cw.latest()
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(path, []byte(`{"width": 200}`), 0o644))
	var got *bh.Config
	require.Eventually(t, func() bool {
		if cfg, ok := cw.latest(); ok {
			got = cfg
		}
		return got != nil && got.Width == 200
	}, 5*time.Second, 20*time.Millisecond)
}
