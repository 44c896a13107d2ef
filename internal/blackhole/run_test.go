package blackhole

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig(t *testing.T) *Config {
	t.Helper()
	q := QualityLow
	cfg, err := ParseConfig([]byte(`{"width": 16, "height": 10, "frames": 2, "orbitDegPerFrame": 10, "probeRays": 16}`), "json")
	require.NoError(t, err)
	cfg.Params.Quality = &q
	cfg.Tables = TablesConfig{RadiusBins: 16, ImpactBins: 16, BlackbodySize: 32}
	cfg.GIFOut = filepath.Join(t.TempDir(), "gifs", "bh.gif")
	require.NoError(t, os.MkdirAll(filepath.Dir(cfg.GIFOut), 0o755))
	return cfg
}

func TestRunWritesGIF(t *testing.T) {
	PNG, RAW = false, false
	cfg := smallConfig(t)
	require.NoError(t, Run(cfg))
	_, err := os.Stat(cfg.GIFOut)
	assert.NoError(t, err)
}

func TestRunWritesPNGAndRaw(t *testing.T) {
	PNG, RAW = true, true
	defer func() { PNG, RAW = false, false }()
	cfg := smallConfig(t)
	require.NoError(t, Run(cfg))

	dir := filepath.Dir(filepath.Dir(cfg.GIFOut))
	for _, p := range []string{
		filepath.Join(dir, "gifs", "bh.raw"),
		filepath.Join(dir, "pngs", "bh_0.png"),
		filepath.Join(dir, "pngs", "bh_1.png"),
	} {
		_, err := os.Stat(p)
		assert.NoError(t, err, p)
	}
}
