package blackhole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeflectionTableMatchesFormula(t *testing.T) {
	tb := NewDeflectionTable(DeflectionRadiusBins, DeflectionImpactBins)
	require.Len(t, tb.Data, DeflectionRadiusBins*DeflectionImpactBins)
	for _, c := range []struct{ r, b Real }{
		{2, 0.1}, {5, 2.6}, {10, 3}, {25, 7.5}, {52, 10.1}, {3.3, 4.4},
	} {
		assert.InDelta(t, RemainingDeflection(c.r, c.b, 1), tb.Sample(c.r, c.b), 2e-2, "r=%.1f b=%.1f", c.r, c.b)
	}
}

func TestDeflectionTableClampsToEdge(t *testing.T) {
	tb := NewDeflectionTable(16, 16)
	assert.Equal(t, tb.Sample(tb.MinR, tb.MinB), tb.Sample(-5, -5))
	assert.Equal(t, tb.Sample(tb.MaxR, tb.MaxB), tb.Sample(1e6, 1e6))
	assert.Equal(t, tb.Data[0], tb.Sample(tb.MinR, tb.MinB))
}

func TestBlackbodyTable(t *testing.T) {
	tb := NewBlackbodyTable(BlackbodySize)
	assert.Equal(t, RGB{}, tb.Sample(0))
	assert.Equal(t, tb.Data[len(tb.Data)-1], tb.Sample(2))
	assert.Equal(t, RGB{}, tb.Sample(-1))
	want := BlackbodyColor(6500)
	got := tb.Color(6500)
	assert.InDelta(t, want.R, got.R, 0.05)
	assert.InDelta(t, want.G, got.G, 0.05)
	assert.InDelta(t, want.B, got.B, 0.05)
}

func TestTablesLifecycle(t *testing.T) {
	tb := NewTables(TablesConfig{RadiusBins: 8, ImpactBins: 4, BlackbodySize: 32})
	assert.Equal(t, 8, tb.Deflection.NR)
	assert.Equal(t, 4, tb.Deflection.NB)
	assert.Len(t, tb.Blackbody.Data, 32)
	assert.Contains(t, tb.String(), "8x4")
	tb.Close()
	assert.Nil(t, tb.Deflection)
	assert.Equal(t, "tables(closed)", tb.String())

	var none *Tables
	none.Close()

	def := NewTables(TablesConfig{})
	assert.Equal(t, DeflectionRadiusBins, def.Deflection.NR)
	assert.Equal(t, BlackbodySize, len(def.Blackbody.Data))
}
