package blackhole

import (
	"fmt"
	"math"
)

// TablesConfig sizes the lookup tables.
type TablesConfig struct {
	RadiusBins    int `json:"radiusBins,omitempty" toml:"radiusBins,omitempty"`
	ImpactBins    int `json:"impactBins,omitempty" toml:"impactBins,omitempty"`
	BlackbodySize int `json:"blackbodySize,omitempty" toml:"blackbodySize,omitempty"`
}

func (c TablesConfig) withDefaults() TablesConfig {
	if c.RadiusBins < 2 {
		c.RadiusBins = DeflectionRadiusBins
	}
	if c.ImpactBins < 2 {
		c.ImpactBins = DeflectionImpactBins
	}
	if c.BlackbodySize < 2 {
		c.BlackbodySize = BlackbodySize
	}
	return c
}

// DeflectionTable is a 2D table of remaining deflection angle indexed by
// (radius, impact parameter), both in horizon-radius units.
// Sampling is bilinear and clamped to the edges.
type DeflectionTable struct {
	NR, NB     int
	MinR, MaxR Real
	MinB, MaxB Real
	Data       []Real // flat: i*NB + j
}

// NewDeflectionTable fills a table from RemainingDeflection with rs = 1.
func NewDeflectionTable(nr, nb int) *DeflectionTable {
	if nr < 2 || nb < 2 {
		panic("deflection table needs at least 2 bins per axis")
	}
	t := &DeflectionTable{
		NR: nr, NB: nb,
		MinR: DeflectionMinRadius, MaxR: DeflectionMaxRadius,
		MinB: DeflectionMinImpact, MaxB: DeflectionMaxImpact,
		Data: make([]Real, nr*nb),
	}
	for i := 0; i < nr; i++ {
		r := mix(t.MinR, t.MaxR, Real(i)/Real(nr-1))
		for j := 0; j < nb; j++ {
			b := mix(t.MinB, t.MaxB, Real(j)/Real(nb-1))
			t.Data[t.idx(i, j)] = RemainingDeflection(r, b, 1)
		}
	}
	DebugLog("Created deflection table %dx%d, r=[%.1f, %.1f], b=[%.1f, %.1f]", nr, nb, t.MinR, t.MaxR, t.MinB, t.MaxB)
	return t
}

func (t *DeflectionTable) idx(i, j int) int { return i*t.NB + j }

// Sample returns the bilinearly interpolated value at radius r and impact b.
func (t *DeflectionTable) Sample(r, b Real) Real {
	u := clamp01((r-t.MinR)/(t.MaxR-t.MinR)) * Real(t.NR-1)
	v := clamp01((b-t.MinB)/(t.MaxB-t.MinB)) * Real(t.NB-1)
	i0, j0 := int(u), int(v)
	i1, j1 := min(i0+1, t.NR-1), min(j0+1, t.NB-1)
	fu, fv := u-Real(i0), v-Real(j0)
	a := mix(t.Data[t.idx(i0, j0)], t.Data[t.idx(i0, j1)], fv)
	c := mix(t.Data[t.idx(i1, j0)], t.Data[t.idx(i1, j1)], fv)
	return mix(a, c, fu)
}

// BlackbodyTable maps normalized temperature [0,1] (0..20000 K) to RGB.
// Sampling is linear and clamped to the edges.
type BlackbodyTable struct {
	MaxTemp Real
	Data    []RGB
}

// NewBlackbodyTable fills a table from BlackbodyColor.
func NewBlackbodyTable(n int) *BlackbodyTable {
	if n < 2 {
		panic("blackbody table needs at least 2 entries")
	}
	t := &BlackbodyTable{MaxTemp: BlackbodyMaxTempK, Data: make([]RGB, n)}
	for i := range t.Data {
		t.Data[i] = BlackbodyColor(t.MaxTemp * Real(i) / Real(n-1))
	}
	DebugLog("Created blackbody table n=%d, T=[0, %.0f]K", n, t.MaxTemp)
	return t
}

// Sample returns the color at normalized temperature x.
func (t *BlackbodyTable) Sample(x Real) RGB {
	if math.IsNaN(x) {
		return RGB{}
	}
	u := clamp01(x) * Real(len(t.Data)-1)
	i0 := int(u)
	i1 := min(i0+1, len(t.Data)-1)
	return lerpRGB(t.Data[i0], t.Data[i1], u-Real(i0))
}

// Color returns the table color at temperature k in Kelvin.
func (t *BlackbodyTable) Color(k Real) RGB { return t.Sample(k / t.MaxTemp) }

// Tables owns the lookup tables for the lifetime of a render context.
// Build once with NewTables, release with Close.
type Tables struct {
	Deflection *DeflectionTable
	Blackbody  *BlackbodyTable
}

// NewTables builds both tables.
func NewTables(cfg TablesConfig) *Tables {
	cfg = cfg.withDefaults()
	return &Tables{
		Deflection: NewDeflectionTable(cfg.RadiusBins, cfg.ImpactBins),
		Blackbody:  NewBlackbodyTable(cfg.BlackbodySize),
	}
}

// Close drops the table data.
func (t *Tables) Close() {
	if t == nil {
		return
	}
	t.Deflection = nil
	t.Blackbody = nil
}

func (t *Tables) String() string {
	if t == nil || t.Deflection == nil || t.Blackbody == nil {
		return "tables(closed)"
	}
	return fmt.Sprintf("tables(deflection %dx%d, blackbody %d)", t.Deflection.NR, t.Deflection.NB, len(t.Blackbody.Data))
}
