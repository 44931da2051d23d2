package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// unitMetrics is a convenient metrics value: long axis X, unit scales.
func unitMetrics() Metrics {
	return Metrics{
		F:        [3]float32{1, 1, 1},
		Red:      [3]float32{1, 1, 1},
		LongAxis: 0,
		Dir:      math.Vec3{X: 1},
		FV:       1,
		FH:       1,
	}
}

// ringRadius returns the radius of one ring around the X long axis.
func ringRadius(t *testing.T, g *scene.SurfaceGrid, row int) float32 {
	t.Helper()
	p := g.At(row, 0)
	return math.Vec3{Y: p.Y, Z: p.Z}.Length()
}

func TestBuildProfileRings(t *testing.T) {
	st, err := Overrides{
		ShaftWidth: Float32Ptr(2), // cone width 24, cone length 72
		RingPoints: IntPtr(8),
	}.Resolve()
	require.NoError(t, err)

	g := BuildProfile(st, unitMetrics())
	require.Equal(t, NumRings, g.Rows)
	require.Equal(t, 8, g.Cols)

	assert.InDelta(t, 0, ringRadius(t, g, RingApex), 1e-5)
	assert.InDelta(t, 12*st.TipFraction, ringRadius(t, g, RingTipBase), 1e-4)
	assert.InDelta(t, 12, ringRadius(t, g, RingConeBase), 1e-4)
	assert.InDelta(t, 12*(1-st.RimFraction), ringRadius(t, g, RingRimInner), 1e-4)
	assert.InDelta(t, 1, ringRadius(t, g, RingBase), 1e-4)
	assert.InDelta(t, 1, ringRadius(t, g, RingShaftStart), 1e-4)
	assert.InDelta(t, 0, ringRadius(t, g, RingShaftEnd), 1e-5)
}

func TestBuildProfileOffsets(t *testing.T) {
	st, err := Overrides{RingPoints: IntPtr(6)}.Resolve()
	require.NoError(t, err)

	g := BuildProfile(st, unitMetrics())
	length := st.ConeLength

	assert.InDelta(t, 0, g.At(RingApex, 0).X, 1e-5)
	assert.InDelta(t, -st.TipFraction*length, g.At(RingTipBase, 0).X, 1e-4)
	for row := RingConeBase; row <= RingShaftEnd; row++ {
		for col := 0; col < g.Cols; col++ {
			assert.InDelta(t, -length, g.At(row, col).X, 1e-4)
		}
	}
}

func TestBuildProfileDegenerateRingsCollapse(t *testing.T) {
	st, err := Overrides{RingPoints: IntPtr(12)}.Resolve()
	require.NoError(t, err)

	g := BuildProfile(st, unitMetrics())
	for col := 1; col < g.Cols; col++ {
		assert.Equal(t, g.At(RingApex, 0), g.At(RingApex, col))
		assert.Equal(t, g.At(RingShaftEnd, 0), g.At(RingShaftEnd, col))
	}
}

func TestBuildProfileColors(t *testing.T) {
	st, err := Overrides{}.Resolve()
	require.NoError(t, err)

	g := BuildProfile(st, unitMetrics())
	assert.Equal(t, st.ConeColor, g.RowColors[RingApex])
	assert.Equal(t, st.ConeColor, g.RowColors[RingTipBase])
	assert.Equal(t, st.RimColor, g.RowColors[RingConeBase])
	assert.Equal(t, st.BaseColor, g.RowColors[RingRimInner])
	assert.Equal(t, st.Color, g.RowColors[RingBase])
	assert.Equal(t, st.Color, g.RowColors[RingShaftStart])
	assert.Equal(t, st.Color, g.RowColors[RingShaftEnd])
}

func TestBuildProfileScales(t *testing.T) {
	st, err := Overrides{RingPoints: IntPtr(6)}.Resolve()
	require.NoError(t, err)

	m := unitMetrics()
	m.FH = 0.5
	m.FV = 2

	g := BuildProfile(st, m)
	assert.InDelta(t, st.ConeWidth/2*0.5, ringRadius(t, g, RingConeBase), 1e-4)
	assert.InDelta(t, -st.ConeLength*2, g.At(RingShaftEnd, 0).X, 1e-3)
}
