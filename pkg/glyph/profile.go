package glyph

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// Ring rows of a glyph mesh, apex first. Rings RingApex..RingBase anchor to
// the target point; RingShaftStart and RingShaftEnd anchor to the origin.
const (
	RingApex = iota
	RingTipBase
	RingConeBase
	RingRimInner
	RingBase
	RingShaftStart
	RingShaftEnd

	NumRings = 7
)

// BuildProfile builds the canonical revolved glyph lattice in squeezed space:
// apex at the coordinate origin, every other ring in the plane
// -ConeLength*FV along the long axis, radii scaled by FH. Columns are spaced
// 2*pi/RingPoints apart; the facet between the last and first column closes
// the surface. Radius-0 rings collapse all columns to one point, which is
// intentional.
func BuildProfile(st Style, m Metrics) *scene.SurfaceGrid {
	n := st.RingPoints
	g := scene.NewSurfaceGrid(NumRings, n)

	coneR := st.ConeWidth / 2 * m.FH
	shaftR := st.ShaftWidth / 2 * m.FH
	radii := [NumRings]float32{
		0,
		coneR * st.TipFraction,
		coneR,
		coneR * (1 - st.RimFraction),
		shaftR,
		shaftR,
		0,
	}

	length := st.ConeLength * m.FV
	offsets := [NumRings]float32{
		0,
		-st.TipFraction * length,
		-length,
		-length,
		-length,
		-length,
		-length,
	}

	// The facet strip between rows i and i+1 renders with row i's color, so
	// each row carries the color of the band below it: tip frustum, cone,
	// rim annulus, base annulus, shaft tube, end cap.
	g.RowColors = []scene.Color{
		st.ConeColor, // apex; patched to TipColor when highlighted
		st.ConeColor,
		st.RimColor,
		st.BaseColor,
		st.Color,
		st.Color,
		st.Color,
	}

	// The cross-section plane is spanned by the two non-long axes.
	u := math.Axis((m.LongAxis + 1) % 3)
	w := math.Axis((m.LongAxis + 2) % 3)

	for row := 0; row < NumRings; row++ {
		axial := m.Dir.Scale(offsets[row])
		for col := 0; col < n; col++ {
			theta := 2 * math32.Pi * float32(col) / float32(n)
			sin, cos := math32.Sincos(theta)
			p := axial.
				Add(u.Scale(radii[row] * cos)).
				Add(w.Scale(radii[row] * sin))
			g.Set(row, col, p)
		}
	}
	return g
}
