package glyph

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// BuildSphere builds an aspect-corrected origin marker: a unit lat/long
// sphere scaled to half the configured diameter in points, re-scaled by the
// data aspect ratio and translated to pos. Uniformly colored.
func BuildSphere(st Style, m Metrics, aspect, pos math.Vec3) *scene.SurfaceGrid {
	slices := st.RingPoints
	stacks := slices/2 + 1
	if stacks < 2 {
		stacks = 2
	}
	g := scene.NewSurfaceGrid(stacks, slices)

	radius := st.SphereDiameter / 2 * m.FH
	for row := 0; row < stacks; row++ {
		// Latitude from -pi/2 at the first row to +pi/2 at the last.
		phi := math32.Pi*float32(row)/float32(stacks-1) - math32.Pi/2
		sinPhi, cosPhi := math32.Sincos(phi)
		for col := 0; col < slices; col++ {
			theta := 2 * math32.Pi * float32(col) / float32(slices)
			sinTheta, cosTheta := math32.Sincos(theta)
			unit := math.Vec3{
				X: cosPhi * cosTheta,
				Y: cosPhi * sinTheta,
				Z: sinPhi,
			}
			g.Set(row, col, pos.Add(unit.Scale(radius).Mul(aspect)))
		}
		g.RowColors[row] = st.SphereColor
	}
	return g
}
