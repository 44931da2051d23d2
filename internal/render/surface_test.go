package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

func TestTessellateVertexCount(t *testing.T) {
	g := scene.NewSurfaceGrid(3, 4)
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			g.Set(row, col, math.Vec3{X: float32(col), Y: float32(row)})
		}
	}

	out := tessellate(g, math.Vec3{Z: 1}, nil)

	// (rows-1)*cols facets including the wrap column, two triangles each,
	// three vertices per triangle, six floats per vertex.
	want := 2 * 4 * 2 * 3 * floatsPerVertex
	assert.Len(t, out, want)
}

func TestTessellateUsesLowerRowColor(t *testing.T) {
	g := scene.NewSurfaceGrid(2, 2)
	g.Set(0, 0, math.Vec3{})
	g.Set(0, 1, math.Vec3{X: 1})
	g.Set(1, 0, math.Vec3{Y: 1})
	g.Set(1, 1, math.Vec3{X: 1, Y: 1})
	g.RowColors[0] = scene.Color{1, 0, 0}
	g.RowColors[1] = scene.Color{0, 1, 0}

	// Light along the facet normal: lambert term is 1, no darkening.
	out := tessellate(g, math.Vec3{Z: 1}, nil)
	require.NotEmpty(t, out)

	r, g0, b := out[3], out[4], out[5]
	assert.InDelta(t, 1, r, 1e-4)
	assert.InDelta(t, 0, g0, 1e-4)
	assert.InDelta(t, 0, b, 1e-4)
}

func TestFacetColorDegenerateKeepsBase(t *testing.T) {
	base := scene.Color{0.2, 0.4, 0.6}
	p := math.Vec3{X: 1, Y: 1, Z: 1}
	got := facetColor(base, p, p, p, math.Vec3{Z: 1})
	assert.Equal(t, base, got)
}

func TestFacetColorGrazingLight(t *testing.T) {
	base := scene.Color{1, 1, 1}
	a := math.Vec3{}
	b := math.Vec3{X: 1}
	c := math.Vec3{Y: 1}

	// Light in the facet plane: only the ambient term remains.
	got := facetColor(base, a, b, c, math.Vec3{X: 1})
	assert.InDelta(t, 0.35, got[0], 1e-4)
}

func TestFacetColorDoubleSided(t *testing.T) {
	base := scene.Color{1, 1, 1}
	a := math.Vec3{}
	b := math.Vec3{X: 1}
	c := math.Vec3{Y: 1}

	front := facetColor(base, a, b, c, math.Vec3{Z: 1})
	back := facetColor(base, a, b, c, math.Vec3{Z: -1})
	assert.Equal(t, front, back)
}
