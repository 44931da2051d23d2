package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

func ringGrid() *scene.SurfaceGrid {
	g := scene.NewSurfaceGrid(2, 3)
	for col := 0; col < 3; col++ {
		g.Set(0, col, math.Vec3{X: float32(col)})
		g.Set(1, col, math.Vec3{X: float32(col), Z: 1})
	}
	g.RowColors[0] = scene.Color{1, 0, 0}
	g.RowColors[1] = scene.Color{0, 0, 1}
	return g
}

func TestWriteOBJCounts(t *testing.T) {
	s := scene.New()
	v := s.NewView()
	v.HoldLimits()
	g := s.NewGroup(v, "t")
	g.AddSurface(ringGrid())

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, []*scene.Group{g}))

	var verts, faces, objects int
	for _, line := range strings.Split(buf.String(), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			verts++
		case strings.HasPrefix(line, "f "):
			faces++
		case strings.HasPrefix(line, "o "):
			objects++
		}
	}

	assert.Equal(t, 6, verts)
	// One row strip of 3 columns, wrap included.
	assert.Equal(t, 3, faces)
	assert.Equal(t, 1, objects)
}

func TestWriteOBJVertexColors(t *testing.T) {
	s := scene.New()
	v := s.NewView()
	v.HoldLimits()
	g := s.NewGroup(v, "t")
	g.AddSurface(ringGrid())

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, []*scene.Group{g}))

	lines := strings.Split(buf.String(), "\n")
	require.Greater(t, len(lines), 2)
	assert.Equal(t, "v 0 0 0 1 0 0", lines[2])
}

func TestWriteOBJFaceIndicesAcrossSurfaces(t *testing.T) {
	s := scene.New()
	v := s.NewView()
	v.HoldLimits()
	g := s.NewGroup(v, "t")
	g.AddSurface(ringGrid())
	g.AddSurface(ringGrid())

	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, []*scene.Group{g}))

	// The second surface's first face starts past the first surface's six
	// vertices.
	assert.Contains(t, buf.String(), "f 7 8 11 10")
}

func TestWriteOBJEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteOBJ(&buf, nil))
	assert.Contains(t, buf.String(), "# exported by quiver3d")
}
