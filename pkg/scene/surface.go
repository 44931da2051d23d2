package scene

import "github.com/Faultbox/quiver3d/pkg/math"

// Color is an RGB triple with components in [0,1].
type Color [3]float32

// Lerp returns c blended toward other by t.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		c[0] + (other[0]-c[0])*t,
		c[1] + (other[1]-c[1])*t,
		c[2] + (other[2]-c[2])*t,
	}
}

// SurfaceGrid is a flat-shaded surface defined by a Rows x Cols lattice of
// vertices. Each row carries one color; the facet strip between rows i and
// i+1 is shaded with the color of row i.
type SurfaceGrid struct {
	Rows, Cols int
	// Verts holds Rows*Cols vertices in row-major order.
	Verts []math.Vec3
	// RowColors holds one color per row.
	RowColors []Color
}

// NewSurfaceGrid allocates a zeroed grid.
func NewSurfaceGrid(rows, cols int) *SurfaceGrid {
	return &SurfaceGrid{
		Rows:      rows,
		Cols:      cols,
		Verts:     make([]math.Vec3, rows*cols),
		RowColors: make([]Color, rows),
	}
}

// At returns the vertex at (row, col).
func (s *SurfaceGrid) At(row, col int) math.Vec3 {
	return s.Verts[row*s.Cols+col]
}

// Set stores the vertex at (row, col).
func (s *SurfaceGrid) Set(row, col int, v math.Vec3) {
	s.Verts[row*s.Cols+col] = v
}

// Row returns the vertex slice for one row.
func (s *SurfaceGrid) Row(row int) []math.Vec3 {
	return s.Verts[row*s.Cols : (row+1)*s.Cols]
}

// Bounds returns the axis-aligned bounding box of all vertices.
func (s *SurfaceGrid) Bounds() Bounds {
	if len(s.Verts) == 0 {
		return Bounds{}
	}
	b := Bounds{Min: s.Verts[0], Max: s.Verts[0]}
	for _, v := range s.Verts[1:] {
		b = b.Extend(v)
	}
	return b
}

// Clone returns a deep copy of the grid.
func (s *SurfaceGrid) Clone() *SurfaceGrid {
	c := &SurfaceGrid{
		Rows:      s.Rows,
		Cols:      s.Cols,
		Verts:     make([]math.Vec3, len(s.Verts)),
		RowColors: make([]Color, len(s.RowColors)),
	}
	copy(c.Verts, s.Verts)
	copy(c.RowColors, s.RowColors)
	return c
}
