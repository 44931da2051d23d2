package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// floatsPerVertex is position xyz plus color rgb.
const floatsPerVertex = 6

// SurfaceRenderer draws scene surface grids as flat-shaded triangles.
// Facet colors come from the grid's ring colors, shaded on the CPU against
// a single directional light.
type SurfaceRenderer struct {
	program uint32
	vao     uint32
	vbo     uint32
	uMVP    int32

	// scratch holds tessellated vertex data between frames to avoid
	// reallocating every draw.
	scratch []float32
}

// NewSurfaceRenderer compiles the surface shader and allocates GL buffers.
// Requires a current OpenGL context.
func NewSurfaceRenderer() (*SurfaceRenderer, error) {
	program, err := compileProgram(surfaceVertexSrc, surfaceFragmentSrc)
	if err != nil {
		return nil, err
	}

	r := &SurfaceRenderer{
		program: program,
		uMVP:    mustUniform(program, "uMVP"),
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(floatsPerVertex * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)

	return r, nil
}

// Release frees the GL resources.
func (r *SurfaceRenderer) Release() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

// CameraMatrix returns the combined projection-view matrix for the view.
func CameraMatrix(v *scene.View, width, height int) math.Mat4 {
	eye := v.CameraPosition()
	target := v.LookTarget()

	aspect := float32(width) / float32(height)
	d := v.Distance()
	proj := math.Perspective(45*math32.Pi/180, aspect, d*0.01, d*10)
	view := math.LookAt(eye, target, math.Vec3{Z: 1})
	return proj.Mul(view)
}

// Draw renders all surfaces of the given groups under the view's camera.
func (r *SurfaceRenderer) Draw(v *scene.View, groups []*scene.Group, width, height int) {
	mvp := CameraMatrix(v, width, height)
	light := v.CameraPosition().Sub(v.LookTarget()).Normalize()

	r.scratch = r.scratch[:0]
	for _, g := range groups {
		for _, s := range g.Surfaces() {
			r.scratch = tessellate(s, light, r.scratch)
		}
	}
	if len(r.scratch) == 0 {
		return
	}

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uMVP, 1, false, mvp.Ptr())

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.scratch)*4, gl.Ptr(r.scratch), gl.DYNAMIC_DRAW)

	gl.Enable(gl.DEPTH_TEST)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.scratch)/floatsPerVertex))

	gl.BindVertexArray(0)
}

// tessellate appends flat-shaded triangles for one surface grid to out.
// Each quad facet between ring rows r and r+1 takes the color of row r,
// scaled by a lambert term from the facet normal. Columns wrap, closing the
// revolved surface between the last and first column.
func tessellate(s *scene.SurfaceGrid, light math.Vec3, out []float32) []float32 {
	for row := 0; row < s.Rows-1; row++ {
		base := s.RowColors[row]
		for col := 0; col < s.Cols; col++ {
			next := (col + 1) % s.Cols
			p00 := s.At(row, col)
			p01 := s.At(row, next)
			p10 := s.At(row+1, col)
			p11 := s.At(row+1, next)

			c := facetColor(base, p00, p01, p10, light)
			out = appendTriangle(out, p00, p01, p10, c)
			out = appendTriangle(out, p01, p11, p10, c)
		}
	}
	return out
}

// facetColor shades the base ring color by the facet's angle to the light.
// Degenerate facets (collapsed rings) keep the unshaded color.
func facetColor(base scene.Color, a, b, c math.Vec3, light math.Vec3) scene.Color {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.IsZero() {
		return base
	}
	lambert := n.Normalize().Dot(light)
	if lambert < 0 {
		lambert = -lambert // surfaces are double-sided
	}
	shade := 0.35 + 0.65*lambert
	return scene.Color{base[0] * shade, base[1] * shade, base[2] * shade}
}

func appendTriangle(out []float32, a, b, c math.Vec3, col scene.Color) []float32 {
	for _, p := range [3]math.Vec3{a, b, c} {
		out = append(out, p.X, p.Y, p.Z, col[0], col[1], col[2])
	}
	return out
}
