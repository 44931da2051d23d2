package glyph

import (
	"fmt"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// rotationEps guards against normalizing a near-zero rotation axis when the
// glyph direction is (anti)parallel to the canonical long axis.
const rotationEps = 1e-6

// SqueezedDir returns the unit direction from a to b in squeezed space
// (component-wise divided by the data aspect ratio). A zero-length vector
// yields ErrDegenerateVector.
func SqueezedDir(a, b, aspect math.Vec3) (math.Vec3, error) {
	delta := b.Sub(a).Div(aspect)
	if delta.IsZero() {
		return math.Vec3{}, fmt.Errorf("%w: origin %v equals target %v", ErrDegenerateVector, a, b)
	}
	return delta.Normalize(), nil
}

// Place orients a canonical glyph mesh from origin a to target b: rotate in
// squeezed space, undo the squeeze, then rigidly shift the cone-side rings so
// the apex lands exactly on b and the shaft-side rings so the shaft end lands
// exactly on a. The two shifts are independent, which pins both endpoints
// regardless of rotation round-off. The canonical mesh is not modified.
func Place(canonical *scene.SurfaceGrid, m Metrics, a, b math.Vec3, aspect math.Vec3) (*scene.SurfaceGrid, math.Vec3, error) {
	sdir, err := SqueezedDir(a, b, aspect)
	if err != nil {
		return nil, math.Vec3{}, err
	}

	axis := m.Dir.Cross(sdir)
	if axis.Length() < rotationEps {
		// Parallel or the 180-degree flip: any perpendicular works.
		axis = m.Dir.Perpendicular()
	}
	rot := math.RotateAxis(axis.Normalize(), m.Dir.AngleTo(sdir))

	out := canonical.Clone()
	for i, p := range out.Verts {
		out.Verts[i] = rot.TransformVec3(p).Mul(aspect)
	}

	// Radius-0 rings collapse to one point, so column 0 is the anchor.
	coneShift := b.Sub(out.At(RingApex, 0))
	shaftShift := a.Sub(out.At(RingShaftEnd, 0))
	for row := RingApex; row <= RingBase; row++ {
		for col := 0; col < out.Cols; col++ {
			out.Set(row, col, out.At(row, col).Add(coneShift))
		}
	}
	for row := RingShaftStart; row <= RingShaftEnd; row++ {
		for col := 0; col < out.Cols; col++ {
			out.Set(row, col, out.At(row, col).Add(shaftShift))
		}
	}
	return out, sdir, nil
}
