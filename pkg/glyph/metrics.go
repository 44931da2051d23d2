// Package glyph builds view-correct 3D arrow glyph meshes: a revolved
// cone/rim/shaft profile sized in points, oriented per origin-target pair,
// with optional camera-facing tip highlighting and origin sphere markers.
//
// The pipeline is synchronous and single-threaded; it reads the host view
// state at the start of a build and must be serialized with respect to it.
package glyph

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// View is the host view state the glyph pipeline reads, and the two mode
// switches it is allowed to write. *scene.View satisfies it.
type View interface {
	CameraAngles() (az, el float32)
	CameraPosition() math.Vec3
	LookTarget() math.Vec3
	DataAspect() math.Vec3
	AspectMode() scene.AspectMode
	SetAspectMode(scene.AspectMode)
	AxisLimits() scene.Bounds
	SetAxisLimits(scene.Bounds)
	UnitsPerPoint() math.Vec3
}

// Metrics holds the per-view scale factors that size glyph features given in
// points, and the best-conditioned axis for building the revolved profile.
type Metrics struct {
	// F is units-per-point divided by the data aspect ratio, per axis.
	F [3]float32
	// Red is the per-axis foreshortening reduction under the current view.
	Red [3]float32
	// LongAxis is the axis with the largest F: the glyph's canonical long
	// axis, least sensitive to point-to-unit conversion error.
	LongAxis int
	// Dir is the unit basis vector of LongAxis.
	Dir math.Vec3
	// FV scales lengths along the long axis (squeezed axis units per point).
	FV float32
	// FH scales cross-section radii (squeezed axis units per point).
	FH float32
}

// ComputeMetrics derives glyph scale factors from the current camera angles,
// data aspect ratio, and the view's points-to-axis-units conversion.
func ComputeMetrics(v View) Metrics {
	azDeg, elDeg := v.CameraAngles()
	az := azDeg * math32.Pi / 180
	el := elDeg * math32.Pi / 180

	upp := v.UnitsPerPoint()
	d := v.DataAspect()

	var m Metrics
	m.F = [3]float32{
		upp.X / d.X,
		upp.Y / d.Y,
		upp.Z / d.Z,
	}

	sinAz, cosAz := math32.Sincos(az)
	sinEl, cosEl := math32.Sincos(el)
	m.Red = [3]float32{
		math32.Sqrt(cosAz*cosAz + sinAz*sinAz*sinEl*sinEl),
		math32.Sqrt(sinAz*sinAz + cosAz*cosAz*sinEl*sinEl),
		math32.Abs(cosEl),
	}

	m.LongAxis = 0
	for i := 1; i < 3; i++ {
		if m.F[i] > m.F[m.LongAxis] {
			m.LongAxis = i
		}
	}
	m.Dir = math.Axis(m.LongAxis)
	m.FV = m.F[m.LongAxis]

	// The profile is revolved in the plane of the two remaining axes; use
	// the larger of their projected scales as the single radial factor so
	// cross-sections stay visible under either axis' foreshortening.
	for i := 0; i < 3; i++ {
		if i == m.LongAxis {
			continue
		}
		if fr := m.F[i] * m.Red[i]; fr > m.FH {
			m.FH = fr
		}
	}
	return m
}
