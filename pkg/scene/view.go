package scene

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/quiver3d/pkg/math"
)

// AspectMode controls how the data aspect ratio is managed.
type AspectMode int

const (
	// AspectAuto lets the host rescale axes freely as data changes.
	AspectAuto AspectMode = iota
	// AspectManual keeps the configured data aspect ratio fixed.
	AspectManual
)

// LimitsMode controls how axis limits are managed.
type LimitsMode int

const (
	// LimitsAuto grows the limits to enclose added geometry.
	LimitsAuto LimitsMode = iota
	// LimitsManual freezes the limits at their current values.
	LimitsManual
)

// Bounds is an axis-aligned box.
type Bounds struct {
	Min, Max math.Vec3
}

// Extend returns the bounds grown to include point v.
func (b Bounds) Extend(v math.Vec3) Bounds {
	if v.X < b.Min.X {
		b.Min.X = v.X
	}
	if v.Y < b.Min.Y {
		b.Min.Y = v.Y
	}
	if v.Z < b.Min.Z {
		b.Min.Z = v.Z
	}
	if v.X > b.Max.X {
		b.Max.X = v.X
	}
	if v.Y > b.Max.Y {
		b.Max.Y = v.Y
	}
	if v.Z > b.Max.Z {
		b.Max.Z = v.Z
	}
	return b
}

// Union returns the bounds enclosing both boxes.
func (b Bounds) Union(other Bounds) Bounds {
	return b.Extend(other.Min).Extend(other.Max)
}

// Center returns the box center.
func (b Bounds) Center() math.Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Span returns the per-axis extent.
func (b Bounds) Span() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// View holds the camera and axis state of one 3D plot view.
type View struct {
	azimuth   float32 // degrees
	elevation float32 // degrees
	target    math.Vec3
	distance  float32

	aspect     math.Vec3
	aspectMode AspectMode

	limits     Bounds
	limitsMode LimitsMode

	// Rendered size of the axes box, in points (1/72 inch).
	plotSpan float32
}

// NewView returns a view with default plot state: azimuth -37.5, elevation 30,
// unit aspect ratio, unit axis limits, auto modes.
func NewView() *View {
	return &View{
		azimuth:   -37.5,
		elevation: 30,
		distance:  10,
		aspect:    math.Vec3{X: 1, Y: 1, Z: 1},
		limits: Bounds{
			Min: math.Vec3{},
			Max: math.Vec3{X: 1, Y: 1, Z: 1},
		},
		plotSpan: 400,
	}
}

// CameraAngles returns the azimuth and elevation in degrees.
func (v *View) CameraAngles() (az, el float32) {
	return v.azimuth, v.elevation
}

// SetCameraAngles sets the azimuth and elevation in degrees.
func (v *View) SetCameraAngles(az, el float32) {
	v.azimuth = az
	v.elevation = el
}

// LookTarget returns the camera target point.
func (v *View) LookTarget() math.Vec3 {
	return v.target
}

// SetLookTarget sets the camera target point.
func (v *View) SetLookTarget(t math.Vec3) {
	v.target = t
}

// Distance returns the camera distance from the target.
func (v *View) Distance() float32 {
	return v.distance
}

// SetDistance sets the camera distance from the target.
func (v *View) SetDistance(d float32) {
	v.distance = d
}

// CameraPosition returns the camera position derived from the spherical
// azimuth/elevation angles around the target.
func (v *View) CameraPosition() math.Vec3 {
	az := v.azimuth * math32.Pi / 180
	el := v.elevation * math32.Pi / 180
	dir := math.Vec3{
		X: math32.Cos(el) * math32.Cos(az),
		Y: math32.Cos(el) * math32.Sin(az),
		Z: math32.Sin(el),
	}
	return v.target.Add(dir.Scale(v.distance))
}

// DataAspect returns the data aspect ratio.
func (v *View) DataAspect() math.Vec3 {
	return v.aspect
}

// SetDataAspect sets the data aspect ratio. Components must be positive.
func (v *View) SetDataAspect(d math.Vec3) {
	v.aspect = d
	v.aspectMode = AspectManual
}

// AspectMode returns the aspect-ratio mode.
func (v *View) AspectMode() AspectMode {
	return v.aspectMode
}

// SetAspectMode sets the aspect-ratio mode.
func (v *View) SetAspectMode(m AspectMode) {
	v.aspectMode = m
}

// AxisLimits returns the current axis limits.
func (v *View) AxisLimits() Bounds {
	return v.limits
}

// SetAxisLimits sets the axis limits and freezes them.
func (v *View) SetAxisLimits(b Bounds) {
	v.limits = b
	v.limitsMode = LimitsManual
}

// LimitsMode returns the axis-limits mode.
func (v *View) LimitsMode() LimitsMode {
	return v.limitsMode
}

// HoldLimits freezes the axis limits at their current values.
func (v *View) HoldLimits() {
	v.limitsMode = LimitsManual
}

// ReleaseLimits returns the axis limits to auto mode.
func (v *View) ReleaseLimits() {
	v.limitsMode = LimitsAuto
}

// ExpandLimits grows auto axis limits to enclose b.
// Reports whether the limits changed. Manual limits never change.
func (v *View) ExpandLimits(b Bounds) bool {
	if v.limitsMode == LimitsManual {
		return false
	}
	grown := v.limits.Union(b)
	if grown == v.limits {
		return false
	}
	v.limits = grown
	return true
}

// PlotSpan returns the rendered size of the axes box in points.
func (v *View) PlotSpan() float32 {
	return v.plotSpan
}

// SetPlotSpan sets the rendered size of the axes box in points.
func (v *View) SetPlotSpan(points float32) {
	v.plotSpan = points
}

// UnitsPerPoint returns, for each principal axis, the axis-length units
// equivalent to one point under the current limits and plot size.
func (v *View) UnitsPerPoint() math.Vec3 {
	span := v.limits.Span()
	return math.Vec3{
		X: span.X / v.plotSpan,
		Y: span.Y / v.plotSpan,
		Z: span.Z / v.plotSpan,
	}
}
