package glyph

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/Faultbox/quiver3d/pkg/scene"
)

// TipMode selects when the cone tip uses the highlight color.
type TipMode int

const (
	// TipNever leaves the tip in the cone color.
	TipNever TipMode = iota
	// TipAlways paints the tip with the tip color on every glyph.
	TipAlways
	// TipFacing paints the tip only when the cone points at the camera.
	TipFacing
)

// Default style constants. Widths and lengths are in points (1/72 inch).
const (
	DefaultShaftWidth  = 1.0
	DefaultTipFraction = 0.2
	DefaultRimFraction = 1.0 / 6.0
	DefaultRingPoints  = 50

	coneWidthPerShaft  = 12 // cone width defaults to 12x shaft width
	coneLengthPerWidth = 3  // cone length defaults to 3x cone width
)

// lightGrey replaces lightened colors whose source is already white.
var lightGrey = scene.Color{0.8, 0.8, 0.8}

// Lighten moves a color 1-0.2*(1-c) toward white, falling back to a fixed
// light grey when the source is already white.
func Lighten(c scene.Color) scene.Color {
	if c == (scene.Color{1, 1, 1}) {
		return lightGrey
	}
	return scene.Color{
		1 - 0.2*(1-c[0]),
		1 - 0.2*(1-c[1]),
		1 - 0.2*(1-c[2]),
	}
}

// Style is a fully resolved glyph style. Build one from Overrides.Resolve.
type Style struct {
	Color       scene.Color // shaft
	ConeColor   scene.Color
	RimColor    scene.Color
	BaseColor   scene.Color
	TipColor    scene.Color
	SphereColor scene.Color

	ShaftWidth     float32 // points
	ConeWidth      float32 // points
	ConeLength     float32 // points
	TipFraction    float32 // 0..1 of cone length
	RimFraction    float32 // 0..1 of cone radius
	TipMode        TipMode
	RingPoints     int     // vertices per ring, >= 2
	SphereDiameter float32 // points; 0 disables the origin marker
}

// Overrides is the optional-field form of Style: nil fields take their
// defaults (or, on resync, the previously stored value).
type Overrides struct {
	Color       *scene.Color `yaml:"color,omitempty"`
	ConeColor   *scene.Color `yaml:"cone_color,omitempty"`
	RimColor    *scene.Color `yaml:"rim_color,omitempty"`
	BaseColor   *scene.Color `yaml:"base_color,omitempty"`
	TipColor    *scene.Color `yaml:"tip_color,omitempty"`
	SphereColor *scene.Color `yaml:"sphere_color,omitempty"`

	ShaftWidth     *float32 `yaml:"shaft_width,omitempty"`
	ConeWidth      *float32 `yaml:"cone_width,omitempty"`
	ConeLength     *float32 `yaml:"cone_length,omitempty"`
	TipFraction    *float32 `yaml:"tip_fraction,omitempty"`
	RimFraction    *float32 `yaml:"rim_fraction,omitempty"`
	TipMode        *TipMode `yaml:"tip_mode,omitempty"`
	RingPoints     *int     `yaml:"ring_points,omitempty"`
	SphereDiameter *float32 `yaml:"sphere_diameter,omitempty"`
}

// Merge returns o layered over base: fields set in o win, unset fields keep
// the base value. Neither argument is modified.
func (o Overrides) Merge(base Overrides) Overrides {
	out := base
	if o.Color != nil {
		out.Color = o.Color
	}
	if o.ConeColor != nil {
		out.ConeColor = o.ConeColor
	}
	if o.RimColor != nil {
		out.RimColor = o.RimColor
	}
	if o.BaseColor != nil {
		out.BaseColor = o.BaseColor
	}
	if o.TipColor != nil {
		out.TipColor = o.TipColor
	}
	if o.SphereColor != nil {
		out.SphereColor = o.SphereColor
	}
	if o.ShaftWidth != nil {
		out.ShaftWidth = o.ShaftWidth
	}
	if o.ConeWidth != nil {
		out.ConeWidth = o.ConeWidth
	}
	if o.ConeLength != nil {
		out.ConeLength = o.ConeLength
	}
	if o.TipFraction != nil {
		out.TipFraction = o.TipFraction
	}
	if o.RimFraction != nil {
		out.RimFraction = o.RimFraction
	}
	if o.TipMode != nil {
		out.TipMode = o.TipMode
	}
	if o.RingPoints != nil {
		out.RingPoints = o.RingPoints
	}
	if o.SphereDiameter != nil {
		out.SphereDiameter = o.SphereDiameter
	}
	return out
}

// Resolve fills defaults for unset fields and validates every invariant.
// Dependent defaults cascade: cone width from shaft width, cone length from
// cone width, part colors from the cone color via Lighten.
func (o Overrides) Resolve() (Style, error) {
	var st Style

	st.ShaftWidth = deref(o.ShaftWidth, DefaultShaftWidth)
	st.ConeWidth = deref(o.ConeWidth, st.ShaftWidth*coneWidthPerShaft)
	st.ConeLength = deref(o.ConeLength, st.ConeWidth*coneLengthPerWidth)
	st.TipFraction = deref(o.TipFraction, DefaultTipFraction)
	st.RimFraction = deref(o.RimFraction, DefaultRimFraction)
	st.SphereDiameter = deref(o.SphereDiameter, 0)
	st.RingPoints = DefaultRingPoints
	if o.RingPoints != nil {
		st.RingPoints = *o.RingPoints
	}
	st.TipMode = TipNever
	if o.TipMode != nil {
		st.TipMode = *o.TipMode
	}

	st.Color = scene.Color{} // black
	if o.Color != nil {
		st.Color = *o.Color
	}
	st.ConeColor = st.Color
	if o.ConeColor != nil {
		st.ConeColor = *o.ConeColor
	}
	lightened := Lighten(st.ConeColor)
	st.RimColor = lightened
	if o.RimColor != nil {
		st.RimColor = *o.RimColor
	}
	st.BaseColor = lightened
	if o.BaseColor != nil {
		st.BaseColor = *o.BaseColor
	}
	st.TipColor = lightened
	if o.TipColor != nil {
		st.TipColor = *o.TipColor
	}
	st.SphereColor = lightened
	if o.SphereColor != nil {
		st.SphereColor = *o.SphereColor
	}

	if err := st.validate(); err != nil {
		return Style{}, err
	}
	return st, nil
}

func (st Style) validate() error {
	colors := []struct {
		name string
		c    scene.Color
	}{
		{"color", st.Color},
		{"cone_color", st.ConeColor},
		{"rim_color", st.RimColor},
		{"base_color", st.BaseColor},
		{"tip_color", st.TipColor},
		{"sphere_color", st.SphereColor},
	}
	for _, col := range colors {
		for _, comp := range col.c {
			if comp < 0 || comp > 1 || math32.IsNaN(comp) {
				return fmt.Errorf("%w: %s component %v outside [0,1]", ErrInvalidStyle, col.name, comp)
			}
		}
	}

	lengths := []struct {
		name string
		v    float32
	}{
		{"shaft_width", st.ShaftWidth},
		{"cone_width", st.ConeWidth},
		{"cone_length", st.ConeLength},
		{"sphere_diameter", st.SphereDiameter},
	}
	for _, l := range lengths {
		if l.v < 0 || math32.IsNaN(l.v) || math32.IsInf(l.v, 0) {
			return fmt.Errorf("%w: %s %v must be finite and non-negative", ErrInvalidStyle, l.name, l.v)
		}
	}

	fractions := []struct {
		name string
		v    float32
	}{
		{"tip_fraction", st.TipFraction},
		{"rim_fraction", st.RimFraction},
	}
	for _, f := range fractions {
		if f.v < 0 || f.v > 1 || math32.IsNaN(f.v) {
			return fmt.Errorf("%w: %s %v outside [0,1]", ErrInvalidStyle, f.name, f.v)
		}
	}

	if st.RingPoints < 2 {
		return fmt.Errorf("%w: ring_points %d < 2", ErrInvalidStyle, st.RingPoints)
	}
	switch st.TipMode {
	case TipNever, TipAlways, TipFacing:
	default:
		return fmt.Errorf("%w: unrecognized tip mode %d", ErrInvalidStyle, st.TipMode)
	}
	return nil
}

func deref(p *float32, def float32) float32 {
	if p != nil {
		return *p
	}
	return def
}

// Ptr helpers for building Overrides literals.

// ColorPtr returns a pointer to c.
func ColorPtr(c scene.Color) *scene.Color { return &c }

// Float32Ptr returns a pointer to v.
func Float32Ptr(v float32) *float32 { return &v }

// IntPtr returns a pointer to v.
func IntPtr(v int) *int { return &v }

// TipModePtr returns a pointer to m.
func TipModePtr(m TipMode) *TipMode { return &m }
