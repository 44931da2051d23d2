package glyph

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// Highlighter decides per glyph whether the tip ring gets the tip color.
type Highlighter struct {
	mode     TipMode
	tipColor scene.Color
	// threshold is the half-angle of the cone frustum below the tip. A cone
	// pointed within this angle of the viewer shows only its tip disk.
	threshold float32
	// camDir is the reversed camera direction (target toward camera) in
	// squeezed space.
	camDir math.Vec3
}

// NewHighlighter captures the camera direction and the cone half-angle
// threshold for one build pass.
func NewHighlighter(st Style, v View) *Highlighter {
	h := &Highlighter{
		mode:      st.TipMode,
		tipColor:  st.TipColor,
		threshold: math32.Atan2(st.ConeWidth/2, (1-st.TipFraction)*st.ConeLength),
	}
	if st.TipMode == TipFacing {
		h.camDir = v.CameraPosition().Sub(v.LookTarget()).Div(v.DataAspect()).Normalize()
	}
	return h
}

// Facing reports whether a glyph with squeezed direction sdir should be
// highlighted under the configured policy.
func (h *Highlighter) Facing(sdir math.Vec3) bool {
	switch h.mode {
	case TipAlways:
		return true
	case TipFacing:
		return h.camDir.AngleTo(sdir) < h.threshold
	default:
		return false
	}
}

// Apply patches the apex ring color when the glyph is highlighted and
// reports whether it did.
func (h *Highlighter) Apply(mesh *scene.SurfaceGrid, sdir math.Vec3) bool {
	if !h.Facing(sdir) {
		return false
	}
	mesh.RowColors[RingApex] = h.tipColor
	return true
}
