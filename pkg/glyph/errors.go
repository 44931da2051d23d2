package glyph

import "errors"

// Fatal build/resync errors. All are reported before any geometry is
// attached to the scene.
var (
	// ErrShapeMismatch means origins and targets are not broadcast-compatible.
	ErrShapeMismatch = errors.New("origins and targets are not broadcast-compatible")
	// ErrInvalidStyle means a style field violates its invariant.
	ErrInvalidStyle = errors.New("invalid style")
	// ErrDegenerateVector means an origin coincides with its target.
	ErrDegenerateVector = errors.New("degenerate vector")
	// ErrUnsupportedScope means a resync scope is not nil, a view, or a group.
	ErrUnsupportedScope = errors.New("unsupported resync scope")
	// ErrNoActiveView means no view was given and the scene has none active.
	ErrNoActiveView = errors.New("no active view")
)

// AdvisoryKind classifies non-fatal findings raised by a build.
type AdvisoryKind int

const (
	// AdvisoryModeChanged: the view's aspect-ratio mode was forced to manual.
	AdvisoryModeChanged AdvisoryKind = iota
	// AdvisoryAxisLimits: axis limits moved while geometry was added, so the
	// glyph point sizes may now be inexact; a resync is advisable.
	AdvisoryAxisLimits
	// AdvisoryShorthandConflict: a named override shadows a shorthand value.
	AdvisoryShorthandConflict
)

// Advisory is a non-fatal finding surfaced after the scene was updated.
type Advisory struct {
	Kind    AdvisoryKind
	Message string
}

func (a Advisory) String() string {
	return a.Message
}
