package glyph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// Tag marks scene groups owned by this package.
const Tag = "quiver3d.glyph"

// Host is the scene-graph surface the controller needs from its host.
// *scene.Scene satisfies it.
type Host interface {
	ActiveView() (*scene.View, bool)
	NewGroup(v *scene.View, tag string) *scene.Group
	DestroyGroup(g *scene.Group)
	GroupsByTag(v *scene.View, tag string) []*scene.Group
	OnActivate(fn func(*scene.Group))
}

// record keeps the full construction parameters of a built group so a
// resync can rebuild it. Keyed by group handle in the controller registry.
type record struct {
	overrides Overrides
	origins   []math.Vec3
	targets   []math.Vec3
}

// BuildResult is one built or rebuilt glyph group.
type BuildResult struct {
	Group *scene.Group
	Style Style
	// Advisories are non-fatal findings; the scene is fully updated when
	// they are surfaced.
	Advisories []Advisory
}

// Controller orchestrates the glyph pipeline across origin/target pairs and
// owns the construction-parameter registry used by Resync.
type Controller struct {
	host Host
	log  *zap.Logger
	recs map[scene.GroupID]record
}

// NewController creates a controller for the given host. A nil logger
// disables logging.
func NewController(host Host, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		host: host,
		log:  log,
		recs: make(map[scene.GroupID]record),
	}
}

// Build constructs one glyph per broadcast (origin, target) pair into a new
// group under v, or under the active view when v is nil. The construction
// parameters are retained for later resynchronization. All fatal errors are
// reported before the scene is touched.
func (c *Controller) Build(v *scene.View, origins, targets []math.Vec3, ov Overrides) (*BuildResult, error) {
	if v == nil {
		active, ok := c.host.ActiveView()
		if !ok {
			return nil, ErrNoActiveView
		}
		v = active
	}

	st, err := ov.Resolve()
	if err != nil {
		return nil, err
	}
	os, ts, err := broadcastPairs(origins, targets)
	if err != nil {
		return nil, err
	}
	if err := checkDirections(os, ts, v.DataAspect()); err != nil {
		return nil, err
	}

	g := c.host.NewGroup(v, Tag)
	advs, err := c.populate(g, v, st, os, ts)
	if err != nil {
		c.host.DestroyGroup(g)
		return nil, err
	}
	c.recs[g.ID()] = record{overrides: ov, origins: os, targets: ts}

	c.log.Info("built glyph group",
		zap.Uint64("group", uint64(g.ID())),
		zap.Int("glyphs", len(os)),
		zap.Int("advisories", len(advs)),
	)
	return &BuildResult{Group: g, Style: st, Advisories: advs}, nil
}

// BindActivation subscribes the controller to the host's click events:
// clicking a glyph group resynchronizes it with no overrides.
func (c *Controller) BindActivation() {
	c.host.OnActivate(func(g *scene.Group) {
		if _, ok := c.recs[g.ID()]; !ok {
			return
		}
		if _, err := c.Resync(g, Overrides{}); err != nil {
			c.log.Error("activation resync failed",
				zap.Uint64("group", uint64(g.ID())),
				zap.Error(err),
			)
		}
	})
}

// Record reports whether the controller holds construction parameters for
// the given group handle.
func (c *Controller) Record(id scene.GroupID) bool {
	_, ok := c.recs[id]
	return ok
}

// Forget drops the construction parameters of a destroyed group.
func (c *Controller) Forget(id scene.GroupID) {
	delete(c.recs, id)
}

// populate runs the pipeline into an empty group: one shared metrics and
// canonical profile, then per-pair placement, tip highlighting, and
// deduplicated origin spheres.
func (c *Controller) populate(g *scene.Group, v *scene.View, st Style, os, ts []math.Vec3) ([]Advisory, error) {
	var advs []Advisory
	if v.AspectMode() != scene.AspectManual {
		v.SetAspectMode(scene.AspectManual)
		advs = append(advs, Advisory{
			Kind:    AdvisoryModeChanged,
			Message: "data aspect ratio mode forced to manual",
		})
		c.log.Warn("data aspect ratio mode forced to manual")
	}

	m := ComputeMetrics(v)
	canonical := BuildProfile(st, m)
	hl := NewHighlighter(st, v)
	aspect := v.DataAspect()
	limBefore := v.AxisLimits()

	seen := make(map[math.Vec3]struct{})
	for i := range os {
		mesh, sdir, err := Place(canonical, m, os[i], ts[i], aspect)
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", i, err)
		}
		hl.Apply(mesh, sdir)
		g.AddSurface(mesh)

		if st.SphereDiameter > 0 {
			if _, ok := seen[os[i]]; !ok {
				seen[os[i]] = struct{}{}
				g.AddSurface(BuildSphere(st, m, aspect, os[i]))
			}
		}
	}

	if v.AxisLimits() != limBefore {
		advs = append(advs, Advisory{
			Kind:    AdvisoryAxisLimits,
			Message: "axis limits changed during construction; resync advised",
		})
		c.log.Warn("axis limits changed during construction; resync advised",
			zap.Uint64("group", uint64(g.ID())),
		)
	}
	return advs, nil
}

// broadcastPairs expands origins against targets: equal lengths pair up, a
// single origin or target broadcasts against the other side. Anything else
// is a shape mismatch. Returned slices are fresh copies.
func broadcastPairs(origins, targets []math.Vec3) ([]math.Vec3, []math.Vec3, error) {
	var os, ts []math.Vec3
	switch {
	case len(origins) == len(targets):
		os = append(os, origins...)
		ts = append(ts, targets...)
	case len(origins) == 1:
		os = make([]math.Vec3, len(targets))
		for i := range os {
			os[i] = origins[0]
		}
		ts = append(ts, targets...)
	case len(targets) == 1:
		ts = make([]math.Vec3, len(origins))
		for i := range ts {
			ts[i] = targets[0]
		}
		os = append(os, origins...)
	default:
		return nil, nil, fmt.Errorf("%w: %d origins vs %d targets",
			ErrShapeMismatch, len(origins), len(targets))
	}
	return os, ts, nil
}

// checkDirections validates every pair up front so a failing build leaves
// the scene untouched.
func checkDirections(os, ts []math.Vec3, aspect math.Vec3) error {
	for i := range os {
		if _, err := SqueezedDir(os[i], ts[i], aspect); err != nil {
			return fmt.Errorf("pair %d: %w", i, err)
		}
	}
	return nil
}
