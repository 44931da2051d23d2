package glyph

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/quiver3d/pkg/scene"
)

// Resync rebuilds previously built glyph groups from their stored
// construction parameters with overrides layered on top, correcting for
// camera or aspect-ratio drift since the original build.
//
// Scope resolution: nil rebuilds every glyph group under the active view, a
// *scene.View rebuilds every glyph group under that view, and a *scene.Group
// rebuilds just itself. Any other scope is ErrUnsupportedScope. Resolving no
// groups is not an error and returns an empty slice.
//
// Each group's view has its axis limits frozen at their current values
// before the rebuild so the fresh geometry cannot immediately invalidate
// itself.
func (c *Controller) Resync(scope any, overrides Overrides) ([]*BuildResult, error) {
	var groups []*scene.Group
	switch t := scope.(type) {
	case nil:
		v, ok := c.host.ActiveView()
		if !ok {
			return nil, ErrNoActiveView
		}
		groups = c.host.GroupsByTag(v, Tag)
	case *scene.View:
		groups = c.host.GroupsByTag(t, Tag)
	case *scene.Group:
		groups = []*scene.Group{t}
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedScope, scope)
	}

	var out []*BuildResult
	for _, g := range groups {
		rec, ok := c.recs[g.ID()]
		if !ok {
			// Tagged group built by someone else; nothing stored to rebuild.
			c.log.Warn("skipping glyph group without stored parameters",
				zap.Uint64("group", uint64(g.ID())),
			)
			continue
		}

		merged := overrides.Merge(rec.overrides)
		st, err := merged.Resolve()
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", g.ID(), err)
		}

		v := g.View()
		if err := checkDirections(rec.origins, rec.targets, v.DataAspect()); err != nil {
			return nil, fmt.Errorf("group %d: %w", g.ID(), err)
		}

		// Freeze limits, then replace the stale geometry in place.
		v.SetAxisLimits(v.AxisLimits())
		g.Clear()
		advs, err := c.populate(g, v, st, rec.origins, rec.targets)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", g.ID(), err)
		}
		c.recs[g.ID()] = record{
			overrides: merged,
			origins:   rec.origins,
			targets:   rec.targets,
		}

		c.log.Info("resynced glyph group",
			zap.Uint64("group", uint64(g.ID())),
			zap.Int("glyphs", len(rec.origins)),
		)
		out = append(out, &BuildResult{Group: g, Style: st, Advisories: advs})
	}
	return out, nil
}
