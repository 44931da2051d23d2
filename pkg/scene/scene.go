// Package scene provides an in-memory 3D scene graph: views with camera and
// axis state, tagged groups of flat-shaded surfaces, and click dispatch.
// It stands in for a host plotting toolkit; rendering lives elsewhere.
package scene

// GroupID is an opaque handle for a composite scene object.
type GroupID uint64

// Group is a composite scene object owning child surfaces.
type Group struct {
	id       GroupID
	tag      string
	view     *View
	surfaces []*SurfaceGrid
	bounds   Bounds
	hasGeom  bool
}

// ID returns the group handle.
func (g *Group) ID() GroupID {
	return g.id
}

// Tag returns the group tag.
func (g *Group) Tag() string {
	return g.tag
}

// View returns the view the group belongs to.
func (g *Group) View() *View {
	return g.view
}

// Surfaces returns the group's child surfaces.
func (g *Group) Surfaces() []*SurfaceGrid {
	return g.surfaces
}

// Bounds returns the bounding box of all child surfaces.
func (g *Group) Bounds() Bounds {
	return g.bounds
}

// AddSurface appends a surface to the group and grows the owning view's
// axis limits when they are in auto mode.
func (g *Group) AddSurface(s *SurfaceGrid) {
	g.surfaces = append(g.surfaces, s)
	sb := s.Bounds()
	if g.hasGeom {
		g.bounds = g.bounds.Union(sb)
	} else {
		g.bounds = sb
		g.hasGeom = true
	}
	if g.view != nil {
		g.view.ExpandLimits(sb)
	}
}

// Clear discards all child surfaces.
func (g *Group) Clear() {
	g.surfaces = nil
	g.bounds = Bounds{}
	g.hasGeom = false
}

// Scene owns views and groups and dispatches activation (click) events.
// It is not safe for concurrent use; the host render loop serializes access.
type Scene struct {
	views  []*View
	active *View

	groups map[GroupID]*Group
	nextID GroupID

	activateFns []func(*Group)
}

// New creates an empty scene.
func New() *Scene {
	return &Scene{
		groups: make(map[GroupID]*Group),
		nextID: 1,
	}
}

// NewView creates a view, makes it active if it is the first one, and
// returns it.
func (s *Scene) NewView() *View {
	v := NewView()
	s.views = append(s.views, v)
	if s.active == nil {
		s.active = v
	}
	return v
}

// ActiveView returns the active view, if any.
func (s *Scene) ActiveView() (*View, bool) {
	return s.active, s.active != nil
}

// SetActiveView makes v the active view.
func (s *Scene) SetActiveView(v *View) {
	s.active = v
}

// Views returns all views.
func (s *Scene) Views() []*View {
	return s.views
}

// NewGroup creates an empty group under the given view with the given tag.
func (s *Scene) NewGroup(v *View, tag string) *Group {
	g := &Group{
		id:   s.nextID,
		tag:  tag,
		view: v,
	}
	s.nextID++
	s.groups[g.id] = g
	return g
}

// Group looks up a group by handle.
func (s *Scene) Group(id GroupID) (*Group, bool) {
	g, ok := s.groups[id]
	return g, ok
}

// DestroyGroup removes a group and its surfaces from the scene.
func (s *Scene) DestroyGroup(g *Group) {
	g.Clear()
	delete(s.groups, g.id)
}

// GroupsByTag returns all groups with the given tag under view v.
// A nil view matches groups under any view. Order follows group IDs.
func (s *Scene) GroupsByTag(v *View, tag string) []*Group {
	var out []*Group
	for id := GroupID(1); id < s.nextID; id++ {
		g, ok := s.groups[id]
		if !ok || g.tag != tag {
			continue
		}
		if v != nil && g.view != v {
			continue
		}
		out = append(out, g)
	}
	return out
}

// Groups returns all groups in ID order.
func (s *Scene) Groups() []*Group {
	var out []*Group
	for id := GroupID(1); id < s.nextID; id++ {
		if g, ok := s.groups[id]; ok {
			out = append(out, g)
		}
	}
	return out
}

// OnActivate registers a callback invoked when a group is clicked.
func (s *Scene) OnActivate(fn func(*Group)) {
	s.activateFns = append(s.activateFns, fn)
}

// Activate dispatches a click on the group with the given handle.
func (s *Scene) Activate(id GroupID) {
	g, ok := s.groups[id]
	if !ok {
		return
	}
	for _, fn := range s.activateFns {
		fn(g)
	}
}
