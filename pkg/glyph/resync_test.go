package glyph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

func TestResyncIdempotentWithoutOverrides(t *testing.T) {
	_, v, c := harness(t)

	res, err := c.Build(v,
		[]math.Vec3{{X: 100, Y: 100, Z: 100}},
		[]math.Vec3{{X: 250, Y: 180, Z: 120}},
		Overrides{},
	)
	require.NoError(t, err)
	before := res.Group.Surfaces()[0].Clone()

	out, err := c.Resync(res.Group, Overrides{})
	require.NoError(t, err)
	require.Len(t, out, 1)

	after := out[0].Group.Surfaces()[0]
	require.Equal(t, len(before.Verts), len(after.Verts))
	for i := range before.Verts {
		assert.InDelta(t, before.Verts[i].X, after.Verts[i].X, 1e-4)
		assert.InDelta(t, before.Verts[i].Y, after.Verts[i].Y, 1e-4)
		assert.InDelta(t, before.Verts[i].Z, after.Verts[i].Z, 1e-4)
	}
}

func TestResyncOverrideRoundTrip(t *testing.T) {
	_, v, c := harness(t)

	o := math.Vec3{X: 100, Y: 200, Z: 200}
	target := math.Vec3{X: 300, Y: 200, Z: 200}
	res, err := c.Build(v, []math.Vec3{o}, []math.Vec3{target},
		Overrides{Color: ColorPtr(scene.Color{1, 0, 0})})
	require.NoError(t, err)

	out, err := c.Resync(res.Group, Overrides{ShaftWidth: Float32Ptr(3)})
	require.NoError(t, err)
	require.Len(t, out, 1)

	mesh := out[0].Group.Surfaces()[0]
	// FH is 1 in the harness, so the shaft ring radius is width/2. The
	// glyph points along +X, so the ring lies in the Y/Z plane around the
	// shaft axis.
	radius := mesh.At(RingBase, 0).Sub(math.Vec3{
		X: mesh.At(RingBase, 0).X, Y: o.Y, Z: o.Z,
	}).Length()
	assert.InDelta(t, 1.5, radius, 1e-3)

	// Previously set fields survive the merge.
	assert.Equal(t, scene.Color{1, 0, 0}, out[0].Style.Color)
	// Cone width still derives from the original shaft width default chain
	// only when unset; here it follows the new shaft width.
	assert.Equal(t, float32(36), out[0].Style.ConeWidth)

	// A later resync with no overrides keeps the merged width.
	out, err = c.Resync(res.Group, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, float32(3), out[0].Style.ShaftWidth)
}

func TestResyncViewScope(t *testing.T) {
	_, v, c := harness(t)

	_, err := c.Build(v, []math.Vec3{{}}, []math.Vec3{{X: 10}}, Overrides{})
	require.NoError(t, err)
	_, err = c.Build(v, []math.Vec3{{Y: 5}}, []math.Vec3{{Y: 90}}, Overrides{})
	require.NoError(t, err)

	out, err := c.Resync(v, Overrides{})
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

func TestResyncNilScopeUsesActiveView(t *testing.T) {
	_, v, c := harness(t)
	_, err := c.Build(v, []math.Vec3{{}}, []math.Vec3{{X: 10}}, Overrides{})
	require.NoError(t, err)

	out, err := c.Resync(nil, Overrides{})
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestResyncNoActiveView(t *testing.T) {
	s := scene.New()
	c := NewController(s, nil)
	_, err := c.Resync(nil, Overrides{})
	assert.ErrorIs(t, err, ErrNoActiveView)
}

func TestResyncUnsupportedScope(t *testing.T) {
	_, _, c := harness(t)
	_, err := c.Resync(42, Overrides{})
	assert.ErrorIs(t, err, ErrUnsupportedScope)
}

func TestResyncNoGroupsIsEmptyResult(t *testing.T) {
	_, v, c := harness(t)
	out, err := c.Resync(v, Overrides{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestResyncFreezesAxisLimits(t *testing.T) {
	s := scene.New()
	v := s.NewView()
	v.SetCameraAngles(0, 0)
	v.SetAspectMode(scene.AspectManual)

	c := NewController(s, nil)
	res, err := c.Build(v, []math.Vec3{{}}, []math.Vec3{{X: 50, Y: 50, Z: 50}}, Overrides{})
	require.NoError(t, err)
	require.Equal(t, scene.LimitsAuto, v.LimitsMode())

	out, err := c.Resync(res.Group, Overrides{})
	require.NoError(t, err)
	assert.Equal(t, scene.LimitsManual, v.LimitsMode())
	// With frozen limits the rebuild raises no further advisories.
	assert.Empty(t, out[0].Advisories)
}

func TestResyncSkipsForeignTaggedGroup(t *testing.T) {
	s, v, c := harness(t)
	s.NewGroup(v, Tag) // tagged, but not built by the controller

	out, err := c.Resync(v, Overrides{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestResyncInvalidOverrideLeavesGeometry(t *testing.T) {
	_, v, c := harness(t)
	res, err := c.Build(v, []math.Vec3{{}}, []math.Vec3{{X: 10}}, Overrides{})
	require.NoError(t, err)
	before := len(res.Group.Surfaces())

	_, err = c.Resync(res.Group, Overrides{RingPoints: IntPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidStyle)
	assert.Len(t, res.Group.Surfaces(), before)
}

func TestResyncRebuildsAfterViewChange(t *testing.T) {
	_, v, c := harness(t)
	target := math.Vec3{X: 300, Y: 200, Z: 100}
	res, err := c.Build(v, []math.Vec3{{X: 50, Y: 50, Z: 50}}, []math.Vec3{target}, Overrides{})
	require.NoError(t, err)

	v.SetCameraAngles(30, 60)
	out, err := c.Resync(res.Group, Overrides{})
	require.NoError(t, err)

	// Endpoints stay exact under the new view.
	mesh := out[0].Group.Surfaces()[0]
	assertRingAt(t, mesh, RingApex, target)
	assertRingAt(t, mesh, RingShaftEnd, math.Vec3{X: 50, Y: 50, Z: 50})
}
