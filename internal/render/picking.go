package render

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/quiver3d/pkg/math"
	"github.com/Faultbox/quiver3d/pkg/scene"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay converts pixel coordinates to a world-space ray.
// invViewProj is the inverse of the combined projection-view matrix.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	// Normalized device coordinates, Y flipped.
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH

	nearWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1, 1})
	farWorld := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1, 1})

	near := perspectiveDivide(nearWorld)
	far := perspectiveDivide(farWorld)

	return Ray{
		Origin:    near,
		Direction: far.Sub(near).Normalize(),
	}
}

func perspectiveDivide(v math.Vec4) math.Vec3 {
	if v[3] != 0 {
		return math.Vec3{X: v[0] / v[3], Y: v[1] / v[3], Z: v[2] / v[3]}
	}
	return math.Vec3{X: v[0], Y: v[1], Z: v[2]}
}

// IntersectAABB tests the ray against an axis-aligned box using the slab
// method. Returns the entry distance, or the exit distance when the ray
// starts inside the box.
func (r Ray) IntersectAABB(box scene.Bounds) (t float32, hit bool) {
	tmin := float32(-math32.MaxFloat32)
	tmax := float32(math32.MaxFloat32)

	for i := 0; i < 3; i++ {
		o := r.Origin.Component(i)
		d := r.Direction.Component(i)
		lo := box.Min.Component(i)
		hi := box.Max.Component(i)

		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / d
		t2 := (hi - o) / d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true // started inside
	}
	return tmin, true
}

// PickGroup returns the nearest group whose bounding box the ray hits.
func PickGroup(ray Ray, groups []*scene.Group) (*scene.Group, bool) {
	var best *scene.Group
	bestT := float32(math32.MaxFloat32)

	for _, g := range groups {
		if len(g.Surfaces()) == 0 {
			continue
		}
		if t, ok := ray.IntersectAABB(g.Bounds()); ok && t < bestT {
			best = g
			bestT = t
		}
	}
	return best, best != nil
}
