// Package math provides float32 vector and matrix types for 3D glyph geometry.
package math

import "github.com/chewxy/math32"

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float32
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v * scalar.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Mul returns the component-wise product v * other.
func (v Vec3) Mul(other Vec3) Vec3 {
	return Vec3{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

// Div returns the component-wise quotient v / other.
// Components of other must be non-zero.
func (v Vec3) Div(other Vec3) Vec3 {
	return Vec3{v.X / other.X, v.Y / other.Y, v.Z / other.Z}
}

// Dot returns the dot product.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product.
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector.
// The zero vector normalizes to the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Distance returns the distance to another point.
func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Neg returns -v.
func (v Vec3) Neg() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Component returns component i (0=X, 1=Y, 2=Z).
func (v Vec3) Component(i int) float32 {
	switch i {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Axis returns the unit basis vector for axis i (0=X, 1=Y, 2=Z).
func Axis(i int) Vec3 {
	switch i {
	case 0:
		return Vec3{X: 1}
	case 1:
		return Vec3{Y: 1}
	default:
		return Vec3{Z: 1}
	}
}

// Perpendicular returns an arbitrary unit vector orthogonal to v.
// v must be non-zero.
func (v Vec3) Perpendicular() Vec3 {
	// Cross against the basis vector least aligned with v.
	other := Vec3{X: 1}
	if math32.Abs(v.X) > math32.Abs(v.Y) {
		other = Vec3{Y: 1}
	}
	return v.Cross(other).Normalize()
}

// AngleTo returns the angle in radians between v and other, in [0, pi].
func (v Vec3) AngleTo(other Vec3) float32 {
	denom := v.Length() * other.Length()
	if denom == 0 {
		return 0
	}
	c := v.Dot(other) / denom
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return math32.Acos(c)
}
