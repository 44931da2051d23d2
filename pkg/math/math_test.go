package math

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	v := Vec3{0, 3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec3.Length() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := (Vec3{}).Normalize()
	if got != (Vec3{}) {
		t.Errorf("zero.Normalize() = %v, want zero", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3MulDiv(t *testing.T) {
	v := Vec3{2, 6, 12}
	d := Vec3{2, 3, 4}
	if got := v.Div(d); got != (Vec3{1, 2, 3}) {
		t.Errorf("Vec3.Div() = %v, want {1 2 3}", got)
	}
	if got := v.Div(d).Mul(d); got != v {
		t.Errorf("Div then Mul = %v, want %v", got, v)
	}
}

func TestVec3Perpendicular(t *testing.T) {
	cases := []Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
		{1, 2, 3},
		{-4, 0.5, 2},
	}
	for _, v := range cases {
		p := v.Perpendicular()
		if math32.Abs(p.Dot(v)) > 1e-5 {
			t.Errorf("Perpendicular(%v) = %v, not orthogonal (dot=%v)", v, p, p.Dot(v))
		}
		if l := p.Length(); l < 0.999 || l > 1.001 {
			t.Errorf("Perpendicular(%v).Length() = %v, want ~1", v, l)
		}
	}
}

func TestVec3AngleTo(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got := x.AngleTo(y); math32.Abs(got-math32.Pi/2) > 1e-5 {
		t.Errorf("AngleTo = %v, want pi/2", got)
	}
	if got := x.AngleTo(x.Neg()); math32.Abs(got-math32.Pi) > 1e-5 {
		t.Errorf("AngleTo antiparallel = %v, want pi", got)
	}
}

func TestRotateAxis(t *testing.T) {
	// Rotating X around Z by 90 degrees gives Y.
	m := RotateAxis(Vec3{0, 0, 1}, math32.Pi/2)
	got := m.TransformVec3(Vec3{1, 0, 0})
	want := Vec3{0, 1, 0}
	if got.Distance(want) > 1e-5 {
		t.Errorf("RotateAxis result = %v, want %v", got, want)
	}
}

func TestRotateAxisPreservesLength(t *testing.T) {
	m := RotateAxis(Vec3{1, 2, 2}.Normalize(), 1.2)
	v := Vec3{3, -1, 0.5}
	got := m.TransformVec3(v)
	if math32.Abs(got.Length()-v.Length()) > 1e-4 {
		t.Errorf("rotation changed length: %v -> %v", v.Length(), got.Length())
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Translate(1, 2, 3).Mul(RotateAxis(Vec3{0, 1, 0}, 0.7)).Mul(Scale(2, 2, 2))
	inv := m.Inverse()
	p := Vec3{5, -3, 1}
	rt := inv.TransformVec3(m.TransformVec3(p))
	if rt.Distance(p) > 1e-3 {
		t.Errorf("Inverse round trip = %v, want %v", rt, p)
	}
}
