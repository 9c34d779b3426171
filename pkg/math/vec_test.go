package math

import (
	"math"
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 0, 4}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector Normalize() = %v, want zero", got)
	}
}

func TestVec3IsZero(t *testing.T) {
	if !(Vec3{}).IsZero() {
		t.Error("zero vector should be zero")
	}
	if (Vec3{Z: 1e-9}).IsZero() {
		t.Error("IsZero must be exact")
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !(Vec3{1, 2, 3}).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if (Vec3{X: float32(math.Inf(-1))}).IsFinite() {
		t.Error("Inf component should not be finite")
	}
	if (Vec3{Y: float32(math.NaN())}).IsFinite() {
		t.Error("NaN component should not be finite")
	}
}

func TestVec3Mul(t *testing.T) {
	got := Vec3{1, 2, 3}.Mul(Vec3{2, 3, 4})
	want := Vec3{2, 6, 12}
	if got != want {
		t.Errorf("Vec3.Mul() = %v, want %v", got, want)
	}
}
