package pose

import (
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/handlink/pkg/math"
)

func TestNewStartsAtReference(t *testing.T) {
	ref := []Transform{
		{Rotation: math.QuatFromAxisAngle(math.Vec3{Z: 1}, 0.5), Translation: math.Vec3{X: 1}, Scale: math.Vec3One()},
	}
	p := New([]string{"hand", "thumb_01"}, ref)

	require.Equal(t, 2, p.Len())
	assert.Equal(t, ref[0], p.Transform(0))
	assert.Equal(t, Identity(), p.Transform(1), "bones without reference start at identity")
}

func TestIndexOf(t *testing.T) {
	p := NewIdentity([]string{"hand", "thumb_01", "thumb_01"})

	assert.Equal(t, 0, p.IndexOf("hand"))
	assert.Equal(t, 1, p.IndexOf("thumb_01"), "duplicate names resolve to the first bone")
	assert.Equal(t, -1, p.IndexOf("tail"))
	assert.Equal(t, -1, p.IndexOf(""))
	assert.Equal(t, "thumb_01", p.Name(2))
	assert.Empty(t, p.Name(3))
}

func TestSetTransformOutOfRange(t *testing.T) {
	p := NewIdentity([]string{"a"})
	moved := Identity()
	moved.Translation = math.Vec3{X: 5}

	p.SetTransform(-1, moved)
	p.SetTransform(1, moved)
	assert.Equal(t, Identity(), p.Transform(0))

	p.SetTransform(0, moved)
	assert.Equal(t, moved, p.Transform(0))
}

func TestResetToReference(t *testing.T) {
	p := NewIdentity([]string{"a", "b"})
	moved := Identity()
	moved.Translation = math.Vec3{Y: 2}
	p.SetTransform(1, moved)

	p.ResetToReference()
	assert.Equal(t, []Transform{Identity(), Identity()}, p.Transforms())
}

func TestCompose(t *testing.T) {
	quarter := math.QuatFromAxisAngle(math.Vec3{Z: 1}, stdmath.Pi/2)
	parent := Transform{Rotation: quarter, Translation: math.Vec3{X: 1}, Scale: math.Vec3One()}
	child := Transform{Rotation: math.QuatIdentity(), Translation: math.Vec3{X: 1}, Scale: math.Vec3One()}

	got := Compose(child, parent)

	// Child offset along X is rotated onto Y by the parent
	assert.True(t, got.Translation.ApproxEqual(math.Vec3{X: 1, Y: 1}, 1e-5), "translation %v", got.Translation)
	assert.True(t, got.Rotation.Equal(quarter, 1e-5), "rotation %v", got.Rotation)
}

func TestModelSpace(t *testing.T) {
	step := Transform{Rotation: math.QuatIdentity(), Translation: math.Vec3{Z: 1}, Scale: math.Vec3One()}
	local := []Transform{Identity(), step, step}
	parents := []int{-1, 0, 1}

	model := ModelSpace(local, func(i int) int { return parents[i] })

	require.Len(t, model, 3)
	assert.True(t, model[2].Translation.ApproxEqual(math.Vec3{Z: 2}, 1e-6), "tip at %v", model[2].Translation)
}
