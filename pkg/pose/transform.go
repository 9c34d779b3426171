// Package pose holds bone transforms and the pose buffer written by the
// retargeter.
package pose

import "github.com/Faultbox/handlink/pkg/math"

// Transform is a bone's local rotation, translation and scale.
type Transform struct {
	Rotation    math.Quat `yaml:"rotation"`
	Translation math.Vec3 `yaml:"translation"`
	Scale       math.Vec3 `yaml:"scale"`
}

// Identity returns the transform with no rotation, no offset and unit scale.
func Identity() Transform {
	return Transform{
		Rotation: math.QuatIdentity(),
		Scale:    math.Vec3One(),
	}
}

// IsFinite reports whether every component is a finite number.
func (t Transform) IsFinite() bool {
	return t.Rotation.IsFinite() && t.Translation.IsFinite() && t.Scale.IsFinite()
}

// Compose returns child expressed in the space of parent.
func Compose(child, parent Transform) Transform {
	return Transform{
		Rotation:    parent.Rotation.Mul(child.Rotation).Normalize(),
		Translation: parent.Translation.Add(parent.Rotation.RotateVector(parent.Scale.Mul(child.Translation))),
		Scale:       parent.Scale.Mul(child.Scale),
	}
}

// ModelSpace composes local bone transforms along their parent chain.
// Parents must precede their children; parent returns -1 for roots.
func ModelSpace(local []Transform, parent func(int) int) []Transform {
	out := make([]Transform, len(local))
	for i, t := range local {
		p := parent(i)
		if p < 0 || p >= i {
			out[i] = t
			continue
		}
		out[i] = Compose(t, out[p])
	}
	return out
}
