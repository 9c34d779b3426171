package openvr

import (
	"github.com/Faultbox/handlink/pkg/math"
	"github.com/Faultbox/handlink/pkg/pose"
)

// UnitScale converts runtime reference positions into engine units.
const UnitScale = 0.1

// ConvertRotation flips handedness by negating Y and W, then normalizes.
// Degenerate input becomes identity.
func ConvertRotation(q Quaternion) math.Quat {
	return math.Quat{X: q.X, Y: -q.Y, Z: q.Z, W: -q.W}.Normalize()
}

// ConvertPosition remaps runtime axes (x, y, z) onto engine axes (-z, x, y).
func ConvertPosition(p math.Vec3) math.Vec3 {
	return math.Vec3{X: -p.Z, Y: p.X, Z: p.Y}
}

// InversePosition undoes ConvertPosition.
func InversePosition(p math.Vec3) math.Vec3 {
	return math.Vec3{X: p.Y, Y: p.Z, Z: -p.X}
}

// Convert builds an engine transform from a runtime rotation and reference
// position. The position is remapped and scaled by UnitScale. Scale is one.
func Convert(rotation Quaternion, referencePosition math.Vec3) pose.Transform {
	return pose.Transform{
		Rotation:    ConvertRotation(rotation),
		Translation: ConvertPosition(referencePosition).Scale(UnitScale),
		Scale:       math.Vec3One(),
	}
}

// ConvertReference converts a bind-pose bone with Convert.
func ConvertReference(b Bone) pose.Transform {
	return Convert(b.Orientation, b.Pos())
}

// ConvertLive converts a live bone for retargeting. With AxisX the
// rotation and axis remap of Convert apply, without unit scaling. With
// AxisZ the bone keeps the runtime basis and only the rotation is
// normalized.
func ConvertLive(b Bone, axis ForwardAxis) pose.Transform {
	if axis == AxisZ {
		return pose.Transform{
			Rotation:    b.Orientation.Quat().Normalize(),
			Translation: b.Pos(),
			Scale:       math.Vec3One(),
		}
	}
	return pose.Transform{
		Rotation:    ConvertRotation(b.Orientation),
		Translation: ConvertPosition(b.Pos()),
		Scale:       math.Vec3One(),
	}
}
