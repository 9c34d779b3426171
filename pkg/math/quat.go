package math

import "math"

// DefaultTolerance is the comparison tolerance used for rotations.
const DefaultTolerance = 1e-4

// normalizeEpsilon is the smallest quaternion length that is normalized;
// anything shorter collapses to identity.
const normalizeEpsilon = 0.0001

// Quat represents a quaternion for 3D rotations.
// Components are stored as X, Y, Z, W where W is the scalar part.
type Quat struct {
	X, Y, Z, W float32
}

// QuatIdentity returns an identity quaternion (no rotation).
func QuatIdentity() Quat {
	return Quat{X: 0, Y: 0, Z: 0, W: 1}
}

// QuatFromAxisAngle creates a quaternion from axis-angle rotation.
// axis should be normalized, angle is in radians.
func QuatFromAxisAngle(axis Vec3, angle float32) Quat {
	halfAngle := angle / 2
	s := float32(math.Sin(float64(halfAngle)))
	return Quat{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: float32(math.Cos(float64(halfAngle))),
	}
}

// Length returns the quaternion norm.
func (q Quat) Length() float32 {
	return float32(math.Sqrt(float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)))
}

// Normalize returns a normalized quaternion.
// Degenerate input (near-zero length, NaN or Inf) yields identity.
func (q Quat) Normalize() Quat {
	if !q.IsFinite() {
		return QuatIdentity()
	}
	length := q.Length()
	if length < normalizeEpsilon {
		return QuatIdentity()
	}
	invLen := 1.0 / length
	return Quat{
		X: q.X * invLen,
		Y: q.Y * invLen,
		Z: q.Z * invLen,
		W: q.W * invLen,
	}
}

// IsNormalized reports whether q has unit length within DefaultTolerance.
func (q Quat) IsNormalized() bool {
	return absf(q.X*q.X+q.Y*q.Y+q.Z*q.Z+q.W*q.W-1) <= DefaultTolerance
}

// IsFinite reports whether no component is NaN or infinite.
func (q Quat) IsFinite() bool {
	return isFinite(q.X) && isFinite(q.Y) && isFinite(q.Z) && isFinite(q.W)
}

// Equal reports whether q and other describe the same rotation within tol.
// q and -q are the same rotation.
func (q Quat) Equal(other Quat, tol float32) bool {
	same := absf(q.X-other.X) <= tol && absf(q.Y-other.Y) <= tol &&
		absf(q.Z-other.Z) <= tol && absf(q.W-other.W) <= tol
	flipped := absf(q.X+other.X) <= tol && absf(q.Y+other.Y) <= tol &&
		absf(q.Z+other.Z) <= tol && absf(q.W+other.W) <= tol
	return same || flipped
}

// IsIdentity reports whether q is the identity rotation within tol.
func (q Quat) IsIdentity(tol float32) bool {
	return q.Equal(QuatIdentity(), tol)
}

// Dot returns the dot product of two quaternions.
func (q Quat) Dot(other Quat) float32 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Mul multiplies two quaternions (combines rotations).
// The result applies other first, then q.
func (q Quat) Mul(other Quat) Quat {
	return Quat{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// Inverse returns the inverse rotation of a unit quaternion.
func (q Quat) Inverse() Quat {
	return Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

// RotateVector rotates v by q.
func (q Quat) RotateVector(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// UnrotateVector rotates v by the inverse of q.
func (q Quat) UnrotateVector(v Vec3) Vec3 {
	return q.Inverse().RotateVector(v)
}
