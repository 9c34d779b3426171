// Package openvr describes bone records in the VR runtime's convention and
// converts them into the engine convention used by poses.
//
// The runtime is right-handed with Y up and metres as the unit. The engine
// is left-handed with Z up and X forward, in centimetres.
package openvr

import (
	"fmt"

	"github.com/Faultbox/handlink/pkg/math"
)

// Quaternion is a runtime orientation, stored scalar first.
type Quaternion struct {
	W float32 `yaml:"w"`
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Quat returns q reordered into a math.Quat without changing the convention.
func (q Quaternion) Quat() math.Quat {
	return math.Quat{X: q.X, Y: q.Y, Z: q.Z, W: q.W}
}

// Bone is one bone transform as the runtime reports it. Position carries
// a homogeneous fourth component that is ignored.
type Bone struct {
	Position    [4]float32 `yaml:"position,flow"`
	Orientation Quaternion `yaml:"orientation"`
}

// Pos returns the first three position components.
func (b Bone) Pos() math.Vec3 {
	return math.Vec3{X: b.Position[0], Y: b.Position[1], Z: b.Position[2]}
}

// ForwardAxis is the axis the runtime pose is oriented along when read.
type ForwardAxis uint8

const (
	// AxisX remaps bones into the engine basis.
	AxisX ForwardAxis = iota
	// AxisZ leaves bones in the runtime basis.
	AxisZ
)

func (a ForwardAxis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisZ:
		return "z"
	default:
		return fmt.Sprintf("ForwardAxis(%d)", uint8(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a ForwardAxis) MarshalText() ([]byte, error) {
	if a != AxisX && a != AxisZ {
		return nil, fmt.Errorf("invalid forward axis %d", uint8(a))
	}
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ForwardAxis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "x", "X":
		*a = AxisX
	case "z", "Z":
		*a = AxisZ
	default:
		return fmt.Errorf("unknown forward axis %q (want x or z)", text)
	}
	return nil
}
