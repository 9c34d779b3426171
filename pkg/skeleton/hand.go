package skeleton

import "fmt"

// Hand selects which tracked hand is read.
type Hand uint8

const (
	Left Hand = iota
	Right
)

// String returns "left" or "right".
func (h Hand) String() string {
	switch h {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Hand(%d)", uint8(h))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (h Hand) MarshalText() ([]byte, error) {
	if h != Left && h != Right {
		return nil, fmt.Errorf("invalid hand %d", uint8(h))
	}
	return []byte(h.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Hand) UnmarshalText(text []byte) error {
	switch string(text) {
	case "left", "l":
		*h = Left
	case "right", "r":
		*h = Right
	default:
		return fmt.Errorf("unknown hand %q (want left or right)", text)
	}
	return nil
}

// MotionRange controls how much the runtime constrains the finger pose
// by the held controller.
type MotionRange uint8

const (
	WithoutController MotionRange = iota
	WithController
)

// String returns the config spelling of the range.
func (r MotionRange) String() string {
	switch r {
	case WithoutController:
		return "without_controller"
	case WithController:
		return "with_controller"
	default:
		return fmt.Sprintf("MotionRange(%d)", uint8(r))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r MotionRange) MarshalText() ([]byte, error) {
	if r != WithoutController && r != WithController {
		return nil, fmt.Errorf("invalid motion range %d", uint8(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *MotionRange) UnmarshalText(text []byte) error {
	switch string(text) {
	case "without_controller", "without":
		*r = WithoutController
	case "with_controller", "with":
		*r = WithController
	default:
		return fmt.Errorf("unknown motion range %q (want with_controller or without_controller)", text)
	}
	return nil
}
