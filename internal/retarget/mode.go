package retarget

import "fmt"

// Mode selects how destination bones are matched to source bones.
type Mode uint8

const (
	// SourceNative treats the destination skeleton as the source layout.
	SourceNative Mode = iota
	// FixedRetarget maps the reference hand through a fixed table.
	FixedRetarget
	// CustomMapped resolves destination bones by configured name.
	CustomMapped
)

func (m Mode) String() string {
	switch m {
	case SourceNative:
		return "native"
	case FixedRetarget:
		return "reference"
	case CustomMapped:
		return "custom"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if m > CustomMapped {
		return nil, fmt.Errorf("invalid skeleton mode %d", uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "native", "source":
		*m = SourceNative
	case "reference", "fixed":
		*m = FixedRetarget
	case "custom", "mapped":
		*m = CustomMapped
	default:
		return fmt.Errorf("unknown skeleton mode %q (want native, reference or custom)", text)
	}
	return nil
}
