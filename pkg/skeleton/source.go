// Package skeleton defines the fixed hand skeleton reported by the VR runtime
// and the reference hand skeleton used for fixed retargeting.
package skeleton

import "fmt"

// Bone is a slot in the 31-bone source hand skeleton.
type Bone int

// NoBone marks an absent parent or an unmapped slot.
const NoBone Bone = -1

// Source skeleton slots, in the order the runtime reports them.
const (
	Root Bone = iota
	Wrist
	Thumb0
	Thumb1
	Thumb2
	Thumb3
	Index0
	Index1
	Index2
	Index3
	Index4
	Middle0
	Middle1
	Middle2
	Middle3
	Middle4
	Ring0
	Ring1
	Ring2
	Ring3
	Ring4
	Pinky0
	Pinky1
	Pinky2
	Pinky3
	Pinky4
	AuxThumb
	AuxIndex
	AuxMiddle
	AuxRing
	AuxPinky

	// BoneCount is the number of source bones.
	BoneCount = 31
)

var sourceNames = [BoneCount]string{
	"Root",
	"wrist",
	"finger_thumb_0",
	"finger_thumb_1",
	"finger_thumb_2",
	"finger_thumb_end",
	"finger_index_meta",
	"finger_index_0",
	"finger_index_1",
	"finger_index_2",
	"finger_index_end",
	"finger_middle_meta",
	"finger_middle_0",
	"finger_middle_1",
	"finger_middle_2",
	"finger_middle_end",
	"finger_ring_meta",
	"finger_ring_0",
	"finger_ring_1",
	"finger_ring_2",
	"finger_ring_end",
	"finger_pinky_meta",
	"finger_pinky_0",
	"finger_pinky_1",
	"finger_pinky_2",
	"finger_pinky_end",
	"finger_thumb_aux",
	"finger_index_aux",
	"finger_middle_aux",
	"finger_ring_aux",
	"finger_pinky_aux",
}

var sourceParents = [BoneCount]Bone{
	NoBone,  // Root
	Root,    // Wrist
	Wrist,   // Thumb0
	Thumb0,  // Thumb1
	Thumb1,  // Thumb2
	Thumb2,  // Thumb3
	Wrist,   // Index0
	Index0,  // Index1
	Index1,  // Index2
	Index2,  // Index3
	Index3,  // Index4
	Wrist,   // Middle0
	Middle0, // Middle1
	Middle1, // Middle2
	Middle2, // Middle3
	Middle3, // Middle4
	Wrist,   // Ring0
	Ring0,   // Ring1
	Ring1,   // Ring2
	Ring2,   // Ring3
	Ring3,   // Ring4
	Wrist,   // Pinky0
	Pinky0,  // Pinky1
	Pinky1,  // Pinky2
	Pinky2,  // Pinky3
	Pinky3,  // Pinky4
	Root,    // AuxThumb
	Root,    // AuxIndex
	Root,    // AuxMiddle
	Root,    // AuxRing
	Root,    // AuxPinky
}

// Valid reports whether b is a source slot.
func (b Bone) Valid() bool {
	return b >= 0 && b < BoneCount
}

// String returns the runtime's name for the slot.
func (b Bone) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Bone(%d)", int(b))
	}
	return sourceNames[b]
}

// Source is the fixed source hand topology.
var Source = newTopology(sourceNames[:], parentInts(sourceParents[:]))

func parentInts(parents []Bone) []int {
	out := make([]int, len(parents))
	for i, p := range parents {
		out[i] = int(p)
	}
	return out
}
