package skeleton

// Reference hand bones. The reference hand has no root above the wrist and
// no metacarpal, tip or aux bones.
const (
	RefWrist = iota
	RefIndex01
	RefIndex02
	RefIndex03
	RefMiddle01
	RefMiddle02
	RefMiddle03
	RefPinky01
	RefPinky02
	RefPinky03
	RefRing01
	RefRing02
	RefRing03
	RefThumb01
	RefThumb02
	RefThumb03

	// RefBoneCount is the number of reference hand bones.
	RefBoneCount = 16
)

// Reference is the reference hand topology.
var Reference = newTopology(
	[]string{
		"hand",
		"index_01", "index_02", "index_03",
		"middle_01", "middle_02", "middle_03",
		"pinky_01", "pinky_02", "pinky_03",
		"ring_01", "ring_02", "ring_03",
		"thumb_01", "thumb_02", "thumb_03",
	},
	[]int{
		-1,
		RefWrist, RefIndex01, RefIndex02,
		RefWrist, RefMiddle01, RefMiddle02,
		RefWrist, RefPinky01, RefPinky02,
		RefWrist, RefRing01, RefRing02,
		RefWrist, RefThumb01, RefThumb02,
	},
)

// referenceToSource maps each reference hand bone to the source slot with
// the same anatomical role. Finger segments skip the source metacarpal,
// so index_01 is the proximal phalanx (Index1). The thumb has no
// metacarpal in the source layout, so thumb_01 is Thumb0.
var referenceToSource = [RefBoneCount]Bone{
	Wrist,   // hand
	Index1,  // index_01
	Index2,  // index_02
	Index3,  // index_03
	Middle1, // middle_01
	Middle2, // middle_02
	Middle3, // middle_03
	Pinky1,  // pinky_01
	Pinky2,  // pinky_02
	Pinky3,  // pinky_03
	Ring1,   // ring_01
	Ring2,   // ring_02
	Ring3,   // ring_03
	Thumb0,  // thumb_01
	Thumb1,  // thumb_02
	Thumb2,  // thumb_03
}

// fixedRetarget holds the correspondence per hand side. Left and right
// hands are mirror images with identical bone ordering, so both sides
// share one table.
var fixedRetarget = map[Hand]*[RefBoneCount]Bone{
	Left:  &referenceToSource,
	Right: &referenceToSource,
}

// FixedRetargetSource returns the source slot feeding reference bone index
// for the given hand, or NoBone if the index has no correspondence.
func FixedRetargetSource(hand Hand, index int) Bone {
	table, ok := fixedRetarget[hand]
	if !ok || index < 0 || index >= RefBoneCount {
		return NoBone
	}
	return table[index]
}
