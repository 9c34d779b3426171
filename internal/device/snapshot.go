package device

import (
	"github.com/Faultbox/handlink/pkg/openvr"
	"github.com/Faultbox/handlink/pkg/pose"
	"github.com/Faultbox/handlink/pkg/skeleton"
)

// RawSource reads both live and bind-pose bones for a hand.
type RawSource interface {
	GetRawSkeletalData(hand skeleton.Hand, motion skeleton.MotionRange, live, reference *[skeleton.BoneCount]openvr.Bone) bool
}

// HandSnapshot is one hand's pose keyed by source bone name.
type HandSnapshot struct {
	Tracked   bool                      `yaml:"tracked"`
	Live      map[string]pose.Transform `yaml:"live,omitempty"`
	Reference map[string]pose.Transform `yaml:"reference,omitempty"`
	Model     map[string]pose.Transform `yaml:"model,omitempty"`
}

// Snapshot holds both hands at one instant.
type Snapshot struct {
	Motion skeleton.MotionRange `yaml:"motion_range"`
	Axis   openvr.ForwardAxis   `yaml:"forward_axis"`
	Left   HandSnapshot         `yaml:"left"`
	Right  HandSnapshot         `yaml:"right"`
}

// TakeSnapshot reads both hands from src. Live bones are converted with
// ConvertLive for the given forward axis. Reference bones go through ConvertReference and are in
// engine units; Model holds the same bind pose composed from the root.
func TakeSnapshot(src RawSource, motion skeleton.MotionRange, axis openvr.ForwardAxis) Snapshot {
	return Snapshot{
		Motion: motion,
		Axis:   axis,
		Left:   snapshotHand(src, skeleton.Left, motion, axis),
		Right:  snapshotHand(src, skeleton.Right, motion, axis),
	}
}

func snapshotHand(src RawSource, hand skeleton.Hand, motion skeleton.MotionRange, axis openvr.ForwardAxis) HandSnapshot {
	var live, ref [skeleton.BoneCount]openvr.Bone
	if !src.GetRawSkeletalData(hand, motion, &live, &ref) {
		return HandSnapshot{}
	}

	snap := HandSnapshot{
		Tracked:   true,
		Live:      make(map[string]pose.Transform, skeleton.BoneCount),
		Reference: make(map[string]pose.Transform, skeleton.BoneCount),
		Model:     make(map[string]pose.Transform, skeleton.BoneCount),
	}
	local := make([]pose.Transform, skeleton.BoneCount)
	for i := 0; i < skeleton.BoneCount; i++ {
		name := skeleton.Bone(i).String()
		local[i] = openvr.ConvertReference(ref[i])
		snap.Live[name] = openvr.ConvertLive(live[i], axis)
		snap.Reference[name] = local[i]
	}
	for i, t := range pose.ModelSpace(local, skeleton.Source.Parent) {
		snap.Model[skeleton.Bone(i).String()] = t
	}
	return snap
}
