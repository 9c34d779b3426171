package main

import (
	"github.com/Faultbox/handlink/internal/retarget"
	"github.com/Faultbox/handlink/pkg/openvr"
	"github.com/Faultbox/handlink/pkg/pose"
	"github.com/Faultbox/handlink/pkg/skeleton"
)

// destinationPose builds the pose buffer a skeleton mode writes into.
// The native skeleton uses the recorded bind pose as its reference; the
// reference hand and custom skeletons start from identity. Custom
// skeletons hold one bone per distinct mapped name, in slot order.
func destinationPose(mode retarget.Mode, m *retarget.BoneMap, bind []openvr.Bone, axis openvr.ForwardAxis) *pose.Pose {
	switch mode {
	case retarget.SourceNative:
		ref := make([]pose.Transform, len(bind))
		for i, b := range bind {
			ref[i] = openvr.ConvertLive(b, axis)
		}
		return pose.New(skeleton.Source.Names(), ref)
	case retarget.FixedRetarget:
		return pose.NewIdentity(skeleton.Reference.Names())
	default:
		var names []string
		seen := make(map[string]bool)
		for _, e := range m.Entries {
			if e.Mapped() && !seen[e.Destination] {
				seen[e.Destination] = true
				names = append(names, e.Destination)
			}
		}
		return pose.NewIdentity(names)
	}
}

func poseNames(p *pose.Pose) []string {
	names := make([]string, p.Len())
	for i := range names {
		names[i] = p.Name(i)
	}
	return names
}

func referenceTransforms(p *pose.Pose) []pose.Transform {
	ref := make([]pose.Transform, p.Len())
	for i := range ref {
		ref[i] = p.Reference(i)
	}
	return ref
}
