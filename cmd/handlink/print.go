package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/Faultbox/handlink/internal/device"
	"github.com/Faultbox/handlink/internal/retarget"
	"github.com/Faultbox/handlink/pkg/math"
	"github.com/Faultbox/handlink/pkg/pose"
	"github.com/Faultbox/handlink/pkg/skeleton"
)

func printBoneMap(m *retarget.BoneMap) {
	data := [][]string{
		{"Slot", "Source", "Destination"},
	}
	for _, e := range m.Entries {
		dst := e.Destination
		if !e.Mapped() {
			dst = "-"
		}
		data = append(data, []string{
			strconv.Itoa(int(e.Source)),
			e.Source.String(),
			dst,
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printTopology(t *skeleton.Topology) {
	data := [][]string{
		{"Index", "Name", "Parent", "Children"},
	}
	for i := 0; i < t.BoneCount(); i++ {
		parent := "-"
		if p := t.Parent(i); p >= 0 {
			parent = t.BoneName(p)
		}
		var children []string
		for _, c := range t.Children(i) {
			children = append(children, t.BoneName(c))
		}
		data = append(data, []string{
			strconv.Itoa(i),
			t.BoneName(i),
			parent,
			strings.Join(children, ", "),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printFixedTable(hand skeleton.Hand) {
	data := [][]string{
		{"Reference", "Source"},
	}
	for i := 0; i < skeleton.RefBoneCount; i++ {
		data = append(data, []string{
			skeleton.Reference.BoneName(i),
			skeleton.FixedRetargetSource(hand, i).String(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printPose(p *pose.Pose) {
	data := [][]string{
		{"Bone", "Rotation (x y z w)", "Translation", "Scale"},
	}
	for i := 0; i < p.Len(); i++ {
		t := p.Transform(i)
		data = append(data, []string{
			p.Name(i),
			formatQuat(t.Rotation),
			formatVec(t.Translation),
			formatVec(t.Scale),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printHaptics(reqs []device.HapticRequest) {
	data := [][]string{
		{"Hand", "Delay", "Duration", "Frequency", "Amplitude"},
	}
	for _, r := range reqs {
		data = append(data, []string{
			r.Hand.String(),
			formatFloat(r.Pulse.StartDelay),
			formatFloat(r.Pulse.Duration),
			formatFloat(r.Pulse.Frequency),
			formatFloat(r.Pulse.Amplitude),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', 4, 32)
}

func formatVec(v math.Vec3) string {
	return fmt.Sprintf("%s %s %s", formatFloat(v.X), formatFloat(v.Y), formatFloat(v.Z))
}

func formatQuat(q math.Quat) string {
	return fmt.Sprintf("%s %s %s %s", formatFloat(q.X), formatFloat(q.Y), formatFloat(q.Z), formatFloat(q.W))
}
