// Package retarget maps tracked source hand poses onto destination
// skeletons.
//
// Each tick the caller rebuilds the BoneMap from its overrides and calls
// Evaluate with the device provider and the destination pose. Evaluate
// never fails: missing tracking data leaves the reference pose in place,
// and any bone that cannot be resolved keeps its current transform.
package retarget

import (
	"go.uber.org/zap"

	"github.com/Faultbox/handlink/internal/logger"
	"github.com/Faultbox/handlink/pkg/math"
	"github.com/Faultbox/handlink/pkg/openvr"
	"github.com/Faultbox/handlink/pkg/pose"
	"github.com/Faultbox/handlink/pkg/skeleton"
)

// Provider supplies the live source hand pose.
type Provider interface {
	// GetSkeletalData fills out with the source pose and reports whether
	// tracking data was available.
	GetSkeletalData(hand skeleton.Hand, axis openvr.ForwardAxis, motion skeleton.MotionRange, out *[skeleton.BoneCount]pose.Transform) bool
}

// Reader is a read-only indexed pose.
type Reader interface {
	Len() int
	Transform(i int) pose.Transform
}

// Sink is a destination pose owned by the caller.
type Sink interface {
	Reader
	IndexOf(name string) int
	SetTransform(i int, t pose.Transform)
	ResetToReference()
}

// Params selects the source data and mapping for one evaluation.
type Params struct {
	// BoneCount is the number of destination bones to visit.
	BoneCount int
	Mode      Mode
	Hand      skeleton.Hand
	Axis      openvr.ForwardAxis
	Motion    skeleton.MotionRange
}

// Evaluate resets out to its reference pose, reads the source pose from
// provider and writes the retargeted rotations (and, in SourceNative mode,
// translations) into out. Scale always stays as it was. It reports whether
// tracking data was applied.
func Evaluate(p Params, m *BoneMap, provider Provider, out Sink) bool {
	log := logger.Named("retarget")

	out.ResetToReference()

	var raw [skeleton.BoneCount]pose.Transform
	if provider == nil || !provider.GetSkeletalData(p.Hand, p.Axis, p.Motion, &raw) {
		log.Debug("no tracking data", zap.Stringer("hand", p.Hand), zap.Stringer("mode", p.Mode))
		return false
	}

	written, skipped := 0, 0
	for i := 0; i < p.BoneCount; i++ {
		src, ok := sourceTransform(p, m, &raw, i)
		dst := destinationIndex(p.Mode, m, out, i)
		if dst < 0 || dst >= out.Len() {
			skipped++
			if ce := log.Check(zap.DebugLevel, "bone skipped"); ce != nil {
				ce.Write(zap.Int("index", i), zap.String("destination", m.Destination(i)))
			}
			continue
		}

		next := out.Transform(dst)
		if ok && usableRotation(src.Rotation) {
			next.Rotation = src.Rotation
		}
		if ok && p.Mode == SourceNative && usableTranslation(src.Translation) {
			next.Translation = src.Translation
		}
		out.SetTransform(dst, next)
		written++
	}

	log.Debug("pose evaluated",
		zap.Stringer("hand", p.Hand),
		zap.Stringer("mode", p.Mode),
		zap.Int("written", written),
		zap.Int("skipped", skipped))
	return true
}

// sourceTransform picks the source transform for destination bone i.
func sourceTransform(p Params, m *BoneMap, raw *[skeleton.BoneCount]pose.Transform, i int) (pose.Transform, bool) {
	switch p.Mode {
	case SourceNative:
		if i < len(raw) {
			return raw[i], true
		}
	case FixedRetarget:
		if b := skeleton.FixedRetargetSource(p.Hand, i); b.Valid() {
			return raw[b], true
		}
	case CustomMapped:
		if i < len(raw) && m.Destination(i) != "" {
			return raw[i], true
		}
	}
	return pose.Transform{}, false
}

// destinationIndex resolves where bone i is written, or -1.
func destinationIndex(mode Mode, m *BoneMap, out Sink, i int) int {
	if mode != CustomMapped {
		return i
	}
	name := m.Destination(i)
	if name == "" {
		return -1
	}
	return out.IndexOf(name)
}

func usableRotation(q math.Quat) bool {
	return q.IsFinite() && !q.IsIdentity(math.DefaultTolerance)
}

func usableTranslation(v math.Vec3) bool {
	return v.IsFinite() && !v.IsZero()
}
