// Package device plays back captured hand tracking sessions as a skeletal
// input device.
package device

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/Faultbox/handlink/internal/logger"
	"github.com/Faultbox/handlink/pkg/openvr"
	"github.com/Faultbox/handlink/pkg/pose"
	"github.com/Faultbox/handlink/pkg/skeleton"
)

// HapticPulse is a vibration request. Times are in seconds.
type HapticPulse struct {
	StartDelay float32
	Duration   float32
	Frequency  float32
	Amplitude  float32
}

// HapticRequest is a pulse delivered to a hand.
type HapticRequest struct {
	Hand  skeleton.Hand
	Pulse HapticPulse
}

type cursorKey struct {
	hand   skeleton.Hand
	motion skeleton.MotionRange
}

// Device serves recorded hand poses. Each read advances the hand's
// playback position by one frame.
type Device struct {
	mu         sync.Mutex
	loop       bool
	recordings map[skeleton.Hand]*Recording
	cursors    map[cursorKey]int
	haptics    []HapticRequest
}

// New returns a device with no recordings. With loop set, playback wraps
// around instead of running out of data.
func New(loop bool) *Device {
	return &Device{
		loop:       loop,
		recordings: make(map[skeleton.Hand]*Recording),
		cursors:    make(map[cursorKey]int),
	}
}

// Open reads a recording file and loads it.
func (d *Device) Open(path string) error {
	rec, err := ReadRecording(path)
	if err != nil {
		return err
	}
	if err := d.Load(rec); err != nil {
		return err
	}
	logger.Named("device").Info("recording opened",
		zap.String("path", path),
		zap.Stringer("hand", rec.Hand),
		zap.Int("without_controller", len(rec.Frames.WithoutController)),
		zap.Int("with_controller", len(rec.Frames.WithController)))
	return nil
}

// Load validates rec and makes it the active recording for its hand.
func (d *Device) Load(rec *Recording) error {
	if rec == nil {
		return fmt.Errorf("nil recording")
	}
	if err := rec.Validate(); err != nil {
		return err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.recordings[rec.Hand] = rec
	for _, motion := range []skeleton.MotionRange{skeleton.WithoutController, skeleton.WithController} {
		delete(d.cursors, cursorKey{rec.Hand, motion})
	}
	return nil
}

// Rewind restarts playback for every hand.
func (d *Device) Rewind() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.cursors)
}

// Frames returns the number of frames available for a hand and range.
func (d *Device) Frames(hand skeleton.Hand, motion skeleton.MotionRange) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	rec, ok := d.recordings[hand]
	if !ok {
		return 0
	}
	return len(rec.Frames.Range(motion))
}

// BindPose returns the recorded bind pose for hand without advancing
// playback.
func (d *Device) BindPose(hand skeleton.Hand) ([]openvr.Bone, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	rec, ok := d.recordings[hand]
	if !ok {
		return nil, false
	}
	out := make([]openvr.Bone, len(rec.BindPose))
	copy(out, rec.BindPose)
	return out, true
}

// next returns the current frame and bind pose and advances the cursor.
func (d *Device) next(hand skeleton.Hand, motion skeleton.MotionRange) (frame, bind []openvr.Bone, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	rec, ok := d.recordings[hand]
	if !ok {
		return nil, nil, false
	}
	frames := rec.Frames.Range(motion)
	if len(frames) == 0 {
		return nil, nil, false
	}

	key := cursorKey{hand, motion}
	pos := d.cursors[key]
	if pos >= len(frames) {
		if !d.loop {
			return nil, nil, false
		}
		pos = 0
	}
	d.cursors[key] = pos + 1
	return frames[pos], rec.BindPose, true
}

// GetSkeletalData converts the next frame for hand into out.
func (d *Device) GetSkeletalData(hand skeleton.Hand, axis openvr.ForwardAxis, motion skeleton.MotionRange, out *[skeleton.BoneCount]pose.Transform) bool {
	frame, _, ok := d.next(hand, motion)
	if !ok {
		return false
	}
	for i, b := range frame {
		out[i] = openvr.ConvertLive(b, axis)
	}
	return true
}

// GetRawSkeletalData copies the next frame and the bind pose for hand in
// runtime convention.
func (d *Device) GetRawSkeletalData(hand skeleton.Hand, motion skeleton.MotionRange, live, reference *[skeleton.BoneCount]openvr.Bone) bool {
	frame, bind, ok := d.next(hand, motion)
	if !ok {
		return false
	}
	copy(live[:], frame)
	copy(reference[:], bind)
	return true
}

// TriggerHaptic queues a vibration for hand. Amplitude is clamped to
// [0, 1]; negative times and frequency are clamped to zero.
func (d *Device) TriggerHaptic(hand skeleton.Hand, pulse HapticPulse) {
	pulse.Amplitude = clamp(pulse.Amplitude, 0, 1)
	pulse.StartDelay = max(pulse.StartDelay, 0)
	pulse.Duration = max(pulse.Duration, 0)
	pulse.Frequency = max(pulse.Frequency, 0)

	d.mu.Lock()
	d.haptics = append(d.haptics, HapticRequest{Hand: hand, Pulse: pulse})
	d.mu.Unlock()

	logger.Named("device").Debug("haptic pulse",
		zap.Stringer("hand", hand),
		zap.Float32("duration", pulse.Duration),
		zap.Float32("frequency", pulse.Frequency),
		zap.Float32("amplitude", pulse.Amplitude))
}

// Haptics returns the pulses requested so far.
func (d *Device) Haptics() []HapticRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]HapticRequest, len(d.haptics))
	copy(out, d.haptics)
	return out
}

func clamp(v, lo, hi float32) float32 {
	// NaN compares false against both bounds
	if !(v >= lo) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
