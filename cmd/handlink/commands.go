package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/handlink/internal/config"
	"github.com/Faultbox/handlink/internal/device"
	"github.com/Faultbox/handlink/internal/logger"
	"github.com/Faultbox/handlink/internal/retarget"
	"github.com/Faultbox/handlink/pkg/math"
	"github.com/Faultbox/handlink/pkg/openvr"
	"github.com/Faultbox/handlink/pkg/pose"
	"github.com/Faultbox/handlink/pkg/skeleton"
)

var errNoRecording = errors.New("no recording configured (use -recording or device.recording)")

func cmdBoneMap(cfg *config.Config) error {
	m := retarget.Build(&cfg.BoneMap)
	printBoneMap(m)
	pterm.Info.Printf("%d of %d slots mapped\n", m.Mapped(), skeleton.BoneCount)
	return nil
}

func cmdSkeleton(args []string) error {
	which := "source"
	if len(args) > 0 {
		which = args[0]
	}

	switch which {
	case "source", "src":
		printTopology(skeleton.Source)
	case "reference", "ref":
		printTopology(skeleton.Reference)
		printFixedTable(skeleton.Left)
	default:
		return fmt.Errorf("unknown skeleton %q (want source or reference)", which)
	}
	return nil
}

func openDevice(cfg *config.Config) (*device.Device, error) {
	if cfg.Device.Recording == "" {
		return nil, errNoRecording
	}
	dev := device.New(cfg.Device.Loop)
	if err := dev.Open(cfg.Device.Recording); err != nil {
		return nil, err
	}
	return dev, nil
}

func cmdPlay(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	frames := fs.Int("frames", 0, "Stop after N frames (0 plays the whole recording)")
	lockWrist := fs.Bool("lock-wrist", false, "Hold root and wrist at the bind pose")
	repeat := fs.Int("repeat", 1, "Play the recording N times from the start")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *repeat < 1 {
		return fmt.Errorf("-repeat must be at least 1, got %d", *repeat)
	}

	dev, err := openDevice(cfg)
	if err != nil {
		return err
	}

	rc := cfg.Retarget
	bind, ok := dev.BindPose(rc.Hand)
	if !ok {
		pterm.Warning.Printf("recording has no %s hand, every frame will be untracked\n", rc.Hand)
	}

	m := retarget.Build(&cfg.BoneMap)
	dst := destinationPose(rc.Skeleton, m, bind, rc.ForwardAxis)

	total := dev.Frames(rc.Hand, rc.MotionRange)
	if *frames > 0 && (*frames < total || cfg.Device.Loop) {
		total = *frames
	}

	var lock *pose.Pose
	if *lockWrist {
		lock = pose.New(poseNames(dst), referenceTransforms(dst))
	}
	tracked := playFrames(cfg, dev, m, dst, lock, total, *repeat)

	logger.Info("playback finished",
		zap.Int("frames", total*(*repeat)),
		zap.Int("tracked", tracked),
		zap.Stringer("skeleton", rc.Skeleton))

	printPose(dst)
	pterm.Info.Printf("%s hand, %s skeleton: %d of %d frames tracked\n", rc.Hand, rc.Skeleton, tracked, total*(*repeat))
	return nil
}

// playFrames evaluates total frames per pass into dst, rewinding the
// device between passes, and returns how many frames were tracked. A
// non-nil lock holds the wrist at its transforms.
func playFrames(cfg *config.Config, dev *device.Device, m *retarget.BoneMap, dst, lock *pose.Pose, total, passes int) int {
	tracked := 0
	for pass := 0; pass < passes; pass++ {
		if pass > 0 {
			dev.Rewind()
		}
		for i := 0; i < total; i++ {
			m.Rebuild(&cfg.BoneMap)
			if retarget.Evaluate(cfg.Params(dst.Len()), m, dev, dst) {
				tracked++
			}
			if lock != nil {
				retarget.CopyWrist(lock, dst, cfg.Retarget.Skeleton)
			}
		}
	}
	return tracked
}

func cmdExport(cfg *config.Config) error {
	dev, err := openDevice(cfg)
	if err != nil {
		return err
	}

	snap := device.TakeSnapshot(dev, cfg.Retarget.MotionRange, cfg.Retarget.ForwardAxis)
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return enc.Close()
}

func cmdConvert(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: handlink convert <x> <y> <z>")
	}

	var v [3]float32
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return fmt.Errorf("invalid coordinate %q: %w", a, err)
		}
		v[i] = float32(f)
	}

	in := math.Vec3{X: v[0], Y: v[1], Z: v[2]}
	out := openvr.Convert(openvr.Quaternion{W: 1}, in)
	pterm.DefaultTable.WithHasHeader().WithData([][]string{
		{"", "X", "Y", "Z"},
		{"runtime", formatFloat(in.X), formatFloat(in.Y), formatFloat(in.Z)},
		{"engine", formatFloat(out.Translation.X), formatFloat(out.Translation.Y), formatFloat(out.Translation.Z)},
	}).Render()
	return nil
}

func cmdHaptic(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("haptic", flag.ContinueOnError)
	delay := fs.Float64("delay", 0, "Start delay in seconds")
	duration := fs.Float64("duration", 0.1, "Pulse duration in seconds")
	frequency := fs.Float64("frequency", 160, "Vibration frequency in Hz")
	amplitude := fs.Float64("amplitude", 0.5, "Amplitude in [0, 1]")
	if err := fs.Parse(args); err != nil {
		return err
	}

	dev := device.New(cfg.Device.Loop)
	dev.TriggerHaptic(cfg.Retarget.Hand, device.HapticPulse{
		StartDelay: float32(*delay),
		Duration:   float32(*duration),
		Frequency:  float32(*frequency),
		Amplitude:  float32(*amplitude),
	})
	printHaptics(dev.Haptics())
	return nil
}

// cmdTrim keeps the first N frames of each motion range and writes the
// result to a new recording.
func cmdTrim(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("trim", flag.ContinueOnError)
	frames := fs.Int("frames", 0, "Frames to keep per motion range")
	out := fs.String("out", "", "Output recording path")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.Device.Recording == "" {
		return errNoRecording
	}
	if *out == "" || *frames < 1 {
		return fmt.Errorf("usage: handlink trim -frames N -out <path>")
	}

	rec, err := device.ReadRecording(cfg.Device.Recording)
	if err != nil {
		return err
	}
	rec.Frames.WithoutController = rec.Frames.WithoutController[:min(*frames, len(rec.Frames.WithoutController))]
	rec.Frames.WithController = rec.Frames.WithController[:min(*frames, len(rec.Frames.WithController))]

	if err := rec.Save(*out); err != nil {
		return err
	}
	logger.Info("recording trimmed",
		zap.String("from", cfg.Device.Recording),
		zap.String("to", *out),
		zap.Int("without_controller", len(rec.Frames.WithoutController)),
		zap.Int("with_controller", len(rec.Frames.WithController)))
	pterm.Info.Printf("wrote %s\n", *out)
	return nil
}

func cmdSaveConfig(cfg *config.Config, args []string) error {
	var err error
	path := filepath.Join(config.ConfigDir(), "config.yaml")
	if len(args) > 0 {
		path = args[0]
		err = cfg.SaveTo(path)
	} else {
		err = cfg.Save()
	}
	if err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	logger.Debug("config saved", zap.String("path", path))
	pterm.Info.Printf("config written to %s\n", path)
	return nil
}
