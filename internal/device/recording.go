package device

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/handlink/internal/logger"
	"github.com/Faultbox/handlink/pkg/openvr"
	"github.com/Faultbox/handlink/pkg/skeleton"
)

var (
	ErrBoneCount   = errors.New("wrong number of bones")
	ErrNoFrames    = errors.New("recording has no frames")
	ErrUnknownHand = errors.New("unknown hand")
)

// Frames holds captured live poses per motion range.
type Frames struct {
	WithoutController [][]openvr.Bone `yaml:"without_controller,omitempty"`
	WithController    [][]openvr.Bone `yaml:"with_controller,omitempty"`
}

// Range returns the frames captured with the given motion range.
func (f *Frames) Range(motion skeleton.MotionRange) [][]openvr.Bone {
	if motion == skeleton.WithController {
		return f.WithController
	}
	return f.WithoutController
}

// Recording is one hand's captured session in runtime convention.
type Recording struct {
	Hand     skeleton.Hand `yaml:"hand"`
	BindPose []openvr.Bone `yaml:"bind_pose"`
	Frames   Frames        `yaml:"frames"`
}

// ReadRecording loads and validates a recording file.
func ReadRecording(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recording: %w", err)
	}

	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse recording %s: %w", path, err)
	}

	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("recording %s: %w", path, err)
	}
	return &rec, nil
}

// Validate checks the hand and bind pose, and drops frames that do not
// carry a full skeleton. It fails if no frames remain.
func (r *Recording) Validate() error {
	if r.Hand != skeleton.Left && r.Hand != skeleton.Right {
		return fmt.Errorf("%w: %d", ErrUnknownHand, uint8(r.Hand))
	}
	if len(r.BindPose) != skeleton.BoneCount {
		return fmt.Errorf("bind pose: %w: got %d, want %d", ErrBoneCount, len(r.BindPose), skeleton.BoneCount)
	}

	r.Frames.WithoutController = keepComplete(r.Frames.WithoutController, skeleton.WithoutController)
	r.Frames.WithController = keepComplete(r.Frames.WithController, skeleton.WithController)

	if len(r.Frames.WithoutController) == 0 && len(r.Frames.WithController) == 0 {
		return ErrNoFrames
	}
	return nil
}

func keepComplete(frames [][]openvr.Bone, motion skeleton.MotionRange) [][]openvr.Bone {
	kept := frames[:0]
	for i, f := range frames {
		if len(f) != skeleton.BoneCount {
			logger.Named("device").Warn("dropping frame",
				zap.Int("frame", i),
				zap.Stringer("range", motion),
				zap.Int("bones", len(f)))
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// Save writes the recording as YAML.
func (r *Recording) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal recording: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write recording: %w", err)
	}
	return nil
}
