// Package config handles handlink configuration loading and management.
package config

import (
	"fmt"

	"github.com/Faultbox/handlink/internal/retarget"
	"github.com/Faultbox/handlink/pkg/openvr"
	"github.com/Faultbox/handlink/pkg/skeleton"
)

// Config holds all handlink settings.
type Config struct {
	Retarget RetargetConfig     `yaml:"retarget"`
	BoneMap  retarget.Overrides `yaml:"bone_map"`
	Device   DeviceConfig       `yaml:"device"`
	Logging  LoggingConfig      `yaml:"logging"`
}

// RetargetConfig selects the tracked hand and how it maps onto the
// destination skeleton.
type RetargetConfig struct {
	Hand        skeleton.Hand        `yaml:"hand"`
	Skeleton    retarget.Mode        `yaml:"skeleton"`
	ForwardAxis openvr.ForwardAxis   `yaml:"forward_axis"`
	MotionRange skeleton.MotionRange `yaml:"motion_range"`
	BoneCount   int                  `yaml:"bone_count"` // 0 visits every destination bone
}

// DeviceConfig holds the playback source.
type DeviceConfig struct {
	Recording string `yaml:"recording"`
	Loop      bool   `yaml:"loop"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Retarget: RetargetConfig{
			Hand:        skeleton.Left,
			Skeleton:    retarget.SourceNative,
			ForwardAxis: openvr.AxisX,
			MotionRange: skeleton.WithoutController,
		},
		Device: DeviceConfig{
			Recording: "",
			Loop:      false,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if c.Retarget.BoneCount < 0 {
		return fmt.Errorf("retarget.bone_count must not be negative, got %d", c.Retarget.BoneCount)
	}
	return nil
}

// Params returns evaluation parameters for a destination pose with
// destBones bones. Custom mapping walks source slots, so it visits every
// slot unless bone_count is set.
func (c *Config) Params(destBones int) retarget.Params {
	count := destBones
	if c.Retarget.Skeleton == retarget.CustomMapped {
		count = skeleton.BoneCount
	}
	if c.Retarget.BoneCount > 0 {
		count = c.Retarget.BoneCount
	}
	return retarget.Params{
		BoneCount: count,
		Mode:      c.Retarget.Skeleton,
		Hand:      c.Retarget.Hand,
		Axis:      c.Retarget.ForwardAxis,
		Motion:    c.Retarget.MotionRange,
	}
}
