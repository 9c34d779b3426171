package config

import (
	"flag"
	"fmt"
)

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagHand      = flag.String("hand", "", "Tracked hand (left, right)")
	flagSkeleton  = flag.String("skeleton", "", "Destination skeleton (native, reference, custom)")
	flagAxis      = flag.String("axis", "", "Forward axis (x, z)")
	flagRange     = flag.String("range", "", "Motion range (with_controller, without_controller)")
	flagRecording = flag.String("recording", "", "Recording file to play back")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagHand != "" {
		if err := cfg.Retarget.Hand.UnmarshalText([]byte(*flagHand)); err != nil {
			return fmt.Errorf("-hand: %w", err)
		}
	}
	if *flagSkeleton != "" {
		if err := cfg.Retarget.Skeleton.UnmarshalText([]byte(*flagSkeleton)); err != nil {
			return fmt.Errorf("-skeleton: %w", err)
		}
	}
	if *flagAxis != "" {
		if err := cfg.Retarget.ForwardAxis.UnmarshalText([]byte(*flagAxis)); err != nil {
			return fmt.Errorf("-axis: %w", err)
		}
	}
	if *flagRange != "" {
		if err := cfg.Retarget.MotionRange.UnmarshalText([]byte(*flagRange)); err != nil {
			return fmt.Errorf("-range: %w", err)
		}
	}
	if *flagRecording != "" {
		cfg.Device.Recording = *flagRecording
	}
	return nil
}
