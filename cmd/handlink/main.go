// handlink retargets recorded VR hand tracking onto destination skeletons.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/handlink/internal/config"
	"github.com/Faultbox/handlink/internal/logger"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Sugar.Debugf("Config: %+v", cfg.Retarget)

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "bonemap", "map":
		err = cmdBoneMap(cfg)
	case "skeleton", "skel":
		err = cmdSkeleton(args)
	case "play":
		err = cmdPlay(cfg, args)
	case "export":
		err = cmdExport(cfg)
	case "convert":
		err = cmdConvert(args)
	case "haptic":
		err = cmdHaptic(cfg, args)
	case "trim":
		err = cmdTrim(cfg, args)
	case "save-config":
		err = cmdSaveConfig(cfg, args)
	case "help":
		printUsage()
	default:
		logger.Warn("unknown command", zap.String("command", command))
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`handlink - VR hand tracking retargeting bridge

Usage:
  handlink [flags] <command> [options]

Commands:
  bonemap                       Show the source -> destination bone map
  skeleton [source|reference]   Show bone topology
  play [-frames N] [-lock-wrist] [-repeat N]
                                Retarget every recorded frame and show the final pose
  export                        Write a dual-hand snapshot as YAML to stdout
  convert <x> <y> <z>           Convert a runtime reference position
  haptic [-duration S] [-frequency HZ] [-amplitude A] [-delay S]
                                Send a haptic pulse to the tracked hand
  trim -frames N -out <path>    Keep the first N frames of the recording
  save-config [path]            Write the effective config as YAML

Flags:
  -config <path>      Config file (default ./config.yaml, then user config dir)
  -debug              Enable debug logging
  -hand <left|right>  Tracked hand
  -skeleton <native|reference|custom>
  -axis <x|z>         Forward axis
  -range <with_controller|without_controller>
  -recording <path>   Recording to play back

Examples:
  handlink -recording left.yaml -skeleton reference play
  handlink -config rig.yaml bonemap
  handlink convert 0.03 0.01 -0.08`)
}
