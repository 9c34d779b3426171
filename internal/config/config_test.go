package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/handlink/internal/retarget"
	"github.com/Faultbox/handlink/pkg/openvr"
	"github.com/Faultbox/handlink/pkg/skeleton"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Retarget.Hand != skeleton.Left {
		t.Errorf("expected left hand, got %s", cfg.Retarget.Hand)
	}
	if cfg.Retarget.Skeleton != retarget.SourceNative {
		t.Errorf("expected native skeleton, got %s", cfg.Retarget.Skeleton)
	}
	if cfg.Retarget.ForwardAxis != openvr.AxisX {
		t.Errorf("expected forward axis x, got %s", cfg.Retarget.ForwardAxis)
	}
	if cfg.Retarget.MotionRange != skeleton.WithoutController {
		t.Errorf("expected without_controller, got %s", cfg.Retarget.MotionRange)
	}
	if cfg.Retarget.BoneCount != 0 {
		t.Errorf("expected bone count 0, got %d", cfg.Retarget.BoneCount)
	}
	if cfg.Device.Loop {
		t.Error("expected loop to be false by default")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if m := retarget.Build(&cfg.BoneMap); m.Mapped() != 0 {
		t.Errorf("expected empty bone map, got %d mapped", m.Mapped())
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
retarget:
  hand: right
  skeleton: custom
  forward_axis: z
  motion_range: with_controller
  bone_count: 24

bone_map:
  wrist: hand_r
  finger_thumb_0: thumb_01
  finger_pinky_end: ""

device:
  recording: "captures/right.yaml"
  loop: true

logging:
  level: "debug"
  log_file: "handlink.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Retarget.Hand != skeleton.Right {
		t.Errorf("expected right hand, got %s", cfg.Retarget.Hand)
	}
	if cfg.Retarget.Skeleton != retarget.CustomMapped {
		t.Errorf("expected custom skeleton, got %s", cfg.Retarget.Skeleton)
	}
	if cfg.Retarget.ForwardAxis != openvr.AxisZ {
		t.Errorf("expected forward axis z, got %s", cfg.Retarget.ForwardAxis)
	}
	if cfg.Retarget.MotionRange != skeleton.WithController {
		t.Errorf("expected with_controller, got %s", cfg.Retarget.MotionRange)
	}
	if cfg.Retarget.BoneCount != 24 {
		t.Errorf("expected bone count 24, got %d", cfg.Retarget.BoneCount)
	}

	if cfg.BoneMap.Wrist != "hand_r" {
		t.Errorf("expected wrist -> hand_r, got %q", cfg.BoneMap.Wrist)
	}
	if cfg.BoneMap.Thumb0 != "thumb_01" {
		t.Errorf("expected finger_thumb_0 -> thumb_01, got %q", cfg.BoneMap.Thumb0)
	}
	if m := retarget.Build(&cfg.BoneMap); m.Mapped() != 2 {
		t.Errorf("expected 2 mapped bones, got %d", m.Mapped())
	}

	if cfg.Device.Recording != "captures/right.yaml" {
		t.Errorf("expected recording path, got %s", cfg.Device.Recording)
	}
	if !cfg.Device.Loop {
		t.Error("expected loop to be true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "handlink.log" {
		t.Errorf("expected log file 'handlink.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileBadEnum(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("retarget:\n  hand: both\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if err := loadFromFile(Default(), configPath); err == nil {
		t.Error("expected error for unknown hand")
	}
}

func TestLoadFromFilePartial(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(configPath, []byte("retarget:\n  hand: right\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Retarget.Hand != skeleton.Right {
		t.Errorf("expected right hand, got %s", cfg.Retarget.Hand)
	}
	// Unset values keep their defaults
	if cfg.Retarget.ForwardAxis != openvr.AxisX {
		t.Errorf("expected default forward axis, got %s", cfg.Retarget.ForwardAxis)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level, got %s", cfg.Logging.Level)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Retarget.Hand = skeleton.Right
	cfg.Retarget.Skeleton = retarget.FixedRetarget
	cfg.BoneMap.Index1 = "index_01"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read saved config: %v", err)
	}
	for _, want := range []string{"hand: right", "skeleton: reference", "finger_index_0: index_01"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("expected %q in saved config:\n%s", want, data)
		}
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to load saved config: %v", err)
	}
	if loaded.Retarget != cfg.Retarget {
		t.Errorf("retarget section changed on reload: %+v != %+v", loaded.Retarget, cfg.Retarget)
	}
	if loaded.BoneMap != cfg.BoneMap {
		t.Errorf("bone map changed on reload")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if filepath.Base(dir) != "handlink" {
		t.Errorf("expected handlink directory, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("retarget:\n  hand: right\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name: "enum flags",
			setup: func() {
				*flagHand = "right"
				*flagSkeleton = "reference"
				*flagAxis = "z"
				*flagRange = "with_controller"
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Retarget.Hand != skeleton.Right {
					t.Errorf("expected right hand, got %s", cfg.Retarget.Hand)
				}
				if cfg.Retarget.Skeleton != retarget.FixedRetarget {
					t.Errorf("expected reference skeleton, got %s", cfg.Retarget.Skeleton)
				}
				if cfg.Retarget.ForwardAxis != openvr.AxisZ {
					t.Errorf("expected axis z, got %s", cfg.Retarget.ForwardAxis)
				}
				if cfg.Retarget.MotionRange != skeleton.WithController {
					t.Errorf("expected with_controller, got %s", cfg.Retarget.MotionRange)
				}
			},
			teardown: func() {
				*flagHand = ""
				*flagSkeleton = ""
				*flagAxis = ""
				*flagRange = ""
			},
		},
		{
			name:  "recording flag",
			setup: func() { *flagRecording = "left.yaml" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Device.Recording != "left.yaml" {
					t.Errorf("expected recording left.yaml, got %s", cfg.Device.Recording)
				}
			},
			teardown: func() { *flagRecording = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}

			tt.verify(t, cfg)
		})
	}
}

func TestApplyFlagsInvalid(t *testing.T) {
	*flagAxis = "y"
	defer func() { *flagAxis = "" }()

	err := applyFlags(Default())
	if err == nil {
		t.Fatal("expected error for invalid axis")
	}
	if !strings.Contains(err.Error(), "-axis") {
		t.Errorf("error should name the flag, got %v", err)
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
retarget:
  hand: right
  motion_range: with_controller
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagHand = "left"
	defer func() {
		*flagConfig = ""
		*flagHand = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Hand comes from the flag, not the file
	if cfg.Retarget.Hand != skeleton.Left {
		t.Errorf("expected left hand from flag, got %s", cfg.Retarget.Hand)
	}
	// Motion range comes from the file since no flag overrides it
	if cfg.Retarget.MotionRange != skeleton.WithController {
		t.Errorf("expected with_controller from file, got %s", cfg.Retarget.MotionRange)
	}
}

func TestLoadRejectsNegativeBoneCount(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("retarget:\n  bone_count: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for negative bone count")
	}
}

func TestParams(t *testing.T) {
	cfg := Default()
	cfg.Retarget.Hand = skeleton.Right
	cfg.Retarget.Skeleton = retarget.CustomMapped

	p := cfg.Params(1)
	if p.BoneCount != skeleton.BoneCount {
		t.Errorf("expected custom mapping to visit %d slots, got %d", skeleton.BoneCount, p.BoneCount)
	}
	if p.Hand != skeleton.Right || p.Mode != retarget.CustomMapped {
		t.Errorf("unexpected params %+v", p)
	}

	cfg.Retarget.Skeleton = retarget.FixedRetarget
	if p := cfg.Params(40); p.BoneCount != 40 {
		t.Errorf("expected destination bone count 40, got %d", p.BoneCount)
	}

	cfg.Retarget.BoneCount = 16
	if p := cfg.Params(40); p.BoneCount != 16 {
		t.Errorf("expected configured bone count 16, got %d", p.BoneCount)
	}
}
