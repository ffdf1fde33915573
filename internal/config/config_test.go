package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1024 {
		t.Errorf("expected width 1024, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 768 {
		t.Errorf("expected height 768, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if len(cfg.Scene.Textures) != 3 {
		t.Errorf("expected 3 floor textures, got %d", len(cfg.Scene.Textures))
	}
	if cfg.Scene.MeshPosition != [3]float32{-5, 0, 0} {
		t.Errorf("expected mesh at (-5,0,0), got %v", cfg.Scene.MeshPosition)
	}
	if cfg.Scene.ModelPosition != [3]float32{5, 0, 0} {
		t.Errorf("expected model at (5,0,0), got %v", cfg.Scene.ModelPosition)
	}
	if !cfg.Scene.FloorTextured {
		t.Error("expected floor texturing on by default")
	}
	if cfg.Scene.GlobalAmbient != [4]float32{0.2, 0.2, 0.2, 1} {
		t.Errorf("expected global ambient 0.2 grey, got %v", cfg.Scene.GlobalAmbient)
	}
	if cfg.Scene.FloorHeight != -1.5 {
		t.Errorf("expected floor height -1.5, got %f", cfg.Scene.FloorHeight)
	}

	if cfg.Controls.MoveStep != 0.5 {
		t.Errorf("expected move step 0.5, got %f", cfg.Controls.MoveStep)
	}
	if cfg.Controls.OrbitStep != 5 {
		t.Errorf("expected orbit step 5, got %f", cfg.Controls.OrbitStep)
	}

	if cfg.Animation.CameraSpeed != 10 {
		t.Errorf("expected camera speed 10, got %f", cfg.Animation.CameraSpeed)
	}
	if cfg.Animation.LightRadius != 7 {
		t.Errorf("expected light radius 7, got %f", cfg.Animation.LightRadius)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true

scene:
  mesh_path: "models/teapot.obj"
  textures: ["a.png", "b.tga"]
  mesh_position: [1, 2, 3]

controls:
  move_step: 0.25
  rotate_step: 45

animation:
  light_radius: 3.5

logging:
  level: "debug"
  log_file: "viewer.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Scene.MeshPath != "models/teapot.obj" {
		t.Errorf("expected mesh path models/teapot.obj, got %s", cfg.Scene.MeshPath)
	}
	if len(cfg.Scene.Textures) != 2 || cfg.Scene.Textures[1] != "b.tga" {
		t.Errorf("unexpected textures %v", cfg.Scene.Textures)
	}
	if cfg.Scene.MeshPosition != [3]float32{1, 2, 3} {
		t.Errorf("expected mesh position (1,2,3), got %v", cfg.Scene.MeshPosition)
	}
	if cfg.Controls.MoveStep != 0.25 {
		t.Errorf("expected move step 0.25, got %f", cfg.Controls.MoveStep)
	}
	if cfg.Controls.RotateStep != 45 {
		t.Errorf("expected rotate step 45, got %f", cfg.Controls.RotateStep)
	}
	// Untouched keys keep their defaults
	if cfg.Controls.OrbitStep != 5 {
		t.Errorf("expected orbit step to stay 5, got %f", cfg.Controls.OrbitStep)
	}
	if cfg.Animation.LightRadius != 3.5 {
		t.Errorf("expected light radius 3.5, got %f", cfg.Animation.LightRadius)
	}
	if cfg.Logging.LogFile != "viewer.log" {
		t.Errorf("expected log file 'viewer.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`
	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestNormalize(t *testing.T) {
	cfg := Default()
	cfg.Graphics.Width = 0
	cfg.Graphics.Height = -5
	cfg.Scene.FloorSize = 0
	cfg.Controls.ScaleUp = 0
	cfg.Controls.ScaleDown = -1

	cfg.normalize()

	def := Default()
	if cfg.Graphics.Width != def.Graphics.Width || cfg.Graphics.Height != def.Graphics.Height {
		t.Errorf("expected default window size, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Scene.FloorSize != def.Scene.FloorSize {
		t.Errorf("expected default floor size, got %f", cfg.Scene.FloorSize)
	}
	if cfg.Controls.ScaleUp != def.Controls.ScaleUp || cfg.Controls.ScaleDown != def.Controls.ScaleDown {
		t.Errorf("expected default scale factors, got %f/%f", cfg.Controls.ScaleUp, cfg.Controls.ScaleDown)
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
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
			name:  "mesh flag",
			setup: func() { *flagMesh = "bunny.obj" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.MeshPath != "bunny.obj" {
					t.Errorf("expected mesh bunny.obj, got %s", cfg.Scene.MeshPath)
				}
			},
			teardown: func() { *flagMesh = "" },
		},
		{
			name:  "log file flag",
			setup: func() { *flagLogFile = "/tmp/sceneview.log" },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.LogFile != "/tmp/sceneview.log" {
					t.Errorf("expected log file /tmp/sceneview.log, got %s", cfg.Logging.LogFile)
				}
			},
			teardown: func() { *flagLogFile = "" },
		},
		{
			name:  "textures flag",
			setup: func() { *flagTextures = "a.png, ,b.tga," },
			verify: func(t *testing.T, cfg *Config) {
				if len(cfg.Scene.Textures) != 2 || cfg.Scene.Textures[0] != "a.png" || cfg.Scene.Textures[1] != "b.tga" {
					t.Errorf("expected [a.png b.tga], got %v", cfg.Scene.Textures)
				}
			},
			teardown: func() { *flagTextures = "" },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)
			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`
	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestSaveRequested(t *testing.T) {
	if SaveRequested() {
		t.Fatal("save should be off by default")
	}
	*flagSaveConfig = true
	defer func() { *flagSaveConfig = false }()
	if !SaveRequested() {
		t.Error("expected save requested with save-config flag")
	}
}

func TestSaveWritesToConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("config dir override is XDG only")
	}
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Default()
	cfg.Scene.GlobalAmbient = [4]float32{0.5, 0.5, 0.5, 1}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, filepath.Join(ConfigDir(), "config.yaml")); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Scene.GlobalAmbient != cfg.Scene.GlobalAmbient {
		t.Errorf("expected ambient %v, got %v", cfg.Scene.GlobalAmbient, loaded.Scene.GlobalAmbient)
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Controls.MoveStep = 2
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Controls.MoveStep != 2 {
		t.Errorf("expected saved move step 2, got %f", loaded.Controls.MoveStep)
	}
}
