// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Scene     SceneConfig     `yaml:"scene"`
	Controls  ControlsConfig  `yaml:"controls"`
	Animation AnimationConfig `yaml:"animation"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// SceneConfig holds asset paths and initial placement of scene entities.
type SceneConfig struct {
	MeshPath      string     `yaml:"mesh_path"`
	Textures      []string   `yaml:"textures"` // Floor textures, in menu order
	FloorSize     float32    `yaml:"floor_size"`
	FloorHeight   float32    `yaml:"floor_height"`
	FloorTextured bool       `yaml:"floor_textured"`
	MeshPosition  [3]float32 `yaml:"mesh_position"`
	ModelPosition [3]float32 `yaml:"model_position"`
	GlobalAmbient [4]float32 `yaml:"global_ambient"`
}

// ControlsConfig holds per-keypress step sizes.
type ControlsConfig struct {
	MoveStep   float32 `yaml:"move_step"`   // World units per arrow/light key
	OrbitStep  float32 `yaml:"orbit_step"`  // Degrees per arrow key in camera mode
	RotateStep float32 `yaml:"rotate_step"` // Degrees per rotate key
	ScaleUp    float32 `yaml:"scale_up"`
	ScaleDown  float32 `yaml:"scale_down"`
	ZoomStep   float32 `yaml:"zoom_step"`
}

// AnimationConfig holds the speeds used by the animation toggles.
type AnimationConfig struct {
	CameraSpeed float32 `yaml:"camera_speed"` // Degrees of yaw per second
	LightRadius float32 `yaml:"light_radius"`
	LightSpeed  float32 `yaml:"light_speed"` // Radians per second
	LightHeight float32 `yaml:"light_height"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Title:  "Scene Viewer",
			Width:  1024,
			Height: 768,
			VSync:  true,
		},
		Scene: SceneConfig{
			MeshPath: "objFiles/cow.obj",
			Textures: []string{
				"textures/grid.png",
				"textures/water.png",
				"textures/bricks.png",
			},
			FloorSize:     20,
			FloorHeight:   -1.5,
			FloorTextured: true,
			MeshPosition:  [3]float32{-5, 0, 0},
			ModelPosition: [3]float32{5, 0, 0},
			GlobalAmbient: [4]float32{0.2, 0.2, 0.2, 1},
		},
		Controls: ControlsConfig{
			MoveStep:   0.5,
			OrbitStep:  5,
			RotateStep: 15,
			ScaleUp:    1.1,
			ScaleDown:  0.9,
			ZoomStep:   1,
		},
		Animation: AnimationConfig{
			CameraSpeed: 10,
			LightRadius: 7,
			LightSpeed:  0.5,
			LightHeight: 5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
