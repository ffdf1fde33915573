package interaction

import (
	"github.com/Faultbox/sceneview/internal/animation"
	"github.com/Faultbox/sceneview/internal/config"
)

// Settings holds per-input step sizes and animation speeds.
type Settings struct {
	MoveStep   float32 // World units per move
	OrbitStep  float32 // Degrees per directional key in camera mode
	RotateStep float32 // Degrees per rotate key
	ScaleUp    float32
	ScaleDown  float32
	ZoomStep   float32

	CameraSpeed float32 // Auto-orbit degrees per second
	LightOrbit  animation.Orbit
}

// DefaultSettings returns the settings matching config.Default.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.Default())
}

// SettingsFromConfig extracts controller settings from the loaded config.
func SettingsFromConfig(cfg *config.Config) Settings {
	return Settings{
		MoveStep:    cfg.Controls.MoveStep,
		OrbitStep:   cfg.Controls.OrbitStep,
		RotateStep:  cfg.Controls.RotateStep,
		ScaleUp:     cfg.Controls.ScaleUp,
		ScaleDown:   cfg.Controls.ScaleDown,
		ZoomStep:    cfg.Controls.ZoomStep,
		CameraSpeed: cfg.Animation.CameraSpeed,
		LightOrbit: animation.Orbit{
			Radius: cfg.Animation.LightRadius,
			Speed:  cfg.Animation.LightSpeed,
			Height: cfg.Animation.LightHeight,
		},
	}
}
