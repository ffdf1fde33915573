// Package lighting provides the scene's light sources and the fixed light rig
// that turns them into per-frame shader parameters.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/engine/mesh"
	"github.com/Faultbox/sceneview/internal/engine/transform"
)

// Type is the kind of light source.
type Type int

const (
	Point Type = iota
	Directional
	Spot
)

func (t Type) String() string {
	switch t {
	case Point:
		return "point"
	case Directional:
		return "directional"
	case Spot:
		return "spot"
	default:
		return "unknown"
	}
}

// Channel selects one of a light's colour terms.
type Channel int

const (
	Ambient Channel = iota
	Diffuse
	Specular
)

var gizmoColor = [4]float32{1, 1, 0, 1}

// gizmo is shared by every light; meshes are immutable once built.
var gizmo = mesh.Sphere(0.2, 16, 16)

// Light is a placeable light source. Its position comes from the embedded
// transform; directional lights reinterpret it as a direction.
type Light struct {
	transform.Transform

	Type    Type
	Enabled bool

	Ambient  [4]float32
	Diffuse  [4]float32
	Specular [4]float32

	// Spot parameters, ignored for other types.
	Direction mgl32.Vec3
	Cutoff    float32 // Degrees
	Exponent  float32
}

// NewLight returns an enabled white light at (0,5,5).
func NewLight(t Type) *Light {
	l := &Light{
		Transform: transform.New(),
		Type:      t,
		Enabled:   true,
		Ambient:   [4]float32{0, 0, 0, 1},
		Diffuse:   [4]float32{1, 1, 1, 1},
		Specular:  [4]float32{1, 1, 1, 1},
		Cutoff:    45,
	}
	l.SetPosition(0, 5, 5)
	return l
}

// Toggle flips the enabled flag.
func (l *Light) Toggle() {
	l.Enabled = !l.Enabled
}

// SetPosition places the light absolutely, discarding accumulated moves.
func (l *Light) SetPosition(x, y, z float32) {
	l.MoveTo(x, y, z)
}

// SetColor replaces one colour channel.
func (l *Light) SetColor(ch Channel, rgba [4]float32) {
	switch ch {
	case Ambient:
		l.Ambient = rgba
	case Diffuse:
		l.Diffuse = rgba
	case Specular:
		l.Specular = rgba
	}
}

// Params returns the shader parameters for this light.
func (l *Light) Params() draw.LightParams {
	w := float32(1)
	if l.Type == Directional {
		w = 0
	}
	p := l.Position
	params := draw.LightParams{
		Ambient:    l.Ambient,
		Diffuse:    l.Diffuse,
		Specular:   l.Specular,
		Position:   [4]float32{p.X(), p.Y(), p.Z(), w},
		SpotCutoff: draw.NoSpotCutoff,
	}
	if l.Type == Spot {
		params.SpotDirection = [3]float32{l.Direction.X(), l.Direction.Y(), l.Direction.Z()}
		params.SpotCutoff = l.Cutoff
		params.SpotExponent = l.Exponent
	}
	return params
}

// Draw emits an unlit marker for enabled positional lights.
func (l *Light) Draw(f *draw.Frame) {
	if !l.Enabled || l.Type == Directional {
		return
	}
	f.Add(draw.Item{
		Mesh:  gizmo,
		Model: l.Matrix(),
		Color: gizmoColor,
	})
}

// DrawForSelection draws nothing; lights are not pickable.
func (l *Light) DrawForSelection(*draw.Frame) {}
