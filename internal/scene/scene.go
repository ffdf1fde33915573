package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/engine/mesh"
)

// AxisLength is the length of the world axis lines.
const AxisLength = 10

// View supplies camera matrices.
type View interface {
	Projection() mgl32.Mat4
	View() mgl32.Mat4
}

// Scene holds every placeable entity plus scene-wide shading state.
type Scene struct {
	Mesh   *StaticMesh
	Model  Articulated
	Floor  *Floor
	Lights *lighting.Rig

	Flat     bool
	ShowAxes bool

	axes *mesh.Mesh
}

// New assembles a scene. Any entity may be nil.
func New(m *StaticMesh, model Articulated, floor *Floor, lights *lighting.Rig) *Scene {
	return &Scene{
		Mesh:     m,
		Model:    model,
		Floor:    floor,
		Lights:   lights,
		ShowAxes: true,
		axes:     mesh.Axes(AxisLength),
	}
}

// Entities returns the non-nil entities in draw order.
func (s *Scene) Entities() []Entity {
	var out []Entity
	if s.Floor != nil {
		out = append(out, s.Floor)
	}
	if s.Mesh != nil {
		out = append(out, s.Mesh)
	}
	if s.Model != nil {
		out = append(out, s.Model)
	}
	if s.Lights != nil {
		for i := 0; i < s.Lights.Count(); i++ {
			out = append(out, s.Lights.Light(i))
		}
	}
	return out
}

// Frame builds the normal lit pass from current state.
func (s *Scene) Frame(v View) draw.Frame {
	f := draw.Frame{
		Projection: v.Projection(),
		View:       v.View(),
		Flat:       s.Flat,
	}
	if s.Lights != nil {
		s.Lights.Apply(&f)
	} else {
		f.Ambient = lighting.DefaultGlobalAmbient
	}

	if s.ShowAxes {
		f.Add(draw.Item{Mesh: s.axes, Model: mgl32.Ident4()})
	}
	for _, e := range s.Entities() {
		e.Draw(&f)
	}
	return f
}

// SelectionFrame builds the picking pass: only the articulated model, in its
// identity colours, with no lights.
func (s *Scene) SelectionFrame(v View) draw.Frame {
	f := draw.Frame{
		Projection: v.Projection(),
		View:       v.View(),
		Selection:  true,
	}
	if s.Model != nil {
		s.Model.DrawForSelection(&f)
	}
	return f
}
