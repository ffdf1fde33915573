package scene

import (
	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/engine/mesh"
	"github.com/Faultbox/sceneview/internal/engine/transform"
)

// StaticMesh is loaded geometry with a single material and no joints.
type StaticMesh struct {
	transform.Transform

	Mesh     *mesh.Mesh
	Material draw.Material
}

// NewStaticMesh wraps m with the default material. m may be empty.
func NewStaticMesh(m *mesh.Mesh) *StaticMesh {
	return &StaticMesh{
		Transform: transform.New(),
		Mesh:      m,
		Material:  draw.DefaultMaterial(),
	}
}

// SetSpecularReflectivity sets a grey specular colour of the given intensity.
func (s *StaticMesh) SetSpecularReflectivity(r float32) {
	s.Material.Specular = [4]float32{r, r, r, 1}
}

// SetShininess sets the specular exponent.
func (s *StaticMesh) SetShininess(v float32) {
	s.Material.Shininess = v
}

func (s *StaticMesh) Draw(f *draw.Frame) {
	f.Add(draw.Item{
		Mesh:     s.Mesh,
		Model:    s.Matrix(),
		Material: s.Material,
		Lit:      true,
	})
}

// DrawForSelection draws nothing: only joints are pickable.
func (s *StaticMesh) DrawForSelection(*draw.Frame) {}
