package scene

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/engine/mesh"
	"github.com/Faultbox/sceneview/internal/engine/transform"
	"github.com/Faultbox/sceneview/internal/logger"
)

// Texture is a loaded, bindable texture.
type Texture interface {
	Handle() uint32
	SetFilter(f draw.Filter)
}

// Floor materials, in menu order.
const (
	MaterialRubber = iota
	MaterialPlastic
	MaterialMetal
)

// FloorMaterials lists the selectable floor materials.
var FloorMaterials = []draw.Material{
	MaterialRubber: {
		Ambient:   [4]float32{0.02, 0.02, 0.02, 1},
		Diffuse:   [4]float32{0.01, 0.01, 0.01, 1},
		Specular:  [4]float32{0.4, 0.4, 0.4, 1},
		Shininess: 10,
	},
	MaterialPlastic: {
		Ambient:   [4]float32{0, 0, 0, 1},
		Diffuse:   [4]float32{0.55, 0.55, 0.55, 1},
		Specular:  [4]float32{0.7, 0.7, 0.7, 1},
		Shininess: 32,
	},
	MaterialMetal: {
		Ambient:   [4]float32{0.25, 0.25, 0.25, 1},
		Diffuse:   [4]float32{0.4, 0.4, 0.4, 1},
		Specular:  [4]float32{0.77, 0.77, 0.77, 1},
		Shininess: 76.8,
	},
}

// Floor is a textured ground quad. Texture slots may be nil when loading
// failed; indices stay stable so menu entries keep their meaning.
type Floor struct {
	transform.Transform

	quad     *mesh.Mesh
	material int

	textures       []Texture
	texture        int
	textureEnabled bool

	log *zap.Logger
}

// NewFloor creates a floor of the given edge length using textures in order.
func NewFloor(size float32, textures []Texture) *Floor {
	return &Floor{
		Transform:      transform.New(),
		quad:           mesh.Quad(size),
		textures:       textures,
		textureEnabled: true,
		log:            logger.Named("floor"),
	}
}

// MaterialIndex returns the current material.
func (f *Floor) MaterialIndex() int { return f.material }

// TextureIndex returns the current texture slot.
func (f *Floor) TextureIndex() int { return f.texture }

// TextureEnabled reports whether texturing is on.
func (f *Floor) TextureEnabled() bool { return f.textureEnabled }

// SetMaterial selects material i. Out-of-range values are ignored.
func (f *Floor) SetMaterial(i int) {
	if i < 0 || i >= len(FloorMaterials) {
		f.log.Debug("ignoring out-of-range material", zap.Int("index", i))
		return
	}
	f.material = i
}

// SetTexture selects texture slot i. Out-of-range values are ignored.
func (f *Floor) SetTexture(i int) {
	if i < 0 || i >= len(f.textures) {
		f.log.Debug("ignoring out-of-range texture", zap.Int("index", i))
		return
	}
	f.texture = i
}

// EnableTexture turns texturing on or off.
func (f *Floor) EnableTexture(on bool) {
	f.textureEnabled = on
}

// ToggleTexture flips texturing.
func (f *Floor) ToggleTexture() {
	f.textureEnabled = !f.textureEnabled
}

// SetTextureFilter applies draw.FilterPresets[i] to the current texture.
// Out-of-range presets are ignored.
func (f *Floor) SetTextureFilter(i int) {
	if i < 0 || i >= len(draw.FilterPresets) {
		f.log.Debug("ignoring out-of-range filter", zap.Int("index", i))
		return
	}
	if t := f.currentTexture(); t != nil {
		t.SetFilter(draw.FilterPresets[i])
	}
}

func (f *Floor) currentTexture() Texture {
	if f.texture < 0 || f.texture >= len(f.textures) {
		return nil
	}
	return f.textures[f.texture]
}

func (f *Floor) Draw(fr *draw.Frame) {
	var handle uint32
	if f.textureEnabled {
		if t := f.currentTexture(); t != nil {
			handle = t.Handle()
		}
	}
	fr.Add(draw.Item{
		Mesh:     f.quad,
		Model:    f.Matrix(),
		Material: FloorMaterials[f.material],
		Lit:      true,
		Texture:  handle,
	})
}

// DrawForSelection draws nothing: only joints are pickable.
func (f *Floor) DrawForSelection(*draw.Frame) {}
