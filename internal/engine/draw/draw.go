// Package draw describes a rendered frame as plain data. Scene code builds a
// Frame from current state; the renderer executes it against OpenGL.
package draw

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/mesh"
)

// MaxLights is the number of light slots the lit shader exposes.
const MaxLights = 8

// NoSpotCutoff marks a light as omnidirectional.
const NoSpotCutoff = 180

// Frame is everything needed to draw one pass.
type Frame struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4

	Ambient [4]float32    // Scene-wide ambient term, always set
	Lights  []LightParams // Enabled lights only

	Flat      bool // Flat shading (per-face normals)
	Selection bool // Unlit pass with exact colours, no dithering

	Items []Item
}

// LightParams is the GPU-facing state of one enabled light.
// Position.W is 0 for directional lights and 1 otherwise.
type LightParams struct {
	Ambient  [4]float32
	Diffuse  [4]float32
	Specular [4]float32
	Position [4]float32

	SpotDirection [3]float32
	SpotCutoff    float32 // Degrees; NoSpotCutoff for non-spot lights
	SpotExponent  float32
}

// Spot reports whether the light carries spot parameters.
func (l LightParams) Spot() bool {
	return l.SpotCutoff < NoSpotCutoff
}

// Material is a Phong material.
type Material struct {
	Ambient   [4]float32
	Diffuse   [4]float32
	Specular  [4]float32
	Shininess float32
}

// DefaultMaterial matches the classic fixed-function defaults.
func DefaultMaterial() Material {
	return Material{
		Ambient:  [4]float32{0.2, 0.2, 0.2, 1},
		Diffuse:  [4]float32{0.8, 0.8, 0.8, 1},
		Specular: [4]float32{0, 0, 0, 1},
	}
}

// FilterMode is a texture sampling mode.
type FilterMode int

const (
	FilterNearest FilterMode = iota
	FilterLinear
)

func (f FilterMode) String() string {
	if f == FilterLinear {
		return "linear"
	}
	return "nearest"
}

// Filter is a min/mag filter pair.
type Filter struct {
	Min FilterMode
	Mag FilterMode
}

// FilterPresets lists the selectable min/mag combinations in menu order.
var FilterPresets = []Filter{
	{Min: FilterNearest, Mag: FilterNearest},
	{Min: FilterLinear, Mag: FilterNearest},
	{Min: FilterNearest, Mag: FilterLinear},
	{Min: FilterLinear, Mag: FilterLinear},
}

// Item is one mesh draw.
type Item struct {
	Mesh     *mesh.Mesh
	Model    mgl32.Mat4
	Material Material

	// Color is used when Lit is false or in selection passes. Line meshes
	// with per-vertex colours ignore it.
	Color [4]float32
	Lit   bool

	Texture uint32 // GL texture name; 0 for none
}

// Add appends an item, skipping empty meshes.
func (f *Frame) Add(it Item) {
	if it.Mesh.Empty() {
		return
	}
	f.Items = append(f.Items, it)
}

// AddLight appends light parameters up to MaxLights.
func (f *Frame) AddLight(l LightParams) bool {
	if len(f.Lights) >= MaxLights {
		return false
	}
	f.Lights = append(f.Lights, l)
	return true
}
