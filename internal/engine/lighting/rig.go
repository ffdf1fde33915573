package lighting

import (
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/logger"
)

// Fixed rig slots. Menus and key bindings address lights by these indices.
const (
	PointIndex       = 0
	DirectionalIndex = 1
	SpotIndex        = 2
)

// DefaultGlobalAmbient is the scene-wide ambient term while enabled.
var DefaultGlobalAmbient = [4]float32{0.2, 0.2, 0.2, 1}

// Rig is the fixed set of scene lights plus the global ambient switch.
type Rig struct {
	lights []*Light

	globalAmbient  [4]float32
	ambientEnabled bool

	log *zap.Logger
}

// NewRig builds the point, directional and spot lights at indices 0, 1, 2.
func NewRig() *Rig {
	point := NewLight(Point)
	point.SetPosition(0, 5, 5)

	dir := NewLight(Directional)
	dir.SetPosition(-1, -1, -1)
	dir.Diffuse = [4]float32{0.8, 0.8, 0.8, 1}

	spot := NewLight(Spot)
	spot.SetPosition(5, 8, 5)
	spot.Direction = mgl32.Vec3{-1, -1, 0}
	spot.Diffuse = [4]float32{1, 0.5, 0.5, 1}
	spot.Cutoff = 30

	return &Rig{
		lights:         []*Light{point, dir, spot},
		globalAmbient:  DefaultGlobalAmbient,
		ambientEnabled: true,
		log:            logger.Named("lighting"),
	}
}

// Count returns the number of lights.
func (r *Rig) Count() int {
	return len(r.lights)
}

// Light returns light i, or nil when i is out of range.
func (r *Rig) Light(i int) *Light {
	if i < 0 || i >= len(r.lights) {
		return nil
	}
	return r.lights[i]
}

func (r *Rig) lookup(i int, op string) *Light {
	l := r.Light(i)
	if l == nil {
		r.log.Debug("ignoring out-of-range light", zap.String("op", op), zap.Int("index", i))
	}
	return l
}

// Toggle flips light i. Out-of-range indices are ignored.
func (r *Rig) Toggle(i int) {
	if l := r.lookup(i, "toggle"); l != nil {
		l.Toggle()
		r.log.Debug("light toggled", zap.Int("index", i), zap.Stringer("type", l.Type), zap.Bool("enabled", l.Enabled))
	}
}

// ToggleGlobalAmbient switches the scene-wide ambient term between its
// configured value and zero.
func (r *Rig) ToggleGlobalAmbient() {
	r.ambientEnabled = !r.ambientEnabled
	r.log.Debug("global ambient toggled", zap.Bool("enabled", r.ambientEnabled))
}

// GlobalAmbientEnabled reports the global ambient switch.
func (r *Rig) GlobalAmbientEnabled() bool {
	return r.ambientEnabled
}

// SetGlobalAmbient changes the value used while global ambient is enabled.
func (r *Rig) SetGlobalAmbient(rgba [4]float32) {
	r.globalAmbient = rgba
}

// Ambient returns the ambient term to emit this frame.
func (r *Rig) Ambient() [4]float32 {
	if !r.ambientEnabled {
		return [4]float32{0, 0, 0, 1}
	}
	return r.globalAmbient
}

// SetPosition places light i absolutely.
func (r *Rig) SetPosition(i int, x, y, z float32) {
	if l := r.lookup(i, "set_position"); l != nil {
		l.SetPosition(x, y, z)
	}
}

// SetDirection sets the spot direction of light i.
func (r *Rig) SetDirection(i int, dir mgl32.Vec3) {
	if l := r.lookup(i, "set_direction"); l != nil {
		l.Direction = dir
	}
}

// SetDiffuse sets the diffuse colour of light i.
func (r *Rig) SetDiffuse(i int, rgba [4]float32) {
	r.SetColor(i, Diffuse, rgba)
}

// SetColor sets one colour channel of light i.
func (r *Rig) SetColor(i int, ch Channel, rgba [4]float32) {
	if l := r.lookup(i, "set_color"); l != nil {
		l.SetColor(ch, rgba)
	}
}

// SetCutoff sets the spot cutoff angle of light i in degrees.
func (r *Rig) SetCutoff(i int, deg float32) {
	if l := r.lookup(i, "set_cutoff"); l != nil {
		l.Cutoff = deg
	}
}

// SetExponent sets the spot falloff exponent of light i.
func (r *Rig) SetExponent(i int, e float32) {
	if l := r.lookup(i, "set_exponent"); l != nil {
		l.Exponent = e
	}
}

// Apply writes the ambient term and the parameters of every enabled light.
// The ambient term is always written, zero when disabled.
func (r *Rig) Apply(f *draw.Frame) {
	f.Ambient = r.Ambient()
	f.Lights = f.Lights[:0]
	for _, l := range r.lights {
		if !l.Enabled {
			continue
		}
		f.AddLight(l.Params())
	}
}

// Draw emits the light gizmos.
func (r *Rig) Draw(f *draw.Frame) {
	for _, l := range r.lights {
		l.Draw(f)
	}
}
