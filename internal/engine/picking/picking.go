// Package picking resolves mouse clicks to articulated-model joints by rendering
// an unlit identity-colour pass and reading back the clicked pixel.
package picking

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/logger"
)

// MaxPickableJoints is the highest joint count the colour encoding resolves.
// Joints beyond it render but cannot be picked with the mouse.
const MaxPickableJoints = 3

// None is returned when a pick hits no joint.
const None = -1

// Encode returns the flat selection colour for joint i. The red channel holds
// i+1 so that a cleared (black) background decodes to None.
func Encode(joint int) [4]float32 {
	return [4]float32{float32(joint+1) / 255, 0, 0, 1}
}

// Decode maps a read-back pixel to a joint index. Background (0) and any red
// value outside 1..MaxPickableJoints decode to None.
func Decode(pixel [3]uint8) int {
	r := int(pixel[0])
	if r < 1 || r > MaxPickableJoints {
		return None
	}
	return r - 1
}

// Surface is an offscreen target that can run a selection pass.
type Surface interface {
	// Size returns the target size in pixels.
	Size() (width, height int)
	// BeginSelection binds the target, disables lighting and dithering and
	// clears colour and depth.
	BeginSelection()
	// Render draws a selection frame into the bound target.
	Render(f *draw.Frame)
	// ReadPixel reads one pixel in bottom-left origin coordinates.
	ReadPixel(x, y int) [3]uint8
	// EndSelection restores normal rendering state.
	EndSelection()
}

// Queue holds at most one pending pick request in window coordinates.
type Queue struct {
	pending bool
	x, y    int
}

// Arm records a pick at (x, y). It returns false and keeps the earlier
// coordinates when a pick is already pending.
func (q *Queue) Arm(x, y int) bool {
	if q.pending {
		return false
	}
	q.pending = true
	q.x, q.y = x, y
	return true
}

// Pending returns the requested coordinates, if any.
func (q *Queue) Pending() (x, y int, ok bool) {
	return q.x, q.y, q.pending
}

// Clear drops the pending request.
func (q *Queue) Clear() {
	q.pending = false
}

// Engine runs selection passes.
type Engine struct {
	log *zap.Logger
}

// NewEngine creates a picking engine.
func NewEngine() *Engine {
	return &Engine{log: logger.Named("picking")}
}

// Pick renders f on s and decodes the pixel at window coordinates (x, y),
// whose origin is top-left. Clicks outside the surface return None.
func (e *Engine) Pick(s Surface, f *draw.Frame, x, y int) int {
	w, h := s.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		e.log.Debug("pick outside surface", zap.Int("x", x), zap.Int("y", y), zap.Int("width", w), zap.Int("height", h))
		return None
	}

	s.BeginSelection()
	defer s.EndSelection()

	f.Selection = true
	s.Render(f)
	pixel := s.ReadPixel(x, h-1-y)
	joint := Decode(pixel)

	e.log.Debug("pick resolved",
		zap.Int("x", x), zap.Int("y", y),
		zap.Uint8("red", pixel[0]), zap.Int("joint", joint))
	return joint
}
