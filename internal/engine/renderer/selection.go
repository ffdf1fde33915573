package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/pkg/errors"

	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/engine/framebuffer"
)

// SelectionTarget runs picking passes in an offscreen framebuffer sized to
// the window, so the visible frame is never disturbed.
type SelectionTarget struct {
	r       *Renderer
	fb      *framebuffer.Framebuffer
	restore func()
}

// NewSelectionTarget creates a selection target matching the viewport.
func (r *Renderer) NewSelectionTarget() (*SelectionTarget, error) {
	fb, err := framebuffer.New(int32(r.config.Width), int32(r.config.Height))
	if err != nil {
		return nil, errors.Wrap(err, "selection target")
	}
	return &SelectionTarget{r: r, fb: fb}, nil
}

// Size returns the target size in pixels.
func (s *SelectionTarget) Size() (width, height int) {
	w, h := s.fb.Size()
	return int(w), int(h)
}

// Resize follows window size changes.
func (s *SelectionTarget) Resize(width, height int) {
	s.fb.Resize(int32(width), int32(height))
}

// BeginSelection binds the framebuffer and clears it to black, the
// background id.
func (s *SelectionTarget) BeginSelection() {
	s.restore = s.fb.BindWithViewport()
	gl.Disable(gl.DITHER)
	gl.Disable(gl.BLEND)
	s.fb.Clear(0, 0, 0, 1)
}

// Render draws a selection frame.
func (s *SelectionTarget) Render(f *draw.Frame) {
	s.r.Render(f)
}

// ReadPixel reads one pixel, origin bottom-left.
func (s *SelectionTarget) ReadPixel(x, y int) [3]uint8 {
	return s.fb.ReadPixel(int32(x), int32(y))
}

// EndSelection restores the window framebuffer.
func (s *SelectionTarget) EndSelection() {
	gl.Enable(gl.DITHER)
	if s.restore != nil {
		s.restore()
		s.restore = nil
	}
}

// Destroy releases the framebuffer.
func (s *SelectionTarget) Destroy() {
	s.fb.Destroy()
}
