// Package viewer wires the window, renderer, scene and controller into the
// interactive main loop.
package viewer

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/animation"
	"github.com/Faultbox/sceneview/internal/config"
	"github.com/Faultbox/sceneview/internal/engine/camera"
	"github.com/Faultbox/sceneview/internal/engine/input"
	"github.com/Faultbox/sceneview/internal/engine/picking"
	"github.com/Faultbox/sceneview/internal/engine/renderer"
	"github.com/Faultbox/sceneview/internal/engine/ui2d"
	"github.com/Faultbox/sceneview/internal/engine/window"
	"github.com/Faultbox/sceneview/internal/interaction"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/menu"
	"github.com/Faultbox/sceneview/internal/scene"
)

var background = [4]float32{0.1, 0.1, 0.15, 1}

// Viewer is the running application.
type Viewer struct {
	cfg *config.Config
	log *zap.Logger

	window    *window.Window
	renderer  *renderer.Renderer
	selection *renderer.SelectionTarget
	overlay   *ui2d.Renderer
	input     *input.Input

	scene  *scene.Scene
	camera *camera.OrbitCamera
	ctrl   *interaction.Controller
	picker *picking.Engine
	popup  *menu.Popup

	// Window points to drawable pixels.
	scaleX, scaleY float32
}

// New creates the window and GL resources and loads the scene.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{cfg: cfg, log: logger.Named("viewer"), scaleX: 1, scaleY: 1}

	v.log.Info("initializing viewer",
		zap.String("title", cfg.Graphics.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	var err error
	v.window, err = window.New(window.Config{
		Title:      cfg.Graphics.Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create window")
	}

	w, h := v.window.DrawableSize()
	v.renderer, err = renderer.New(renderer.Config{Width: w, Height: h, Background: background})
	if err != nil {
		v.Close()
		return nil, errors.Wrap(err, "failed to create renderer")
	}

	v.selection, err = v.renderer.NewSelectionTarget()
	if err != nil {
		v.Close()
		return nil, errors.Wrap(err, "failed to create selection target")
	}

	v.overlay, err = ui2d.New(w, h)
	if err != nil {
		v.Close()
		return nil, errors.Wrap(err, "failed to create overlay")
	}

	v.input = input.New()
	am := newAssetManager(v.log)
	v.scene = buildScene(cfg.Scene, am, uploadGLTexture, v.log)
	am.Close()
	v.camera = camera.NewOrbitCamera()
	v.camera.SetCenter(sceneCenter(cfg.Scene))
	v.ctrl = interaction.New(v.scene, v.camera, interaction.SettingsFromConfig(cfg), animation.NewClock(nil))
	v.picker = picking.NewEngine()
	v.popup = menu.NewPopup(menu.Tree(), v.overlay)

	v.resize()
	v.log.Info("viewer initialized")
	return v, nil
}

// Run executes the main loop until quit is requested.
func (v *Viewer) Run() error {
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting main loop")

	for !v.ctrl.QuitRequested() {
		if v.input.Update() {
			v.ctrl.Quit()
		}
		for _, ev := range v.input.Events() {
			v.handleEvent(ev)
		}

		v.ctrl.Update()
		v.ctrl.ProcessPick(v.pick)

		v.renderer.Begin()
		frame := v.scene.Frame(v.camera)
		v.renderer.Render(&frame)

		v.overlay.Begin()
		v.popup.Draw(v.overlay)
		v.overlay.End()

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// pick renders the selection pass offscreen and decodes (x, y).
func (v *Viewer) pick(x, y int) int {
	f := v.scene.SelectionFrame(v.camera)
	return v.picker.Pick(v.selection, &f, x, y)
}

func (v *Viewer) handleEvent(ev input.Event) {
	switch ev.Type {
	case input.EventWindowResize:
		v.resize()

	case input.EventKeyDown:
		handleKey(v.ctrl, ev.Key)

	case input.EventText:
		handleText(v.ctrl, ev.Text)

	case input.EventMouseDown:
		x, y := v.toPixels(ev.MouseX, ev.MouseY)
		if v.popup.Click(float32(x), float32(y), v.ctrl) {
			return
		}
		switch ev.Button {
		case input.ButtonRight:
			sw, sh := v.renderer.Size()
			v.popup.Open(float32(x), float32(y), sw, sh)
		case input.ButtonLeft:
			v.ctrl.MousePress(x, y)
		}

	case input.EventMouseUp:
		if ev.Button == input.ButtonLeft {
			v.ctrl.MouseRelease()
		}

	case input.EventMouseMove:
		x, y := v.toPixels(ev.MouseX, ev.MouseY)
		v.popup.Hover(float32(x), float32(y))
		v.ctrl.MouseMotion(x, y)

	case input.EventMouseWheel:
		v.ctrl.Zoom(float32(ev.WheelY) * v.cfg.Controls.ZoomStep)
	}
}

// resize propagates the current window size to every size-dependent part.
func (v *Viewer) resize() {
	ww, wh := v.window.Size()
	w, h := v.window.DrawableSize()
	v.scaleX, v.scaleY = pixelScale(ww, wh, w, h)

	v.renderer.Resize(w, h)
	v.selection.Resize(w, h)
	v.overlay.Resize(w, h)
	v.ctrl.Resize(w, h)
}

func (v *Viewer) toPixels(x, y int) (int, int) {
	return int(float32(x) * v.scaleX), int(float32(y) * v.scaleY)
}

// pixelScale returns the ratio between drawable pixels and window points.
func pixelScale(winW, winH, drawW, drawH int) (float32, float32) {
	if winW <= 0 || winH <= 0 || drawW <= 0 || drawH <= 0 {
		return 1, 1
	}
	return float32(drawW) / float32(winW), float32(drawH) / float32(winH)
}

// Close releases everything New created.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.input != nil {
		v.input.Close()
	}
	if v.overlay != nil {
		v.overlay.Close()
	}
	if v.selection != nil {
		v.selection.Destroy()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
