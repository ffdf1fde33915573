// Package interaction holds the selection and input state machine that routes
// keyboard, mouse and menu input to the camera and scene entities.
package interaction

import (
	"go.uber.org/zap"

	"github.com/Faultbox/sceneview/internal/animation"
	"github.com/Faultbox/sceneview/internal/engine/picking"
	"github.com/Faultbox/sceneview/internal/logger"
	"github.com/Faultbox/sceneview/internal/scene"
)

// Mode is the interaction mode.
type Mode int

const (
	CameraOrbit Mode = iota
	KeyboardDOF
	MousePicking
)

func (m Mode) String() string {
	switch m {
	case CameraOrbit:
		return "camera"
	case KeyboardDOF:
		return "keyboard"
	case MousePicking:
		return "picking"
	default:
		return "unknown"
	}
}

// Object identifies a selectable scene object.
type Object int

const (
	ObjectNone        Object = 0
	ObjectMesh        Object = 1
	ObjectArticulated Object = 2
)

func (o Object) String() string {
	switch o {
	case ObjectMesh:
		return "mesh"
	case ObjectArticulated:
		return "articulated"
	default:
		return "none"
	}
}

// NoLight means no light is selected.
const NoLight = -1

// Direction is a directional (arrow) input.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// Camera is what the controller drives on the camera.
type Camera interface {
	Orbit(deltaYaw, deltaPitch float32)
	Zoom(delta float32)
	ToggleProjection()
	SetAspectRatio(ratio float32)
}

// Controller owns selection, interaction mode, pending picks and animation
// state. It is used from the render thread only.
type Controller struct {
	scene    *scene.Scene
	camera   Camera
	settings Settings

	cameraMode  bool
	articulated Mode // KeyboardDOF or MousePicking

	object Object
	light  int

	drag  Drag
	picks picking.Queue

	clock *animation.Clock
	anim  animation.Flags

	quit bool

	log *zap.Logger
}

// New creates a controller with nothing selected, keyboard joint control and
// all animations off. clock may be nil to use the wall clock.
func New(s *scene.Scene, cam Camera, settings Settings, clock *animation.Clock) *Controller {
	if clock == nil {
		clock = animation.NewClock(nil)
	}
	return &Controller{
		scene:       s,
		camera:      cam,
		settings:    settings,
		articulated: KeyboardDOF,
		light:       NoLight,
		clock:       clock,
		log:         logger.Named("controller"),
	}
}

// Mode returns the effective interaction mode.
func (c *Controller) Mode() Mode {
	if c.cameraMode {
		return CameraOrbit
	}
	return c.articulated
}

// ToggleCameraMode enters or leaves camera orbit. Leaving restores the
// previous articulated mode. Entering or leaving deselects any light, and
// entering drops any pending pick and held joint.
func (c *Controller) ToggleCameraMode() {
	c.cameraMode = !c.cameraMode
	if c.cameraMode {
		c.picks.Clear()
		c.drag.Release()
	}
	c.SelectLight(NoLight)
	c.log.Debug("camera mode toggled", zap.Stringer("mode", c.Mode()))
}

// SetInteractionMode sets how the articulated model is driven. CameraOrbit
// enters camera mode; the other modes take effect once camera mode is off.
func (c *Controller) SetInteractionMode(m Mode) {
	switch m {
	case CameraOrbit:
		if !c.cameraMode {
			c.ToggleCameraMode()
		}
	case KeyboardDOF, MousePicking:
		c.articulated = m
		c.picks.Clear()
		c.drag.Release()
		c.log.Debug("interaction mode set", zap.Stringer("mode", m))
	default:
		c.log.Debug("ignoring unknown interaction mode", zap.Int("mode", int(m)))
	}
}

// SelectedObject returns the selected object.
func (c *Controller) SelectedObject() Object { return c.object }

// SelectedLight returns the selected light index or NoLight.
func (c *Controller) SelectedLight() int { return c.light }

// SelectObject selects an object and clears any light selection.
// ObjectNone clears the object selection; unknown values are ignored.
func (c *Controller) SelectObject(o Object) {
	switch o {
	case ObjectNone, ObjectMesh, ObjectArticulated:
	default:
		c.log.Debug("ignoring unknown object", zap.Int("object", int(o)))
		return
	}
	c.object = o
	c.light = NoLight
	c.log.Debug("object selected", zap.Stringer("object", o))
}

// SelectLight selects light i and clears the object selection. NoLight
// only clears the light selection. Out-of-range indices are ignored.
func (c *Controller) SelectLight(i int) {
	if i == NoLight {
		c.light = NoLight
		return
	}
	if c.scene.Lights == nil || c.scene.Lights.Light(i) == nil {
		c.log.Debug("ignoring out-of-range light selection", zap.Int("index", i))
		return
	}
	c.light = i
	c.object = ObjectNone
	c.log.Debug("light selected", zap.Int("index", i))
}

// MoveSelectedLight translates the selected light incrementally. It does
// nothing without a light selection.
func (c *Controller) MoveSelectedLight(dx, dy, dz float32) {
	if c.light == NoLight || c.scene.Lights == nil {
		return
	}
	if l := c.scene.Lights.Light(c.light); l != nil {
		l.Translate(dx, dy, dz)
	}
}

// selected returns the entity behind the object selection, if any.
func (c *Controller) selected() scene.Entity {
	switch c.object {
	case ObjectMesh:
		if c.scene.Mesh != nil {
			return c.scene.Mesh
		}
	case ObjectArticulated:
		if c.scene.Model != nil {
			return c.scene.Model
		}
	}
	return nil
}

// Directional routes an arrow input. In priority order: camera orbit,
// articulated joint control, translation of the selected object, no-op.
func (c *Controller) Directional(d Direction) {
	switch {
	case c.cameraMode:
		step := c.settings.OrbitStep
		switch d {
		case Left:
			c.camera.Orbit(-step, 0)
		case Right:
			c.camera.Orbit(step, 0)
		case Up:
			c.camera.Orbit(0, step)
		case Down:
			c.camera.Orbit(0, -step)
		}

	case c.object == ObjectArticulated && c.articulated == KeyboardDOF && c.scene.Model != nil:
		switch d {
		case Up:
			c.scene.Model.AdjustActiveJoint(1)
		case Down:
			c.scene.Model.AdjustActiveJoint(-1)
		}

	default:
		e := c.selected()
		if e == nil {
			return
		}
		step := c.settings.MoveStep
		switch d {
		case Left:
			e.Translate(-step, 0, 0)
		case Right:
			e.Translate(step, 0, 0)
		case Up:
			e.Translate(0, step, 0)
		case Down:
			e.Translate(0, -step, 0)
		}
	}
}

// RotateSelected rotates the selected object by Euler degrees.
func (c *Controller) RotateSelected(dx, dy, dz float32) {
	if e := c.selected(); e != nil {
		e.Rotate(dx, dy, dz)
	}
}

// ScaleSelected scales the selected object uniformly.
func (c *Controller) ScaleSelected(factor float32) {
	if e := c.selected(); e != nil {
		e.ScaleBy(factor, factor, factor)
	}
}

// StepJoint cycles the articulated model's active joint. It applies only
// while the articulated model is selected.
func (c *Controller) StepJoint(forward bool) {
	if c.object != ObjectArticulated || c.scene.Model == nil {
		return
	}
	c.scene.Model.StepActiveJoint(forward)
}

// Zoom moves the camera toward (positive) or away from the center.
func (c *Controller) Zoom(delta float32) {
	c.camera.Zoom(delta)
}

// ToggleProjection switches the camera projection.
func (c *Controller) ToggleProjection() {
	c.camera.ToggleProjection()
}

// Resize updates the camera for a new viewport.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.camera.SetAspectRatio(float32(width) / float32(height))
}

// MousePress handles a left-button press. In picking mode it arms a pick at
// (x, y); a pick already pending is not duplicated.
func (c *Controller) MousePress(x, y int) {
	if c.Mode() != MousePicking {
		return
	}
	if c.picks.Arm(x, y) {
		c.drag.Press(y)
	}
}

// MouseRelease handles a left-button release.
func (c *Controller) MouseRelease() {
	c.drag.Release()
}

// MouseMotion handles pointer motion. While a joint is held, each pixel of
// vertical travel is one joint step: up increases, down decreases.
func (c *Controller) MouseMotion(x, y int) {
	if c.cameraMode {
		return
	}
	steps := c.drag.Motion(y)
	if steps == 0 || c.scene.Model == nil {
		return
	}
	c.scene.Model.AdjustActiveJoint(steps)
}

// Drag exposes the drag state machine.
func (c *Controller) Drag() DragState {
	return c.drag.State()
}

// PickPending reports whether a pick waits for the next frame.
func (c *Controller) PickPending() bool {
	_, _, ok := c.picks.Pending()
	return ok
}

// ProcessPick runs at most one pending pick through pick, which renders the
// selection pass and returns a joint index or picking.None. It must run
// before the frame's normal render.
func (c *Controller) ProcessPick(pick func(x, y int) int) {
	if c.cameraMode {
		c.picks.Clear()
		return
	}
	x, y, ok := c.picks.Pending()
	if !ok {
		return
	}
	c.picks.Clear()
	c.ResolvePick(pick(x, y))
}

// ResolvePick applies a decoded pick: a valid joint becomes active and can be
// dragged; anything else clears the active joint and cancels the drag.
func (c *Controller) ResolvePick(joint int) {
	if c.scene.Model == nil {
		c.drag.Release()
		return
	}
	if joint < 0 || joint >= c.scene.Model.JointCount() {
		joint = picking.None
	}
	c.scene.Model.SetActiveJoint(joint)
	c.drag.Resolve(joint)
	c.log.Debug("pick applied", zap.Int("joint", joint), zap.Stringer("drag", c.drag.State()))
}

// Update advances the animation clock once and applies enabled animations.
func (c *Controller) Update() {
	delta, elapsed := c.clock.Tick()

	if c.anim.Model && c.scene.Model != nil {
		c.scene.Model.UpdatePose(elapsed)
	}
	if c.anim.Camera {
		c.camera.Orbit(float32(delta)*c.settings.CameraSpeed, 0)
	}
	if c.anim.Light && c.scene.Lights != nil {
		if l := c.scene.Lights.Light(0); l != nil {
			l.SetPosition(c.settings.LightOrbit.At(elapsed))
		}
	}
}

// Animation returns the animation flags.
func (c *Controller) Animation() animation.Flags { return c.anim }

// ToggleAnimateModel flips model animation.
func (c *Controller) ToggleAnimateModel() { c.anim.ToggleModel() }

// ToggleAnimateCamera flips camera auto-orbit.
func (c *Controller) ToggleAnimateCamera() { c.anim.ToggleCamera() }

// ToggleAnimateLight flips the point light orbit.
func (c *Controller) ToggleAnimateLight() { c.anim.ToggleLight() }

// ToggleLight flips light i. Out-of-range indices are ignored.
func (c *Controller) ToggleLight(i int) {
	if c.scene.Lights != nil {
		c.scene.Lights.Toggle(i)
	}
}

// ToggleGlobalAmbient flips the scene-wide ambient term.
func (c *Controller) ToggleGlobalAmbient() {
	if c.scene.Lights != nil {
		c.scene.Lights.ToggleGlobalAmbient()
	}
}

// SetFloorMaterial selects the floor material. Out-of-range indices are ignored.
func (c *Controller) SetFloorMaterial(i int) {
	if c.scene.Floor != nil {
		c.scene.Floor.SetMaterial(i)
	}
}

// ToggleTexture flips floor texturing.
func (c *Controller) ToggleTexture() {
	if c.scene.Floor != nil {
		c.scene.Floor.ToggleTexture()
	}
}

// SetFloorTexture selects the floor texture. Out-of-range indices are ignored.
func (c *Controller) SetFloorTexture(i int) {
	if c.scene.Floor != nil {
		c.scene.Floor.SetTexture(i)
	}
}

// SetTextureFilter applies a filter preset to the floor texture.
// Out-of-range presets are ignored.
func (c *Controller) SetTextureFilter(i int) {
	if c.scene.Floor != nil {
		c.scene.Floor.SetTextureFilter(i)
	}
}

// SetShading selects flat or smooth shading.
func (c *Controller) SetShading(flat bool) {
	c.scene.Flat = flat
}

// Flat reports whether flat shading is on.
func (c *Controller) Flat() bool { return c.scene.Flat }

// Quit requests application exit.
func (c *Controller) Quit() { c.quit = true }

// QuitRequested reports whether Quit was called.
func (c *Controller) QuitRequested() bool { return c.quit }
