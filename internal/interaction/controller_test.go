package interaction

import (
	"math"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/animation"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
	"github.com/Faultbox/sceneview/internal/engine/mesh"
	"github.com/Faultbox/sceneview/internal/engine/model"
	"github.com/Faultbox/sceneview/internal/engine/picking"
	"github.com/Faultbox/sceneview/internal/scene"
)

type fakeCamera struct {
	yaw, pitch float32
	zoom       float32
	toggles    int
	aspect     float32
	calls      int
}

func (c *fakeCamera) Orbit(dyaw, dpitch float32) {
	c.yaw += dyaw
	c.pitch += dpitch
	c.calls++
}

func (c *fakeCamera) Zoom(d float32) {
	c.zoom += d
	c.calls++
}

func (c *fakeCamera) ToggleProjection() {
	c.toggles++
	c.calls++
}

func (c *fakeCamera) SetAspectRatio(r float32) {
	c.aspect = r
	c.calls++
}

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) now() time.Time { return f.t }

type fixture struct {
	ctrl  *Controller
	cam   *fakeCamera
	scene *scene.Scene
	robot *model.Robot
	clock *fakeTime
}

func newFixture() *fixture {
	robot := model.NewRobot()
	s := scene.New(
		scene.NewStaticMesh(mesh.Cube(1, 1, 1)),
		robot,
		scene.NewFloor(20, []scene.Texture{nil, nil, nil}),
		lighting.NewRig(),
	)
	ft := &fakeTime{t: time.Unix(0, 0)}
	cam := &fakeCamera{}
	return &fixture{
		ctrl:  New(s, cam, DefaultSettings(), animation.NewClock(ft.now)),
		cam:   cam,
		scene: s,
		robot: robot,
		clock: ft,
	}
}

// snapshot captures every placeable transform.
func (f *fixture) snapshot() []mgl32.Vec3 {
	var out []mgl32.Vec3
	out = append(out, f.scene.Mesh.Position, f.scene.Mesh.Rotation, f.scene.Mesh.Scale)
	out = append(out, f.robot.Position, f.robot.Rotation, f.robot.Scale)
	for i := 0; i < f.scene.Lights.Count(); i++ {
		out = append(out, f.scene.Lights.Light(i).Position)
	}
	return out
}

func (f *fixture) jointValue(i int) float32 {
	j, _ := f.robot.Joint(i)
	return j.Value
}

func TestInitialState(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	if c.Mode() != KeyboardDOF {
		t.Errorf("expected keyboard mode, got %v", c.Mode())
	}
	if c.SelectedObject() != ObjectNone || c.SelectedLight() != NoLight {
		t.Errorf("expected empty selection, got %v / %d", c.SelectedObject(), c.SelectedLight())
	}
	if c.Animation() != (animation.Flags{}) {
		t.Error("expected animations off")
	}
}

func TestSelectionMutualExclusion(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	ops := []func(){
		func() { c.SelectObject(ObjectMesh) },
		func() { c.SelectLight(0) },
		func() { c.SelectObject(ObjectArticulated) },
		func() { c.SelectLight(2) },
		func() { c.SelectLight(NoLight) },
		func() { c.SelectObject(ObjectMesh) },
		func() { c.SelectLight(1) },
		func() { c.SelectLight(9) },
		func() { c.SelectObject(Object(7)) },
	}
	for i, op := range ops {
		op()
		if c.SelectedObject() != ObjectNone && c.SelectedLight() != NoLight {
			t.Fatalf("step %d: both object %v and light %d selected", i, c.SelectedObject(), c.SelectedLight())
		}
	}

	c.SelectLight(2)
	c.SelectObject(ObjectArticulated)
	if c.SelectedLight() != NoLight {
		t.Error("selecting an object must clear the light")
	}
	c.SelectLight(0)
	if c.SelectedObject() != ObjectNone {
		t.Error("selecting a light must clear the object")
	}
}

func TestSelectLightOutOfRangeIgnored(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SelectObject(ObjectMesh)
	c.SelectLight(3)
	c.SelectLight(-2)
	if c.SelectedObject() != ObjectMesh || c.SelectedLight() != NoLight {
		t.Errorf("out-of-range light selection changed state: %v / %d", c.SelectedObject(), c.SelectedLight())
	}
}

func TestMoveSelectedLightScenario(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SelectObject(ObjectMesh)
	before := f.snapshot()
	c.MoveSelectedLight(1, 0, 0)
	after := f.snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("transform %d changed without a light selected: %v -> %v", i, before[i], after[i])
		}
	}

	start := f.scene.Lights.Light(0).Position
	c.SelectLight(0)
	c.MoveSelectedLight(1, 0, 0)
	if got := f.scene.Lights.Light(0).Position; got != start.Add(mgl32.Vec3{1, 0, 0}) {
		t.Errorf("expected light at %v, got %v", start.Add(mgl32.Vec3{1, 0, 0}), got)
	}
	if c.SelectedObject() != ObjectNone {
		t.Errorf("expected no object selected, got %v", c.SelectedObject())
	}

	c.MoveSelectedLight(1, 0, 0)
	if got := f.scene.Lights.Light(0).Position; got != start.Add(mgl32.Vec3{2, 0, 0}) {
		t.Errorf("expected incremental move, got %v", got)
	}
}

func TestCameraModeOnlyMovesCamera(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SelectObject(ObjectArticulated)
	f.robot.SetActiveJoint(0)
	c.ToggleCameraMode()
	if c.Mode() != CameraOrbit {
		t.Fatalf("expected camera mode, got %v", c.Mode())
	}

	before := f.snapshot()
	joint := f.jointValue(0)
	for _, d := range []Direction{Left, Right, Up, Down, Up, Up} {
		c.Directional(d)
	}
	after := f.snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("transform %d changed in camera mode", i)
		}
	}
	if f.jointValue(0) != joint {
		t.Error("joint changed in camera mode")
	}
	if f.cam.yaw != 0 || f.cam.pitch != 10 {
		t.Errorf("expected camera yaw 0 pitch 10, got %f/%f", f.cam.yaw, f.cam.pitch)
	}

	c.ToggleCameraMode()
	if c.Mode() != KeyboardDOF {
		t.Errorf("expected to return to keyboard mode, got %v", c.Mode())
	}
}

func TestCameraModeClearsLight(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SelectLight(2)
	c.ToggleCameraMode()
	if c.SelectedLight() != NoLight {
		t.Errorf("expected light deselected, got %d", c.SelectedLight())
	}
}

func TestCameraModeStopsHeldJoint(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SetInteractionMode(MousePicking)
	c.MousePress(10, 100)
	c.ProcessPick(func(int, int) int { return 1 })
	if c.Drag() != DragDragging {
		t.Fatalf("expected dragging after pick, got %v", c.Drag())
	}

	c.ToggleCameraMode()
	if c.Drag() != DragIdle {
		t.Errorf("expected drag released in camera mode, got %v", c.Drag())
	}

	before := f.jointValue(1)
	c.MouseMotion(10, 90)
	if got := f.jointValue(1); got != before {
		t.Errorf("joint moved in camera mode: %f -> %f", before, got)
	}
}

func TestCameraModeDropsPendingPick(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SetInteractionMode(MousePicking)
	c.MousePress(10, 100)
	c.ToggleCameraMode()
	if c.PickPending() {
		t.Error("pick still pending after entering camera mode")
	}

	active := f.robot.ActiveJoint()
	c.ProcessPick(func(int, int) int {
		t.Error("pick ran in camera mode")
		return 0
	})
	if f.robot.ActiveJoint() != active {
		t.Errorf("active joint changed in camera mode: %d -> %d", active, f.robot.ActiveJoint())
	}

	// Clicks while orbiting arm nothing.
	c.MousePress(20, 20)
	if c.PickPending() {
		t.Error("pick armed in camera mode")
	}
}

func TestCameraModeRestoresPickingMode(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SetInteractionMode(MousePicking)
	c.ToggleCameraMode()
	c.ToggleCameraMode()
	if c.Mode() != MousePicking {
		t.Errorf("expected picking mode after leaving camera, got %v", c.Mode())
	}
}

func TestKeyboardJointControlStaysInRange(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SelectObject(ObjectArticulated)
	f.robot.SetActiveJoint(1)
	j, _ := f.robot.Joint(1)

	c.Directional(Up)
	if got := f.jointValue(1); got <= 0 {
		t.Errorf("up should increase the joint, got %f", got)
	}
	c.Directional(Down)
	c.Directional(Down)
	if got := f.jointValue(1); got >= 0 {
		t.Errorf("down should decrease the joint, got %f", got)
	}

	for i := 0; i < 500; i++ {
		c.Directional(Up)
		if v := f.jointValue(1); v < j.Min || v > j.Max {
			t.Fatalf("joint left its range: %f", v)
		}
	}
	if f.jointValue(1) != j.Max {
		t.Errorf("expected clamp at %f, got %f", j.Max, f.jointValue(1))
	}
	for i := 0; i < 500; i++ {
		c.Directional(Down)
	}
	if f.jointValue(1) != j.Min {
		t.Errorf("expected clamp at %f, got %f", j.Min, f.jointValue(1))
	}

	pos := f.robot.Position
	c.Directional(Left)
	c.Directional(Right)
	if f.robot.Position != pos {
		t.Error("left/right should not move the model in keyboard joint mode")
	}
}

func TestDirectionalTranslatesSelection(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*Controller)
		dir   Direction
		want  mgl32.Vec3
		robot bool
	}{
		{"mesh left", func(c *Controller) { c.SelectObject(ObjectMesh) }, Left, mgl32.Vec3{-0.5, 0, 0}, false},
		{"mesh up", func(c *Controller) { c.SelectObject(ObjectMesh) }, Up, mgl32.Vec3{0, 0.5, 0}, false},
		{"robot in picking mode", func(c *Controller) {
			c.SetInteractionMode(MousePicking)
			c.SelectObject(ObjectArticulated)
		}, Down, mgl32.Vec3{0, -0.5, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			tt.setup(f.ctrl)
			f.ctrl.Directional(tt.dir)

			got := f.scene.Mesh.Position
			if tt.robot {
				got = f.robot.Position
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestDirectionalNoSelectionIsNoop(t *testing.T) {
	f := newFixture()
	before := f.snapshot()
	for _, d := range []Direction{Left, Right, Up, Down} {
		f.ctrl.Directional(d)
	}
	after := f.snapshot()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("transform %d changed with nothing selected", i)
		}
	}
	if f.cam.calls != 0 {
		t.Error("camera moved outside camera mode")
	}
}

func TestPickingFlow(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	// Keyboard mode ignores clicks.
	c.MousePress(10, 10)
	if c.PickPending() {
		t.Fatal("pick armed outside picking mode")
	}

	c.SetInteractionMode(MousePicking)
	c.MousePress(10, 100)
	c.MousePress(50, 50)
	if !c.PickPending() || c.Drag() != DragPicking {
		t.Fatalf("expected pending pick, drag %v", c.Drag())
	}

	var calls int
	var gotX, gotY int
	c.ProcessPick(func(x, y int) int {
		calls++
		gotX, gotY = x, y
		return 2
	})
	if calls != 1 || gotX != 10 || gotY != 100 {
		t.Errorf("expected one pick at (10,100), got %d at (%d,%d)", calls, gotX, gotY)
	}
	if c.PickPending() {
		t.Error("pick not cleared after processing")
	}
	if f.robot.ActiveJoint() != 2 {
		t.Errorf("expected active joint 2, got %d", f.robot.ActiveJoint())
	}
	if c.Drag() != DragDragging {
		t.Errorf("expected dragging, got %v", c.Drag())
	}

	c.ProcessPick(func(int, int) int {
		t.Error("pick ran without a pending request")
		return picking.None
	})

	// Drag up 3 pixels: three increments.
	j, _ := f.robot.Joint(2)
	start := f.jointValue(2)
	c.MouseMotion(10, 97)
	if got := f.jointValue(2); got != start+3*j.Step {
		t.Errorf("expected %f after dragging up, got %f", start+3*j.Step, got)
	}
	// Down 5 pixels: five decrements.
	c.MouseMotion(12, 102)
	if got := f.jointValue(2); got != start-2*j.Step {
		t.Errorf("expected %f after dragging down, got %f", start-2*j.Step, got)
	}
	// Horizontal only: nothing.
	c.MouseMotion(40, 102)
	if got := f.jointValue(2); got != start-2*j.Step {
		t.Errorf("horizontal motion changed the joint: %f", got)
	}

	c.MouseRelease()
	if c.Drag() != DragIdle {
		t.Errorf("expected idle after release, got %v", c.Drag())
	}
	c.MouseMotion(40, 0)
	if got := f.jointValue(2); got != start-2*j.Step {
		t.Error("motion after release changed the joint")
	}
}

func TestPickBackgroundClearsJoint(t *testing.T) {
	tests := []struct {
		name   string
		result int
	}{
		{"background", picking.None},
		{"beyond joint count", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			c := f.ctrl
			f.robot.SetActiveJoint(1)

			c.SetInteractionMode(MousePicking)
			c.MousePress(1, 1)
			c.ProcessPick(func(int, int) int { return tt.result })

			if f.robot.ActiveJoint() != -1 {
				t.Errorf("expected active joint -1, got %d", f.robot.ActiveJoint())
			}
			if c.Drag() != DragIdle {
				t.Errorf("expected drag cancelled, got %v", c.Drag())
			}
		})
	}
}

func TestPickResolvedAfterReleaseDoesNotDrag(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SetInteractionMode(MousePicking)
	c.MousePress(5, 5)
	c.MouseRelease()
	c.ProcessPick(func(int, int) int { return 0 })

	if f.robot.ActiveJoint() != 0 {
		t.Errorf("expected joint 0 selected, got %d", f.robot.ActiveJoint())
	}
	if c.Drag() != DragIdle {
		t.Errorf("expected idle, got %v", c.Drag())
	}
}

func TestUpdateAnimations(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	// First update: zero delta, no camera motion even with orbit on.
	c.ToggleAnimateCamera()
	c.Update()
	if f.cam.yaw != 0 {
		t.Errorf("expected no orbit on first update, got %f", f.cam.yaw)
	}

	f.clock.t = f.clock.t.Add(2 * time.Second)
	c.Update()
	if math.Abs(float64(f.cam.yaw-20)) > 1e-4 {
		t.Errorf("expected 20 degrees of orbit after 2s, got %f", f.cam.yaw)
	}
	if f.cam.pitch != 0 {
		t.Errorf("auto-orbit must be horizontal only, got pitch %f", f.cam.pitch)
	}

	c.ToggleAnimateLight()
	f.clock.t = f.clock.t.Add(time.Second)
	c.Update()
	p := f.scene.Lights.Light(0).Position
	if p.Y() != 5 {
		t.Errorf("expected orbit height 5, got %f", p.Y())
	}
	if r := math.Hypot(float64(p.X()), float64(p.Z())); math.Abs(r-7) > 1e-4 {
		t.Errorf("expected orbit radius 7, got %f", r)
	}

	c.ToggleAnimateModel()
	f.clock.t = f.clock.t.Add(time.Second)
	c.Update()
	moved := false
	for i := 0; i < f.robot.JointCount(); i++ {
		if f.jointValue(i) != 0 {
			moved = true
		}
	}
	if !moved {
		t.Error("expected model pose to change with animation on")
	}
}

func TestMenuOperations(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.ToggleLight(1)
	c.ToggleLight(3)
	c.ToggleLight(-1)
	if f.scene.Lights.Light(1).Enabled {
		t.Error("expected directional light off")
	}
	if !f.scene.Lights.Light(0).Enabled || !f.scene.Lights.Light(2).Enabled {
		t.Error("other lights changed")
	}

	c.ToggleGlobalAmbient()
	if f.scene.Lights.GlobalAmbientEnabled() {
		t.Error("expected global ambient off")
	}

	c.SetFloorMaterial(scene.MaterialPlastic)
	c.SetFloorMaterial(9)
	if f.scene.Floor.MaterialIndex() != scene.MaterialPlastic {
		t.Errorf("expected plastic, got %d", f.scene.Floor.MaterialIndex())
	}
	c.SetFloorTexture(1)
	c.SetFloorTexture(3)
	if f.scene.Floor.TextureIndex() != 1 {
		t.Errorf("expected texture 1, got %d", f.scene.Floor.TextureIndex())
	}
	c.ToggleTexture()
	if f.scene.Floor.TextureEnabled() {
		t.Error("expected texturing off")
	}
	c.SetTextureFilter(8)

	c.SetShading(true)
	if !c.Flat() || !f.scene.Flat {
		t.Error("expected flat shading")
	}

	c.Resize(800, 400)
	if f.cam.aspect != 2 {
		t.Errorf("expected aspect 2, got %f", f.cam.aspect)
	}
	c.Resize(0, 0)
	if f.cam.aspect != 2 {
		t.Error("zero-size resize should be ignored")
	}
}

func TestHandleChar(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	if c.HandleChar('q') {
		t.Error("q should be unbound")
	}

	c.HandleChar('1')
	c.HandleChar('X')
	c.HandleChar('S')
	if c.SelectedObject() != ObjectMesh {
		t.Fatalf("expected mesh selected, got %v", c.SelectedObject())
	}
	if f.scene.Mesh.Rotation.X() != 15 {
		t.Errorf("expected rotation 15, got %f", f.scene.Mesh.Rotation.X())
	}
	if math.Abs(float64(f.scene.Mesh.Scale.X()-1.1)) > 1e-6 {
		t.Errorf("expected scale 1.1, got %f", f.scene.Mesh.Scale.X())
	}

	c.HandleChar('2')
	c.HandleChar('5')
	c.HandleChar('5')
	if f.robot.ActiveJoint() != 1 {
		t.Errorf("expected joint 1 after two steps, got %d", f.robot.ActiveJoint())
	}
	c.HandleChar('4')
	if f.robot.ActiveJoint() != 0 {
		t.Errorf("expected joint 0 after stepping back, got %d", f.robot.ActiveJoint())
	}

	c.HandleChar('+')
	c.HandleChar('p')
	if f.cam.zoom != 1 || f.cam.toggles != 1 {
		t.Errorf("expected zoom 1 and one projection toggle, got %f/%d", f.cam.zoom, f.cam.toggles)
	}

	c.HandleChar('a')
	c.HandleChar('g')
	c.HandleChar('b')
	if a := c.Animation(); !a.Model || !a.Camera || !a.Light {
		t.Errorf("expected all animations on, got %+v", a)
	}

	c.HandleChar(27)
	if !c.QuitRequested() {
		t.Error("expected quit after Esc")
	}
}

func TestJointStepRequiresArticulatedSelection(t *testing.T) {
	f := newFixture()
	c := f.ctrl

	c.SelectObject(ObjectMesh)
	c.HandleChar('5')
	if f.robot.ActiveJoint() != -1 {
		t.Errorf("joint stepped without the model selected: %d", f.robot.ActiveJoint())
	}
}

func TestDragStateMachine(t *testing.T) {
	var d Drag

	if d.Motion(10) != 0 {
		t.Error("idle motion should not step")
	}
	d.Press(10)
	if d.Motion(5) != 0 {
		t.Error("motion while picking should not step")
	}
	d.Resolve(1)
	if d.State() != DragDragging || d.Joint() != 1 {
		t.Fatalf("expected dragging joint 1, got %v/%d", d.State(), d.Joint())
	}
	if got := d.Motion(2); got != 3 {
		t.Errorf("expected +3 steps moving up, got %d", got)
	}
	if got := d.Motion(6); got != -4 {
		t.Errorf("expected -4 steps moving down, got %d", got)
	}
	d.Release()
	if d.Joint() != -1 {
		t.Errorf("expected no joint after release, got %d", d.Joint())
	}
	d.Resolve(2)
	if d.State() != DragIdle {
		t.Error("late resolve must not start a drag")
	}
}
