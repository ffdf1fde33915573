// Package model provides the articulated robot arm shown next to the static mesh.
package model

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/engine/mesh"
	"github.com/Faultbox/sceneview/internal/engine/picking"
	"github.com/Faultbox/sceneview/internal/engine/transform"
)

// Joint is one rotational degree of freedom of the arm.
type Joint struct {
	Name  string
	Axis  mgl32.Vec3
	Value float32 // Degrees
	Min   float32
	Max   float32
	Step  float32 // Degrees per adjustment

	// Offset from the parent joint, inherited by children.
	Offset mgl32.Vec3

	// Part geometry hangs off the joint but is not inherited.
	part       *mesh.Mesh
	partOffset mgl32.Vec3
	color      [4]float32

	// Procedural animation: Value = Amplitude * sin(t * Speed + Phase).
	amplitude float32
	speed     float32
	phase     float32
}

func (j *Joint) clamp() {
	if j.Value < j.Min {
		j.Value = j.Min
	}
	if j.Value > j.Max {
		j.Value = j.Max
	}
}

var (
	baseMesh    = mesh.Cube(2, 0.5, 2)
	turretMesh  = mesh.Cube(1.2, 1, 1.2)
	upperMesh   = mesh.Cube(0.5, 2.5, 0.5)
	forearmMesh = mesh.Cube(0.4, 2, 0.4)
	hingeMesh   = mesh.Sphere(0.35, 16, 12)

	baseColor      = [4]float32{0.35, 0.35, 0.4, 1}
	hingeColor     = [4]float32{0.2, 0.2, 0.2, 1}
	highlightColor = [4]float32{1, 0.85, 0.1, 1}
)

// Robot is a three-joint arm: a turret yawing on a fixed base, a shoulder and
// an elbow. Exactly one joint is active at a time, -1 meaning none.
type Robot struct {
	transform.Transform

	joints []Joint
	active int
}

// NewRobot returns the arm in its rest pose with no active joint.
func NewRobot() *Robot {
	return &Robot{
		Transform: transform.New(),
		active:    -1,
		joints: []Joint{
			{
				Name: "turret", Axis: mgl32.Vec3{0, 1, 0},
				Min: -180, Max: 180, Step: 5,
				Offset: mgl32.Vec3{0, 0.25, 0},
				part:   turretMesh, partOffset: mgl32.Vec3{0, 0.5, 0},
				color:     [4]float32{0.2, 0.45, 0.8, 1},
				amplitude: 90, speed: 0.5,
			},
			{
				Name: "shoulder", Axis: mgl32.Vec3{0, 0, 1},
				Min: -90, Max: 90, Step: 5,
				Offset: mgl32.Vec3{0, 1, 0},
				part:   upperMesh, partOffset: mgl32.Vec3{0, 1.25, 0},
				color:     [4]float32{0.8, 0.3, 0.2, 1},
				amplitude: 45, speed: 0.8,
			},
			{
				Name: "elbow", Axis: mgl32.Vec3{0, 0, 1},
				Min: -135, Max: 135, Step: 5,
				Offset: mgl32.Vec3{0, 2.5, 0},
				part:   forearmMesh, partOffset: mgl32.Vec3{0, 1, 0},
				color:     [4]float32{0.25, 0.7, 0.3, 1},
				amplitude: 60, speed: 1.3, phase: math.Pi / 2,
			},
		},
	}
}

// JointCount returns the number of joints.
func (r *Robot) JointCount() int {
	return len(r.joints)
}

// Joint returns a copy of joint i.
func (r *Robot) Joint(i int) (Joint, bool) {
	if i < 0 || i >= len(r.joints) {
		return Joint{}, false
	}
	return r.joints[i], true
}

// ActiveJoint returns the active joint index, or -1.
func (r *Robot) ActiveJoint() int {
	return r.active
}

// SetActiveJoint activates joint i; anything out of range clears the selection.
func (r *Robot) SetActiveJoint(i int) {
	if i < 0 || i >= len(r.joints) {
		r.active = -1
		return
	}
	r.active = i
}

// StepActiveJoint cycles the active joint forward or backward, wrapping at
// either end. With no active joint, forward selects the first and backward the last.
func (r *Robot) StepActiveJoint(forward bool) {
	n := len(r.joints)
	if n == 0 {
		return
	}
	switch {
	case r.active < 0 && forward:
		r.active = 0
	case r.active < 0:
		r.active = n - 1
	case forward:
		r.active = (r.active + 1) % n
	default:
		r.active = (r.active - 1 + n) % n
	}
}

// AdjustActiveJoint moves the active joint by delta steps, clamped to its range.
func (r *Robot) AdjustActiveJoint(delta int) {
	if r.active < 0 {
		return
	}
	j := &r.joints[r.active]
	j.Value += float32(delta) * j.Step
	j.clamp()
}

// UpdatePose sets every joint from the absolute animation time in seconds.
func (r *Robot) UpdatePose(t float64) {
	for i := range r.joints {
		j := &r.joints[i]
		j.Value = j.amplitude * float32(math.Sin(t*float64(j.speed)+float64(j.phase)))
		j.clamp()
	}
}

// jointMatrices returns each joint's inherited hierarchy matrix:
// parent * Offset * Rotation(axis, value).
func (r *Robot) jointMatrices() []mgl32.Mat4 {
	out := make([]mgl32.Mat4, len(r.joints))
	parent := r.Matrix()
	for i, j := range r.joints {
		m := parent.Mul4(mgl32.Translate3D(j.Offset.X(), j.Offset.Y(), j.Offset.Z()))
		m = m.Mul4(mgl32.HomogRotate3D(mgl32.DegToRad(j.Value), j.Axis))
		out[i] = m
		parent = m
	}
	return out
}

func partMatrix(hierarchy mgl32.Mat4, offset mgl32.Vec3) mgl32.Mat4 {
	return hierarchy.Mul4(mgl32.Translate3D(offset.X(), offset.Y(), offset.Z()))
}

func material(c [4]float32) draw.Material {
	return draw.Material{
		Ambient:   c,
		Diffuse:   c,
		Specular:  [4]float32{0.3, 0.3, 0.3, 1},
		Shininess: 32,
	}
}

// Draw emits the lit arm, highlighting the active joint.
func (r *Robot) Draw(f *draw.Frame) {
	base := r.Matrix()
	f.Add(draw.Item{
		Mesh:     baseMesh,
		Model:    base,
		Material: material(baseColor),
		Lit:      true,
	})

	for i, m := range r.jointMatrices() {
		j := r.joints[i]
		c := j.color
		if i == r.active {
			c = highlightColor
		}
		f.Add(draw.Item{Mesh: hingeMesh, Model: m, Material: material(hingeColor), Lit: true})
		f.Add(draw.Item{
			Mesh:     j.part,
			Model:    partMatrix(m, j.partOffset),
			Material: material(c),
			Lit:      true,
		})
	}
}

// DrawForSelection emits each joint's part in its flat identity colour. The
// base is not selectable and is left out.
func (r *Robot) DrawForSelection(f *draw.Frame) {
	for i, m := range r.jointMatrices() {
		j := r.joints[i]
		c := picking.Encode(i)
		f.Add(draw.Item{Mesh: hingeMesh, Model: m, Color: c})
		f.Add(draw.Item{Mesh: j.part, Model: partMatrix(m, j.partOffset), Color: c})
	}
}
