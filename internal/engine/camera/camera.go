// Package camera provides the orbiting viewer camera.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// ProjectionMode selects perspective or orthographic projection.
type ProjectionMode int

const (
	Perspective ProjectionMode = iota
	Orthographic
)

func (p ProjectionMode) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// OrbitCamera orbits around a center point.
type OrbitCamera struct {
	// Center point to orbit around
	Center mgl32.Vec3

	// Spherical coordinates
	Distance  float32 // Distance from center
	RotationX float32 // Pitch (vertical angle, radians)
	RotationY float32 // Yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	ZoomSensitivity float32

	// Projection
	Mode   ProjectionMode
	FovY   float32 // Degrees
	Aspect float32
	Near   float32
	Far    float32
}

// NewOrbitCamera creates a new orbit camera looking at the origin.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        20.0,
		RotationX:       0.5,
		RotationY:       0.0,
		MinDistance:     2.0,
		MaxDistance:     100.0,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		ZoomSensitivity: 0.1,
		Mode:            Perspective,
		FovY:            60,
		Aspect:          4.0 / 3.0,
		Near:            0.1,
		Far:             500,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() mgl32.Vec3 {
	x := c.Distance * float32(math.Cos(float64(c.RotationX))*math.Sin(float64(c.RotationY)))
	y := c.Distance * float32(math.Sin(float64(c.RotationX)))
	z := c.Distance * float32(math.Cos(float64(c.RotationX))*math.Cos(float64(c.RotationY)))
	return c.Center.Add(mgl32.Vec3{x, y, z})
}

// View returns the view matrix.
func (c *OrbitCamera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position(), c.Center, mgl32.Vec3{0, 1, 0})
}

// Projection returns the projection matrix for the current mode. The
// orthographic volume matches the perspective frustum at the orbit distance.
func (c *OrbitCamera) Projection() mgl32.Mat4 {
	if c.Mode == Orthographic {
		h := c.Distance * float32(math.Tan(float64(mgl32.DegToRad(c.FovY))/2))
		w := h * c.Aspect
		return mgl32.Ortho(-w, w, -h, h, c.Near, c.Far)
	}
	return mgl32.Perspective(mgl32.DegToRad(c.FovY), c.Aspect, c.Near, c.Far)
}

// Orbit rotates around the center by yaw and pitch deltas in degrees.
// Pitch is clamped; yaw is unbounded.
func (c *OrbitCamera) Orbit(deltaYaw, deltaPitch float32) {
	c.RotationY += mgl32.DegToRad(deltaYaw)
	c.RotationX += mgl32.DegToRad(deltaPitch)

	// Clamp pitch
	if c.RotationX < c.MinPitch {
		c.RotationX = c.MinPitch
	}
	if c.RotationX > c.MaxPitch {
		c.RotationX = c.MaxPitch
	}
}

// Zoom moves toward the center for positive delta and away for negative.
func (c *OrbitCamera) Zoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}

// ToggleProjection switches between perspective and orthographic.
func (c *OrbitCamera) ToggleProjection() {
	if c.Mode == Perspective {
		c.Mode = Orthographic
	} else {
		c.Mode = Perspective
	}
}

// SetAspectRatio updates the viewport aspect ratio. Non-positive values are ignored.
func (c *OrbitCamera) SetAspectRatio(ratio float32) {
	if ratio <= 0 {
		return
	}
	c.Aspect = ratio
}

// SetCenter sets the camera's center point.
func (c *OrbitCamera) SetCenter(x, y, z float32) {
	c.Center = mgl32.Vec3{x, y, z}
}
