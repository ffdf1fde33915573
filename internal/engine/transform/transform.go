// Package transform provides the position/rotation/scale triple owned by every
// placeable entity in the scene.
package transform

import "github.com/go-gl/mathgl/mgl32"

// Transform is a minimal affine transform. Rotation holds cumulative Euler angles
// in degrees, applied X then Y then Z. The zero value is not usable; call New or Reset.
type Transform struct {
	Position mgl32.Vec3
	Rotation mgl32.Vec3
	Scale    mgl32.Vec3
}

// New returns an identity transform.
func New() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Translate adds a displacement to the position.
func (t *Transform) Translate(dx, dy, dz float32) {
	t.Position = t.Position.Add(mgl32.Vec3{dx, dy, dz})
}

// Rotate adds Euler angles (degrees) to the cumulative rotation. Angles are
// never wrapped.
func (t *Transform) Rotate(dx, dy, dz float32) {
	t.Rotation = t.Rotation.Add(mgl32.Vec3{dx, dy, dz})
}

// ScaleBy multiplies the current scale componentwise. A zero factor would make
// the transform singular, so that component is left unchanged.
func (t *Transform) ScaleBy(sx, sy, sz float32) {
	factors := [3]float32{sx, sy, sz}
	for i, f := range factors {
		if f == 0 {
			continue
		}
		t.Scale[i] *= f
	}
}

// Reset restores the identity transform.
func (t *Transform) Reset() {
	*t = New()
}

// MoveTo resets the transform and then translates to an absolute position.
func (t *Transform) MoveTo(x, y, z float32) {
	t.Reset()
	t.Translate(x, y, z)
}

// Matrix composes the model matrix as T * Rx * Ry * Rz * S.
func (t *Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Translate3D(t.Position.X(), t.Position.Y(), t.Position.Z())
	m = m.Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(t.Rotation.X())))
	m = m.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(t.Rotation.Y())))
	m = m.Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(t.Rotation.Z())))
	return m.Mul4(mgl32.Scale3D(t.Scale.X(), t.Scale.Y(), t.Scale.Z()))
}
