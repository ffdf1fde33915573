// Package scene owns the placeable entities and builds draw frames from them.
package scene

import (
	"github.com/Faultbox/sceneview/internal/engine/draw"
	"github.com/Faultbox/sceneview/internal/engine/lighting"
)

// Kind tags an entity variant.
type Kind int

const (
	KindNone Kind = iota
	KindMesh
	KindArticulated
	KindLight
	KindFloor
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindArticulated:
		return "articulated"
	case KindLight:
		return "light"
	case KindFloor:
		return "floor"
	default:
		return "none"
	}
}

// Entity is anything placed in the scene with its own transform.
type Entity interface {
	Draw(f *draw.Frame)
	DrawForSelection(f *draw.Frame)

	Translate(dx, dy, dz float32)
	Rotate(dx, dy, dz float32)
	ScaleBy(sx, sy, sz float32)
}

// Articulated is a jointed model with one active joint (-1 for none).
type Articulated interface {
	Entity

	JointCount() int
	ActiveJoint() int
	SetActiveJoint(i int)
	StepActiveJoint(forward bool)
	// AdjustActiveJoint moves the active joint by delta steps. The model
	// clamps the result to the joint's range.
	AdjustActiveJoint(delta int)
	// UpdatePose drives the procedural animation from absolute time in seconds.
	UpdatePose(t float64)
}

// KindOf returns the variant tag of e.
func KindOf(e Entity) Kind {
	switch e.(type) {
	case *StaticMesh:
		return KindMesh
	case *Floor:
		return KindFloor
	case *lighting.Light:
		return KindLight
	case Articulated:
		return KindArticulated
	default:
		return KindNone
	}
}
