package interaction

// DragState is the mouse-drag phase.
type DragState int

const (
	DragIdle DragState = iota
	DragPicking
	DragDragging
)

func (s DragState) String() string {
	switch s {
	case DragPicking:
		return "picking"
	case DragDragging:
		return "dragging"
	default:
		return "idle"
	}
}

// Drag maps vertical mouse motion onto joint steps once a pick has resolved
// to a joint while the button is still down.
//
//	Idle --press--> Picking --resolve(joint)--> Dragging(joint)
//	Picking --resolve(none)--> Idle
//	any --release--> Idle
type Drag struct {
	state DragState
	joint int
	lastY int
}

// State returns the current phase.
func (d *Drag) State() DragState { return d.state }

// Joint returns the held joint, or -1 when not dragging.
func (d *Drag) Joint() int {
	if d.state != DragDragging {
		return -1
	}
	return d.joint
}

// Press starts waiting for a pick result.
func (d *Drag) Press(y int) {
	d.state = DragPicking
	d.lastY = y
}

// Resolve completes a pick. Results arriving after release are dropped.
func (d *Drag) Resolve(joint int) {
	if d.state != DragPicking {
		return
	}
	if joint < 0 {
		d.state = DragIdle
		return
	}
	d.state = DragDragging
	d.joint = joint
}

// Release ends any drag.
func (d *Drag) Release() {
	d.state = DragIdle
}

// Motion records the pointer and returns the signed number of joint steps:
// one per pixel of vertical travel, positive when moving up.
func (d *Drag) Motion(y int) int {
	dy := y - d.lastY
	d.lastY = y
	if d.state != DragDragging {
		return 0
	}
	return -dy
}
