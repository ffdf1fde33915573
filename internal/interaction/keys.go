package interaction

// HandleChar applies the character key bindings. It reports whether the key
// was bound.
func (c *Controller) HandleChar(r rune) bool {
	s := c.settings
	switch r {
	case 27: // Esc
		c.Quit()
	case 'c', 'C':
		c.ToggleCameraMode()
	case 'p', 'P':
		c.ToggleProjection()
	case '+', '=':
		c.Zoom(s.ZoomStep)
	case '-', '_':
		c.Zoom(-s.ZoomStep)
	case '1':
		c.SelectObject(ObjectMesh)
	case '2':
		c.SelectObject(ObjectArticulated)

	// Selected light
	case 'j':
		c.MoveSelectedLight(-s.MoveStep, 0, 0)
	case 'l':
		c.MoveSelectedLight(s.MoveStep, 0, 0)
	case 'i':
		c.MoveSelectedLight(0, s.MoveStep, 0)
	case 'k':
		c.MoveSelectedLight(0, -s.MoveStep, 0)
	case 'u':
		c.MoveSelectedLight(0, 0, -s.MoveStep)
	case 'o':
		c.MoveSelectedLight(0, 0, s.MoveStep)

	// Active joint
	case '4':
		c.StepJoint(false)
	case '5':
		c.StepJoint(true)

	// Selected object
	case 'X':
		c.RotateSelected(s.RotateStep, 0, 0)
	case 'x':
		c.RotateSelected(-s.RotateStep, 0, 0)
	case 'Y':
		c.RotateSelected(0, s.RotateStep, 0)
	case 'y':
		c.RotateSelected(0, -s.RotateStep, 0)
	case 'Z':
		c.RotateSelected(0, 0, s.RotateStep)
	case 'z':
		c.RotateSelected(0, 0, -s.RotateStep)
	case 'S':
		c.ScaleSelected(s.ScaleUp)
	case 's':
		c.ScaleSelected(s.ScaleDown)

	case 'a', 'A':
		c.ToggleAnimateModel()
	case 'g', 'G':
		c.ToggleAnimateCamera()
	case 'b', 'B':
		c.ToggleAnimateLight()
	default:
		return false
	}
	return true
}
