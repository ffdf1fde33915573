package ui2d

// Rect is a screen rectangle, origin top-left.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
