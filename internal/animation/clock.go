// Package animation provides the per-frame clock and the animation toggles.
package animation

import (
	"math"
	"time"
)

// Clock measures frame deltas. It is polled once per frame from the render
// loop and never runs on its own.
type Clock struct {
	now     func() time.Time
	start   time.Time
	last    time.Time
	started bool
}

// NewClock creates a clock. now may be nil to use the wall clock.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, start: now()}
}

// Tick advances the clock. The first call returns a zero delta. elapsed is
// measured from clock creation. Both are in seconds.
func (c *Clock) Tick() (delta, elapsed float64) {
	t := c.now()
	if c.started {
		delta = t.Sub(c.last).Seconds()
	}
	c.started = true
	c.last = t
	return delta, t.Sub(c.start).Seconds()
}

// Flags are the independent animation switches.
type Flags struct {
	Model  bool
	Camera bool
	Light  bool
}

// ToggleModel flips model animation.
func (f *Flags) ToggleModel() { f.Model = !f.Model }

// ToggleCamera flips camera auto-orbit.
func (f *Flags) ToggleCamera() { f.Camera = !f.Camera }

// ToggleLight flips light orbit.
func (f *Flags) ToggleLight() { f.Light = !f.Light }

// Orbit is a horizontal circular path around the origin.
type Orbit struct {
	Radius float32
	Speed  float32 // Radians per second
	Height float32
}

// At returns the position on the path at absolute time t seconds.
func (o Orbit) At(t float64) (x, y, z float32) {
	a := t * float64(o.Speed)
	return float32(math.Sin(a)) * o.Radius, o.Height, float32(math.Cos(a)) * o.Radius
}
