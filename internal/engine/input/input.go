// Package input converts SDL2 events into viewer events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType identifies an Event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventText
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Mouse buttons, matching SDL numbering.
const (
	ButtonLeft   = sdl.BUTTON_LEFT
	ButtonMiddle = sdl.BUTTON_MIDDLE
	ButtonRight  = sdl.BUTTON_RIGHT
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Keycode
	Text   []rune
	Width  int
	Height int
	MouseX int
	MouseY int
	Button uint8
	WheelY int
}

// Input handles all input processing.
type Input struct {
	events []Event
	poll   func() sdl.Event
}

// New creates a new input handler and enables text input so printable keys
// arrive with their shifted characters.
func New() *Input {
	sdl.StartTextInput()
	return &Input{
		events: make([]Event, 0, 16),
		poll:   sdl.PollEvent,
	}
}

// Update polls SDL events and converts them to viewer events.
// Returns true if the window was asked to close.
func (i *Input) Update() bool {
	i.events = i.events[:0]

	quit := false
	for event := i.poll(); event != nil; event = i.poll() {
		ev, ok := Convert(event)
		if !ok {
			continue
		}
		if ev.Type == EventQuit {
			quit = true
		}
		i.events = append(i.events, ev)
	}
	return quit
}

// Convert maps one SDL event. Events the viewer ignores return false.
func Convert(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Type == sdl.KEYDOWN {
			return Event{Type: EventKeyDown, Key: e.Keysym.Sym}, true
		}

	case *sdl.TextInputEvent:
		return Event{Type: EventText, Text: []rune(e.GetText())}, true

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, MouseX: int(e.X), MouseY: int(e.Y)}, true

	case *sdl.MouseButtonEvent:
		ev := Event{MouseX: int(e.X), MouseY: int(e.Y), Button: e.Button}
		if e.Type == sdl.MOUSEBUTTONDOWN {
			ev.Type = EventMouseDown
		} else {
			ev.Type = EventMouseUp
		}
		return ev, true

	case *sdl.MouseWheelEvent:
		if e.Y != 0 {
			return Event{Type: EventMouseWheel, WheelY: int(e.Y)}, true
		}
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// Close stops text input.
func (i *Input) Close() {
	sdl.StopTextInput()
}
