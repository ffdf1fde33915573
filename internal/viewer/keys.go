package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sceneview/internal/interaction"
)

const escapeChar = 27

// keyHandler is the subset of the controller driven by the keyboard.
type keyHandler interface {
	HandleChar(r rune) bool
	Directional(d interaction.Direction)
}

// handleKey routes non-printable keys. Printable keys arrive as text events.
func handleKey(h keyHandler, key sdl.Keycode) {
	switch key {
	case sdl.K_LEFT:
		h.Directional(interaction.Left)
	case sdl.K_RIGHT:
		h.Directional(interaction.Right)
	case sdl.K_UP:
		h.Directional(interaction.Up)
	case sdl.K_DOWN:
		h.Directional(interaction.Down)
	case sdl.K_ESCAPE:
		h.HandleChar(escapeChar)
	}
}

// handleText feeds typed characters to the character bindings.
func handleText(h keyHandler, text []rune) {
	for _, r := range text {
		h.HandleChar(r)
	}
}
