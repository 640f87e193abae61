package client

import (
	"github.com/tomz197/polyroids/internal/input"
	"github.com/tomz197/polyroids/internal/loop"
)

// Screen is what the client is currently showing.
type Screen int

const (
	ScreenTitle   Screen = iota // Title and instructions
	ScreenPlaying               // Game running or awaiting acknowledgement
)

// gameKeys maps terminal keys to game controls.
var gameKeys = map[input.Key]loop.Key{
	input.KeyLeft:  loop.KeyLeft,
	input.KeyRight: loop.KeyRight,
	input.KeyUp:    loop.KeyThrust,
	input.KeyDown:  loop.KeyHyperspace,
	input.KeySpace: loop.KeyFire,
}

// overlayState identifies the text layout on screen. A change clears the
// terminal so no stale text remains.
type overlayState struct {
	screen Screen
	phase  loop.Phase
	dialog loop.Dialog
	notice string
}
