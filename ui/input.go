package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// Arrow keys, in a fixed order so presses in the same frame resolve the same way
var directionKeys = []int32{rl.KeyLeft, rl.KeyUp, rl.KeyRight, rl.KeyDown}

// DirectionForKey maps an arrow key to its direction, None for anything else
func DirectionForKey(key int32) types.Direction {
	switch key {
	case rl.KeyLeft:
		return types.Left
	case rl.KeyUp:
		return types.Up
	case rl.KeyRight:
		return types.Right
	case rl.KeyDown:
		return types.Down
	default:
		return types.None
	}
}

// PollInput forwards this frame's key events. While a notice is shown only
// Enter or Space do anything, and they dismiss it.
func PollInput(g *game.Game, notices *Notices) {
	if notices != nil && notices.Pending() {
		if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
			notices.Dismiss()
		}
		return
	}

	for _, key := range directionKeys {
		if rl.IsKeyPressed(key) {
			g.KeyDown(DirectionForKey(key))
		}
	}
	for _, key := range directionKeys {
		if rl.IsKeyReleased(key) {
			g.KeyUp(DirectionForKey(key))
		}
	}
}
