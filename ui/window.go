package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// InitWindow opens a window exactly the size of the playfield
func InitWindow(grid types.Grid, title string, fps int32) {
	rl.InitWindow(int32(grid.Width), int32(grid.Height), title)
	rl.SetTargetFPS(fps)
}

func CloseWindow() {
	rl.CloseWindow()
}

// Host is the raylib frame scheduler. Key events that arrived since the last
// frame are delivered before the frame runs.
type Host struct {
	Game    *game.Game
	Notices *Notices
}

func (h *Host) NextFrame() bool {
	if rl.WindowShouldClose() {
		return false
	}
	PollInput(h.Game, h.Notices)
	return true
}

// Linger keeps the final frame on screen after the session has stopped, until
// the window is closed.
func (h *Host) Linger(r *Renderer) {
	for !rl.WindowShouldClose() {
		if h.Notices != nil && h.Notices.Pending() {
			PollInput(h.Game, h.Notices)
		}
		r.Render(h.Game)
	}
}
