package ui

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

const noticeFontSize = 20

// Notices shows one message at a time over the playfield. The simulation is
// held until the player dismisses it.
type Notices struct {
	current game.Notice
	pending bool
}

func NewNotices() *Notices {
	return &Notices{}
}

func (n *Notices) Notify(notice game.Notice) {
	log.Printf("notice: %s", notice)
	n.current = notice
	n.pending = true
}

func (n *Notices) Pending() bool {
	return n.pending
}

func (n *Notices) Current() game.Notice {
	return n.current
}

func (n *Notices) Dismiss() {
	n.pending = false
}

// Draw renders the pending notice as a banner across the middle of the grid
func (n *Notices) Draw(grid types.Grid) {
	if !n.pending {
		return
	}

	text := n.current.String()
	hint := "press Enter"
	bannerHeight := int32(noticeFontSize * 3)
	top := int32(grid.Height)/2 - bannerHeight/2

	rl.DrawRectangle(0, top, int32(grid.Width), bannerHeight, rl.Fade(rl.Black, 0.75))

	textWidth := rl.MeasureText(text, noticeFontSize)
	rl.DrawText(text, (int32(grid.Width)-textWidth)/2, top+noticeFontSize/2, noticeFontSize, rl.White)

	hintSize := int32(noticeFontSize / 2)
	hintWidth := rl.MeasureText(hint, hintSize)
	rl.DrawText(hint, (int32(grid.Width)-hintWidth)/2, top+noticeFontSize*2, hintSize, rl.LightGray)
}
