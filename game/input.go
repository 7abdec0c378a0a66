package game

import (
	"log"

	"snake-arcade/game/types"
)

// KeyDown handles a directional key press. The first press also starts the
// background music. A press opposite to the committed direction is ignored.
func (g *Game) KeyDown(d types.Direction) {
	if d == types.None || !g.Running() || g.NoticePending() {
		return
	}

	g.startMusic()

	if d == g.snake.Direction.Opposite() {
		return
	}
	g.pending = d
}

// KeyUp clears the pending direction on release of any directional key
func (g *Game) KeyUp(d types.Direction) {
	if d == types.None || !g.Running() || g.NoticePending() {
		return
	}
	g.pending = types.None
}

// startMusic is shared by input and capture. A failed start leaves the flag
// unset so the next trigger tries again.
func (g *Game) startMusic() {
	if g.musicStarted || g.music == nil {
		return
	}
	if err := g.music.Play(); err != nil {
		log.Printf("warning: background music did not start: %v", err)
		return
	}
	g.musicStarted = true
}

func (g *Game) MusicStarted() bool {
	return g.musicStarted
}
