package game

import (
	"time"
)

// Renderer projects the current state onto a drawing surface
type Renderer interface {
	Render(g *Game)
}

// FrameHost is the animation-frame scheduler. NextFrame blocks until the next
// frame is due and returns false once the host is shutting down.
type FrameHost interface {
	NextFrame() bool
}

// Driver runs the per-frame update: at most one snake step, one food
// evaluation, then one render, in that order.
type Driver struct {
	game     *Game
	clock    TimeProvider
	renderer Renderer

	started   bool
	lastTime  time.Time
	moveTimer time.Duration
}

func NewDriver(g *Game, clock TimeProvider, renderer Renderer) *Driver {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Driver{
		game:     g,
		clock:    clock,
		renderer: renderer,
	}
}

// Frame reads the clock and advances by the time since the previous frame.
// The first call only sets the baseline. It reports whether the host should
// schedule another frame.
func (d *Driver) Frame() bool {
	if !d.game.Running() {
		return false
	}

	now := d.clock.Now()
	if !d.started {
		d.started = true
		d.lastTime = now
	}
	elapsed := now.Sub(d.lastTime)
	d.lastTime = now
	if elapsed < 0 {
		elapsed = 0
	}
	return d.Advance(elapsed)
}

// Advance runs one frame with an explicit elapsed time. Overshooting the
// snake interval still yields a single step; the accumulator is zeroed.
func (d *Driver) Advance(elapsed time.Duration) bool {
	g := d.game
	if !g.Running() {
		return false
	}

	if g.NoticePending() {
		d.render()
		return true
	}

	d.moveTimer += elapsed
	if d.moveTimer >= g.SnakeInterval() {
		g.Step()
		d.moveTimer = 0
	}

	if g.Running() && !g.NoticePending() {
		g.MoveFood(elapsed)
	}

	d.render()
	return g.Running()
}

// Run drives frames until the host closes or the session stops
func (d *Driver) Run(host FrameHost) {
	for host.NextFrame() {
		if !d.Frame() {
			return
		}
	}
}

func (d *Driver) render() {
	if d.renderer != nil {
		d.renderer.Render(d.game)
	}
}
