package game

import (
	"testing"
	"time"

	"snake-arcade/game/types"
)

type fakeRenderer struct {
	frames int
	heads  []types.Point
}

func (r *fakeRenderer) Render(g *Game) {
	r.frames++
	r.heads = append(r.heads, g.SnakeCells()[0])
}

type fakeHost struct {
	remaining int
	calls     int
}

func (h *fakeHost) NextFrame() bool {
	h.calls++
	if h.remaining == 0 {
		return false
	}
	h.remaining--
	return true
}

func TestFrameFirstCallSetsBaseline(t *testing.T) {
	g := newTestGame(t)
	clock := NewMockClock(time.Unix(1000, 0))
	r := &fakeRenderer{}
	d := NewDriver(g, clock, r)

	g.KeyDown(types.Right)
	if !d.Frame() {
		t.Fatal("first Frame() = false")
	}
	if r.frames != 1 {
		t.Errorf("rendered %d frames, want 1", r.frames)
	}
	if head := g.SnakeCells()[0]; head != types.SnakeStart {
		t.Errorf("snake moved on the first frame to %v", head)
	}
	if g.Food() != types.FoodStart {
		t.Errorf("food moved on the first frame to %v", g.Food())
	}

	clock.Advance(150 * time.Millisecond)
	d.Frame()
	if head := g.SnakeCells()[0]; head != (types.Point{X: 220, Y: 200}) {
		t.Errorf("head = %v after one interval, want (220,200)", head)
	}
}

func TestAdvanceSingleStepPerFrame(t *testing.T) {
	g := newTestGame(t)
	d := NewDriver(g, NewMockClock(time.Unix(0, 0)), nil)
	g.snake.Body = []types.Point{{X: 20, Y: 0}}
	g.pending = types.Right

	d.Advance(10 * time.Second)
	if head := g.SnakeCells()[0]; head != (types.Point{X: 40, Y: 0}) {
		t.Errorf("head = %v after a huge delta, want (40,0)", head)
	}
	if d.moveTimer != 0 {
		t.Errorf("moveTimer = %v, want 0", d.moveTimer)
	}
}

func TestAdvanceAccumulatesAcrossFrames(t *testing.T) {
	g := newTestGame(t)
	d := NewDriver(g, nil, nil)
	g.snake.Body = []types.Point{{X: 20, Y: 0}}
	g.pending = types.Right

	d.Advance(100 * time.Millisecond)
	if head := g.SnakeCells()[0]; head.X != 20 {
		t.Fatalf("stepped early, head = %v", head)
	}
	d.Advance(60 * time.Millisecond)
	if head := g.SnakeCells()[0]; head.X != 40 {
		t.Fatalf("head = %v, want X=40", head)
	}
	// Overshoot is discarded: another full interval is needed.
	d.Advance(140 * time.Millisecond)
	if head := g.SnakeCells()[0]; head.X != 40 {
		t.Fatalf("head = %v, want X=40", head)
	}
	d.Advance(10 * time.Millisecond)
	if head := g.SnakeCells()[0]; head.X != 60 {
		t.Errorf("head = %v, want X=60", head)
	}
}

func TestAdvanceMovesFoodOnItsOwnTimer(t *testing.T) {
	g := newTestGame(t)
	d := NewDriver(g, nil, nil)

	d.Advance(60 * time.Millisecond)
	d.Advance(60 * time.Millisecond)
	if g.Food() != (types.Point{X: 120, Y: 100}) {
		t.Errorf("food = %v, want (120,100)", g.Food())
	}
	if head := g.SnakeCells()[0]; head != types.SnakeStart {
		t.Errorf("snake moved without input to %v", head)
	}
}

func TestAdvanceCapturesBeforeFoodMoves(t *testing.T) {
	g := newTestGame(t)
	d := NewDriver(g, nil, nil)
	g.food.Pos = types.Point{X: 220, Y: 200}
	g.food.Accumulator = 119 * time.Millisecond
	g.pending = types.Right

	d.Advance(150 * time.Millisecond)
	if g.Captures() != 1 {
		t.Errorf("Captures() = %d, want 1", g.Captures())
	}
}

func TestFrameStopsAfterWallCollision(t *testing.T) {
	notifier := &fakeNotifier{}
	g := newTestGame(t, WithNotifier(notifier))
	clock := NewMockClock(time.Unix(0, 0))
	r := &fakeRenderer{}
	d := NewDriver(g, clock, r)
	g.snake.Body = []types.Point{{X: 0, Y: 200}}
	g.pending = types.Left

	d.Frame()
	clock.Advance(150 * time.Millisecond)
	if d.Frame() {
		t.Fatal("Frame() = true on the colliding frame")
	}
	if g.Running() {
		t.Fatal("game still running")
	}
	rendered := r.frames
	food := g.Food()

	for i := 0; i < 5; i++ {
		clock.Advance(time.Second)
		if d.Frame() {
			t.Fatalf("Frame() = true after stop")
		}
	}
	if r.frames != rendered {
		t.Errorf("rendered %d more frames after stop", r.frames-rendered)
	}
	if g.Food() != food {
		t.Errorf("food moved after stop: %v -> %v", food, g.Food())
	}
	if notifier.count(NoticeWallCollision) != 1 {
		t.Errorf("wall notices = %d, want 1", notifier.count(NoticeWallCollision))
	}
}

func TestAdvanceHeldWhileNoticePending(t *testing.T) {
	notifier := &fakeNotifier{hold: true}
	g := newTestGame(t, WithNotifier(notifier))
	r := &fakeRenderer{}
	d := NewDriver(g, nil, r)
	g.food.Pos = types.Point{X: 220, Y: 200}
	g.pending = types.Right

	d.Advance(150 * time.Millisecond)
	if !notifier.pending {
		t.Fatal("capture did not raise a held notice")
	}
	food := g.Food()

	g.pending = types.Down
	for i := 0; i < 3; i++ {
		if !d.Advance(time.Second) {
			t.Fatal("Advance() = false while a notice is pending")
		}
	}
	if head := g.SnakeCells()[0]; head != types.SnakeStart {
		t.Errorf("snake moved to %v while the notice was pending", head)
	}
	if g.Food() != food {
		t.Errorf("food moved to %v while the notice was pending", g.Food())
	}
	if r.frames != 4 {
		t.Errorf("rendered %d frames, want 4", r.frames)
	}

	notifier.pending = false
	g.food.Pos = types.Point{X: 0, Y: 0}
	d.Advance(g.SnakeInterval())
	if head := g.SnakeCells()[0]; head != (types.Point{X: 200, Y: 220}) {
		t.Errorf("head = %v after dismissal, want (200,220)", head)
	}
}

func TestRunEndsOnHostClose(t *testing.T) {
	g := newTestGame(t)
	host := &fakeHost{remaining: 3}
	r := &fakeRenderer{}
	NewDriver(g, NewMockClock(time.Unix(0, 0)), r).Run(host)

	if r.frames != 3 {
		t.Errorf("rendered %d frames, want 3", r.frames)
	}
	if host.calls != 4 {
		t.Errorf("NextFrame calls = %d, want 4", host.calls)
	}
}

func TestRunDoesNotRescheduleAfterStop(t *testing.T) {
	g := newTestGame(t)
	clock := &steppingClock{now: time.Unix(0, 0), step: 200 * time.Millisecond}
	host := &fakeHost{remaining: 100}
	g.snake.Body = []types.Point{{X: 20, Y: 200}}
	g.pending = types.Left

	NewDriver(g, clock, nil).Run(host)

	if g.Running() {
		t.Fatal("game still running")
	}
	// Baseline frame, a step to x=0, then the colliding step.
	if host.calls != 3 {
		t.Errorf("NextFrame calls = %d, want 3", host.calls)
	}
}

type steppingClock struct {
	now  time.Time
	step time.Duration
}

func (c *steppingClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}
