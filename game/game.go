package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

// ErrInvalidConfig is returned by NewGame for settings the simulation cannot run with.
var ErrInvalidConfig = errors.New("invalid game config")

// Config holds the playfield, starting cells and timing of a session
type Config struct {
	Grid            types.Grid
	SnakeStart      types.Point
	FoodStart       types.Point
	SnakeInterval   time.Duration
	FoodInterval    time.Duration
	MinFoodInterval time.Duration
	SpeedDivisor    float64
	Seed            uint64
}

func DefaultConfig() Config {
	return Config{
		Grid:            types.DefaultGrid(),
		SnakeStart:      types.SnakeStart,
		FoodStart:       types.FoodStart,
		SnakeInterval:   types.SnakeInterval,
		FoodInterval:    types.FoodInterval,
		MinFoodInterval: types.MinFoodInterval,
		SpeedDivisor:    types.SpeedDivisor,
		Seed:            uint64(time.Now().UnixNano()),
	}
}

func (c Config) Validate() error {
	if err := c.Grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	starts := []struct {
		name string
		pos  types.Point
	}{
		{"snake start", c.SnakeStart},
		{"food start", c.FoodStart},
	}
	for _, s := range starts {
		if !c.Grid.Contains(s.pos) || !c.Grid.Aligned(s.pos) {
			return fmt.Errorf("%w: %s %v is not a cell of the %dx%d grid", ErrInvalidConfig, s.name, s.pos, c.Grid.Width, c.Grid.Height)
		}
	}
	if c.SnakeInterval <= 0 || c.FoodInterval <= 0 || c.MinFoodInterval <= 0 {
		return fmt.Errorf("%w: intervals must be positive", ErrInvalidConfig)
	}
	if c.SpeedDivisor < 1 {
		return fmt.Errorf("%w: speed divisor %.2f must be at least 1", ErrInvalidConfig, c.SpeedDivisor)
	}
	return nil
}

// Notice is a user-facing message raised by the simulation
type Notice int

const (
	NoticeCapture Notice = iota + 1
	NoticeWallCollision
)

func (n Notice) String() string {
	switch n {
	case NoticeCapture:
		return "Caught it!"
	case NoticeWallCollision:
		return "Hit the wall. Game over!"
	default:
		return "unknown notice"
	}
}

// Notifier surfaces notices to the player. While Pending reports true the
// simulation is held.
type Notifier interface {
	Notify(n Notice)
	Pending() bool
}

// MusicPlayer starts the looping background track
type MusicPlayer interface {
	Play() error
}

// StepResult describes what a single simulation step did
type StepResult int

const (
	StepFrozen StepResult = iota
	StepMoved
	StepCaptured
	StepWallCollision
	StepStopped
)

// Game is the complete state of one session
type Game struct {
	UUID string
	Grid types.Grid

	snake   *entity.Snake
	food    *entity.Food
	pending types.Direction
	start   types.Point

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stateMgr     *manager.StateManager

	music        MusicPlayer
	musicStarted bool
	notifier     Notifier
}

type Option func(*Game)

func WithMusic(m MusicPlayer) Option {
	return func(g *Game) {
		g.music = m
	}
}

func WithNotifier(n Notifier) Option {
	return func(g *Game) {
		g.notifier = n
	}
}

func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	collisionMgr := manager.NewCollisionManager(cfg.Grid)
	stateMgr := manager.NewStateManager(manager.Speeds{
		Snake:   cfg.SnakeInterval,
		Food:    cfg.FoodInterval,
		MinFood: cfg.MinFoodInterval,
		Divisor: cfg.SpeedDivisor,
	})
	g := &Game{
		UUID:         uuid.New().String(),
		Grid:         cfg.Grid,
		snake:        entity.NewSnake(cfg.SnakeStart),
		food:         entity.NewFood(cfg.FoodStart),
		pending:      types.None,
		start:        cfg.SnakeStart,
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(cfg.Grid, collisionMgr, cfg.Seed),
		stateMgr:     stateMgr,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.snake.Contains(g.food.Pos) {
		g.foodMgr.PlaceFood(g.food, g.snake)
	}
	return g, nil
}

// Step advances the snake by one cell in the pending direction, then resolves
// wall collision and food capture.
func (g *Game) Step() StepResult {
	if !g.stateMgr.Running() {
		return StepStopped
	}

	// Releasing every key halts the snake instead of letting it coast.
	if g.pending == types.None {
		g.snake.Direction = types.None
		return StepFrozen
	}

	g.snake.Direction = g.pending
	newHead := g.snake.GetHead().Add(g.snake.Direction.Vector(g.Grid.Cell))

	if g.collisionMgr.IsWallCollision(newHead) {
		if g.stateMgr.Stop() {
			log.Printf("wall collision at %v after %d captures", newHead, g.stateMgr.Captures())
			g.notify(NoticeWallCollision)
		}
		return StepWallCollision
	}

	g.snake.Advance(newHead)

	if !g.collisionMgr.CheckFoodCapture(g.snake, g.food.Pos) {
		return StepMoved
	}
	g.capture()
	return StepCaptured
}

func (g *Game) capture() {
	g.notify(NoticeCapture)
	g.startMusic()

	newLength := g.snake.Len() + 1
	g.snake.Reset(g.start, newLength-1)
	g.pending = types.None

	g.foodMgr.PlaceFood(g.food, g.snake)
	g.stateMgr.RecordCapture()

	log.Printf("capture #%d: target length %d, food at %v, intervals snake=%v food=%v",
		g.stateMgr.Captures(), newLength, g.food.Pos, g.stateMgr.SnakeInterval(), g.stateMgr.FoodInterval())
}

// MoveFood feeds the frame's elapsed time to the food's own timer
func (g *Game) MoveFood(elapsed time.Duration) bool {
	if !g.stateMgr.Running() {
		return false
	}
	return g.foodMgr.MoveFood(g.food, elapsed, g.stateMgr.FoodInterval())
}

func (g *Game) notify(n Notice) {
	if g.notifier != nil {
		g.notifier.Notify(n)
	}
}

func (g *Game) NoticePending() bool {
	return g.notifier != nil && g.notifier.Pending()
}

func (g *Game) SnakeCells() []types.Point {
	return g.snake.Cells()
}

func (g *Game) Food() types.Point {
	return g.food.Pos
}

func (g *Game) Direction() types.Direction {
	return g.snake.Direction
}

func (g *Game) PendingDirection() types.Direction {
	return g.pending
}

func (g *Game) PendingGrowth() int {
	return g.snake.PendingGrowth
}

func (g *Game) Running() bool {
	return g.stateMgr.Running()
}

func (g *Game) Captures() int {
	return g.stateMgr.Captures()
}

func (g *Game) SnakeInterval() time.Duration {
	return g.stateMgr.SnakeInterval()
}

func (g *Game) FoodInterval() time.Duration {
	return g.stateMgr.FoodInterval()
}
