package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidGrid is returned when the playfield cannot be tiled by whole cells.
var ErrInvalidGrid = errors.New("invalid grid")

// Point is a grid-aligned cell position in pixels
type Point struct {
	X, Y int
}

// Add returns the sum of two points
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Grid represents the playfield dimensions in pixels and the size of one cell
type Grid struct {
	Width  int
	Height int
	Cell   int
}

// Game defaults
const (
	CellSize        = 20
	CanvasWidth     = 400
	CanvasHeight    = 400
	SnakeInterval   = 150 * time.Millisecond
	FoodInterval    = 120 * time.Millisecond
	MinFoodInterval = 60 * time.Millisecond
	SpeedDivisor    = 1.2
)

var (
	SnakeStart = Point{X: 200, Y: 200}
	FoodStart  = Point{X: 100, Y: 100}
)

// DefaultGrid returns the default playfield
func DefaultGrid() Grid {
	return Grid{Width: CanvasWidth, Height: CanvasHeight, Cell: CellSize}
}

// Validate checks that the playfield is a whole number of cells in both axes
func (g Grid) Validate() error {
	if g.Cell <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidGrid, g.Cell)
	}
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidGrid, g.Width, g.Height)
	}
	if g.Width%g.Cell != 0 || g.Height%g.Cell != 0 {
		return fmt.Errorf("%w: size %dx%d is not a multiple of cell %d", ErrInvalidGrid, g.Width, g.Height, g.Cell)
	}
	return nil
}

// Contains reports whether p lies inside [0, Width) x [0, Height)
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Aligned reports whether p sits exactly on a cell corner
func (g Grid) Aligned(p Point) bool {
	return p.X%g.Cell == 0 && p.Y%g.Cell == 0
}

func (g Grid) Columns() int {
	return g.Width / g.Cell
}

func (g Grid) Rows() int {
	return g.Height / g.Cell
}

// Direction represents a cardinal direction, or no movement
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Vector converts a Direction into a displacement of one cell
func (d Direction) Vector(cell int) Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -cell}
	case Right:
		return Point{X: cell, Y: 0}
	case Down:
		return Point{X: 0, Y: cell}
	case Left:
		return Point{X: -cell, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the reverse direction. None has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "none"
	}
}
