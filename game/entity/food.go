package entity

import (
	"time"

	"snake-arcade/game/types"
)

// Food is a single cell that bounces horizontally on its own timer
type Food struct {
	Pos         types.Point
	Dir         int
	Accumulator time.Duration
}

func NewFood(pos types.Point) *Food {
	return &Food{
		Pos: pos,
		Dir: 1,
	}
}
