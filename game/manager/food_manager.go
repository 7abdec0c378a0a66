package manager

import (
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rand.New(rand.NewSource(seed)),
		collisionMgr: collisionMgr,
	}
}

// GenerateFood samples grid-aligned cells until one is free of the snake.
// There is no attempt cap; a snake covering the whole grid never returns.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) types.Point {
	for {
		food := types.Point{
			X: fm.rng.Intn(fm.grid.Columns()) * fm.grid.Cell,
			Y: fm.rng.Intn(fm.grid.Rows()) * fm.grid.Cell,
		}

		if fm.collisionMgr.ValidateSpawnPosition(food, snake) {
			return food
		}
	}
}

// PlaceFood relocates food to a free cell. Direction and timer are kept.
func (fm *FoodManager) PlaceFood(food *entity.Food, snake *entity.Snake) {
	food.Pos = fm.GenerateFood(snake)
}

// MoveFood accumulates elapsed time and steps the food one cell once interval
// is reached. It reports whether the food moved.
func (fm *FoodManager) MoveFood(food *entity.Food, elapsed, interval time.Duration) bool {
	food.Accumulator += elapsed
	if food.Accumulator < interval {
		return false
	}

	food.Pos.X += fm.grid.Cell * food.Dir
	// Evaluated after the move, so the food rests on the edge for one interval.
	if (food.Pos.X <= 0 && food.Dir < 0) || (food.Pos.X >= fm.grid.Width-fm.grid.Cell && food.Dir > 0) {
		food.Dir = -food.Dir
	}
	food.Accumulator = 0
	return true
}
