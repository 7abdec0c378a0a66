package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a position lies outside the playfield
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return pos == food
}

// CheckFoodCapture tests the food against both the head and the tail. The tail
// comparison catches food that lands on the tail cell while growth is pending.
func (cm *CollisionManager) CheckFoodCapture(snake *entity.Snake, food types.Point) bool {
	return cm.IsFoodCollision(snake.GetHead(), food) || cm.IsFoodCollision(snake.GetTail(), food)
}

// ValidateSpawnPosition checks if a position is valid for placing food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if cm.IsWallCollision(pos) {
		return false
	}
	return !snake.Contains(pos)
}
