package manager

import (
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// Overlaps reports whether two cells are the same
func (cm *CollisionManager) Overlaps(a, b types.Point) bool {
	return a == b
}

// BodyContains scans every segment for p
func (cm *CollisionManager) BodyContains(body []types.Point, p types.Point) bool {
	for _, part := range body {
		if cm.Overlaps(part, p) {
			return true
		}
	}
	return false
}

// OutOfBounds checks if a position lies outside the grid
func (cm *CollisionManager) OutOfBounds(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food types.Point) bool {
	return cm.Overlaps(pos, food)
}
