package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// MoveResult describes what one Advance did.
type MoveResult struct {
	Head types.Point

	// Turned is false when a pending reversal was rejected.
	Turned        bool
	SelfCollision bool
	WallCollision bool
}

type MovementManager struct {
	grid          types.Grid
	boundary      types.Boundary
	selfCollision bool
	collisionMgr  *CollisionManager
}

func NewMovementManager(cfg types.Config, collisionMgr *CollisionManager) *MovementManager {
	return &MovementManager{
		grid:          cfg.Grid,
		boundary:      cfg.Boundary,
		selfCollision: cfg.SelfCollision,
		collisionMgr:  collisionMgr,
	}
}

func (mm *MovementManager) calculateNewPosition(s *entity.Snake) types.Point {
	head := s.GetHead().Add(s.Direction)
	if mm.boundary == types.BoundaryWrap {
		head = mm.grid.Wrap(head)
	}
	return head
}

// Advance runs one tick of movement on s in place.
func (mm *MovementManager) Advance(s *entity.Snake) MoveResult {
	res := MoveResult{Turned: s.CommitDirection()}

	newHead := mm.calculateNewPosition(s)
	res.Head = newHead

	if mm.boundary == types.BoundarySolid && mm.collisionMgr.OutOfBounds(newHead) {
		res.WallCollision = true
		return res
	}

	// Each segment takes the value its predecessor held before this pass.
	prev := s.Body[0]
	s.Body[0] = newHead
	for i := 1; i < len(s.Body); i++ {
		prev, s.Body[i] = s.Body[i], prev
		if mm.selfCollision && mm.collisionMgr.Overlaps(s.Body[i], newHead) {
			res.SelfCollision = true
		}
	}

	return res
}
