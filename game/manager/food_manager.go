package manager

import (
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// Attempts at a random free cell before falling back to a full scan.
const maxSpawnTries = 64

// Intner is the part of *rand.Rand the spawner needs.
type Intner interface {
	Intn(n int) int
}

type FoodManager struct {
	grid         types.Grid
	rng          Intner
	avoidBody    bool
	collisionMgr *CollisionManager
}

// NewRand returns a source seeded for reproducible sessions.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func NewFoodManager(grid types.Grid, rng Intner, avoidBody bool, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		avoidBody:    avoidBody,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) draw() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

// Respawn picks a new food cell. Unless avoidBody is set the body is ignored
// and food may land under the snake.
func (fm *FoodManager) Respawn(body []types.Point) types.Point {
	if !fm.avoidBody {
		return fm.draw()
	}

	for i := 0; i < maxSpawnTries; i++ {
		food := fm.draw()
		if !fm.collisionMgr.BodyContains(body, food) {
			return food
		}
	}

	free := make([]types.Point, 0, fm.grid.Width*fm.grid.Height)
	for x := 0; x < fm.grid.Width; x++ {
		for y := 0; y < fm.grid.Height; y++ {
			p := types.Point{X: x, Y: y}
			if !fm.collisionMgr.BodyContains(body, p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		// Board is full; nothing better exists.
		return fm.draw()
	}
	return free[fm.rng.Intn(len(free))]
}
