package ai

import (
	"fmt"
	"math"

	"gridsnake/game"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// State is what the agent sees of the board each tick.
type State struct {
	RelativeFoodDir [2]int  // Sign of food minus head on each axis
	FoodDistance    int     // Manhattan distance to food
	DangerDirs      [4]bool // Danger in each direction (up, right, down, left)
}

type Action int

const (
	Up Action = iota
	Right
	Down
	Left
)

var actionKeys = [...]game.Key{
	Up:    game.KeyUp,
	Right: game.KeyRight,
	Down:  game.KeyDown,
	Left:  game.KeyLeft,
}

var actionDirs = [...]types.Point{
	Up:    types.Up,
	Right: types.Right,
	Down:  types.Down,
	Left:  types.Left,
}

// Key is the frontend-neutral key that requests this action.
func (a Action) Key() game.Key {
	return actionKeys[a]
}

type QTable map[string][4]float64

// QLearning is a tabular agent. Its table is never written to disk.
type QLearning struct {
	QTable       QTable
	LearningRate float64
	Discount     float64
	Epsilon      float64
	TotalReward  float64
	rng          *rand.Rand
}

func NewQLearning(seed uint64) *QLearning {
	return &QLearning{
		QTable:       make(QTable),
		LearningRate: 0.1,
		Discount:     0.9,
		Epsilon:      0.1,
		rng:          rand.New(rand.NewSource(seed)),
	}
}

func sign(x int) int {
	if x > 0 {
		return 1
	} else if x < 0 {
		return -1
	}
	return 0
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Observe builds the agent state from a snapshot.
func Observe(snap game.Snapshot) State {
	head := snap.Body[0]
	s := State{
		RelativeFoodDir: [2]int{sign(snap.Food.X - head.X), sign(snap.Food.Y - head.Y)},
		FoodDistance:    abs(snap.Food.X-head.X) + abs(snap.Food.Y-head.Y),
	}
	for a, d := range actionDirs {
		s.DangerDirs[a] = isDanger(snap, head.Add(d))
	}
	return s
}

// isDanger treats leaving the grid as fatal even on an open board, so the
// agent stays visible.
func isDanger(snap game.Snapshot, p types.Point) bool {
	grid := snap.Config.Grid
	if snap.Config.Boundary == types.BoundaryWrap {
		p = grid.Wrap(p)
	} else if !grid.Contains(p) {
		return true
	}
	// The tail cell is vacated by the same tick, so it is safe.
	for _, part := range snap.Body[:len(snap.Body)-1] {
		if p == part {
			return true
		}
	}
	return false
}

func (q *QLearning) getStateKey(s State) string {
	return fmt.Sprintf("%d,%d|%t,%t,%t,%t",
		s.RelativeFoodDir[0], s.RelativeFoodDir[1],
		s.DangerDirs[0], s.DangerDirs[1], s.DangerDirs[2], s.DangerDirs[3])
}

// GetAction picks an action epsilon-greedily.
func (q *QLearning) GetAction(state State) Action {
	if q.rng.Float64() < q.Epsilon {
		return Action(q.rng.Intn(4))
	}
	return q.getBestAction(state)
}

func (q *QLearning) getBestAction(state State) Action {
	values := q.QTable[q.getStateKey(state)]
	bestAction := Up
	bestValue := math.Inf(-1)
	for a, v := range values {
		if v > bestValue {
			bestValue = v
			bestAction = Action(a)
		}
	}
	return bestAction
}

// Reward scores the transition from state to next.
func Reward(state, next State, res game.TickResult) float64 {
	switch {
	case res.Err != nil:
		return -1.0
	case res.Ate:
		return 1.0
	}
	distanceChange := next.FoodDistance - state.FoodDistance
	if distanceChange < 0 {
		return 0.5
	} else if distanceChange > 0 {
		return -0.3
	}
	return 0
}

// Update applies the Q-learning rule and returns the reward used.
func (q *QLearning) Update(state State, action Action, next State, res game.TickResult) float64 {
	reward := Reward(state, next, res)

	maxNextQ := 0.0
	if res.Err == nil {
		maxNextQ = math.Inf(-1)
		for _, v := range q.QTable[q.getStateKey(next)] {
			if v > maxNextQ {
				maxNextQ = v
			}
		}
	}

	key := q.getStateKey(state)
	values := q.QTable[key]
	current := values[action]
	values[action] = current + q.LearningRate*(reward+q.Discount*maxNextQ-current)
	q.QTable[key] = values

	q.TotalReward += reward
	return reward
}
