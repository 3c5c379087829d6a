package game

import "gridsnake/game/types"

// Key is a frontend-neutral key code. Frontends translate their own codes.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyQuit:
		return "quit"
	}
	return "none"
}

// DirectionForKey maps an arrow key to its unit vector.
func DirectionForKey(k Key) (types.Point, bool) {
	switch k {
	case KeyUp:
		return types.Up, true
	case KeyDown:
		return types.Down, true
	case KeyLeft:
		return types.Left, true
	case KeyRight:
		return types.Right, true
	}
	return types.Point{}, false
}

// KeyForDirection is the inverse of DirectionForKey.
func KeyForDirection(d types.Point) Key {
	switch d {
	case types.Up:
		return KeyUp
	case types.Down:
		return KeyDown
	case types.Left:
		return KeyLeft
	case types.Right:
		return KeyRight
	}
	return KeyNone
}

// OnKeyPress buffers an arrow key as the pending direction. The reversal
// guard is applied later, when the next tick commits it. Other keys are ignored.
func (g *Game) OnKeyPress(k Key) (types.Point, bool) {
	dir, ok := DirectionForKey(k)
	if !ok || g.state == StateTerminated {
		return g.snake.Pending, false
	}
	g.snake.SetPending(dir)
	return dir, true
}
