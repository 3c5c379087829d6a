package types

// Point is a grid cell, in cell units rather than pixels.
type Point struct {
	X, Y int
}

// Grid represents the board dimensions
type Grid struct {
	Width  int
	Height int
}

// Unit direction vectors. A direction is a Point restricted to one of these.
var (
	Right = Point{X: 1, Y: 0}
	Left  = Point{X: -1, Y: 0}
	Down  = Point{X: 0, Y: 1}
	Up    = Point{X: 0, Y: -1}
)

// Sentinel is appended at the tail when the snake eats. It lies outside every
// grid and is overwritten by the next shift pass.
var Sentinel = Point{X: -1, Y: -1}

func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

func (p Point) Reverse() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsReverse reports whether o is the exact negation of p.
func (p Point) IsReverse(o Point) bool {
	return p == o.Reverse()
}

// IsDirection reports whether p is one of the four unit vectors.
func (p Point) IsDirection() bool {
	return p == Right || p == Left || p == Down || p == Up
}

// Contains reports whether p lies inside [0, Width) x [0, Height).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back onto the grid, torus style.
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}
	return m
}
