package entity

import (
	"gridsnake/game/types"
)

type Snake struct {
	Body      []types.Point
	Direction types.Point

	// Pending is the last requested heading. It is committed, subject to the
	// reversal guard, at the start of the next tick.
	Pending types.Point
}

func NewSnake(body []types.Point, dir types.Point) *Snake {
	b := make([]types.Point, len(body))
	copy(b, body)
	return &Snake{
		Body:      b,
		Direction: dir,
		Pending:   dir,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetPending records a requested direction without any check.
func (s *Snake) SetPending(dir types.Point) {
	s.Pending = dir
}

// CommitDirection moves the pending direction into the current one unless it
// would turn the snake back onto its neck. Reports whether it was accepted.
func (s *Snake) CommitDirection() bool {
	accepted := !s.Pending.IsReverse(s.Direction)
	if accepted {
		s.Direction = s.Pending
	}
	s.Pending = s.Direction
	return accepted
}

// Grow appends the off-grid sentinel; the next shift pass gives it a real position.
func (s *Snake) Grow() {
	s.Body = append(s.Body, types.Sentinel)
}

// Segments returns a copy of the body, head first.
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
