package entity

import (
	"snake-arcade/game/types"
)

// Snake holds the occupied cells head first, the direction applied on the last
// step and how many upcoming steps keep their tail.
type Snake struct {
	Body          []types.Point
	Direction     types.Direction
	PendingGrowth int
}

func NewSnake(startPos types.Point) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: types.None,
	}
}

// Advance inserts newHead at the front. The tail is kept while growth is pending.
func (s *Snake) Advance(newHead types.Point) {
	s.Body = append(s.Body, types.Point{})
	copy(s.Body[1:], s.Body)
	s.Body[0] = newHead

	if s.PendingGrowth > 0 {
		s.PendingGrowth--
		return
	}
	s.RemoveTail()
}

func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Reset shrinks the snake back to a single cell and schedules growth steps.
func (s *Snake) Reset(startPos types.Point, growth int) {
	s.Body = []types.Point{startPos}
	s.Direction = types.None
	if growth < 0 {
		growth = 0
	}
	s.PendingGrowth = growth
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment occupies p
func (s *Snake) Contains(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// Cells returns a copy of the body for readers outside the simulation
func (s *Snake) Cells() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
