// Package snake implements the snake state machine and food placement.
// Nothing here is safe for concurrent use; the engine guards a Snake with
// its own lock.
package snake

import (
	"slices"
	"sync/atomic"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirStopped Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirStopped:
		return "stopped"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction. Stopped has no opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirStopped
	}
}

// delta returns the unit step for the direction.
func (d Direction) delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// DirectionFor maps a movement action to a direction.
// Non-movement actions map to DirStopped.
func DirectionFor(a core.Action) Direction {
	switch a {
	case core.ActionUp:
		return DirUp
	case core.ActionDown:
		return DirDown
	case core.ActionLeft:
		return DirLeft
	case core.ActionRight:
		return DirRight
	default:
		return DirStopped
	}
}

// Snake owns the body segments and heading.
type Snake struct {
	body []core.Position // Head at index 0
	dir  Direction
}

// New creates the starting snake: two segments near the top-left interior,
// not moving.
func New() *Snake {
	return &Snake{
		body: []core.Position{core.Pos(2, 2), core.Pos(2, 3)},
		dir:  DirStopped,
	}
}

// FromBody creates a snake with the given segments (head first) and heading.
// It panics on an empty body.
func FromBody(dir Direction, body ...core.Position) *Snake {
	if len(body) == 0 {
		panic("snake: empty body")
	}
	return &Snake{body: slices.Clone(body), dir: dir}
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Head returns the front segment.
func (s *Snake) Head() core.Position {
	return s.body[0]
}

// Direction returns the current heading.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []core.Position {
	return slices.Clone(s.body)
}

// Occupies reports whether any segment is at p.
func (s *Snake) Occupies(p core.Position) bool {
	return slices.Contains(s.body, p)
}

// Clone returns an independent copy.
func (s *Snake) Clone() *Snake {
	return &Snake{body: slices.Clone(s.body), dir: s.dir}
}

// ChangeDirection sets the heading unless dir reverses the current one.
// Stopped is never accepted as a request.
func (s *Snake) ChangeDirection(dir Direction) {
	if dir == DirStopped || dir == s.dir.Opposite() {
		return
	}
	s.dir = dir
}

// Advance moves the snake one cell.
//
// A candidate head on the border (coordinate 0 or 1, or >= the bound) or on
// any segment ends the run: exit is set and the snake is left untouched.
// Otherwise the snake grows when the candidate is the food cell (food
// becomes Eaten) and shifts forward when it is not. Once exit is set,
// Advance does nothing.
func (s *Snake) Advance(food *Food, bounds core.Bounds, exit *atomic.Bool) {
	if s.dir == DirStopped || exit.Load() {
		return
	}

	next := s.body[0].Step(s.dir.delta())
	if !bounds.Playable(next) || s.Occupies(next) {
		exit.Store(true)
		return
	}

	if food.At(next) {
		*food = Eaten()
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	s.body = slices.Insert(s.body, 0, next)
}
