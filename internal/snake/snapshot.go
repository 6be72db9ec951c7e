package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// StateType represents the run state at snapshot time.
type StateType string

const (
	StateWaiting  StateType = "waiting" // Not yet moving
	StatePlaying  StateType = "playing"
	StateGameOver StateType = "game_over"
)

// Snapshot captures everything the renderer needs for one frame.
// It shares no memory with the live snake, so it can be read after the
// lock is released.
type Snapshot struct {
	Tick   uint64
	Bounds core.Bounds
	Body   []core.Position // Head first
	Dir    Direction
	Food   Food
	State  StateType
}

// TakeSnapshot copies the snake and food state.
func TakeSnapshot(tick uint64, bounds core.Bounds, s *Snake, food Food, over bool) Snapshot {
	state := StatePlaying
	switch {
	case over:
		state = StateGameOver
	case s.Direction() == DirStopped:
		state = StateWaiting
	}

	return Snapshot{
		Tick:   tick,
		Bounds: bounds,
		Body:   s.Body(),
		Dir:    s.Direction(),
		Food:   food,
		State:  state,
	}
}

// Len returns the snake length at snapshot time.
func (s Snapshot) Len() int {
	return len(s.Body)
}

// Head returns the head position at snapshot time.
func (s Snapshot) Head() core.Position {
	if len(s.Body) == 0 {
		return core.Position{}
	}
	return s.Body[0]
}
