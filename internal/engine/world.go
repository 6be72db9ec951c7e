package engine

import (
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// World is the state shared by the clock, the input reader and the
// control loop. The snake is guarded by mu; the exit flag is lock-free.
type World struct {
	mu    sync.Mutex
	snake *snake.Snake

	exit atomic.Bool
}

// NewWorld wraps s for shared use. The caller must not touch s afterward.
func NewWorld(s *snake.Snake) *World {
	return &World{snake: s}
}

// Exiting reports whether the run has ended.
func (w *World) Exiting() bool {
	return w.exit.Load()
}

// Stop ends the run. It returns true only for the call that flipped the flag.
func (w *World) Stop() bool {
	return w.exit.CompareAndSwap(false, true)
}

// ChangeDirection applies a heading change under the lock.
func (w *World) ChangeDirection(d snake.Direction) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.snake.ChangeDirection(d)
}

// Len returns the snake length.
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snake.Len()
}

// Update runs fn with the lock held. fn may call Advance with the flag.
func (w *World) Update(fn func(s *snake.Snake, exit *atomic.Bool)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w.snake, &w.exit)
}
