package engine

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/vovakirdan/tui-snake/internal/snake"
)

// runClock drives one tick per period until the run ends: query the board
// size, place food if needed, advance the snake and render. The delay is
// fixed, so time spent rendering adds to the period.
func (e *Engine) runClock() error {
	food := snake.Eaten()
	var tick uint64

	for !e.world.Exiting() {
		bounds, err := e.term.Size()
		if err != nil {
			e.world.Stop()
			return fmt.Errorf("engine: query size: %w", err)
		}
		tick++

		var snap snake.Snapshot
		var collided bool
		e.world.Update(func(s *snake.Snake, exit *atomic.Bool) {
			if food.IsEaten() {
				food = e.food.Generate(bounds, s)
				if p, ok := food.Position(); ok {
					e.logger.Debug("food placed", "x", p.X, "y", p.Y, "tick", tick)
				}
			}

			before := exit.Load()
			s.Advance(&food, bounds, exit)
			over := exit.Load()
			collided = over && !before

			snap = snake.TakeSnapshot(tick, bounds, s, food, over)
		})

		if collided {
			e.logger.Info("game over", "length", snap.Len(), "head", snap.Head(), "tick", tick)
		}

		// The tick that observes the end draws the summary instead of a frame.
		if snap.State == snake.StateGameOver {
			return e.renderer.RenderSummary(snap.Len())
		}
		if err := e.renderer.RenderFrame(snap); err != nil {
			e.world.Stop()
			return err
		}

		time.Sleep(e.cfg.TickPeriod)
	}
	return nil
}
