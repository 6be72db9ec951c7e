// Package engine runs one game: a fixed-period clock, a blocking input
// reader and the control loop that applies key presses. The three share a
// World; the exit flag inside it is the only cancellation signal.
package engine

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Terminal is what the engine needs from the screen it plays on.
type Terminal interface {
	// ReadKey blocks for one key press of up to 3 bytes.
	// io.EOF means no more input will arrive.
	ReadKey() (core.Key, error)

	// Size returns the current board size.
	Size() (core.Bounds, error)

	io.Writer
}

// Result is the outcome of a finished run.
type Result struct {
	Length int
}

// Engine runs a single game on a terminal.
type Engine struct {
	term     Terminal
	cfg      core.RuntimeConfig
	world    *World
	food     *snake.Generator
	renderer *tui.Renderer
	keymap   *tui.KeyMapper
	logger   *log.Logger
}

// New creates an engine for one run. A nil logger discards output.
func New(t Terminal, cfg core.RuntimeConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var opts []snake.GeneratorOption
	if cfg.AvoidSnake {
		opts = append(opts, snake.WithAvoidSnake(cfg.MaxAttempts))
	}

	return &Engine{
		term:     t,
		cfg:      cfg,
		world:    NewWorld(snake.New()),
		food:     snake.NewGenerator(cfg.Seed, opts...),
		renderer: tui.NewRenderer(t, cfg.Glyphs),
		keymap:   tui.NewKeyMapper(),
		logger:   logger,
	}
}

// Run plays until the player quits, the snake collides or input ends.
//
// The clock and the input reader run on their own goroutines while the
// caller's goroutine consumes keys. When the key channel closes, Run waits
// the grace period, joins both workers, clears the screen and returns the
// first error either worker reported. Cancelling ctx acts like the quit key.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	e.logger.Info("game started", "seed", e.cfg.Seed, "tick", e.cfg.TickPeriod)

	keys := make(chan core.Key, 1)
	var g errgroup.Group
	g.Go(e.runClock)
	g.Go(func() error { return e.readInput(keys) })

	ctrlErr := e.control(ctx, keys)

	time.Sleep(e.cfg.GracePeriod)
	err := g.Wait()
	clearErr := e.renderer.Clear()

	res := Result{Length: e.world.Len()}
	if err != nil {
		e.logger.Error("run failed", "error", err)
		return res, err
	}
	e.logger.Info("game finished", "length", res.Length)
	return res, errors.Join(ctrlErr, clearErr)
}

// World exposes the shared state, mainly for tests.
func (e *Engine) World() *World {
	return e.world
}

// control applies key presses until the input reader closes keys.
// It keeps draining after a write error so the reader never blocks on a
// full channel; the first error is returned.
func (e *Engine) control(ctx context.Context, keys <-chan core.Key) error {
	var firstErr error
	done := ctx.Done()

	for {
		var err error
		select {
		case k, ok := <-keys:
			if !ok {
				return firstErr
			}
			err = e.handleKey(k)
		case <-done:
			done = nil
			err = e.quit("interrupted")
		}
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}
}

// handleKey maps one key read to a direction change or quit.
func (e *Engine) handleKey(k core.Key) error {
	action := e.keymap.MapKey(k)
	switch {
	case action.IsMove():
		dir := snake.DirectionFor(action)
		e.world.ChangeDirection(dir)
		e.logger.Debug("direction", "dir", dir)
	case action == core.ActionQuit:
		return e.quit("quit key")
	}
	return nil
}

// quit ends the run and prints the summary.
func (e *Engine) quit(reason string) error {
	if e.world.Stop() {
		e.logger.Info("quit", "reason", reason)
	}
	return e.renderer.RenderSummary(e.world.Len())
}
