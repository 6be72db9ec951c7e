package tui

import (
	"fmt"
	"io"
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// ClearHome clears the screen and moves the cursor to the top-left cell.
const ClearHome = "\x1b[2J\x1b[1;1H"

// lineSep ends a row. The carriage return keeps rows aligned while output
// post-processing is off.
const lineSep = "\r\n"

// Frame draws the board into a new screen: border ring first, then food,
// then snake segments, so a segment covers food on the same cell.
func Frame(snap snake.Snapshot, g core.Glyphs) *core.Screen {
	b := snap.Bounds
	s := core.NewScreen(b.W, b.H)
	s.DrawFrame(g.Border)

	if p, ok := snap.Food.Position(); ok {
		col, row := b.Cell(p)
		s.Set(col, row, g.Food)
	}
	for _, seg := range snap.Body {
		col, row := b.Cell(seg)
		s.Set(col, row, g.Body)
	}
	return s
}

// Summary returns the end-of-run text.
func Summary(length int) string {
	return fmt.Sprintf("length of the snake: %d%spress any key to exit...%s", length, lineSep, lineSep)
}

// Renderer writes frames and the summary to a terminal.
// It is safe for concurrent use; each write is one whole screen.
type Renderer struct {
	mu     sync.Mutex
	out    io.Writer
	glyphs core.Glyphs
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer, g core.Glyphs) *Renderer {
	return &Renderer{out: out, glyphs: g}
}

// RenderFrame clears the terminal and draws the snapshot.
func (r *Renderer) RenderFrame(snap snake.Snapshot) error {
	return r.write(ClearHome + Frame(snap, r.glyphs).Join(lineSep))
}

// RenderSummary clears the terminal and prints the final length.
func (r *Renderer) RenderSummary(length int) error {
	return r.write(ClearHome + Summary(length))
}

// Clear blanks the terminal.
func (r *Renderer) Clear() error {
	return r.write(ClearHome)
}

func (r *Renderer) write(s string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// One write per screen so frames never tear.
	if _, err := io.WriteString(r.out, s); err != nil {
		return fmt.Errorf("tui: write: %w", err)
	}
	return nil
}
