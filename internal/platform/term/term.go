// Package term connects the game to the local terminal: one-key raw reads,
// size queries and output.
package term

import (
	"errors"
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrNotTerminal is returned by Open when stdin or stdout is not a tty.
var ErrNotTerminal = errors.New("term: not a terminal")

// Console is the process terminal.
type Console struct {
	in  *os.File
	out *os.File
}

// Open returns the console backed by stdin and stdout.
func Open() (*Console, error) {
	c := &Console{in: os.Stdin, out: os.Stdout}
	if !xterm.IsTerminal(int(c.in.Fd())) || !xterm.IsTerminal(int(c.out.Fd())) {
		return nil, ErrNotTerminal
	}
	return c, nil
}

// ReadKey blocks for one key press and returns up to 3 raw bytes.
// Canonical mode and echo are off only for the duration of the read;
// the previous settings are restored even when the read fails.
func (c *Console) ReadKey() (core.Key, error) {
	var k core.Key
	err := withRawMode(int(c.in.Fd()), func() error {
		n, err := c.in.Read(k[:])
		if n == 0 && err == nil {
			err = io.EOF
		}
		return err
	})
	if errors.Is(err, io.EOF) {
		return k, io.EOF
	}
	if err != nil {
		return k, fmt.Errorf("term: read key: %w", err)
	}
	return k, nil
}

// Size returns the current terminal size.
func (c *Console) Size() (core.Bounds, error) {
	w, h, err := xterm.GetSize(int(c.out.Fd()))
	if err != nil {
		return core.Bounds{}, fmt.Errorf("term: get size: %w", err)
	}
	return core.NewBounds(w, h), nil
}

// Write writes to the terminal output.
func (c *Console) Write(p []byte) (int, error) {
	return c.out.Write(p)
}
