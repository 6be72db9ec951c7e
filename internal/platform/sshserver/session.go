package sshserver

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/ssh"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// sessionTerminal adapts an SSH channel to engine.Terminal. The board size
// follows the client's PTY window.
type sessionTerminal struct {
	rw io.ReadWriter

	mu     sync.Mutex
	bounds core.Bounds
}

func newSessionTerminal(rw io.ReadWriter, width, height int) *sessionTerminal {
	return &sessionTerminal{
		rw:     rw,
		bounds: core.NewBounds(width, height),
	}
}

// ReadKey reads one chunk of up to 3 bytes. Bytes already received are
// returned before any error; the error surfaces on the next call.
func (t *sessionTerminal) ReadKey() (core.Key, error) {
	var k core.Key
	for {
		n, err := t.rw.Read(k[:])
		if n > 0 {
			return k, nil
		}
		if err != nil {
			return k, err
		}
	}
}

// Size returns the last known window size.
func (t *sessionTerminal) Size() (core.Bounds, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.bounds, nil
}

func (t *sessionTerminal) Write(p []byte) (int, error) {
	return t.rw.Write(p)
}

func (t *sessionTerminal) resize(width, height int) {
	t.mu.Lock()
	t.bounds = core.NewBounds(width, height)
	t.mu.Unlock()
}

// watch applies window-change requests until the channel closes or ctx ends.
func (t *sessionTerminal) watch(ctx context.Context, windows <-chan ssh.Window) {
	for {
		select {
		case <-ctx.Done():
			return
		case w, ok := <-windows:
			if !ok {
				return
			}
			t.resize(w.Width, w.Height)
		}
	}
}
