//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package term

import (
	"errors"
	"fmt"

	xterm "golang.org/x/term"
)

// withRawMode puts fd in raw mode around fn. Platforms without termios
// get the full raw mode x/term provides.
func withRawMode(fd int, fn func() error) (err error) {
	saved, err := xterm.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("term: make raw: %w", err)
	}

	defer func() {
		if rerr := xterm.Restore(fd, saved); rerr != nil {
			err = errors.Join(err, fmt.Errorf("term: restore: %w", rerr))
		}
	}()

	return fn()
}
