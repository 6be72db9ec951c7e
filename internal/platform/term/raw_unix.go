//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package term

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// withRawMode clears ICANON and ECHO on fd, runs fn, then restores the
// saved settings. Signals keep working since ISIG is left alone.
func withRawMode(fd int, fn func() error) (err error) {
	saved, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("term: get attributes: %w", err)
	}

	raw := *saved
	raw.Lflag &^= unix.ICANON | unix.ECHO
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("term: set attributes: %w", err)
	}

	defer func() {
		if rerr := unix.IoctlSetTermios(fd, ioctlWriteTermios, saved); rerr != nil {
			err = errors.Join(err, fmt.Errorf("term: restore attributes: %w", rerr))
		}
	}()

	return fn()
}
