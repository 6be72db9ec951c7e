package engine

import (
	"errors"
	"fmt"
	"io"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// readInput forwards raw key reads to keys until the run ends.
// The send blocks while the previous key is unconsumed, so bursts are
// serialized and nothing is dropped. keys is closed on return.
func (e *Engine) readInput(keys chan<- core.Key) error {
	defer close(keys)

	for !e.world.Exiting() {
		k, err := e.term.ReadKey()
		if errors.Is(err, io.EOF) {
			e.logger.Info("input closed")
			e.world.Stop()
			return nil
		}
		if err != nil {
			e.world.Stop()
			return fmt.Errorf("engine: read input: %w", err)
		}
		keys <- k
	}
	return nil
}
