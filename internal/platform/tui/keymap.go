// Package tui provides the terminal protocol for the snake game: key
// decoding, ANSI frame output and the SSH transport.
package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

const esc = 0x1b

// KeyMapper translates raw key reads to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates one raw read to an action. Letters are
// case-insensitive; arrows are ESC '[' A-D; a lone ESC quits.
// Unknown input maps to ActionNone.
func (km *KeyMapper) MapKey(k core.Key) core.Action {
	if k[0] == esc {
		return km.mapEscape(k)
	}
	if k[1] != 0 || k[2] != 0 {
		return core.ActionNone
	}

	switch k[0] {
	case 'w', 'W':
		return core.ActionUp
	case 's', 'S':
		return core.ActionDown
	case 'a', 'A':
		return core.ActionLeft
	case 'd', 'D':
		return core.ActionRight
	case 'q', 'Q':
		return core.ActionQuit
	}
	return core.ActionNone
}

// mapEscape handles ESC and the arrow key sequences.
func (km *KeyMapper) mapEscape(k core.Key) core.Action {
	if k[1] == 0 && k[2] == 0 {
		return core.ActionQuit
	}
	if k[1] != '[' {
		return core.ActionNone
	}

	switch k[2] {
	case 'A':
		return core.ActionUp
	case 'B':
		return core.ActionDown
	case 'C':
		return core.ActionRight
	case 'D':
		return core.ActionLeft
	}
	return core.ActionNone
}

// KeyBinding describes one row of the controls help.
type KeyBinding struct {
	Keys   string
	Action core.Action
}

// Bindings returns the controls in display order.
func Bindings() []KeyBinding {
	return []KeyBinding{
		{"W / Up", core.ActionUp},
		{"S / Down", core.ActionDown},
		{"A / Left", core.ActionLeft},
		{"D / Right", core.ActionRight},
		{"Q / Esc", core.ActionQuit},
	}
}
