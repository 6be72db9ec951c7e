package core

import "time"

// RuntimeConfig contains configuration passed to the engine at start.
type RuntimeConfig struct {
	TickPeriod  time.Duration // Delay between simulation ticks (fixed-delay)
	GracePeriod time.Duration // Wait after input ends before joining workers
	Seed        int64         // RNG seed for food placement
	AvoidSnake  bool          // Retry food placement until clear of the snake
	MaxAttempts int           // Draw limit for AvoidSnake
	Glyphs      Glyphs
}

// Glyphs are the characters used to draw the board.
type Glyphs struct {
	Border rune
	Body   rune
	Food   rune
}

// DefaultGlyphs returns the classic monochrome glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{Border: '#', Body: 'O', Food: '%'}
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickPeriod:  50 * time.Millisecond,
		GracePeriod: 2 * time.Second,
		Seed:        0, // 0 means use current time in the engine
		AvoidSnake:  false,
		MaxAttempts: 64,
		Glyphs:      DefaultGlyphs(),
	}
}
