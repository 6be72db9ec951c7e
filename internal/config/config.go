// Package config provides YAML-based configuration loading for the snake
// game and its SSH server.
package config

// Config contains all configuration for the game.
type Config struct {
	Loop   LoopConfig   `yaml:"loop"`
	Food   FoodConfig   `yaml:"food"`
	Glyphs GlyphsConfig `yaml:"glyphs"`
	SSH    SSHConfig    `yaml:"ssh"`
}

// LoopConfig defines timing of the game loop.
type LoopConfig struct {
	TickMS  int `yaml:"tick_ms"`  // Fixed delay between ticks
	GraceMS int `yaml:"grace_ms"` // Wait before joining workers at shutdown
}

// FoodConfig defines food placement.
type FoodConfig struct {
	AvoidSnake  bool `yaml:"avoid_snake"`  // Redraw food placed under the snake
	MaxAttempts int  `yaml:"max_attempts"` // Redraw limit
}

// GlyphsConfig defines the characters used to draw the board.
// Only the first rune of each value is used.
type GlyphsConfig struct {
	Border string `yaml:"border"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
}

// SSHConfig defines the SSH server settings used by "snake serve".
type SSHConfig struct {
	Address        string `yaml:"address"`
	HostKey        string `yaml:"host_key"`
	IdleTimeoutMin int    `yaml:"idle_timeout_min"`
}
