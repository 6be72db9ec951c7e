package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Loop: LoopConfig{
			TickMS:  50,
			GraceMS: 2000,
		},
		Food: FoodConfig{
			AvoidSnake:  false,
			MaxAttempts: 64,
		},
		Glyphs: GlyphsConfig{
			Border: "#",
			Body:   "O",
			Food:   "%",
		},
		SSH: SSHConfig{
			Address:        ":23234",
			HostKey:        "",
			IdleTimeoutMin: 30,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
