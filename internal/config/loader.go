package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Load loads the game configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Values missing from a file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("config.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil || cfg.Validate() != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Unreadable or invalid files are
// skipped so a broken user file never blocks play.
func tryLoad(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", filename)
}

// Validate checks that values are usable.
func (c Config) Validate() error {
	var errs []error
	if c.Loop.TickMS <= 0 {
		errs = append(errs, fmt.Errorf("loop.tick_ms must be positive, got %d", c.Loop.TickMS))
	}
	if c.Loop.GraceMS < 0 {
		errs = append(errs, fmt.Errorf("loop.grace_ms must not be negative, got %d", c.Loop.GraceMS))
	}
	if c.Food.AvoidSnake && c.Food.MaxAttempts <= 0 {
		errs = append(errs, fmt.Errorf("food.max_attempts must be positive, got %d", c.Food.MaxAttempts))
	}
	for name, g := range map[string]string{
		"glyphs.border": c.Glyphs.Border,
		"glyphs.body":   c.Glyphs.Body,
		"glyphs.food":   c.Glyphs.Food,
	} {
		if g == "" {
			errs = append(errs, fmt.Errorf("%s must not be empty", name))
		}
	}
	if c.SSH.IdleTimeoutMin < 0 {
		errs = append(errs, fmt.Errorf("ssh.idle_timeout_min must not be negative, got %d", c.SSH.IdleTimeoutMin))
	}
	return errors.Join(errs...)
}

// Runtime converts the file configuration to engine settings.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		TickPeriod:  time.Duration(c.Loop.TickMS) * time.Millisecond,
		GracePeriod: time.Duration(c.Loop.GraceMS) * time.Millisecond,
		Seed:        seed,
		AvoidSnake:  c.Food.AvoidSnake,
		MaxAttempts: c.Food.MaxAttempts,
		Glyphs: core.Glyphs{
			Border: firstRune(c.Glyphs.Border, '#'),
			Body:   firstRune(c.Glyphs.Body, 'O'),
			Food:   firstRune(c.Glyphs.Food, '%'),
		},
	}
}

// IdleTimeout returns the SSH idle timeout.
func (c SSHConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMin) * time.Minute
}

func firstRune(s string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}
