package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchCode(t *testing.T) {
	cfg := Config{}
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("Embedded YAML does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Embedded YAML = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	data := "loop:\n  tick_ms: 80\nglyphs:\n  body: \"@\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Loop.TickMS != 80 {
		t.Errorf("TickMS = %d, expected 80", cfg.Loop.TickMS)
	}
	if cfg.Loop.GraceMS != 2000 {
		t.Errorf("GraceMS = %d, expected default 2000", cfg.Loop.GraceMS)
	}
	if cfg.Glyphs.Body != "@" || cfg.Glyphs.Border != "#" {
		t.Errorf("Glyphs = %+v, expected body '@' and default border", cfg.Glyphs)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "loop: [unterminated"},
		{"zero tick", "loop:\n  tick_ms: 0\n"},
		{"negative grace", "loop:\n  grace_ms: -5\n"},
		{"empty glyph", "glyphs:\n  food: \"\"\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".yaml")
			if err := os.WriteFile(path, []byte(tc.data), 0o600); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load() should fail")
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}
}

func TestLoadWithoutFiles(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, expected defaults", cfg)
	}
}

func TestLoadLocalConfigsDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(filepath.Join("configs", "snake.yaml"), []byte("food:\n  avoid_snake: true\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.Food.AvoidSnake {
		t.Error("Local configs/snake.yaml was not picked up")
	}
}

func TestRuntime(t *testing.T) {
	cfg := Default()
	cfg.Glyphs.Food = "★x"

	rt := cfg.Runtime(42)

	if rt.TickPeriod != 50*time.Millisecond {
		t.Errorf("TickPeriod = %v, expected 50ms", rt.TickPeriod)
	}
	if rt.GracePeriod != 2*time.Second {
		t.Errorf("GracePeriod = %v, expected 2s", rt.GracePeriod)
	}
	if rt.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", rt.Seed)
	}
	if rt.Glyphs.Food != '★' || rt.Glyphs.Border != '#' || rt.Glyphs.Body != 'O' {
		t.Errorf("Glyphs = %+v", rt.Glyphs)
	}
}

func TestIdleTimeout(t *testing.T) {
	if got := Default().SSH.IdleTimeout(); got != 30*time.Minute {
		t.Errorf("IdleTimeout() = %v, expected 30m", got)
	}
}
