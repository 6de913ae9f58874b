package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseBricker(DefaultYAML())
	if err != nil {
		t.Fatalf("parseBricker(embedded) error: %v", err)
	}
	if cfg != DefaultBrickerConfig() {
		t.Errorf("embedded YAML = %+v, expected %+v", cfg, DefaultBrickerConfig())
	}
}

func TestLoadBrickerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bricker.yaml")
	data := "board:\n  bricks_per_row: 5\n  rows: 2\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBricker(path)
	if err != nil {
		t.Fatalf("LoadBricker() error: %v", err)
	}
	if cfg.Board.BricksPerRow != 5 || cfg.Board.Rows != 2 {
		t.Errorf("board = %dx%d, expected 5x2", cfg.Board.BricksPerRow, cfg.Board.Rows)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Field.Width != 700 || cfg.Ball.Speed != 200 {
		t.Errorf("defaults not preserved: field width %v, ball speed %v", cfg.Field.Width, cfg.Ball.Speed)
	}
}

func TestLoadBrickerErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"invalid yaml", "board: [unclosed", "failed to parse"},
		{"invalid rows", "board:\n  rows: 0\n", "rows must be positive"},
		{"lives above max", "gameplay:\n  lives: 9\n", "exceed max_lives"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatal(err)
			}
			_, err := LoadBricker(path)
			if err == nil {
				t.Fatal("LoadBricker() expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error = %q, expected it to contain %q", err, tc.want)
			}
		})
	}

	if _, err := LoadBricker(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadBricker() with a missing custom path should fail")
	}
}

func TestLoadBrickerFallback(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBricker("")
	if err != nil {
		t.Fatalf("LoadBricker(\"\") error: %v", err)
	}
	if cfg != DefaultBrickerConfig() {
		t.Errorf("fallback config = %+v, expected defaults", cfg)
	}
}

func TestApplyBrickerPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		ballSpeed  float64
		progressed bool
	}{
		{DifficultyEasy, 160, false},
		{DifficultyNormal, 200, false},
		{DifficultyHard, 240, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBrickerConfig()
			ApplyBrickerPreset(&cfg, tc.preset)
			if cfg.Ball.Speed != tc.ballSpeed {
				t.Errorf("Ball.Speed = %v, expected %v", cfg.Ball.Speed, tc.ballSpeed)
			}
			if got := NewDifficultyManager(cfg.Difficulty).IsEnabled(); got != tc.progressed {
				t.Errorf("IsEnabled() = %v, expected %v", got, tc.progressed)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset config invalid: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(s); err != nil {
			t.Errorf("ParsePreset(%q) error: %v", s, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(\"nightmare\") expected error")
	}
}

func TestBrickWidth(t *testing.T) {
	cfg := DefaultBrickerConfig()
	// (700 - 2*10 - 9*5) / 8
	if got := cfg.BrickWidth(); got != 79.375 {
		t.Errorf("BrickWidth() = %v, expected 79.375", got)
	}

	cfg.Board.BricksPerRow = 200
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should reject bricks that do not fit")
	}
}

func TestDifficultyManagerSpeed(t *testing.T) {
	d := NewDifficultyManager(DefaultBrickerConfig().Difficulty)
	if got := d.Speed(200, 1000, 1000); got != 200 {
		t.Errorf("Speed() with progression off = %v, expected 200", got)
	}

	d = NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})
	tests := []struct {
		score    int
		expected float64
	}{
		{0, 200},
		{50, 250},
		{100, 300},
		{500, 300}, // clamped at max level
	}
	for _, tc := range tests {
		if got := d.Speed(200, tc.score, 0); got != tc.expected {
			t.Errorf("Speed(200, %d) = %v, expected %v", tc.score, got, tc.expected)
		}
	}
}
