package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBricker loads bricker configuration.
// Search order: customPath -> ~/.bricker/configs/bricker.yaml -> ./configs/bricker.yaml -> embedded default
//
// Files are decoded on top of DefaultBrickerConfig, so a partial file only
// overrides the keys it names.
func LoadBricker(customPath string) (BrickerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BrickerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBricker(data)
		if err != nil {
			return BrickerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bricker.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBricker(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "bricker.yaml")); err == nil {
		if cfg, err := parseBricker(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBricker(defaultBrickerYAML)
	if err != nil {
		return DefaultBrickerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseBricker(data []byte) (BrickerConfig, error) {
	cfg := DefaultBrickerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BrickerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BrickerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bricker", "configs", filename)
}

// ApplyBrickerPreset modifies the config based on a difficulty preset.
func ApplyBrickerPreset(cfg *BrickerConfig, preset DifficultyPreset) {
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 260
		cfg.Ball.Speed = 160
		cfg.Gameplay.ServeDelay = 90
		cfg.Difficulty.Enabled = false
	case DifficultyHard:
		cfg.Paddle.Width = 150
		cfg.Ball.Speed = 240
		cfg.Gameplay.ServeDelay = 40
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.Progression = ProgressionConfig{Type: "score", MaxAt: 400}
		cfg.Difficulty.Scaling.SpeedMultiplier = 0.5
	}
}

// Validate reports every setting that cannot produce a playable round.
func (c BrickerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0, "field: size must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	check(c.Field.WallWidth >= 0, "field: wall_width must not be negative")
	check(c.Board.BricksPerRow > 0, "board: bricks_per_row must be positive, got %d", c.Board.BricksPerRow)
	check(c.Board.Rows > 0, "board: rows must be positive, got %d", c.Board.Rows)
	check(c.Board.BrickHeight > 0, "board: brick_height must be positive")
	check(c.BrickWidth() > 0, "board: %d bricks do not fit in a %v wide field", c.Board.BricksPerRow, c.Field.Width)
	check(c.Ball.Speed > 0 && c.Ball.Size > 0, "ball: speed and size must be positive")
	check(c.Ball.TurboFactor > 1, "ball: turbo_factor must be greater than 1, got %v", c.Ball.TurboFactor)
	check(c.Ball.TurboHits > 0, "ball: turbo_hits must be positive")
	check(c.Paddle.Width > 0 && c.Paddle.Height > 0 && c.Paddle.Speed > 0, "paddle: width, height and speed must be positive")
	check(c.Extras.PuckScale > 0 && c.Extras.AIPaddleScale > 0, "extras: scales must be positive")
	check(c.Extras.AIPaddleMaxHits > 0 && c.Extras.SlotMaxHits > 0, "extras: hit limits must be positive")
	check(c.Gameplay.Lives > 0, "gameplay: lives must be positive, got %d", c.Gameplay.Lives)
	check(c.Gameplay.Lives <= c.Gameplay.MaxLives, "gameplay: lives %d exceed max_lives %d", c.Gameplay.Lives, c.Gameplay.MaxLives)
	check(c.Gameplay.ServeDelay >= 0, "gameplay: serve_delay must not be negative")

	switch c.Difficulty.Progression.Type {
	case "", "none", "score", "time":
	default:
		errs = append(errs, fmt.Errorf("difficulty: unknown progression type %q", c.Difficulty.Progression.Type))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config: invalid bricker config: %w", errors.Join(errs...))
}

// BrickWidth returns the width of one brick once walls and spacing are
// subtracted from the field width.
func (c BrickerConfig) BrickWidth() float64 {
	n := float64(c.Board.BricksPerRow)
	if n <= 0 {
		return 0
	}
	net := c.Field.Width - 2*c.Field.WallWidth - (n+1)*c.Board.Spacing
	return net / n
}
