package config

import (
	_ "embed"
)

//go:embed defaults/bricker.yaml
var defaultBrickerYAML []byte

// DefaultBrickerConfig returns the default bricker configuration.
func DefaultBrickerConfig() BrickerConfig {
	return BrickerConfig{
		Field: BrickerField{
			Width:     700,
			Height:    500,
			WallWidth: 10,
		},
		Board: BrickerBoard{
			BricksPerRow: 8,
			Rows:         7,
			Spacing:      5,
			BrickHeight:  15,
		},
		Ball: BrickerBall{
			Speed:       200,
			Size:        50,
			TurboFactor: 1.4,
			TurboHits:   6,
		},
		Paddle: BrickerPaddle{
			Width:        200,
			Height:       20,
			Speed:        300,
			BottomOffset: 30,
			WallMargin:   15,
		},
		Extras: BrickerExtras{
			PuckSpeed:       200,
			PuckScale:       0.75,
			HeartSpeed:      100,
			HeartSize:       30,
			AIPaddleScale:   0.75,
			AIPaddleSpeed:   300,
			AIPaddleMaxHits: 4,
			SlotMaxHits:     4,
		},
		Gameplay: BrickerGameplay{
			Lives:       3,
			MaxLives:    4,
			BrickPoints: 10,
			ServeDelay:  60,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "none",
				MaxAt: 500,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBrickerYAML
}
