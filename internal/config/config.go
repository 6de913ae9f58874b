// Package config provides YAML-based game configuration loading and
// difficulty management for bricker.
package config

import "fmt"

// BrickerConfig contains all configuration for a bricker round.
// Distances are in field units, speeds in field units per second.
type BrickerConfig struct {
	Field      BrickerField     `yaml:"field"`
	Board      BrickerBoard     `yaml:"board"`
	Ball       BrickerBall      `yaml:"ball"`
	Paddle     BrickerPaddle    `yaml:"paddle"`
	Extras     BrickerExtras    `yaml:"extras"`
	Gameplay   BrickerGameplay  `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BrickerField defines the playing field and its walls.
type BrickerField struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	WallWidth float64 `yaml:"wall_width"`
}

// BrickerBoard defines the brick grid.
type BrickerBoard struct {
	BricksPerRow int     `yaml:"bricks_per_row"`
	Rows         int     `yaml:"rows"`
	Spacing      float64 `yaml:"spacing"`
	BrickHeight  float64 `yaml:"brick_height"`
}

// BrickerBall defines the primary ball and its turbo mode.
type BrickerBall struct {
	Speed       float64 `yaml:"speed"`
	Size        float64 `yaml:"size"`
	TurboFactor float64 `yaml:"turbo_factor"`
	TurboHits   int     `yaml:"turbo_hits"` // turbo ends after more than this many hits
}

// BrickerPaddle defines the player paddle.
type BrickerPaddle struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	BottomOffset float64 `yaml:"bottom_offset"` // paddle center distance from the field bottom
	WallMargin   float64 `yaml:"wall_margin"`
}

// BrickerExtras defines the entities spawned by special bricks.
type BrickerExtras struct {
	PuckSpeed       float64 `yaml:"puck_speed"`
	PuckScale       float64 `yaml:"puck_scale"`
	HeartSpeed      float64 `yaml:"heart_speed"`
	HeartSize       float64 `yaml:"heart_size"`
	AIPaddleScale   float64 `yaml:"ai_paddle_scale"`
	AIPaddleSpeed   float64 `yaml:"ai_paddle_speed"`
	AIPaddleMaxHits int     `yaml:"ai_paddle_max_hits"` // self-removal after more than this many hits
	SlotMaxHits     int     `yaml:"slot_max_hits"`      // removal once extra-paddle bricks reach this many hits
}

// BrickerGameplay defines scoring and lives.
type BrickerGameplay struct {
	Lives       int `yaml:"lives"`
	MaxLives    int `yaml:"max_lives"`
	BrickPoints int `yaml:"brick_points"`
	ServeDelay  int `yaml:"serve_delay"` // ticks
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to serve speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.0
	case DifficultyHard:
		return 0.3
	default:
		return 0.0
	}
}
