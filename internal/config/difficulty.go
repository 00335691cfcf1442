package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
// Fixed disables Survival acceleration.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 5
		cfg.Survival.ScrollSpeed *= 0.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 90
		cfg.Ball.Speed = 8
		cfg.Survival.ScrollSpeed *= 1.5
		cfg.Survival.MaxScrollSpeed *= 1.5
	case DifficultyFixed:
		cfg.Survival.ScrollStep = 0
	}
}

// ApplyTetrisPreset modifies the config based on a difficulty preset.
// Fixed keeps gravity at the base interval for every level.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseDropMs = 1200
	case DifficultyHard:
		cfg.Timing.BaseDropMs = 600
	case DifficultyFixed:
		cfg.Timing.DropStepMs = 0
	}
}
