package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/gesture.yaml
var defaultGestureYAML []byte

//go:embed defaults/site.yaml
var defaultSiteYAML []byte

//go:embed defaults/page.yaml
var defaultPageYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Ball: BreakoutBall{
			Size:         20,
			Speed:        6,
			LaunchOffset: 100,
		},
		Paddle: BreakoutPaddle{
			Width:  120,
			Height: 12,
			Bottom: 30,
		},
		Gameplay: BreakoutGameplay{
			Lives:       3,
			BrickPoints: 100,
		},
		Targets: BreakoutTargets{
			MinWidth:  30,
			MinHeight: 20,
		},
		Survival: BreakoutSurvival{
			ScrollSpeed:       0.5,
			ScrollStep:        0.05,
			MaxScrollSpeed:    2.0,
			PassLossMinHeight: 40,
		},
	}
}

// DefaultTetrisConfig returns the default Tetris configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{Rows: 20, Cols: 10},
		Timing: TetrisTiming{
			BaseDropMs:    1000,
			DropStepMs:    100,
			MinDropMs:     100,
			LinesPerLevel: 10,
		},
		Scoring: TetrisScoring{
			LineScores:     []int{0, 100, 300, 500, 800},
			SoftDropPoints: 1,
			HardDropPoints: 2,
		},
		Theme: "default",
	}
}

// DefaultGestureConfig returns the default touch thresholds.
func DefaultGestureConfig() GestureConfig {
	return GestureConfig{
		MoveX:      25,
		MoveY:      20,
		TapMaxMs:   150,
		SwipeMinY:  100,
		SwipeMaxMs: 200,
	}
}

// DefaultSiteConfig returns the default site browser configuration.
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		IdleAfterSec: 20,
		ScrollLines:  3,
		CellWidth:    10,
		CellHeight:   20,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "breakout":
		return defaultBreakoutYAML
	case "tetris":
		return defaultTetrisYAML
	case "gesture":
		return defaultGestureYAML
	case "site":
		return defaultSiteYAML
	case "page":
		return defaultPageYAML
	default:
		return nil
	}
}
