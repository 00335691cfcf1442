// Package config provides YAML-based configuration loading and difficulty
// presets for the engines, the gesture classifier, and the host page.
package config

import "time"

// BreakoutConfig contains all configuration for the Breakout engine.
// Distances are logical pixels, velocities are pixels per frame.
type BreakoutConfig struct {
	Ball     BreakoutBall     `yaml:"ball"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
	Targets  BreakoutTargets  `yaml:"targets"`
	Survival BreakoutSurvival `yaml:"survival"`
}

// BreakoutBall defines the ball size and launch parameters.
type BreakoutBall struct {
	Size         float64 `yaml:"size"`
	Speed        float64 `yaml:"speed"`
	LaunchOffset float64 `yaml:"launch_offset"` // distance of the launch point above the viewport bottom
}

// BreakoutPaddle defines paddle geometry.
type BreakoutPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Bottom float64 `yaml:"bottom"` // gap between paddle bottom and viewport bottom
}

// BreakoutGameplay defines scoring and lives.
type BreakoutGameplay struct {
	Lives       int `yaml:"lives"`
	BrickPoints int `yaml:"brick_points"`
}

// BreakoutTargets filters which page elements become bricks in Classic mode.
type BreakoutTargets struct {
	MinWidth  float64 `yaml:"min_width"`
	MinHeight float64 `yaml:"min_height"`
}

// BreakoutSurvival tunes the scrolling variant.
type BreakoutSurvival struct {
	ScrollSpeed       float64 `yaml:"scroll_speed"`
	ScrollStep        float64 `yaml:"scroll_step"`
	MaxScrollSpeed    float64 `yaml:"max_scroll_speed"`
	PassLossMinHeight float64 `yaml:"pass_loss_min_height"`
}

// TetrisConfig contains all configuration for the Tetris engine.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Timing  TetrisTiming  `yaml:"timing"`
	Scoring TetrisScoring `yaml:"scoring"`
	Theme   string        `yaml:"theme"`
}

// TetrisBoard defines the grid size.
type TetrisBoard struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// TetrisTiming defines gravity. Durations are in milliseconds in YAML.
type TetrisTiming struct {
	BaseDropMs    int `yaml:"base_drop_ms"`
	DropStepMs    int `yaml:"drop_step_ms"`
	MinDropMs     int `yaml:"min_drop_ms"`
	LinesPerLevel int `yaml:"lines_per_level"`
}

// BaseDrop returns the level 1 drop interval.
func (t TetrisTiming) BaseDrop() time.Duration {
	return time.Duration(t.BaseDropMs) * time.Millisecond
}

// DropStep returns how much faster gravity gets per level.
func (t TetrisTiming) DropStep() time.Duration {
	return time.Duration(t.DropStepMs) * time.Millisecond
}

// MinDrop returns the fastest allowed drop interval.
func (t TetrisTiming) MinDrop() time.Duration {
	return time.Duration(t.MinDropMs) * time.Millisecond
}

// TetrisScoring defines points per action.
// LineScores is indexed by the number of lines cleared at once.
type TetrisScoring struct {
	LineScores     []int `yaml:"line_scores"`
	SoftDropPoints int   `yaml:"soft_drop_points"`
	HardDropPoints int   `yaml:"hard_drop_points"`
}

// GestureConfig holds touch classification thresholds in logical pixels
// and milliseconds.
type GestureConfig struct {
	MoveX      float64 `yaml:"move_x"`
	MoveY      float64 `yaml:"move_y"`
	TapMaxMs   int     `yaml:"tap_max_ms"`
	SwipeMinY  float64 `yaml:"swipe_min_y"`
	SwipeMaxMs int     `yaml:"swipe_max_ms"`
}

// SiteConfig configures the marketing page browser.
type SiteConfig struct {
	IdleAfterSec int     `yaml:"idle_after_sec"`
	ScrollLines  int     `yaml:"scroll_lines"`
	CellWidth    float64 `yaml:"cell_width"`  // logical pixels per terminal column
	CellHeight   float64 `yaml:"cell_height"` // logical pixels per terminal row
}

// IdleAfter returns how long the visitor must be idle before the game toast shows.
func (s SiteConfig) IdleAfter() time.Duration {
	return time.Duration(s.IdleAfterSec) * time.Second
}

// PageConfig is the content of the host page.
type PageConfig struct {
	Brand    string          `yaml:"brand"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig is one vertical block of the page.
type SectionConfig struct {
	ID       string          `yaml:"id"`
	Title    string          `yaml:"title"`
	Columns  int             `yaml:"columns"`
	Elements []ElementConfig `yaml:"elements"`
}

// ElementConfig is one element of a section. Height is in terminal rows.
type ElementConfig struct {
	Kind   string `yaml:"kind"`
	Text   string `yaml:"text"`
	Detail string `yaml:"detail"`
	Height int    `yaml:"height"`
}
