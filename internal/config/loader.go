package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDirName is the per-user directory under $HOME holding configs,
// the score database and the log file.
const AppDirName = ".pagebreak"

// localConfigDir is searched after the user directory.
var localConfigDir = "configs"

// AppDir returns ~/.pagebreak, or "" when the home directory is unknown.
func AppDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDirName)
}

func userConfigPath(filename string) string {
	dir := AppDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// load resolves a config named name.
// Search order: customPath -> ~/.pagebreak/configs/<name>.yaml -> ./configs/<name>.yaml -> embedded default.
// Only an explicit customPath produces an error; broken files elsewhere are skipped.
func load[T any](name, customPath string, fallback T) (T, error) {
	if customPath != "" {
		cfg := fallback
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fallback, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return fallback, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := name + ".yaml"
	candidates := []string{filepath.Join(localConfigDir, filename)}
	if p := userConfigPath(filename); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := fallback
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	cfg := fallback
	if err := yaml.Unmarshal(GetDefaultYAML(name), &cfg); err != nil {
		return fallback, nil
	}
	return cfg, nil
}

// LoadBreakout loads Breakout configuration.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg, err := load("breakout", customPath, DefaultBreakoutConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadTetris loads Tetris configuration.
func LoadTetris(customPath string) (TetrisConfig, error) {
	cfg, err := load("tetris", customPath, DefaultTetrisConfig())
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadGesture loads touch gesture thresholds.
func LoadGesture(customPath string) (GestureConfig, error) {
	return load("gesture", customPath, DefaultGestureConfig())
}

// LoadSite loads the site browser configuration.
func LoadSite(customPath string) (SiteConfig, error) {
	return load("site", customPath, DefaultSiteConfig())
}

// LoadPage loads the host page content.
func LoadPage(customPath string) (PageConfig, error) {
	cfg, err := load("page", customPath, PageConfig{})
	if err != nil {
		return cfg, err
	}
	if len(cfg.Sections) == 0 {
		return cfg, errors.New("config: page has no sections")
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Ball.Size <= 0 || c.Ball.Speed <= 0:
		return fmt.Errorf("config: breakout ball size and speed must be positive")
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("config: breakout paddle must have a positive size")
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("config: breakout lives must be positive, got %d", c.Gameplay.Lives)
	case c.Survival.MaxScrollSpeed < c.Survival.ScrollSpeed:
		return fmt.Errorf("config: breakout max_scroll_speed %.2f below scroll_speed %.2f",
			c.Survival.MaxScrollSpeed, c.Survival.ScrollSpeed)
	}
	return nil
}

// Validate rejects configurations the engine cannot run with.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Rows < 4 || c.Board.Cols < 4:
		return fmt.Errorf("config: tetris board %dx%d too small", c.Board.Rows, c.Board.Cols)
	case len(c.Scoring.LineScores) < 5:
		return fmt.Errorf("config: tetris line_scores needs 5 entries, got %d", len(c.Scoring.LineScores))
	case c.Timing.LinesPerLevel <= 0:
		return fmt.Errorf("config: tetris lines_per_level must be positive")
	case c.Timing.MinDropMs <= 0:
		return fmt.Errorf("config: tetris min_drop_ms must be positive")
	}
	return nil
}
