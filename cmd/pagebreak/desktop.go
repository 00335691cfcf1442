package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/games/tetris"
	"github.com/vovakirdan/pagebreak/internal/platform/desktop"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

var (
	flagScale float64
	flagCols  int
	flagRows  int
)

var desktopCmd = &cobra.Command{
	Use:   "desktop <game>",
	Short: "Play a game in a desktop window",
	Long: `Open a window and play the game there. Breakout follows the mouse
or a finger, Tetris understands taps and swipes.

Controls:
  Left/Right/A/D  - Move
  Up/W            - Rotate (Tetris)
  Down/S          - Soft drop (Tetris)
  Enter/Space     - Hard drop (Tetris)
  P               - Pause
  R               - Restart (after game over)
  Esc/Q           - Close the window

Examples:
  pagebreak desktop breakout
  pagebreak desktop breakout --mode survival --scale 1.5
  pagebreak desktop tetris --theme neon`,
	Args: cobra.ExactArgs(1),
	Run:  runDesktop,
}

func init() {
	f := desktopCmd.Flags()
	f.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	f.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	f.StringVar(&flagMode, "mode", "", "Breakout mode: classic, survival")
	f.StringVar(&flagTheme, "theme", "", "Tetris theme")
	f.Float64Var(&flagScale, "scale", 1, "Window pixels per logical pixel")
	f.IntVar(&flagCols, "cols", 80, "Grid width in cells")
	f.IntVar(&flagRows, "rows", 24, "Grid height in cells")
}

// desktopGameID resolves --mode and --theme without a picker.
func desktopGameID(gameID string) (string, error) {
	switch gameID {
	case "breakout":
		mode, err := breakout.ParseMode(flagMode)
		if err != nil {
			return "", err
		}
		if mode == breakout.ModeSurvival {
			return "breakout_survival", nil
		}
	case "tetris":
		if flagTheme == "" {
			break
		}
		if _, known := tetris.ThemeByName(flagTheme); !known {
			return "", fmt.Errorf("unknown theme %q (have %v)", flagTheme, tetris.ThemeNames())
		}
		tetris.SetThemeName(flagTheme)
	}
	return gameID, nil
}

func runDesktop(_ *cobra.Command, args []string) {
	if !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'pagebreak list' to see available games.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gameID, err := desktopGameID(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	applyGameFlags(gameID, preset)
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	svc, closeAll := openServices(false)
	runErr := desktop.Run(game, desktop.Options{
		Cols:     flagCols,
		Rows:     flagRows,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Scale:    flagScale,
		Store:    svc.Store,
		Sound:    svc.Sound,
		Logger:   svc.Logger,
	})
	closeAll()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
