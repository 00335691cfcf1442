package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/config"
	"github.com/vovakirdan/pagebreak/internal/games/breakout"
	"github.com/vovakirdan/pagebreak/internal/games/tetris"
	"github.com/vovakirdan/pagebreak/internal/platform/tui"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMode       string
	flagTheme      string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right/A/D  - Move (Breakout also follows the mouse)
  Up/W            - Rotate (Tetris)
  Down/S          - Soft drop (Tetris)
  Enter/Space     - Hard drop (Tetris)
  P               - Pause
  R               - Restart (after game over)
  Esc             - Leave the game, the page is restored
  Q/Ctrl+C        - Quit

Without --mode or --theme a picker asks first.

Difficulty options:
  easy   - Slower ball, gentler level curve
  normal - The stock settings
  hard   - Faster ball, steeper level curve
  fixed  - No speed-up at all

Examples:
  pagebreak play breakout
  pagebreak play breakout --mode survival --difficulty hard
  pagebreak play tetris --theme retro
  pagebreak play tetris --config ./my-tetris.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Breakout mode: classic, survival")
	playCmd.Flags().StringVar(&flagTheme, "theme", "", "Tetris theme")
}

// resolveSelection turns the game argument and flags into a selection.
// ok is false when the player backed out of the picker.
func resolveSelection(gameID string) (sel tui.Selection, ok bool, err error) {
	sel = tui.Selection{GameID: gameID}
	switch {
	case gameID == "breakout" && flagMode != "":
		mode, err := breakout.ParseMode(flagMode)
		if err != nil {
			return sel, false, err
		}
		if mode == breakout.ModeSurvival {
			sel.GameID = "breakout_survival"
		}
		return sel, true, nil
	case gameID == "tetris" && flagTheme != "":
		if _, known := tetris.ThemeByName(flagTheme); !known {
			return sel, false, fmt.Errorf("unknown theme %q (have %v)", flagTheme, tetris.ThemeNames())
		}
		sel.Theme = flagTheme
		return sel, true, nil
	}

	cfg := runtimeConfig()
	picker, hasPicker := tui.PickerFor(gameID, cfg.ScreenW, cfg.ScreenH)
	if !hasPicker {
		return sel, true, nil
	}
	chosen, err := tui.RunPicker(picker, cfg)
	if err != nil || chosen == nil {
		return sel, false, err
	}
	return *chosen, true, nil
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'pagebreak list' to see available games.")
		os.Exit(1)
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sel, ok, err := resolveSelection(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		return
	}

	applyGameFlags(sel.GameID, preset)
	game, err := registry.Create(sel.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	svc, closeAll := openServices(true)
	runErr := tui.Run(game, svc, runtimeConfig(), sel.Theme)
	closeAll()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
