// pagebreak turns a marketing page into a playground: Breakout shatters
// its sections, Tetris falls over it, in the terminal, over SSH or in a
// desktop window.
//
// Usage:
//
//	pagebreak list              - List available games
//	pagebreak play <game>       - Play a game
//	pagebreak menu              - Start menu to pick games interactively
//	pagebreak site              - Browse the page; games appear when idle
//	pagebreak serve             - Start SSH server for remote play
//	pagebreak scores [game]     - Show high scores
//	pagebreak desktop <game>    - Play in a desktop window
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.pagebreak/scores.db)
//	--sound              - Play sound effects
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/pagebreak/internal/games/breakout"
	_ "github.com/vovakirdan/pagebreak/internal/games/tetris"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagSound    bool
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pagebreak",
	Short: "pagebreak - break the page you are reading",
	Long: `pagebreak renders a marketing page in your terminal and lets you
play on it: Breakout shatters its cards and headings, Tetris drops
over it. Leave a game and the page is back as it was.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  site     - Browse the page, games appear when you idle
  serve    - Start SSH server for remote play
  scores   - View high scores
  desktop  - Play in a desktop window

Examples:
  pagebreak list
  pagebreak play breakout --mode survival
  pagebreak play tetris --theme neon
  pagebreak site --sound
  pagebreak serve --ssh :2222
  pagebreak scores tetris`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath(), "Path to scores database")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(siteCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(desktopCmd)
}
