package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/platform/tui"
)

var siteCmd = &cobra.Command{
	Use:   "site",
	Short: "Browse the page",
	Long: `Render the marketing page and scroll through it.

Stop touching the keyboard for a while and a hint appears: press b for
Breakout on the page, s for Survival or t for Tetris. Esc leaves the
game and the page is back as it was.

Controls:
  Up/Down/j/k      - Scroll
  PgUp/PgDn/Space  - Scroll a screen
  Home/End/g/G     - Top or bottom
  b / s / t        - Breakout, Survival, Tetris
  Esc              - Leave the game
  Q/Ctrl+C         - Quit

Examples:
  pagebreak site
  pagebreak site --sound`,
	Run: runSite,
}

func runSite(_ *cobra.Command, _ []string) {
	svc, closeAll := openServices(true)
	err := tui.RunSite(svc, runtimeConfig())
	closeAll()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
