package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/platform/tui"
	"github.com/vovakirdan/pagebreak/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start pagebreak with a game picker menu",
	Long: `Start pagebreak in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  pagebreak menu
  pagebreak menu --fps 30
  pagebreak menu --db ./scores.db --sound`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	svc, closeAll := openServices(true)
	defer closeAll()

	cfg := runtimeConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		switch {
		case menuResult.Quit || menuResult.GameID == "" && !menuResult.WantsScoreboard:
			return

		case menuResult.WantsScoreboard:
			goBack, err := tui.RunScoreboard(svc.Store, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			if !goBack {
				return
			}
			continue

		case menuResult.GameID == tui.SiteItemID:
			if err := tui.RunSite(svc, cfg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			continue
		}

		sel := tui.Selection{GameID: menuResult.GameID}
		if picker, ok := tui.PickerFor(sel.GameID, cfg.ScreenW, cfg.ScreenH); ok {
			chosen, err := tui.RunPicker(picker, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			if chosen == nil {
				continue
			}
			sel = *chosen
		}

		game, err := registry.Create(sel.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if err := tui.Run(game, svc, cfg, sel.Theme); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
