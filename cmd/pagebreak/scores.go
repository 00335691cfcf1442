package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pagebreak/internal/registry"
	"github.com/vovakirdan/pagebreak/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 scores of a game, or a summary of every game
when no game is given.

Examples:
  pagebreak scores
  pagebreak scores breakout
  pagebreak scores tetris`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	if len(args) == 1 && !registry.Exists(args[0]) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		fmt.Fprintln(os.Stderr, "Run 'pagebreak list' to see available games.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		err = printSummary(store)
	} else {
		err = printTopScores(store, args[0])
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}
}

func printSummary(store *storage.Store) error {
	all, err := store.AllStats()
	if err != nil {
		return err
	}

	fmt.Println("High Scores")
	fmt.Println()
	fmt.Printf("  %-18s  %-6s  %-5s  %-8s  %s\n", "Game", "Played", "Won", "Best", "Last played")
	fmt.Printf("  %-18s  %-6s  %-5s  %-8s  %s\n", "----", "------", "---", "----", "-----------")

	for _, g := range registry.List() {
		st, ok := all[g.ID]
		if !ok {
			fmt.Printf("  %-18s  %-6s\n", g.Title, "-")
			continue
		}
		fmt.Printf("  %-18s  %-6d  %-5d  %-8d  %s\n",
			g.Title, st.GamesCount, st.Wins, st.HighScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printTopScores(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pagebreak play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "Rank", "Score", "Result", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %s\n", "----", "-----", "------", "----")
	for i, r := range scores {
		result := "-"
		if r.Won {
			result = "won"
		}
		fmt.Printf("  %-4d  %-10d  %-6s  %s\n", i+1, r.Score, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Best: %d  Played: %d  Won: %d  Average: %.0f\n", st.HighScore, st.GamesCount, st.Wins, st.AvgScore)
	return nil
}
