package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bricker/internal/games/bricker"
	"github.com/vovakirdan/tui-bricker/internal/platform/tui"
	"github.com/vovakirdan/tui-bricker/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores and recent rounds",
	Long: `Display the top 10 scores and a summary of every recorded round.

With --interactive, browse scores and recent rounds in a full screen table.
With --clear, delete every recorded score and round.

Examples:
  bricker scores
  bricker scores --interactive
  bricker scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full screen table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores and rounds")
	scoresCmd.MarkFlagsMutuallyExclusive("interactive", "clear")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		return clearScores(store)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, bricker.ID, width, height)
	}

	scores, err := store.TopScores(bricker.ID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Bricker")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'bricker' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("retrieving round stats: %w", err)
	}
	if stats.Rounds > 0 {
		fmt.Println()
		fmt.Printf("Rounds: %d  Won: %d  Lost: %d  Win rate: %.0f%%\n",
			stats.Rounds, stats.Wins, stats.Losses, stats.WinRate()*100)
		fmt.Printf("Best: %d  Average: %.0f\n", stats.HighScore, stats.AvgScore)
	}
	return nil
}

// clearScores wipes the leaderboard and the round history.
func clearScores(store *storage.Store) error {
	if err := store.ClearScores(bricker.ID); err != nil {
		return err
	}
	if err := store.ClearRounds(); err != nil {
		return err
	}
	fmt.Println("Scores and rounds cleared.")
	return nil
}
