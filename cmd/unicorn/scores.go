package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/unicorn-run/internal/games/unicorn"
	"github.com/vovakirdan/unicorn-run/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 Unicorn Run scores with overall stats.

Use --clear to delete every recorded score.`,
	Example: `  unicorn scores
  unicorn scores --db ./scores.db
  unicorn scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(unicorn.GameID); err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Println("All scores deleted.")
		return nil
	}

	scores, err := store.TopScores(unicorn.GameID, 10)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Println("High Scores - Unicorn Run")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'unicorn play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(unicorn.GameID)
	if err != nil {
		return fmt.Errorf("retrieving stats: %w", err)
	}

	fmt.Println()
	fmt.Printf("Best: %d   Games: %d   Average: %.0f   Total: %d\n",
		stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
