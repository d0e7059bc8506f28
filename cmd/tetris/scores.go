package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetris-sim/internal/registry"
	"github.com/vovakirdan/tetris-sim/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and recent runs",
	Long: `Display high scores from the local database.

Without arguments, shows a summary for every mode that has been played.
With a mode ID, shows the top scores and the most recent runs for it.

Examples:
  tetris scores                 # Summary of all modes
  tetris scores tetris          # Top scores for marathon
  tetris scores tetris --clear  # Remove marathon scores`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete stored scores for the mode")
}

func runScores(_ *cobra.Command, args []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if flagScoresClear {
			return fmt.Errorf("--clear needs a mode")
		}
		return showAllScores(store)
	}

	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode: %s (run 'tetris list' to see modes)", gameID)
	}

	if flagScoresClear {
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared scores for %s.\n", gameID)
		return nil
	}

	return showGameScores(store, gameID, flagScoresLimit)
}

func showAllScores(store *storage.Store) error {
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	if len(stats) == 0 {
		fmt.Println("No scores recorded yet. Play a game first!")
		return nil
	}

	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Println("Scores summary:")
	fmt.Println()
	fmt.Printf("  %-16s  %6s  %8s  %9s  %6s  %5s  %s\n", "Mode", "Games", "Best", "Average", "Lines", "Level", "Last played")
	fmt.Printf("  %-16s  %6s  %8s  %9s  %6s  %5s  %s\n", "----", "-----", "----", "-------", "-----", "-----", "-----------")
	for _, id := range ids {
		s := stats[id]
		fmt.Printf("  %-16s  %6d  %8d  %9.1f  %6d  %5d  %s\n",
			id, s.GamesCount, s.HighScore, s.AvgScore, s.TotalLines, s.BestLevel,
			s.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func showGameScores(store *storage.Store, gameID string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	title := gameID
	if game, err := registry.Create(gameID); err == nil {
		title = game.Title()
	}

	fmt.Printf("Top scores for %s:\n\n", title)
	if len(scores) == 0 {
		fmt.Println("  No scores recorded yet.")
		return nil
	}

	fmt.Printf("  %4s  %8s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %4s  %8s  %s\n", "----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %4d  %8d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	runs, err := store.RecentRuns(gameID, limit)
	if err != nil {
		return err
	}
	if len(runs) > 0 {
		fmt.Printf("\nRecent runs:\n\n")
		fmt.Printf("  %8s  %5s  %5s  %6s  %8s  %s\n", "Score", "Lines", "Level", "Pieces", "Time", "Seed")
		fmt.Printf("  %8s  %5s  %5s  %6s  %8s  %s\n", "-----", "-----", "-----", "------", "----", "----")
		for _, r := range runs {
			fmt.Printf("  %8d  %5d  %5d  %6d  %8s  %d\n",
				r.Score, r.Lines, r.Level, r.Pieces, r.Duration.Round(time.Second), r.Seed)
		}
	}

	best, err := store.HighScore(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("\nPersonal best: %d\n", best)
	return nil
}
