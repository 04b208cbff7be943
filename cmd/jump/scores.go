package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jump/internal/registry"
	"github.com/vovakirdan/tui-jump/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top high scores and progress for the specified mode.

Examples:
  jump scores jump
  jump scores jump_space --limit 25
  jump scores jump_dark --clear`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores and progress for the mode")
}

func runScores(cmd *cobra.Command, args []string) error {
	modeID := args[0]
	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q, run 'jump list' to see available modes", modeID)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		return fmt.Errorf("cannot create mode: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagScoresClear {
		if err := store.ClearScores(modeID); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", game.Title())
		return nil
	}

	scores, err := store.TopScores(modeID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'jump play %s' to set the first high score!\n", modeID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "Rank", "Score", "Height", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-8s  %s\n", "----", "-----", "------", "----")
	for i, e := range scores {
		fmt.Fprintf(out, "  %-4d  %-8d  %-8d  %s\n", i+1, e.Score, e.Height, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Fprintln(out)
	save, err := store.LoadSave(modeID)
	if err != nil {
		return err
	}
	if save != nil {
		fmt.Fprintf(out, "Best: %d  |  Best height: %d  |  Games played: %d\n",
			save.HighScore, save.BestHeight, save.GamesPlayed)
	}
	return nil
}
