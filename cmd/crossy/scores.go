package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/games/crossy"
	"github.com/vovakirdan/tui-crossy/internal/storage"
)

var (
	flagScoresAll   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Print high scores",
	Long: `Print the best runs of one mode. The mode follows --difficulty:
"classic" without a preset, otherwise the preset's name.

Examples:
  crossy scores
  crossy scores --difficulty hard
  crossy scores --all
  crossy scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresAll, "all", false, "Summarise every mode instead of listing one")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to list")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the scores of the selected mode")
}

func runScores(_ *cobra.Command, _ []string) {
	mode := crossy.Mode(config.ParsePreset(flagDifficulty))

	withStore(func(store *storage.Store) error {
		switch {
		case flagScoresClear:
			if err := store.ClearScores(mode); err != nil {
				return err
			}
			fmt.Printf("Cleared %s scores.\n", mode)
			return nil
		case flagScoresAll:
			return printStats(store)
		default:
			return printTop(store, mode)
		}
	})
}

func printTop(store *storage.Store, mode string) error {
	scores, err := store.TopScores(mode, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s\n", mode)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'crossy play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "Rank", "Lane", "Character", "Date")
	fmt.Printf("  %-4s  %-6s  %-10s  %s\n", "----", "----", "---------", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-6d  %-10s  %s\n", i+1, entry.Lane, entry.Skin, entry.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func printStats(store *storage.Store) error {
	modes, err := store.Modes()
	if err != nil {
		return err
	}
	if len(modes) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	fmt.Printf("  %-8s  %-5s  %-5s  %-7s  %s\n", "Mode", "Runs", "Best", "Average", "Last played")
	for _, mode := range modes {
		st, err := store.GetGameStats(mode)
		if err != nil {
			return err
		}
		fmt.Printf("  %-8s  %-5d  %-5d  %-7.1f  %s\n",
			mode, st.Runs, st.BestLane, st.AvgLane, st.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
