// crossy is a lane-crossing arcade game for the terminal: hop forward
// lane by lane, dodge the traffic and beat your best lane.
//
// Usage:
//
//	crossy                   - Start the title menu
//	crossy play              - Start a run directly
//	crossy scores            - Print high scores
//	crossy serve             - Start SSH server for remote play
//	crossy settings          - Show or change saved settings
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.crossy/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--skin <name>         - Character for this run
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossy/internal/config"
	"github.com/vovakirdan/tui-crossy/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSkin       string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossy",
	Short: "Crossy - cross the road in your terminal",
	Long: `Crossy is a terminal lane-crossing game. Hop forward through fields,
forests and traffic; one touch from a car or truck ends the run.

Available commands:
  play      - Start a run directly
  menu      - Title menu (the default)
  scores    - Print high scores
  serve     - Start SSH server for remote play
  settings  - Show or change saved settings

Examples:
  crossy
  crossy play --difficulty hard
  crossy play --skin cow --seed 42
  crossy serve --ssh :2222
  crossy scores --all`,
	PersistentPreRunE: checkFlags,
	Run:               runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagSkin, "skin", "", "Character: chicken, cow, elephant (default: saved setting)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(settingsCmd)
}

// checkFlags rejects flag values every command depends on.
func checkFlags(_ *cobra.Command, _ []string) error {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if _, err := parseLevel(flagLogLevel); err != nil {
		return err
	}
	return nil
}
