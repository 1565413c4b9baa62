package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a run directly, skipping the title menu.

The board is drawn with lanes running down the screen, so the controls
follow what you see:
  Down/S      - Hop forward
  Up/W        - Hop back
  Left/A      - Hop left
  Right/D     - Hop right
  P           - Pause
  R/Enter     - Retry (shortly after a crash)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Traffic starts slow and speeds up as you advance
  normal - Starts at 30% difficulty, speeds up as you advance
  hard   - Starts at 70% difficulty, speeds up as you advance
  fixed  - No progression, stays at the config's initial level

Examples:
  crossy play
  crossy play --difficulty hard
  crossy play --seed 42 --skin elephant
  crossy play --config ./my-crossy.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	a := newApp()

	_, err := a.play(runtimeConfig())
	a.close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
