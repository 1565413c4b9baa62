package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the title menu",
	Long: `Start the game at its title menu.

Pick Play to start a run, browse the high scores, or change the
character and the audio settings; changes are saved for next time.
After a run, Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change a setting
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  crossy menu
  crossy menu --fps 30
  crossy menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	a := newApp()
	defer a.close()

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(a.store, a.settings, a.best(), cfg, a.logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = result.Config
		a.settings = result.Settings
		a.applyAudio()

		switch result.Choice {
		case tui.MenuPlay:
			backToMenu, err := a.play(cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if !backToMenu {
				return
			}

		case tui.MenuScores:
			goBack, err := tui.RunScoreboard(a.store, a.mode(), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if !goBack {
				return
			}

		default:
			return
		}
	}
}
