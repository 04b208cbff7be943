package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jump/internal/platform/tui"
	"github.com/vovakirdan/tui-jump/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press Esc after a game over to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  jump menu
  jump menu --fps 30
  jump menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	for {
		result, err := tui.RunMenu(recorder(store), cfg)
		if err != nil {
			return err
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			back, err := tui.RunScoreboard(scoreSource(store), cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				return err
			}
			if !back {
				return nil
			}

		default:
			game, err := registry.Create(result.GameID)
			if err != nil {
				return fmt.Errorf("cannot create mode: %w", err)
			}
			logger.Info("run started", "mode", result.GameID)

			model := tui.NewModel(game, recorder(store), cfg).
				WithLogger(logger).
				WithTheme(theme())
			final, err := tui.RunModel(model)
			if err != nil {
				return fmt.Errorf("error running game: %w", err)
			}
			if final.IsQuitting() {
				return nil
			}
		}
	}
}
