package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-jump/internal/core"
	"github.com/vovakirdan/tui-jump/internal/platform/tui"
	"github.com/vovakirdan/tui-jump/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: jump).

Controls:
  Left/Right, A/D, H/L - Steer
  P/Space              - Pause
  R                    - Restart (after game over)
  Ctrl+S               - Save a text screenshot to ~/.jump/screenshots
  Q/Ctrl+C             - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  jump play
  jump play jump_underwater --difficulty easy
  jump play jump_dark --seed 42
  jump play --config ./my-jump.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// runtimeConfig sizes the session to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	modeID := "jump"
	if len(args) == 1 {
		modeID = args[0]
	}

	if !registry.Exists(modeID) {
		return fmt.Errorf("unknown mode %q, run 'jump list' to see available modes", modeID)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		return fmt.Errorf("cannot create mode: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	logger.Info("run started", "mode", modeID, "seed", flagSeed)
	model := tui.NewModel(game, recorder(store), runtimeConfig()).
		WithLogger(logger).
		WithTheme(theme())
	if err := tui.Run(model); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
