// jump is an endless vertical platformer for the terminal.
//
// Usage:
//
//	jump list              - List play modes
//	jump play [mode]       - Play a mode (default: jump)
//	jump menu              - Pick modes interactively
//	jump serve             - Start SSH server for remote play
//	jump scores <mode>     - Show high scores for a mode
//	jump config            - Print the resolved configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.jump/scores.db)
//	--config <path>       - Load a custom jump.yaml
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/games/jump"
	"github.com/vovakirdan/tui-jump/internal/platform/audio"
	"github.com/vovakirdan/tui-jump/internal/platform/tui"
	"github.com/vovakirdan/tui-jump/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagSound      bool
	flagLogFile    string
	flagDebug      bool
	flagNoColor    bool
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
	speaker *audio.Speaker
)

func main() {
	err := rootCmd.Execute()
	cleanup()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jump",
	Short: "Jump - an endless platformer in your terminal",
	Long: `Jump is a terminal platformer: bounce from platform to platform,
climb as high as you can and don't fall off the bottom of the screen.

Available commands:
  list     - Show all play modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the resolved configuration

Examples:
  jump play
  jump play jump_space --difficulty hard
  jump menu --sound
  jump serve --ssh :2222
  jump scores jump_dark`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.jump/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom jump config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagSound, "sound", false, "Play sound effects")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&flagDebug, "debug", false, "Log at debug level")
	pf.BoolVar(&flagNoColor, "no-color", false, "Render without colors")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup wires logging, config and audio into the jump package before any
// session is created.
func setup(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "jump",
		})
	}
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	jump.SetLogger(logger)
	jump.SetConfigPath(flagConfig)
	jump.SetDifficultyPreset(flagDifficulty)

	// The server never plays sound; sessions are remote.
	if flagSound && cmd.Name() != serveCmd.Name() {
		s := audio.NewSpeaker(0.6, logger)
		if err := s.Init(); err != nil {
			logger.Warn("sound disabled", "err", err)
		} else {
			speaker = s
			jump.SetAudio(s)
		}
	}
	return nil
}

func cleanup() {
	if speaker != nil {
		speaker.Close()
	}
	if logFile != nil {
		logFile.Close()
	}
}

// openStore opens the score database. A failure is reported and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "err", err)
		return nil
	}
	return store
}

// recorder keeps a nil store from becoming a non-nil interface.
func recorder(store *storage.Store) tui.Recorder {
	if store == nil {
		return nil
	}
	return store
}

func scoreSource(store *storage.Store) tui.ScoreSource {
	if store == nil {
		return nil
	}
	return store
}

func theme() tui.Theme {
	if flagNoColor {
		return tui.MonoTheme()
	}
	return tui.DefaultTheme()
}
