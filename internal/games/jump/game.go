package jump

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
	"github.com/vovakirdan/tui-jump/internal/registry"
)

// hudRows is the number of screen rows reserved for the score line.
const hudRows = 1

// Game adapts a World to the registry.Game interface for one mode.
type Game struct {
	mode       Mode
	cfg        config.JumpConfig
	runtime    core.RuntimeConfig
	world      *World
	difficulty *config.DifficultyManager
	highScore  int
	paused     bool
	outcome    StepOutcome
}

var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	audioSink        Audio = nopAudio{}
	logger                 = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetAudio sets the sound sink used by new sessions. nil silences them.
func SetAudio(a Audio) {
	if a == nil {
		a = nopAudio{}
	}
	audioSink = a
}

// SetLogger sets the logger used by new sessions. nil discards output.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// New creates a game for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return g.mode.ID
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return g.mode.Title
}

// SetHighScore sets the best score shown in the HUD.
func (g *Game) SetHighScore(score int) {
	g.highScore = score
}

// World returns the running world.
func (g *Game) World() *World {
	return g.world
}

// Reset starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadJump(configPath)
	if err != nil {
		logger.Warn("falling back to default config", "err", err)
		cfg = config.DefaultJumpConfig()
	}
	if difficultyPreset != "" {
		config.ApplyJumpPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	ctx := NewContext(cfg, g.mode, core.NewRandom(runtime.Seed))
	ctx.Audio = audioSink
	ctx.Logger = logger.With("mode", g.mode.ID)

	g.world = NewWorld(ctx, g.difficulty)
	g.paused = false
	g.outcome = StepOutcome{}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.outcome.Ended {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.outcome = g.world.Step(in)
	if g.outcome.FinalScore > g.highScore && g.outcome.Ended {
		g.highScore = g.outcome.FinalScore
	}
	return core.StepResult{State: g.State()}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	r := NewScreenRenderer(dst, g.cfg.World.Width, g.cfg.World.Height, hudRows)
	g.world.Render(r)

	score := g.world.Score()
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", score), core.ColorBrightWhite)

	best := fmt.Sprintf(" Best: %d ", max(g.highScore, score))
	dst.DrawText(dst.Width()-len(best)-2, 0, best)

	if f := g.world.Player().Equipped; f != nil {
		dst.DrawTextCentered(0, fmt.Sprintf("%s %d", f.Kind, f.Frames))
	} else if g.difficulty.IsEnabled() {
		dst.DrawTextCentered(0, fmt.Sprintf("Lvl %.0f%%", 100*g.difficulty.Level(score, g.world.Ticks())))
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.outcome.Ended {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.outcome.FinalScore))
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	box := core.CenteredRect(dst.Width(), dst.Height(), max(len(title), len(subtitle))+4, 5)

	dst.Fill(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	dst.DrawText(box.X+(box.W-len(title))/2, box.Y+1, title)
	dst.DrawText(box.X+(box.W-len(subtitle))/2, box.Y+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	var score, height int
	if g.world != nil {
		score = g.world.Score()
		height = int(g.world.Height())
	}
	return core.GameState{
		Score:    score,
		Height:   height,
		GameOver: g.outcome.Ended,
		Paused:   g.paused,
	}
}

// Register every mode with the registry
func init() {
	for _, m := range Modes {
		registry.Register(m.ID, func() registry.Game {
			return New(m)
		})
	}
}
