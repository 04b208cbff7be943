package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jump/internal/core"
	"github.com/vovakirdan/tui-jump/internal/registry"
	"github.com/vovakirdan/tui-jump/internal/storage"
)

// Recorder persists finished runs. *storage.Store implements it.
type Recorder interface {
	LoadSave(mode string) (*storage.SaveData, error)
	RecordRun(mode string, score, height int) (storage.SaveData, error)
}

// highScorer is implemented by games that show the stored best in their HUD.
type highScorer interface {
	SetHighScore(score int)
}

// Model is the Bubble Tea model for running a single play mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      Recorder
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	logger     *log.Logger
	theme      Theme
	inputFrame core.InputFrame
	gameState  core.GameState
	steer      steerLatch
	quitting   bool
	backToMenu bool
	exitOnBack bool // Set when the model owns the whole program
	scoreSaved bool // Whether the run has been recorded for the current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// store may be nil, in which case nothing is persisted.
func NewModel(game registry.Game, store Recorder, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	cfg = cfg.Normalized()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		logger:     log.Default(),
		theme:      defaultTheme,
		inputFrame: core.NewInputFrame(),
	}
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.loadBest()
	return m
}

// WithLogger returns a copy of the model that logs to l.
func (m Model) WithLogger(l *log.Logger) Model {
	if l != nil {
		m.logger = l
	}
	return m
}

// WithTheme returns a copy of the model that renders with t.
func (m Model) WithTheme(t Theme) Model {
	m.theme = t
	return m
}

// loadBest pushes the stored high score into the game HUD.
func (m *Model) loadBest() {
	hs, ok := m.game.(highScorer)
	if !ok || m.store == nil {
		return
	}
	save, err := m.store.LoadSave(m.game.ID())
	if err != nil {
		m.logger.Warn("could not load progress", "mode", m.game.ID(), "err", err)
		return
	}
	if save != nil {
		hs.SetHighScore(save.HighScore)
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has fixed logical dimensions; only the viewport changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.steer.press(action, holdTicks(m.config.TickRate))
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionPause:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.loadBest()
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.steer.release()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	m.steer.apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordRun()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordRun stores the finished run. Failures are logged and otherwise ignored.
func (m *Model) recordRun() {
	if m.store == nil {
		return
	}
	save, err := m.store.RecordRun(m.game.ID(), m.gameState.Score, m.gameState.Height)
	if err != nil {
		m.logger.Error("could not record run", "mode", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("run recorded", "mode", m.game.ID(), "score", m.gameState.Score, "best", save.HighScore)
	if hs, ok := m.game.(highScorer); ok {
		hs.SetHighScore(save.HighScore)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jump", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return m.theme.Render(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// RunModel runs model as its own Bubble Tea program and returns its final
// state. Going back to the menu ends the program.
func RunModel(model Model) (Model, error) {
	model.exitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}

// Run starts the Bubble Tea program with the given model.
func Run(model Model) error {
	_, err := RunModel(model)
	return err
}
