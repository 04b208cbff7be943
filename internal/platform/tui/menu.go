package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jump/internal/core"
	"github.com/vovakirdan/tui-jump/internal/registry"
)

// MenuItem is one play mode in the picker, with the best score recorded for it.
type MenuItem struct {
	GameID string
	Title  string
	Best   int
}

type menuOutcome int

const (
	menuOpen menuOutcome = iota
	menuPlay
	menuScores
	menuQuit
)

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuBestStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	menuHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the mode picker shown before a run.
type MenuModel struct {
	items   []MenuItem
	cursor  int
	config  core.RuntimeConfig
	keys    *KeyMapper
	outcome menuOutcome
}

// NewMenuModel lists every registered mode. Best scores come from store,
// which may be nil.
func NewMenuModel(store Recorder, cfg core.RuntimeConfig) MenuModel {
	modes := registry.List()
	items := make([]MenuItem, len(modes))
	for i, g := range modes {
		items[i] = MenuItem{GameID: g.ID, Title: g.Title}
		if store == nil {
			continue
		}
		if save, err := store.LoadSave(g.ID); err == nil && save != nil {
			items[i].Best = save.HighScore
		}
	}
	return MenuModel{items: items, config: cfg, keys: NewKeyMapper()}
}

func (m MenuModel) Init() tea.Cmd { return nil }

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW, m.config.ScreenH = msg.Width, msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// digits jump straight into the n-th mode
	if n, err := strconv.Atoi(msg.String()); err == nil && n >= 1 && n <= len(m.items) {
		m.cursor = n - 1
		return m.finish(menuPlay)
	}

	n := len(m.items)
	switch m.keys.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		return m.finish(menuQuit)
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor - 1 + n) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n > 0 {
			return m.finish(menuPlay)
		}
	case MenuActionScoreboard:
		return m.finish(menuScores)
	}
	return m, nil
}

func (m MenuModel) finish(o menuOutcome) (tea.Model, tea.Cmd) {
	m.outcome = o
	return m, tea.Quit
}

func (m MenuModel) View() string {
	if m.outcome == menuQuit {
		return ""
	}

	rows := make([]string, 0, len(m.items))
	for i, item := range m.items {
		label := fmt.Sprintf("%d  %-18s", i+1, item.Title)
		best := ""
		if item.Best > 0 {
			best = menuBestStyle.Render(fmt.Sprintf("best %d", item.Best))
		}
		if i == m.cursor {
			rows = append(rows, menuActiveStyle.Render("> "+label)+best)
		} else {
			rows = append(rows, "  "+label+best)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		menuTitleStyle.Render("J U M P"),
		"",
		strings.Join(rows, "\n"),
		"",
		menuHintStyle.Render("↑/↓ move · enter/1-9 play · tab scores · q quit"),
	)
	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the chosen mode, or nil if the menu was left another way.
func (m MenuModel) Selected() *MenuItem {
	if m.outcome != menuPlay || len(m.items) == 0 {
		return nil
	}
	item := m.items[m.cursor]
	return &item
}

func (m MenuModel) IsQuitting() bool { return m.outcome == menuQuit }

func (m MenuModel) WantsScoreboard() bool { return m.outcome == menuScores }

// Config returns the runtime config, resized to the last window size seen.
func (m MenuModel) Config() core.RuntimeConfig { return m.config }

// centerText pads text on the left to center it, measuring styled width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult is what the user picked in a standalone menu program.
type MenuResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu as its own program.
func RunMenu(store Recorder, cfg core.RuntimeConfig) (MenuResult, error) {
	final, err := tea.NewProgram(NewMenuModel(store, cfg), tea.WithAltScreen()).Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}
	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	res := MenuResult{Config: m.Config(), WantsScoreboard: m.WantsScoreboard()}
	if sel := m.Selected(); sel != nil {
		res.GameID = sel.GameID
	} else if !res.WantsScoreboard {
		res.Quit = true
	}
	return res, nil
}
