package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-jump/internal/registry"
	"github.com/vovakirdan/tui-jump/internal/storage"
)

const (
	scoreLimit      = 100
	statsPanelWidth = 24
	// below this width the stats panel moves under the table
	minWidthForPanel = 72
	dateLayout       = "Jan 02 15:04"
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = tabStyle.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreSource is the read side of the score store. *storage.Store implements it.
type ScoreSource interface {
	TopScores(mode string, limit int) ([]storage.ScoreEntry, error)
	Stats(mode string) (*storage.ModeStats, error)
}

type boardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k boardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Back, k.Quit}
}

func (k boardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newBoardKeys() boardKeys {
	return boardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "k", "down", "j"), key.WithHelp("↑/↓", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of each registered mode, one mode at a time.
type ScoreboardModel struct {
	store  ScoreSource
	modes  []registry.GameInfo
	active int

	scores []storage.ScoreEntry
	stats  *storage.ModeStats

	table table.Model
	help  help.Model
	keys  boardKeys

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard for a width×height terminal.
// A nil store shows every mode as empty.
func NewScoreboardModel(store ScoreSource, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		store:  store,
		modes:  registry.List(),
		help:   help.New(),
		keys:   newBoardKeys(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.reload()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPanel
}

func (m ScoreboardModel) newTable() table.Model {
	dateW := 14
	if avail := m.width - 34; !m.wide() && avail > dateW {
		dateW = min(avail, 20)
	}
	rows := m.height - 9 // title, tabs, frame, help
	if !m.wide() {
		rows -= 2
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 4},
			{Title: "Score", Width: 8},
			{Title: "Height", Width: 8},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(rows, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Bold(false)
	t.SetStyles(s)
	return t
}

// reload fetches scores and stats of the active mode. Read errors leave the
// board empty.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		mode := m.modes[m.active].ID
		m.scores, _ = m.store.TopScores(mode, scoreLimit)
		m.stats, _ = m.store.Stats(mode)
	}

	rows := make([]table.Row, 0, len(m.scores))
	for i, e := range m.scores {
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			strconv.Itoa(e.Score),
			strconv.Itoa(e.Height),
			e.CreatedAt.Format(dateLayout),
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(delta int) {
	if n := len(m.modes); n > 0 {
		m.active = (m.active + delta + n) % n
		m.reload()
	}
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		rows := m.table.Rows()
		m.table = m.newTable()
		m.table.SetRows(rows)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(centerText(boardTitleStyle.Render("HIGH SCORES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	board := boardFrameStyle.Render(m.tableView())
	if m.wide() {
		panel := boardFrameStyle.Width(statsPanelWidth).Render(m.statsPanel())
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, " ", panel)
	} else if line := m.statsLine(); line != "" {
		board = lipgloss.JoinVertical(lipgloss.Left, board, dimStyle.Render(line))
	}
	b.WriteString(centerText(board, m.width))

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// tabs renders the mode strip, collapsing to "< Title >" when it overflows.
func (m ScoreboardModel) tabs() string {
	if len(m.modes) == 0 {
		return dimStyle.Render("no modes registered")
	}
	parts := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.active {
			parts[i] = activeTabStyle.Render(g.Title)
		} else {
			parts[i] = tabStyle.Render(g.Title)
		}
	}
	line := strings.Join(parts, " ")
	if lipgloss.Width(line) > m.width-4 {
		line = activeTabStyle.Render("< " + m.modes[m.active].Title + " >")
	}
	return line
}

func (m ScoreboardModel) tableView() string {
	if len(m.scores) == 0 {
		return dimStyle.Italic(true).Padding(2, 4).
			Render("No scores recorded yet.\nJump a few platforms to set one!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsPanel() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return dimStyle.Render("No runs yet")
	}
	rows := [][2]string{
		{"Runs", strconv.Itoa(m.stats.RunsCount)},
		{"Best", strconv.Itoa(m.stats.HighScore)},
		{"Average", fmt.Sprintf("%.0f", m.stats.AvgScore)},
		{"Last", m.stats.LastPlayed.Format(dateLayout)},
	}
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%-8s%s", r[0], r[1])
	}
	return b.String()
}

// statsLine is the one-line summary used in narrow layouts, or "" when the
// mode was never played.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.RunsCount == 0 {
		return ""
	}
	return fmt.Sprintf("Runs: %d  |  Best: %d  |  Average: %.0f  |  Last played: %s",
		m.stats.RunsCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format(dateLayout))
}

// IsGoingBack reports whether the user left for the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard runs the scoreboard as its own program and reports whether
// the user wants to go back to the menu.
func RunScoreboard(store ScoreSource, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
