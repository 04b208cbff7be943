package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jump/internal/core"
	"github.com/vovakirdan/tui-jump/internal/storage"
)

// scriptedGame ends after a fixed number of steps.
type scriptedGame struct {
	endAfter  int
	steps     int
	resets    int
	inputs    []core.InputFrame
	highScore int
	paused    bool
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) SetHighScore(score int) { g.highScore = score }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.steps = 0
	g.resets++
	g.inputs = nil
	g.paused = false
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if !g.over() && !g.paused {
		g.steps++
	}
	return core.StepResult{State: g.State()}
}

func (g *scriptedGame) over() bool { return g.steps >= g.endAfter }

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.steps, Height: g.steps * 10, GameOver: g.over(), Paused: g.paused}
}

type fakeRecorder struct {
	save    *storage.SaveData
	loadErr error
	runs    []int
	heights []int
}

func (r *fakeRecorder) LoadSave(string) (*storage.SaveData, error) {
	return r.save, r.loadErr
}

func (r *fakeRecorder) RecordRun(_ string, score, height int) (storage.SaveData, error) {
	r.runs = append(r.runs, score)
	r.heights = append(r.heights, height)
	best := score
	if r.save != nil {
		best = max(best, r.save.HighScore)
	}
	r.save = &storage.SaveData{HighScore: best, GamesPlayed: len(r.runs)}
	return *r.save, nil
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1}
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func tick(t *testing.T, m Model, n int) Model {
	t.Helper()
	for range n {
		m = send(t, m, TickMsg{})
	}
	return m
}

func TestModelLoadsBest(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	rec := &fakeRecorder{save: &storage.SaveData{HighScore: 77}}
	NewModel(g, rec, testRuntime())

	assert.Equal(t, 77, g.highScore)
	assert.Equal(t, 1, g.resets)
}

func TestModelLoadErrorIgnored(t *testing.T) {
	g := &scriptedGame{endAfter: 100}
	rec := &fakeRecorder{loadErr: errors.New("disk gone")}
	m := NewModel(g, rec, testRuntime())

	assert.Zero(t, g.highScore)
	assert.False(t, m.State().GameOver)
}

func TestSteerHoldsAfterKeypress(t *testing.T) {
	g := &scriptedGame{endAfter: 1000}
	m := NewModel(g, nil, testRuntime())
	hold := holdTicks(m.config.TickRate)
	if hold != 13 {
		t.Fatalf("got hold %d ticks, expected 13", hold)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, hold+5)

	for i, in := range g.inputs {
		want := i < hold
		if in.Has(core.ActionLeft) != want {
			t.Errorf("tick %d: left held = %v, expected %v", i, in.Has(core.ActionLeft), want)
		}
	}
}

func TestSteerReverseIsImmediate(t *testing.T) {
	g := &scriptedGame{endAfter: 1000}
	m := NewModel(g, nil, testRuntime())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = tick(t, m, 2)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	tick(t, m, 1)

	last := g.inputs[len(g.inputs)-1]
	assert.True(t, last.Has(core.ActionRight))
	assert.False(t, last.Has(core.ActionLeft))
}

func TestRunRecordedOnce(t *testing.T) {
	g := &scriptedGame{endAfter: 5}
	rec := &fakeRecorder{}
	m := NewModel(g, rec, testRuntime())

	m = tick(t, m, 20)

	require.Len(t, rec.runs, 1)
	assert.Equal(t, 5, rec.runs[0])
	assert.Equal(t, 50, rec.heights[0])
	assert.Equal(t, 5, g.highScore)
	assert.True(t, m.State().GameOver)
}

func TestRestartAfterGameOver(t *testing.T) {
	g := &scriptedGame{endAfter: 3}
	rec := &fakeRecorder{}
	m := NewModel(g, rec, testRuntime())

	// restart is ignored while running
	m = send(t, m, runeKey("r"))
	m = tick(t, m, 5)
	require.Equal(t, 1, g.resets)

	m = send(t, m, runeKey("r"))
	m = tick(t, m, 1)
	assert.Equal(t, 2, g.resets)
	assert.False(t, m.State().GameOver)

	tick(t, m, 10)
	assert.Len(t, rec.runs, 2)
}

func TestBackOnlyWhenStopped(t *testing.T) {
	g := &scriptedGame{endAfter: 1000}
	m := NewModel(g, nil, testRuntime())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.BackToMenu())

	m = send(t, m, runeKey("p"))
	m = tick(t, m, 1)
	require.True(t, m.State().Paused)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.BackToMenu())
}

func TestQuitKey(t *testing.T) {
	m := NewModel(&scriptedGame{endAfter: 10}, nil, testRuntime())
	next, cmd := m.Update(runeKey("q"))
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())
	assert.Empty(t, next.(Model).View())
}

func TestViewRendersGame(t *testing.T) {
	m := NewModel(&scriptedGame{endAfter: 10}, nil, testRuntime()).WithTheme(MonoTheme())
	assert.Contains(t, m.View(), "scripted")

	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 5})
	assert.Contains(t, m.View(), "scripted")
}
