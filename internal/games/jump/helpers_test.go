package jump

import (
	"testing"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// recordingAudio remembers every sound played.
type recordingAudio struct {
	played []core.Sound
}

func (a *recordingAudio) Play(s core.Sound) {
	a.played = append(a.played, s)
}

// drawCall is one DrawSprite invocation.
type drawCall struct {
	ref  SpriteRef
	x, y float64
}

type recordingRenderer struct {
	calls []drawCall
}

func (r *recordingRenderer) DrawSprite(ref SpriteRef, x, y, w, h float64) {
	r.calls = append(r.calls, drawCall{ref: ref, x: x, y: y})
}

func (r *recordingRenderer) count(id Sprite) int {
	n := 0
	for _, c := range r.calls {
		if c.ref.ID == id {
			n++
		}
	}
	return n
}

// testConfig returns defaults with difficulty progression switched off.
func testConfig() config.JumpConfig {
	cfg := config.DefaultJumpConfig()
	cfg.Difficulty.Enabled = false
	return cfg
}

func testContext(t *testing.T, seed int64) *Context {
	t.Helper()
	return NewContext(testConfig(), Modes[0], core.NewRandom(seed))
}

func modeByID(t *testing.T, id string) Mode {
	t.Helper()
	for _, m := range Modes {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("unknown mode %q", id)
	return Mode{}
}

// stepN runs the world for n ticks with no input and returns the last outcome.
func stepN(w *World, n int) StepOutcome {
	var out StepOutcome
	for range n {
		out = w.Step(core.NewInputFrame())
	}
	return out
}

// quietContext is a test context whose generator places no power-ups or enemies.
func quietContext(t *testing.T, seed int64) *Context {
	t.Helper()
	ctx := testContext(t, seed)
	ctx.Config.PowerUps.Chance = 0
	ctx.Config.Enemies.Chance = 0
	return ctx
}
