// Package jump implements a vertically scrolling platform jumper.
//
// The world is simulated on a virtual screen measured in pixels with y
// growing downward, so "up" is negative y and jump boosts are negative.
// Blocks of platforms are generated ahead of the camera so that every
// platform is reachable from the one placed before it.
package jump

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// Audio plays sound effects. Calls are fire-and-forget.
type Audio interface {
	Play(s core.Sound)
}

type nopAudio struct{}

func (nopAudio) Play(core.Sound) {}

// Context carries the collaborators shared by the generator and the world.
type Context struct {
	Config config.JumpConfig
	Mode   Mode
	Random core.Random
	Audio  Audio
	Logger *log.Logger
}

// NewContext builds a context with silent audio and a discarding logger.
func NewContext(cfg config.JumpConfig, mode Mode, rng core.Random) *Context {
	return &Context{
		Config: cfg,
		Mode:   mode,
		Random: rng,
		Audio:  nopAudio{},
		Logger: log.New(io.Discard),
	}
}

// mustValidate panics when a required collaborator is missing.
func (c *Context) mustValidate() {
	if c == nil {
		panic("jump: nil context")
	}
	if c.Random == nil {
		panic("jump: context has no random source")
	}
	if c.Audio == nil {
		c.Audio = nopAudio{}
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
}

// modeScale returns the physics multipliers for the context's movement.
func (c *Context) modeScale() config.ModeConfig {
	switch c.Mode.Movement {
	case MovementSpace:
		return c.Config.Modes.Space
	case MovementUnderwater:
		return c.Config.Modes.Underwater
	default:
		return c.Config.Modes.Regular
	}
}

// Gravity returns the effective per-tick gravity of the current mode.
func (c *Context) Gravity() float64 {
	return c.Config.Physics.Gravity * c.modeScale().GravityScale
}

// Reach returns the highest rise the generator may ask of a jump
// launched with the given platform boost.
func (c *Context) Reach(boost float64) float64 {
	transfer := boost * c.modeScale().BoostScale
	return MaxJumpHeight(transfer, c.Gravity()) * c.Config.Generator.ReachFactor
}
