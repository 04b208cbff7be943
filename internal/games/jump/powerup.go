package jump

import (
	"github.com/vovakirdan/tui-jump/internal/core"
)

// PowerUpKind enumerates the power-ups that can sit on a platform.
type PowerUpKind int

const (
	PowerUpSpring PowerUpKind = iota
	PowerUpTrampoline
	PowerUpPropeller
	PowerUpJetpack
)

// String returns the name of the power-up kind.
func (k PowerUpKind) String() string {
	switch k {
	case PowerUpSpring:
		return "spring"
	case PowerUpTrampoline:
		return "trampoline"
	case PowerUpPropeller:
		return "propeller"
	case PowerUpJetpack:
		return "jetpack"
	default:
		return "unknown"
	}
}

// Equippable reports whether the player wears the power-up instead of bouncing on it.
func (k PowerUpKind) Equippable() bool {
	return k == PowerUpPropeller || k == PowerUpJetpack
}

// Sprite sizes in world pixels.
var powerUpSizes = map[PowerUpKind][2]float64{
	PowerUpSpring:     {28, 18},
	PowerUpTrampoline: {54, 16},
	PowerUpPropeller:  {32, 26},
	PowerUpJetpack:    {28, 40},
}

// PowerUp rides on top of its host platform.
type PowerUp struct {
	Entity
	Kind    PowerUpKind
	Retract int  // Frames left showing the compressed sprite
	Taken   bool // Equipped by the player

	host    *Platform
	offsetX float64
	boost   float64
}

// NewPowerUp places a power-up centered on top of host.
func NewPowerUp(ctx *Context, kind PowerUpKind, host *Platform) *PowerUp {
	size := powerUpSizes[kind]
	offsetX := (host.W - size[0]) / 2

	pc := ctx.Config.PowerUps
	boost := host.BaseBoost()
	switch kind {
	case PowerUpSpring:
		boost *= pc.SpringScale
	case PowerUpTrampoline:
		boost *= pc.TrampolineScale
	}

	return &PowerUp{
		Entity:  NewEntity(host.X+offsetX, host.Y-size[1], size[0], size[1]),
		Kind:    kind,
		host:    host,
		offsetX: offsetX,
		boost:   boost,
	}
}

// Update keeps the power-up on its host and counts down the retract timer.
func (u *PowerUp) Update() {
	if u.host != nil {
		u.X = u.host.X + u.offsetX
		u.Y = u.host.Y - u.H
	}
	if u.Retract > 0 {
		u.Retract--
	}
}

// Boost bounces the player off a spring or trampoline.
func (u *PowerUp) Boost(ctx *Context) (float64, bool) {
	if u.Kind.Equippable() || u.Taken {
		return 0, false
	}
	u.Retract = ctx.Config.PowerUps.RetractFrames
	if u.Kind == PowerUpTrampoline {
		ctx.Audio.Play(core.SoundTrampoline)
	} else {
		ctx.Audio.Play(core.SoundSpring)
	}
	return u.boost, true
}

// Flight builds the equipped state for a propeller or jetpack.
func (u *PowerUp) Flight(ctx *Context) Flight {
	pc := ctx.Config.PowerUps
	if u.Kind == PowerUpJetpack {
		return Flight{Kind: u.Kind, Thrust: pc.JetpackThrust, Frames: pc.JetpackFrames}
	}
	return Flight{Kind: u.Kind, Thrust: pc.PropellerThrust, Frames: pc.PropellerFrames}
}

// Draw emits the power-up sprite unless it has been picked up.
func (u *PowerUp) Draw(r Renderer, cameraY float64) {
	if u.Taken {
		return
	}
	ref := SpriteRef{}
	switch u.Kind {
	case PowerUpSpring:
		ref.ID = SpriteSpring
	case PowerUpTrampoline:
		ref.ID = SpriteTrampoline
	case PowerUpPropeller:
		ref.ID = SpritePropeller
	case PowerUpJetpack:
		ref.ID = SpriteJetpack
	}
	if u.Retract > 0 {
		ref.Frame = 1
	}
	r.DrawSprite(ref, u.X, u.Y-cameraY, u.W, u.H)
}
