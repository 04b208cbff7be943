package jump

import (
	"math"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// Kind is the variant a platform was created as.
type Kind int

const (
	KindNormal Kind = iota
	KindHorizontal
	KindVertical
	KindBreaking
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNormal:
		return "normal"
	case KindHorizontal:
		return "horizontal"
	case KindVertical:
		return "vertical"
	case KindBreaking:
		return "breaking"
	default:
		return "unknown"
	}
}

// Motion is the movement pattern of a platform.
type Motion int

const (
	MotionStatic Motion = iota
	MotionHorizontal
	MotionVertical
)

// Break stages. Stages between BreakFalling and the last frame count up
// once per render call.
const (
	BreakNone    = 0  // Not a breaking platform
	BreakIntact  = 1  // Waiting for the first landing
	BreakFalling = 2  // First broken frame
	BreakBroken  = -1 // Terminal
)

// Behavior is the per-platform variant state. Motion, breaking and
// darkness are independent and combine freely.
type Behavior struct {
	Motion    Motion
	Dir       float64 // +1 or -1
	Offset    float64 // Vertical distance from the spawn y
	Breaks    int
	FallSpeed float64
	Dark      bool
	Revealed  bool
}

// Platform is a Jumpable ledge.
type Platform struct {
	Entity
	Kind     Kind
	Behavior Behavior
	SpawnY   float64

	boost       float64
	breakFrames int
}

// NewPlatform creates a platform of the given kind at (x, y).
func NewPlatform(ctx *Context, kind Kind, x, y float64) *Platform {
	pc := ctx.Config.Platforms
	p := &Platform{
		Entity:      NewEntity(x, y, pc.Width, pc.Height),
		Kind:        kind,
		SpawnY:      y,
		boost:       pc.Boost,
		breakFrames: max(pc.BreakFrames, 1),
	}
	p.Behavior.Dir = 1
	if ctx.Random.Float(1) < 0.5 {
		p.Behavior.Dir = -1
	}

	switch kind {
	case KindHorizontal:
		p.Behavior.Motion = MotionHorizontal
	case KindVertical:
		p.Behavior.Motion = MotionVertical
	case KindBreaking:
		p.Behavior.Breaks = BreakIntact
	}
	p.Behavior.Dark = ctx.Mode.Dark
	return p
}

// Solid reports whether the platform can anchor the next placement.
func (p *Platform) Solid() bool {
	return p.Behavior.Breaks == BreakNone
}

// Broken reports whether the platform has started to break.
func (p *Platform) Broken() bool {
	return p.Behavior.Breaks == BreakBroken || p.Behavior.Breaks >= BreakFalling
}

// BaseBoost returns the boost the platform would give, without side effects.
func (p *Platform) BaseBoost() float64 {
	return p.boost
}

// Update advances the platform's motion by one tick.
func (p *Platform) Update(ctx *Context) {
	b := &p.Behavior

	if p.Broken() {
		b.FallSpeed += ctx.Gravity()
		p.Y += b.FallSpeed
		return
	}

	step := ctx.Config.Platforms.MoveStep
	switch b.Motion {
	case MotionHorizontal:
		if p.X <= 0 {
			b.Dir = 1
		} else if p.X+p.W >= ctx.Config.World.Width {
			b.Dir = -1
		}
		p.X += b.Dir * step
	case MotionVertical:
		if math.Abs(b.Offset) > ctx.Config.World.Height*ctx.Config.Platforms.VerticalRange {
			b.Dir = -b.Dir
		}
		p.Y += b.Dir * step
		b.Offset += b.Dir * step
	}
}

// Boost handles a landing. Breaking platforms start to fall and give no bounce.
func (p *Platform) Boost(ctx *Context) (float64, bool) {
	b := &p.Behavior
	if b.Dark {
		b.Revealed = true
	}

	switch {
	case b.Breaks == BreakIntact:
		b.Breaks = BreakFalling
		ctx.Audio.Play(core.SoundBreak)
		return 0, false
	case p.Broken():
		return 0, false
	}

	ctx.Audio.Play(core.SoundJump)
	return p.boost, true
}

// Draw emits the platform sprite and advances the breaking animation.
func (p *Platform) Draw(r Renderer, cameraY float64) {
	r.DrawSprite(p.sprite(), p.X, p.Y-cameraY, p.W, p.H)
	p.advanceBreak()
}

func (p *Platform) advanceBreak() {
	b := &p.Behavior
	if b.Breaks < BreakFalling {
		return
	}
	if b.Breaks < BreakFalling+p.breakFrames-1 {
		b.Breaks++
		return
	}
	b.Breaks = BreakBroken
}

func (p *Platform) sprite() SpriteRef {
	b := p.Behavior
	if b.Dark && !b.Revealed {
		return SpriteRef{ID: SpriteDarkPlatform}
	}
	switch {
	case b.Breaks == BreakIntact:
		return SpriteRef{ID: SpriteBreakingPlatform}
	case b.Breaks == BreakBroken:
		return SpriteRef{ID: SpriteBreakingPlatform, Frame: p.breakFrames}
	case b.Breaks >= BreakFalling:
		return SpriteRef{ID: SpriteBreakingPlatform, Frame: b.Breaks - BreakIntact}
	}
	switch b.Motion {
	case MotionHorizontal:
		return SpriteRef{ID: SpriteHorizontalPlatform}
	case MotionVertical:
		return SpriteRef{ID: SpriteVerticalPlatform}
	default:
		return SpriteRef{ID: SpritePlatform}
	}
}
