package jump

import (
	"math"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// EnemyKind enumerates the hazards.
type EnemyKind int

const (
	EnemyMonster EnemyKind = iota
	EnemyHovering
)

// String returns the name of the enemy kind.
func (k EnemyKind) String() string {
	if k == EnemyHovering {
		return "hovering"
	}
	return "monster"
}

// Enemy is a hazard. It can be stomped from above.
type Enemy struct {
	Entity
	Kind      EnemyKind
	Dir       float64
	Offset    float64 // Horizontal distance from the spawn x
	Stomped   bool
	FallSpeed float64
}

// NewEnemy creates an enemy at (x, y) with a hitbox inset from its sprite.
func NewEnemy(ctx *Context, kind EnemyKind, x, y float64) *Enemy {
	ec := ctx.Config.Enemies
	hb := Hitbox{Left: ec.Width * 0.1, Top: ec.Height * 0.1, Right: ec.Width * 0.9, Bottom: ec.Height}
	return &Enemy{
		Entity: NewEntityWithHitbox(x, y, ec.Width, ec.Height, hb),
		Kind:   kind,
		Dir:    1,
	}
}

// Update moves a hovering enemy back and forth, or drops a stomped one.
func (e *Enemy) Update(ctx *Context) {
	if e.Stomped {
		e.FallSpeed += ctx.Gravity()
		e.Y += e.FallSpeed
		return
	}
	if e.Kind != EnemyHovering {
		return
	}

	step := ctx.Config.Enemies.HoverStep
	limit := e.W
	if math.Abs(e.Offset) >= limit || e.X+step*e.Dir < 0 || e.X+e.W+step*e.Dir > ctx.Config.World.Width {
		e.Dir = -e.Dir
	}
	e.X += e.Dir * step
	e.Offset += e.Dir * step
}

// Stomp knocks the enemy out and returns the bounce for the player.
func (e *Enemy) Stomp(ctx *Context) float64 {
	e.Stomped = true
	ctx.Audio.Play(core.SoundStomp)
	return ctx.Config.Physics.StompBoost
}

// Draw emits the enemy sprite.
func (e *Enemy) Draw(r Renderer, cameraY float64) {
	ref := SpriteRef{ID: SpriteMonster}
	if e.Kind == EnemyHovering {
		ref.ID = SpriteHoveringMonster
	}
	if e.Stomped {
		ref.Frame = 1
	}
	r.DrawSprite(ref, e.X, e.Y-cameraY, e.W, e.H)
}
