package jump

import (
	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// EndCause explains why a session ended.
type EndCause int

const (
	EndNone EndCause = iota
	EndFell
	EndMonster
)

// String returns a human-readable name for the cause.
func (c EndCause) String() string {
	switch c {
	case EndFell:
		return "fell"
	case EndMonster:
		return "monster"
	default:
		return "none"
	}
}

// StepOutcome is the result of one world tick.
type StepOutcome struct {
	Ended      bool
	FinalScore int
	Cause      EndCause
}

// World owns the player, the camera and the sliding window of blocks.
type World struct {
	ctx       *Context
	generator *Generator
	player    *Player
	blocks    []*Block
	anchor    Anchor

	cameraY float64
	startY  float64
	bestY   float64
	score   float64
	ticks   int
	ended   bool
	cause   EndCause
}

// NewWorld builds a world with a start block and fills the block window.
// Panics if ctx lacks a random source.
func NewWorld(ctx *Context, difficulty *config.DifficultyManager) *World {
	ctx.mustValidate()
	w := &World{
		ctx:       ctx,
		generator: NewGenerator(ctx, difficulty),
	}

	start := w.generator.CreateStartBlock()
	w.blocks = append(w.blocks, start)
	w.anchor, _ = start.Anchor()

	first := start.Platforms[0]
	w.player = NewPlayer(ctx, first.CenterX()-ctx.Config.Player.Width/2, first.Y)
	w.startY = w.player.Y
	w.bestY = w.player.Y

	w.spawn()
	return w
}

// Player returns the player entity.
func (w *World) Player() *Player { return w.player }

// Blocks returns the active blocks, oldest first.
func (w *World) Blocks() []*Block { return w.blocks }

// CameraY returns the world y shown at the top of the view.
func (w *World) CameraY() float64 { return w.cameraY }

// Score returns the current score.
func (w *World) Score() int { return int(w.score) }

// Height returns the best height climbed in world pixels.
func (w *World) Height() float64 { return w.startY - w.bestY }

// Ended reports whether the session is over.
func (w *World) Ended() bool { return w.ended }

// Ticks returns the number of simulated ticks.
func (w *World) Ticks() int { return w.ticks }

// Step advances the world by one tick: update, collisions, cleanup, spawn,
// score and camera, then the death check.
func (w *World) Step(in core.InputFrame) StepOutcome {
	if w.ended {
		return w.outcome()
	}
	w.ticks++
	cfg := w.ctx.Config

	for _, b := range w.blocks {
		b.update(w.ctx)
	}
	w.player.Update(in.Steer(), cfg.World.Width)

	w.collide()
	if w.ended {
		return w.outcome()
	}

	w.cleanup()
	w.generator.SetScore(w.Score())
	w.spawn()

	if w.player.Y < w.bestY {
		w.score += (w.bestY - w.player.Y) * cfg.World.ScoreScale
		w.bestY = w.player.Y
	}
	w.cameraY = min(w.cameraY, w.player.Y-cfg.World.Height*cfg.World.CameraFraction)

	if w.player.Y > w.cameraY+cfg.World.Height-cfg.Physics.DeathMargin*w.player.Hitbox.Bottom {
		w.end(EndFell)
	}
	return w.outcome()
}

// collide handles hazards and pickups every tick, then the landing pass
// while the player descends.
func (w *World) collide() {
	p := w.player
	if p.Flying() {
		return
	}
	legs := w.ctx.Config.Physics.LegsHeight

	for _, b := range w.blocks {
		for _, e := range b.Enemies {
			if e.Stomped {
				continue
			}
			if Landed(p, e, legs) {
				p.Land(e.Stomp(w.ctx))
				return
			}
			if hit, _ := Collides(p, e); hit {
				w.end(EndMonster)
				return
			}
		}
		for _, u := range b.PowerUps {
			if !u.Kind.Equippable() || u.Taken {
				continue
			}
			if hit, _ := Collides(p, u); hit {
				u.Taken = true
				p.Equip(u.Flight(w.ctx))
				if u.Kind == PowerUpJetpack {
					w.ctx.Audio.Play(core.SoundJetpack)
				} else {
					w.ctx.Audio.Play(core.SoundPropeller)
				}
				return
			}
		}
	}

	if p.VSpeed <= 0 {
		return
	}
	for _, b := range w.blocks {
		if land(w.ctx, p, b.Jumpables()) {
			return
		}
	}
}

// cleanup retires blocks whose top has scrolled below the view.
func (w *World) cleanup() {
	bottom := w.cameraY + w.ctx.Config.World.Height
	kept := w.blocks[:0]
	for _, b := range w.blocks {
		if b.TopY() > bottom {
			w.ctx.Logger.Debug("block retired", "top", b.TopY(), "camera", w.cameraY)
			continue
		}
		kept = append(kept, b)
	}
	clear(w.blocks[len(kept):])
	w.blocks = kept
}

// spawn adds one block above the current anchor if the window has room.
// At construction it fills the whole window.
func (w *World) spawn() {
	for len(w.blocks) < w.ctx.Config.World.MaxBlocks {
		b := w.generator.CreateBlock(w.anchor)
		w.blocks = append(w.blocks, b)
		if a, ok := b.Anchor(); ok {
			w.anchor = a
		}
		if w.ticks > 0 {
			return
		}
	}
}

func (w *World) end(cause EndCause) {
	w.ended = true
	w.cause = cause
	w.ctx.Audio.Play(core.SoundFall)
	w.ctx.Logger.Info("session ended", "score", w.Score(), "cause", cause, "ticks", w.ticks)
}

func (w *World) outcome() StepOutcome {
	return StepOutcome{Ended: w.ended, FinalScore: w.Score(), Cause: w.cause}
}

// Render draws every visible entity. Platform animations advance on every
// call, visible or not.
func (w *World) Render(r Renderer) {
	viewTop := w.cameraY
	viewBottom := w.cameraY + w.ctx.Config.World.Height
	visible := func(e *Entity) bool {
		return e.Y+e.H >= viewTop && e.Y <= viewBottom
	}

	for _, b := range w.blocks {
		for _, p := range b.Platforms {
			if visible(&p.Entity) {
				p.Draw(r, w.cameraY)
			} else {
				p.advanceBreak()
			}
		}
		for _, u := range b.PowerUps {
			if visible(&u.Entity) {
				u.Draw(r, w.cameraY)
			}
		}
		for _, e := range b.Enemies {
			if visible(&e.Entity) {
				e.Draw(r, w.cameraY)
			}
		}
	}
	w.player.Draw(r, w.cameraY)
}
