package jump

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-jump/internal/core"
)

func TestNewWorld(t *testing.T) {
	ctx := testContext(t, 10)
	w := NewWorld(ctx, nil)

	require.Len(t, w.Blocks(), ctx.Config.World.MaxBlocks)
	first := w.Blocks()[0].Platforms[0]
	p := w.Player()

	assert.Equal(t, first.Y, p.Box().Bottom, "player stands on the start platform")
	assert.Less(t, p.Box().Left, first.Box().Right)
	assert.Greater(t, p.Box().Right, first.Box().Left)
	assert.Equal(t, 0.0, w.CameraY())
	assert.Equal(t, 0, w.Score())
	assert.False(t, w.Ended())
}

func TestFirstStepBouncesOffStartPlatform(t *testing.T) {
	ctx := quietContext(t, 10)
	w := NewWorld(ctx, nil)

	out := w.Step(core.NewInputFrame())
	assert.False(t, out.Ended)
	assert.Equal(t, ctx.Config.Platforms.Boost, w.Player().VSpeed)
}

func TestCameraMonotonicAndScore(t *testing.T) {
	for _, mode := range Modes {
		t.Run(mode.ID, func(t *testing.T) {
			ctx := testContext(t, 2024)
			ctx.Mode = mode
			w := NewWorld(ctx, nil)
			input := rand.New(rand.NewSource(1))

			prevCamera := w.CameraY()
			prevScore := w.Score()
			for range 5000 {
				in := core.NewInputFrame()
				switch input.Intn(3) {
				case 0:
					in.Set(core.ActionLeft)
				case 1:
					in.Set(core.ActionRight)
				}
				out := w.Step(in)

				assert.LessOrEqual(t, w.CameraY(), prevCamera)
				assert.GreaterOrEqual(t, w.Score(), prevScore)
				assert.LessOrEqual(t, len(w.Blocks()), ctx.Config.World.MaxBlocks)
				prevCamera, prevScore = w.CameraY(), w.Score()

				if out.Ended {
					assert.Equal(t, w.Score(), out.FinalScore)
					break
				}
			}
		})
	}
}

func TestDeathWhenFallingBelowCamera(t *testing.T) {
	ctx := testContext(t, 10)
	audio := &recordingAudio{}
	ctx.Audio = audio
	w := NewWorld(ctx, nil)

	w.player.Y = ctx.Config.World.Height
	w.player.X = -1000 // away from every platform
	out := w.Step(core.NewInputFrame())

	assert.True(t, out.Ended)
	assert.Equal(t, EndFell, out.Cause)
	assert.Equal(t, core.SoundFall, audio.played[len(audio.played)-1])

	again := w.Step(core.NewInputFrame())
	assert.Equal(t, out, again, "ended world no longer advances")
}

func TestScoreFollowsHeight(t *testing.T) {
	ctx := quietContext(t, 10)
	w := NewWorld(ctx, nil)
	start := w.player.Y

	w.Step(core.NewInputFrame())
	stepN(w, 10)

	climbed := start - w.bestY
	require.Positive(t, climbed)
	assert.Equal(t, int(climbed*ctx.Config.World.ScoreScale), w.Score())
	assert.InDelta(t, climbed, w.Height(), 1e-9)
}

func TestCameraFollowsPlayer(t *testing.T) {
	ctx := quietContext(t, 10)
	w := NewWorld(ctx, nil)
	cfg := ctx.Config.World

	w.player.Y = -2000
	w.player.VSpeed = -5
	w.Step(core.NewInputFrame())

	assert.InDelta(t, w.player.Y-cfg.Height*cfg.CameraFraction, w.CameraY(), 1e-9)
	cam := w.CameraY()

	w.player.VSpeed = 8
	stepN(w, 5)
	assert.LessOrEqual(t, w.CameraY(), cam, "camera never moves down")
}

func TestBlocksRetireAndRespawn(t *testing.T) {
	ctx := quietContext(t, 10)
	w := NewWorld(ctx, nil)
	oldest := w.Blocks()[0]
	newest := w.Blocks()[len(w.Blocks())-1]

	// Lift the camera far enough that the start block scrolls off
	w.cameraY = oldest.TopY() - ctx.Config.World.Height - 100
	w.player.Y = w.cameraY + 100
	w.player.VSpeed = -10
	w.Step(core.NewInputFrame())

	require.Len(t, w.Blocks(), ctx.Config.World.MaxBlocks)
	assert.NotSame(t, oldest, w.Blocks()[0])
	spawned := w.Blocks()[len(w.Blocks())-1]
	assert.NotSame(t, newest, spawned)
	require.NotEmpty(t, spawned.Placements)

	anchor, _ := newest.Anchor()
	assert.Equal(t, anchor, spawned.Placements[0].Anchor, "new block chains from the previous top")
}

func TestCollisionSkippedWhileAscending(t *testing.T) {
	ctx := quietContext(t, 10)
	w := NewWorld(ctx, nil)
	first := w.Blocks()[0].Platforms[0]

	// Overlapping the start platform from below while rising
	w.player.Y = first.Y - 20
	w.player.VSpeed = -6
	w.Step(core.NewInputFrame())
	assert.Equal(t, -5.5, w.player.VSpeed)
}

func TestMonsterContact(t *testing.T) {
	ctx := quietContext(t, 10)
	w := NewWorld(ctx, nil)
	p := w.player

	e := NewEnemy(ctx, EnemyMonster, p.X, p.Y-200)
	w.blocks[0].Enemies = append(w.blocks[0].Enemies, e)

	// Rising into it from below ends the run
	p.Y = e.Y + 20
	p.VSpeed = -3
	out := w.Step(core.NewInputFrame())
	assert.True(t, out.Ended)
	assert.Equal(t, EndMonster, out.Cause)
}

func TestMonsterStomp(t *testing.T) {
	ctx := quietContext(t, 10)
	w := NewWorld(ctx, nil)
	p := w.player

	e := NewEnemy(ctx, EnemyMonster, p.X, p.Y-400)
	w.blocks[0].Enemies = append(w.blocks[0].Enemies, e)

	// Feet just above the monster's top edge, descending
	p.Y = e.Box().Top - p.Hitbox.Bottom*0.8 - 6
	p.VSpeed = 2
	out := w.Step(core.NewInputFrame())

	assert.False(t, out.Ended)
	assert.True(t, e.Stomped)
	assert.Equal(t, ctx.Config.Physics.StompBoost, p.VSpeed)
}

func TestFlightPickupSkipsCollisions(t *testing.T) {
	ctx := quietContext(t, 10)
	w := NewWorld(ctx, nil)
	p := w.player
	host := w.blocks[0].Platforms[0]

	jet := NewPowerUp(ctx, PowerUpJetpack, host)
	w.blocks[0].PowerUps = append(w.blocks[0].PowerUps, jet)
	e := NewEnemy(ctx, EnemyMonster, p.X, p.Y-300)
	w.blocks[0].Enemies = append(w.blocks[0].Enemies, e)

	w.Step(core.NewInputFrame())
	require.True(t, p.Flying())
	assert.True(t, jet.Taken)

	// Flies straight through the monster
	for range 40 {
		out := w.Step(core.NewInputFrame())
		require.False(t, out.Ended)
		assert.Equal(t, ctx.Config.PowerUps.JetpackThrust, p.VSpeed)
	}
	assert.False(t, e.Stomped)
}

func TestUnderwaterLandingHalvesBoost(t *testing.T) {
	ctx := quietContext(t, 10)
	ctx.Mode = modeByID(t, "jump_underwater")
	w := NewWorld(ctx, nil)

	w.Step(core.NewInputFrame())
	assert.Equal(t, ctx.Config.Platforms.Boost*0.5, w.player.VSpeed)
}

func TestWorldDeterministic(t *testing.T) {
	run := func() (int, float64) {
		w := NewWorld(testContext(t, 555), nil)
		in := core.NewInputFrame()
		in.Set(core.ActionRight)
		for range 3000 {
			if out := w.Step(in); out.Ended {
				break
			}
		}
		return w.Score(), w.player.X
	}

	s1, x1 := run()
	s2, x2 := run()
	assert.Equal(t, s1, s2)
	assert.Equal(t, x1, x2)
}

func TestWorldRender(t *testing.T) {
	ctx := testContext(t, 10)
	w := NewWorld(ctx, nil)
	r := &recordingRenderer{}

	w.Render(r)

	assert.Equal(t, 1, r.count(SpritePlayer))
	assert.Positive(t, r.count(SpritePlatform)+r.count(SpriteHorizontalPlatform)+
		r.count(SpriteVerticalPlatform)+r.count(SpriteBreakingPlatform))
	for _, c := range r.calls {
		assert.LessOrEqual(t, c.y, ctx.Config.World.Height, "only visible entities are drawn")
	}
}

func TestScreenRenderer(t *testing.T) {
	screen := core.NewScreen(80, 24)
	r := NewScreenRenderer(screen, 480, 800, 1)

	r.DrawSprite(SpriteRef{ID: SpritePlatform}, 0, 0, 57, 15)
	assert.Equal(t, PlatformChar, screen.Get(0, 1))
	assert.Equal(t, PlatformChar, screen.Get(9, 1))
	assert.Equal(t, ' ', screen.Get(10, 1))
	assert.Equal(t, ' ', screen.Get(0, 0), "HUD row is left alone")

	r.DrawSprite(SpriteRef{ID: SpritePlayer, Frame: int(FacingLeft)}, 240, 400, 60, 60)
	cell := screen.GetCell(40, 12)
	assert.Equal(t, core.ColorYellow, cell.Color)

	// Above the view: clipped
	r.DrawSprite(SpriteRef{ID: SpriteMonster}, 100, -200, 70, 50)
	for x := 0; x < 80; x++ {
		assert.NotEqual(t, MonsterChar, screen.Get(x, 0))
	}
}
