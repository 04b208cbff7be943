package jump

import (
	"fmt"

	"github.com/vovakirdan/tui-jump/internal/config"
)

// Generator creates blocks of platforms above an anchor.
type Generator struct {
	ctx        *Context
	difficulty *config.DifficultyManager
	score      int
	blocks     int
}

// NewGenerator creates a generator. Panics if ctx lacks a random source.
func NewGenerator(ctx *Context, difficulty *config.DifficultyManager) *Generator {
	ctx.mustValidate()
	if difficulty == nil {
		difficulty = config.NewDifficultyManager(ctx.Config.Difficulty)
	}
	return &Generator{ctx: ctx, difficulty: difficulty}
}

// SetScore updates the score used for difficulty scaling.
func (g *Generator) SetScore(score int) {
	g.score = score
}

// StartPosition returns the fixed position of the first platform.
func (g *Generator) StartPosition() (float64, float64) {
	w := g.ctx.Config.World
	return w.Width / 2, w.Height / 1.2
}

// CreateStartBlock places a guaranteed normal platform at the start position
// and fills the rest of the block above it.
func (g *Generator) CreateStartBlock() *Block {
	x, y := g.StartPosition()
	start := NewPlatform(g.ctx, KindNormal, x, y)

	block := &Block{Type: BlockNormalOnly}
	block.add(start)

	amount := g.platformAmount()
	g.fill(block, Anchor{Y: start.Y, Boost: start.BaseBoost()}, amount, amount-1)
	return block
}

// CreateBlock generates a block whose platforms are reachable from anchor.
func (g *Generator) CreateBlock(anchor Anchor) *Block {
	block := &Block{Type: g.pickBlockType()}
	amount := g.platformAmount()
	g.fill(block, anchor, amount, amount)
	g.placeEnemy(block)
	return block
}

func (g *Generator) fill(block *Block, anchor Anchor, amount, count int) {
	band := g.ctx.Config.World.Height / float64(amount)
	if band <= 0 {
		panic(fmt.Sprintf("jump: non-positive band height %v", band))
	}

	last := anchor
	for range count {
		p, ok := g.placeFollowingPlatform(block, last, band)
		if !ok {
			continue
		}
		block.Placements = append(block.Placements, Placement{Anchor: last, Y: p.Y})
		block.add(p)
		if p.Solid() {
			last = Anchor{Y: p.Y, Boost: p.BaseBoost()}
			g.placePowerUp(block, p)
		}
	}

	g.blocks++
	g.ctx.Logger.Debug("block created",
		"n", g.blocks,
		"type", block.Type,
		"platforms", len(block.Platforms),
		"powerups", len(block.PowerUps),
		"top", block.TopY())
}

func (g *Generator) platformAmount() int {
	cfg := g.ctx.Config
	lo := cfg.Generator.MinPlatforms
	hi := int((cfg.World.Width + cfg.World.Height) / cfg.Generator.PlatformDivisor)
	if hi < lo {
		hi = lo
	}
	lo, hi = g.difficulty.PlatformRange(lo, hi, g.score, 0)

	amount := g.ctx.Random.IntRange(lo, hi)
	if amount <= 0 {
		panic(fmt.Sprintf("jump: non-positive platform amount %d", amount))
	}
	return amount
}

func (g *Generator) pickBlockType() BlockType {
	bw := g.ctx.Config.Generator.BlockWeights
	bonus := g.difficulty.SpecialBlockBonus(g.score, 0)
	return PickWeighted(g.ctx.Random, []Weighted[BlockType]{
		{BlockStandard, bw.Standard},
		{BlockNormalOnly, bw.NormalOnly},
		{BlockHorizontalOnly, bw.HorizontalOnly + bonus},
		{BlockVerticalOnly, bw.VerticalOnly + bonus},
	})
}

func (g *Generator) pickKind(t BlockType) Kind {
	switch t {
	case BlockNormalOnly:
		return KindNormal
	case BlockHorizontalOnly:
		return KindHorizontal
	case BlockVerticalOnly:
		return KindVertical
	}
	kw := g.ctx.Config.Generator.KindWeights
	return PickWeighted(g.ctx.Random, []Weighted[Kind]{
		{KindNormal, kw.Normal},
		{KindHorizontal, kw.Horizontal},
		{KindVertical, kw.Vertical},
		{KindBreaking, kw.Breaking},
	})
}

// placeFollowingPlatform finds a free spot for one platform above last.
// Every candidate keeps y >= last.Y - reach.
func (g *Generator) placeFollowingPlatform(block *Block, last Anchor, band float64) (*Platform, bool) {
	cfg := g.ctx.Config
	rng := g.ctx.Random
	limit := last.Y - g.ctx.Reach(last.Boost)
	span := cfg.World.Width - cfg.Platforms.Width

	p := NewPlatform(g.ctx, g.pickKind(block.Type), 0, 0)

	y := limit
	for range max(cfg.Generator.PlacementAttempts, 1) {
		heightDeviation := rng.FloatRange(cfg.Generator.HeightDeviationMin, cfg.Generator.HeightDeviationMax)
		widthDeviation := rng.Float(1)

		y = max(last.Y-band-heightDeviation*band, limit)
		p.moveTo(widthDeviation*span, y)
		if !block.occupied(&p.Entity) {
			return p, true
		}
	}

	g.ctx.Logger.Warn("placement attempts exhausted, scanning grid", "y", y, "anchor", last.Y)

	// Scan x at the last candidate height, then rows down toward the anchor.
	step := max(cfg.Generator.GridStep, 1)
	for row := y; row < last.Y; row += p.H {
		for x := 0.0; x <= span; x += step {
			p.moveTo(x, row)
			if !block.occupied(&p.Entity) {
				return p, true
			}
		}
	}

	g.ctx.Logger.Warn("no free spot for platform, skipping", "anchor", last.Y)
	return nil, false
}

func (p *Platform) moveTo(x, y float64) {
	p.X, p.Y, p.SpawnY = x, y, y
}

func (g *Generator) placePowerUp(block *Block, host *Platform) {
	pc := g.ctx.Config.PowerUps
	if pc.Chance <= 0 || g.ctx.Random.Float(1) >= pc.Chance {
		return
	}
	kind := PickWeighted(g.ctx.Random, []Weighted[PowerUpKind]{
		{PowerUpSpring, pc.Weights.Spring},
		{PowerUpTrampoline, pc.Weights.Trampoline},
		{PowerUpPropeller, pc.Weights.Propeller},
		{PowerUpJetpack, pc.Weights.Jetpack},
	})
	u := NewPowerUp(g.ctx, kind, host)
	if block.occupied(&u.Entity) {
		return
	}
	block.PowerUps = append(block.PowerUps, u)
}

// placeEnemy tries to put one enemy inside the block's vertical span.
func (g *Generator) placeEnemy(block *Block) {
	ec := g.ctx.Config.Enemies
	rng := g.ctx.Random
	if g.score < ec.MinScore || len(block.Platforms) == 0 || rng.Float(1) >= ec.Chance {
		return
	}

	kind := EnemyMonster
	if rng.Float(1) < ec.HoverRatio {
		kind = EnemyHovering
	}

	bottom := block.Platforms[0].Y
	for _, p := range block.Platforms {
		bottom = max(bottom, p.Y)
	}
	top := block.Ceiling

	e := NewEnemy(g.ctx, kind, 0, 0)
	for range max(g.ctx.Config.Generator.PlacementAttempts, 1) {
		e.X = rng.Float(g.ctx.Config.World.Width - e.W)
		e.Y = rng.FloatRange(top, bottom)
		if !block.occupied(&e.Entity) {
			block.Enemies = append(block.Enemies, e)
			return
		}
	}
}
