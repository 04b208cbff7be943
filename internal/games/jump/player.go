package jump

// Facing is the direction the player sprite looks.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Flight is an equipped propeller or jetpack.
type Flight struct {
	Kind   PowerUpKind
	Thrust float64 // Vertical speed held while equipped
	Frames int     // Ticks left
}

// Player is the jumping character.
type Player struct {
	Entity
	VSpeed   float64
	HSpeed   float64
	Facing   Facing
	Equipped *Flight

	movement     MovementStrategy
	maxFallSpeed float64
}

// NewPlayer creates a player standing with its feet at footY.
func NewPlayer(ctx *Context, x, footY float64) *Player {
	pc := ctx.Config.Player
	hb := Hitbox{Left: pc.Hitbox.Left, Top: pc.Hitbox.Top, Right: pc.Hitbox.Right, Bottom: pc.Hitbox.Bottom}
	return &Player{
		Entity:       NewEntityWithHitbox(x, footY-hb.Bottom, pc.Width, pc.Height, hb),
		movement:     NewMovement(ctx.Mode.Movement, ctx.Config),
		maxFallSpeed: ctx.Config.Physics.MaxFallSpeed,
	}
}

// Movement returns the player's movement strategy.
func (p *Player) Movement() MovementStrategy {
	return p.movement
}

// Flying reports whether a propeller or jetpack is equipped.
func (p *Player) Flying() bool {
	return p.Equipped != nil
}

// Equip straps a flight power-up onto the player.
func (p *Player) Equip(f Flight) {
	p.Equipped = &f
	p.VSpeed = f.Thrust
}

// Land overwrites the vertical speed with the transferred boost.
func (p *Player) Land(boost float64) {
	p.VSpeed = p.movement.Transfer(boost)
}

// Update integrates one tick of motion. steer is -1, 0 or 1.
// The player wraps around the horizontal edges of a world of the given width.
func (p *Player) Update(steer, width float64) {
	p.HSpeed = p.movement.Steer(p.HSpeed, steer)
	switch {
	case steer < 0:
		p.Facing = FacingLeft
	case steer > 0:
		p.Facing = FacingRight
	}

	p.X += p.HSpeed
	if c := p.CenterX(); c > width {
		p.X -= width
	} else if c < 0 {
		p.X += width
	}

	if p.Equipped != nil {
		p.VSpeed = p.Equipped.Thrust
		p.Equipped.Frames--
		if p.Equipped.Frames <= 0 {
			p.Equipped = nil
		}
	} else {
		p.VSpeed = min(p.VSpeed+p.movement.Gravity(), p.maxFallSpeed)
	}
	p.Y += p.VSpeed
}

// Draw emits the player sprite.
func (p *Player) Draw(r Renderer, cameraY float64) {
	ref := SpriteRef{ID: SpritePlayer, Frame: int(p.Facing)}
	if p.Equipped != nil {
		ref.ID = SpritePlayerFlying
	}
	r.DrawSprite(ref, p.X, p.Y-cameraY, p.W, p.H)
}
