package jump

// MaxJumpHeight returns the apex height of a jump launched with the given
// boost under constant gravity.
func MaxJumpHeight(boost, gravity float64) float64 {
	jumpTime := boost / gravity
	return 0.5 * gravity * jumpTime * jumpTime
}

// Landed reports whether the player comes down on top of target: the player
// must be descending, its feet must be above the target's top edge, and the
// hitboxes must overlap.
func Landed(p *Player, target Collidable, legsHeight float64) bool {
	if p == nil || isNil(target) || p.VSpeed <= 0 {
		return false
	}
	feet := p.Y + p.Hitbox.Bottom*legsHeight
	if feet >= target.Box().Top {
		return false
	}
	hit, err := Collides(p, target)
	return err == nil && hit
}

// land runs the landing pass over the jumpables and bounces the player off
// the first one it landed on. Boost is called at most once.
func land(ctx *Context, p *Player, jumpables []Jumpable) bool {
	legs := ctx.Config.Physics.LegsHeight
	for _, j := range jumpables {
		if !Landed(p, j, legs) {
			continue
		}
		boost, ok := j.Boost(ctx)
		if !ok {
			continue
		}
		p.Land(boost)
		return true
	}
	return false
}
