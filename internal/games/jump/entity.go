package jump

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// ErrNilEntity is returned when a collision test receives a nil entity.
var ErrNilEntity = errors.New("jump: nil entity")

// Hitbox holds offsets from an entity's position to its collision edges.
type Hitbox struct {
	Left, Top, Right, Bottom float64
}

// Entity is the spatial state shared by everything placed in the world.
// X and Y are the top-left corner of the sprite.
type Entity struct {
	X, Y   float64
	W, H   float64 // Sprite dimensions
	Hitbox Hitbox
}

// NewEntity creates an entity whose hitbox covers its whole sprite.
func NewEntity(x, y, w, h float64) Entity {
	return NewEntityWithHitbox(x, y, w, h, Hitbox{Right: w, Bottom: h})
}

// NewEntityWithHitbox creates an entity with explicit hitbox offsets.
// Zero-area hitboxes are allowed for placeholders; inverted ones panic.
func NewEntityWithHitbox(x, y, w, h float64, hb Hitbox) Entity {
	if hb.Left > hb.Right || hb.Top > hb.Bottom {
		panic(fmt.Sprintf("jump: inverted hitbox %+v", hb))
	}
	return Entity{X: x, Y: y, W: w, H: h, Hitbox: hb}
}

// Box returns the hitbox in world coordinates.
func (e *Entity) Box() core.Box {
	return core.Box{
		Left:   e.X + e.Hitbox.Left,
		Top:    e.Y + e.Hitbox.Top,
		Right:  e.X + e.Hitbox.Right,
		Bottom: e.Y + e.Hitbox.Bottom,
	}
}

// CenterX returns the horizontal center of the sprite.
func (e *Entity) CenterX() float64 {
	return e.X + e.W/2
}

// Collidable is anything with a world-space hitbox.
type Collidable interface {
	Box() core.Box
}

// Jumpable is a Collidable the player can bounce off.
// Boost is called exactly once per landing and may have side effects;
// it returns false when the landing should not bounce the player.
type Jumpable interface {
	Collidable
	Boost(ctx *Context) (float64, bool)
}

// Collides reports whether the hitboxes of a and b overlap.
func Collides(a, b Collidable) (bool, error) {
	if isNil(a) || isNil(b) {
		return false, ErrNilEntity
	}
	return a.Box().Intersects(b.Box()), nil
}

func isNil(c Collidable) bool {
	if c == nil {
		return true
	}
	v := reflect.ValueOf(c)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
