package jump

import (
	"github.com/vovakirdan/tui-jump/internal/config"
	"github.com/vovakirdan/tui-jump/internal/core"
)

// MovementStrategy decides how the player accelerates. One strategy is
// picked when the player is created and kept for the whole session.
type MovementStrategy interface {
	// Gravity is added to the vertical speed every tick.
	Gravity() float64
	// Transfer converts a landing boost into the new vertical speed.
	Transfer(boost float64) float64
	// Steer returns the next horizontal speed for a steering direction in {-1, 0, 1}.
	Steer(speed, dir float64) float64
}

// NewMovement builds the strategy for a movement kind.
func NewMovement(kind Movement, cfg config.JumpConfig) MovementStrategy {
	ph := cfg.Physics
	switch kind {
	case MovementSpace:
		s := cfg.Modes.Space
		return driftMovement{
			gravity: ph.Gravity * s.GravityScale,
			boost:   s.BoostScale,
			accel:   ph.HorizontalAccel,
			limit:   ph.HorizontalLimit * s.SpeedLimitScale,
		}
	case MovementUnderwater:
		s := cfg.Modes.Underwater
		return inertialMovement{
			gravity: ph.Gravity * s.GravityScale,
			boost:   s.BoostScale,
			accel:   ph.HorizontalAccel,
			decel:   ph.HorizontalDecel,
			limit:   ph.HorizontalLimit * s.SpeedLimitScale,
		}
	default:
		s := cfg.Modes.Regular
		return inertialMovement{
			gravity: ph.Gravity * s.GravityScale,
			boost:   s.BoostScale,
			accel:   ph.HorizontalAccel,
			decel:   ph.HorizontalDecel,
			limit:   ph.HorizontalLimit * s.SpeedLimitScale,
		}
	}
}

// inertialMovement accelerates while a direction is held and decays
// symmetrically to zero when released.
type inertialMovement struct {
	gravity, boost      float64
	accel, decel, limit float64
}

func (m inertialMovement) Gravity() float64 { return m.gravity }

func (m inertialMovement) Transfer(boost float64) float64 { return boost * m.boost }

func (m inertialMovement) Steer(speed, dir float64) float64 {
	switch {
	case dir != 0:
		speed += dir * m.accel
	case speed > m.decel:
		speed -= m.decel
	case speed < -m.decel:
		speed += m.decel
	default:
		speed = 0
	}
	return core.Clamp(speed, -m.limit, m.limit)
}

// driftMovement only changes speed while a direction is held.
type driftMovement struct {
	gravity, boost float64
	accel, limit   float64
}

func (m driftMovement) Gravity() float64 { return m.gravity }

func (m driftMovement) Transfer(boost float64) float64 { return boost * m.boost }

func (m driftMovement) Steer(speed, dir float64) float64 {
	return core.Clamp(speed+dir*m.accel, -m.limit, m.limit)
}
