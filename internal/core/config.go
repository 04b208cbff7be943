package core

// Screen size floor below which the HUD and the playfield stop fitting.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// RuntimeConfig is what the platform hands a game when a session starts.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in cells
	ScreenH  int   // Terminal height in cells
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns the configuration used when nothing is known about
// the terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Normalized fills in a missing tick rate and raises the screen to the
// minimum size. Seed is left alone.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultConfig().TickRate
	}
	c.ScreenW = max(c.ScreenW, MinScreenW)
	c.ScreenH = max(c.ScreenH, MinScreenH)
	return c
}

// GameState is the status a game reports to the platform after each tick.
type GameState struct {
	Score    int
	Height   int // Highest point climbed, in world units
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
