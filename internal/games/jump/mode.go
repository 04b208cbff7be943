package jump

// Movement selects the player's movement strategy.
type Movement int

const (
	MovementRegular Movement = iota
	MovementSpace
	MovementUnderwater
)

// String returns a human-readable name for the movement.
func (m Movement) String() string {
	switch m {
	case MovementRegular:
		return "regular"
	case MovementSpace:
		return "space"
	case MovementUnderwater:
		return "underwater"
	default:
		return "unknown"
	}
}

// Mode describes one playable variant of the game.
type Mode struct {
	ID       string
	Title    string
	Movement Movement
	Dark     bool // Every platform is hidden until landed on
}

// Modes lists every registered play mode.
var Modes = []Mode{
	{ID: "jump", Title: "Jump", Movement: MovementRegular},
	{ID: "jump_space", Title: "Jump: Space", Movement: MovementSpace},
	{ID: "jump_underwater", Title: "Jump: Underwater", Movement: MovementUnderwater},
	{ID: "jump_dark", Title: "Jump: Darkness", Movement: MovementRegular, Dark: true},
}
