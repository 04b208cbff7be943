package core

// Action is a semantic input, decoupled from the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause
	actionCount
)

var actionNames = [actionCount]string{
	"None", "Left", "Right", "Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return "Unknown"
}

// InputFrame is the set of actions seen during one simulation tick.
// The zero value is an empty frame; frames are plain values and safe to copy.
type InputFrame struct {
	bits uint16
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame { return InputFrame{} }

// Set adds a to the frame. ActionNone is ignored.
func (f *InputFrame) Set(a Action) {
	if a != ActionNone && a < actionCount {
		f.bits |= 1 << a
	}
}

func (f InputFrame) Has(a Action) bool {
	return a != ActionNone && f.bits&(1<<a) != 0
}

// Empty reports whether no action was set.
func (f InputFrame) Empty() bool { return f.bits == 0 }

// Steer returns -1, 0 or 1 for the horizontal direction held this frame.
// Left and right together cancel out.
func (f InputFrame) Steer() float64 {
	var dir float64
	if f.Has(ActionLeft) {
		dir--
	}
	if f.Has(ActionRight) {
		dir++
	}
	return dir
}

func (f *InputFrame) Clear() { f.bits = 0 }
