package core

// Sound identifies a sound effect the simulation asks the platform to play.
type Sound int

const (
	SoundJump Sound = iota
	SoundSpring
	SoundTrampoline
	SoundBreak
	SoundPropeller
	SoundJetpack
	SoundStomp
	SoundFall
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundJump:
		return "jump"
	case SoundSpring:
		return "spring"
	case SoundTrampoline:
		return "trampoline"
	case SoundBreak:
		return "break"
	case SoundPropeller:
		return "propeller"
	case SoundJetpack:
		return "jetpack"
	case SoundStomp:
		return "stomp"
	case SoundFall:
		return "fall"
	default:
		return "unknown"
	}
}
