package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// Speaker mixes sound effects onto the system audio device.
// The zero value is not usable; call NewSpeaker.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	ready  bool
	logger *log.Logger
}

// NewSpeaker creates a speaker at the given master volume (0..1).
func NewSpeaker(volume float64, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.Default()
	}
	return &Speaker{
		mixer:  &beep.Mixer{},
		volume: core.Clamp(volume, 0, 1),
		logger: logger,
	}
}

// Init opens the audio device. Calling Init twice is a no-op.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.ready = true
	return nil
}

// Play queues sound. It never blocks the game loop; before Init, or for an
// unknown sound, it does nothing.
func (s *Speaker) Play(sound core.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	st := Effect(sound, SampleRate)
	if st == nil {
		s.logger.Debug("unknown sound", "sound", int(sound))
		return
	}
	speaker.Lock()
	s.mixer.Add(withVolume(st, s.volume))
	speaker.Unlock()
}

// Close silences everything and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.ready = false
}
