// Package audio plays the jump sound effects through the system speaker.
//
// Every effect is synthesized on the fly from a handful of oscillators, so
// the binary carries no audio assets.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-jump/internal/core"
)

// SampleRate is the rate every effect is rendered at.
const SampleRate = beep.SampleRate(44100)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// tone is a finite oscillator whose frequency slides linearly from `from`
// to `to` over its duration.
type tone struct {
	from, to float64
	wave     Wave
	phase    float64
	pos      int
	total    int
	seed     uint32
	rate     beep.SampleRate
}

func newTone(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) *tone {
	return &tone{from: from, to: to, wave: wave, total: rate.N(d), seed: 0x9e3779b9, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		case WaveNoise:
			// xorshift keeps the noise reproducible between runs
			t.seed ^= t.seed << 13
			t.seed ^= t.seed >> 17
			t.seed ^= t.seed << 5
			v = float64(t.seed)/float64(math.MaxUint32)*2 - 1
		}

		// short linear fade in and a decaying tail avoid clicks
		env := math.Min(progress*20, 1) * (1 - progress)
		samples[i][0] = v * env
		samples[i][1] = v * env

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume wraps s with a linear gain. Zero or negative gain mutes.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Effect returns a fresh streamer for sound, or nil for an unknown id.
// The returned streamer always terminates.
func Effect(sound core.Sound, rate beep.SampleRate) beep.Streamer {
	ms := time.Millisecond
	switch sound {
	case core.SoundJump:
		return withVolume(newTone(320, 640, 90*ms, WaveSquare, rate), 0.25)
	case core.SoundSpring:
		return withVolume(beep.Seq(
			newTone(400, 900, 70*ms, WaveSquare, rate),
			newTone(900, 1200, 80*ms, WaveTriangle, rate),
		), 0.3)
	case core.SoundTrampoline:
		return withVolume(beep.Mix(
			newTone(200, 700, 220*ms, WaveTriangle, rate),
			newTone(400, 1400, 220*ms, WaveSine, rate),
		), 0.3)
	case core.SoundBreak:
		return withVolume(beep.Mix(
			newTone(0, 0, 180*ms, WaveNoise, rate),
			newTone(140, 60, 180*ms, WaveSine, rate),
		), 0.3)
	case core.SoundPropeller:
		return withVolume(newTone(180, 260, 400*ms, WaveSquare, rate), 0.15)
	case core.SoundJetpack:
		return withVolume(beep.Mix(
			newTone(0, 0, 500*ms, WaveNoise, rate),
			newTone(90, 140, 500*ms, WaveSine, rate),
		), 0.25)
	case core.SoundStomp:
		return withVolume(newTone(220, 80, 120*ms, WaveSquare, rate), 0.3)
	case core.SoundFall:
		return withVolume(newTone(880, 110, 700*ms, WaveTriangle, rate), 0.3)
	default:
		return nil
	}
}
