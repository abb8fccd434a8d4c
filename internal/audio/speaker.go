// Package audio plays the circuit's tone output through the host speaker.
// The circuit already decides pitch and timing; this package only turns the
// requested frequency into an audible square wave.
package audio

import (
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const toneAmplitude = 0.18

// Speaker owns the audio device and a single continuously running square
// wave voice. Callers update the voice frequency once per host frame.
type Speaker struct {
	mu          sync.Mutex
	sr          beep.SampleRate
	mixer       *beep.Mixer
	ctrl        *beep.Ctrl
	gen         *SquareGenerator
	initialized bool
	muted       bool
}

// NewSpeaker creates a speaker for the given sample rate. Initialize must
// be called before any sound is produced.
func NewSpeaker(sampleRate int) *Speaker {
	sr := beep.SampleRate(sampleRate)
	return &Speaker{
		sr:    sr,
		mixer: &beep.Mixer{},
		gen:   NewSquareGenerator(sr),
	}
}

// Initialize opens the audio device and starts the voice.
func (s *Speaker) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(s.sr, s.sr.N(time.Millisecond*50)); err != nil {
		return err
	}

	s.ctrl = &beep.Ctrl{Streamer: s.gen}
	s.mixer.Add(s.ctrl)
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// SetTone sets the voice frequency in Hz. Zero silences the voice.
// Safe to call from the render loop while the device streams.
func (s *Speaker) SetTone(hz int) {
	if hz < 0 {
		hz = 0
	}
	s.gen.SetFreq(uint32(hz))
}

// ToggleMute flips the mute state and reports the new value.
func (s *Speaker) ToggleMute() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.muted = !s.muted
	if s.ctrl != nil {
		s.ctrl.Paused = s.muted
	}
	return s.muted
}

// Muted reports whether output is muted.
func (s *Speaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// Cleanup silences the voice and releases the mixer. beep has no device
// close, so the speaker stays open but silent.
func (s *Speaker) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.gen.SetFreq(0)
	if s.ctrl != nil {
		s.ctrl.Paused = true
	}
	s.mixer.Clear()
	s.initialized = false
}

// SquareGenerator is an endless square wave streamer with a frequency that
// can be changed while streaming. A short linear ramp on level changes
// keeps note edges from clicking.
type SquareGenerator struct {
	sr   beep.SampleRate
	freq atomic.Uint32

	phase float64
	level float64
}

// NewSquareGenerator creates a silent square wave generator.
func NewSquareGenerator(sr beep.SampleRate) *SquareGenerator {
	return &SquareGenerator{sr: sr}
}

// SetFreq updates the output frequency in Hz. Zero means silence.
func (g *SquareGenerator) SetFreq(hz uint32) {
	g.freq.Store(hz)
}

// Freq returns the current frequency in Hz.
func (g *SquareGenerator) Freq() uint32 {
	return g.freq.Load()
}

func (g *SquareGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	const ramp = 0.005

	for i := range samples {
		hz := float64(g.freq.Load())

		target := 0.0
		if hz > 0 {
			g.phase += hz / float64(g.sr)
			if g.phase >= 1.0 {
				g.phase -= math.Floor(g.phase)
			}
			if g.phase < 0.5 {
				target = toneAmplitude
			} else {
				target = -toneAmplitude
			}
		} else {
			g.phase = 0
		}

		switch {
		case g.level < target-ramp:
			g.level += ramp
		case g.level > target+ramp:
			g.level -= ramp
		default:
			g.level = target
		}

		samples[i][0] = g.level
		samples[i][1] = g.level
	}
	return len(samples), true
}

func (g *SquareGenerator) Err() error {
	return nil
}
