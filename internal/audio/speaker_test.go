package audio

import (
	"testing"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(48000)

func stream(g *SquareGenerator, n int) [][2]float64 {
	buf := make([][2]float64, n)
	got, ok := g.Stream(buf)
	if !ok || got != n {
		panic("generator stopped streaming")
	}
	return buf
}

func TestGeneratorSilentAtZero(t *testing.T) {
	g := NewSquareGenerator(testRate)

	for _, s := range stream(g, 4800) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("nonzero sample while silent: %v", s)
		}
	}
}

func TestGeneratorPeriodMatchesFrequency(t *testing.T) {
	g := NewSquareGenerator(testRate)
	g.SetFreq(480) // 100 samples per cycle at 48 kHz

	buf := stream(g, 48000)

	// Skip the attack ramp, then count sign flips over one second.
	flips := 0
	prev := buf[1000][0] > 0
	for _, s := range buf[1000:] {
		cur := s[0] > 0
		if cur != prev {
			flips++
			prev = cur
		}
	}

	// 480 Hz means 960 half-periods per second.
	want := 960 * (48000 - 1000) / 48000
	if flips < want-4 || flips > want+4 {
		t.Errorf("sign flips = %d, want about %d", flips, want)
	}
}

func TestGeneratorRampsInsteadOfStepping(t *testing.T) {
	g := NewSquareGenerator(testRate)
	g.SetFreq(200)

	buf := stream(g, 2000)
	for i := 1; i < len(buf); i++ {
		delta := buf[i][0] - buf[i-1][0]
		if delta < 0 {
			delta = -delta
		}
		if delta > 0.006 {
			t.Fatalf("sample %d jumped by %f", i, delta)
		}
	}
}

func TestGeneratorStopsOnSilence(t *testing.T) {
	g := NewSquareGenerator(testRate)
	g.SetFreq(440)
	stream(g, 4800)

	g.SetFreq(0)
	buf := stream(g, 4800)

	tail := buf[len(buf)-1]
	if tail[0] != 0 || tail[1] != 0 {
		t.Errorf("output did not settle to silence: %v", tail)
	}
}

func TestSpeakerMuteWithoutDevice(t *testing.T) {
	s := NewSpeaker(48000)

	if s.Muted() {
		t.Error("new speaker starts muted")
	}
	if !s.ToggleMute() {
		t.Error("ToggleMute did not report muted")
	}
	if s.ToggleMute() {
		t.Error("second toggle did not unmute")
	}

	// These must be safe before Initialize.
	s.SetTone(392)
	s.SetTone(-5)
	if got := s.gen.Freq(); got != 0 {
		t.Errorf("negative tone clamped to %d, want 0", got)
	}
	s.Cleanup()
}
