package sim

import "testing"

func TestToneSilence(t *testing.T) {
	g := NewToneGenerator()
	for i := 0; i < 1000; i++ {
		g.Tick(50)
		if g.Out() {
			t.Fatal("output went high with freq 0")
		}
	}
}

func TestToneTogglePeriod(t *testing.T) {
	// With 1000 ticks per millisecond one tick is a microsecond; a 500 Hz
	// square wave must toggle every 1_000_000 / (2*500) = 1000 ticks.
	g := NewToneGenerator()
	g.SetFreq(500)

	last := g.Out()
	prevToggle := 0
	toggles := 0
	for i := 1; i <= 20000; i++ {
		g.Tick(1000)
		if g.Out() != last {
			last = g.Out()
			if toggles > 0 {
				if got := i - prevToggle; got != 1000 {
					t.Fatalf("toggle %d after %d ticks, want 1000", toggles, got)
				}
			}
			prevToggle = i
			toggles++
		}
	}
	if toggles < 19 {
		t.Fatalf("only %d toggles in 20000 ticks", toggles)
	}
}

func TestToneRemainderCarry(t *testing.T) {
	// 3 Hz at 1 tick/ms: half period is 500 accumulator units, not divisible
	// by 3. Over many toggles the mean period must stay within one tick of
	// the ideal 500/3.
	g := NewToneGenerator()
	g.SetFreq(3)

	last := g.Out()
	firstToggle, lastToggle, toggles := 0, 0, 0
	for i := 1; i <= 200000; i++ {
		g.Tick(1)
		if g.Out() != last {
			last = g.Out()
			if toggles == 0 {
				firstToggle = i
			}
			lastToggle = i
			toggles++
		}
	}
	if toggles < 2 {
		t.Fatal("oscillator never toggled")
	}
	mean := float64(lastToggle-firstToggle) / float64(toggles-1)
	ideal := 500.0 / 3.0
	if mean < ideal-1 || mean > ideal+1 {
		t.Fatalf("mean toggle period %.2f, want %.2f +-1", mean, ideal)
	}
}

func TestToneSilenceDropsOutput(t *testing.T) {
	g := NewToneGenerator()
	g.SetFreq(1000)
	for i := 0; i < 5000; i++ {
		g.Tick(50)
	}
	g.SetFreq(0)
	g.Tick(50)
	if g.Out() {
		t.Fatal("output still high after silencing")
	}
}
