package sim

// ToneGenerator converts a requested frequency into a 1-bit square wave using
// an integer phase accumulator, the same numerically-controlled-oscillator
// trick the classic sound chips use: add the frequency to an accumulator once
// per tick and flip the output each time it crosses half the tick rate,
// carrying the remainder so long-run pitch stays accurate.
type ToneGenerator struct {
	freq uint32 // requested frequency in Hz, 0 = silence
	acc  uint32
	out  bool
}

// NewToneGenerator returns a silent generator.
func NewToneGenerator() *ToneGenerator {
	return &ToneGenerator{}
}

// SetFreq sets the requested output frequency in Hz. Zero silences the line.
func (t *ToneGenerator) SetFreq(freq uint32) {
	t.freq = freq
}

// Freq returns the currently requested frequency.
func (t *ToneGenerator) Freq() uint32 {
	return t.freq
}

// Out returns the state of the audio line as of the last completed tick.
func (t *ToneGenerator) Out() bool {
	return t.out
}

// Reset silences the line and clears the accumulator.
func (t *ToneGenerator) Reset() {
	t.freq = 0
	t.acc = 0
	t.out = false
}

// Tick advances the oscillator by one clock. ticksPerMilli is the timebase
// and may change between ticks; the new value takes effect immediately.
func (t *ToneGenerator) Tick(ticksPerMilli uint16) {
	if t.freq == 0 {
		t.out = false
		return
	}
	half := uint32(ticksPerMilli) * 1000 / 2
	if half == 0 {
		return
	}
	t.acc += t.freq
	if t.acc >= half {
		t.acc -= half
		t.out = !t.out
	}
}
