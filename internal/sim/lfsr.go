package sim

// SeedValue is the power-on value of the sequence generator. It is also the
// value the generator falls back to should its state ever reach zero, the one
// value a feedback shift register cannot leave on its own.
const SeedValue uint32 = 0x2048FAFA

// LFSR is the 32-bit feedback shift register that drives the color sequence.
// Feedback is the XOR of bits 31, 21, 1 and 0; each step shifts the value
// left by one and inserts the feedback bit at position 0.
//
// The register is total: any 32-bit value, including zero, has a defined next
// state. It is stepped at most once per clock tick; the controller realizes
// multi-step advances by holding Enable across consecutive ticks.
type LFSR struct {
	value uint32
}

// NewLFSR returns a generator holding the power-on seed.
func NewLFSR() *LFSR {
	return &LFSR{value: SeedValue}
}

// Value returns the register contents as of the last completed tick.
func (l *LFSR) Value() uint32 {
	return l.value
}

// Color returns the low two bits of the register, the color index the
// controller assigns to the current sequence position.
func (l *LFSR) Color() uint8 {
	return uint8(l.value & 3)
}

// Reset forces the register back to the power-on seed.
func (l *LFSR) Reset() {
	l.value = SeedValue
}

// LFSRControl carries the control lines the controller drives each tick.
type LFSRControl struct {
	Enable     bool   // perform one feedback shift
	LoadEnable bool   // adopt LoadValue instead of shifting
	LoadValue  uint32 // value to load when LoadEnable is set
}

// Tick advances the register by one clock. Priority, highest first:
// zero-reseed, load, shift, hold.
func (l *LFSR) Tick(ctl LFSRControl) {
	switch {
	case l.value == 0:
		l.value = SeedValue
	case ctl.LoadEnable:
		l.value = ctl.LoadValue
	case ctl.Enable:
		fb := (l.value >> 31) ^ (l.value >> 21) ^ (l.value >> 1) ^ l.value
		l.value = l.value<<1 | (fb & 1)
	}
}
