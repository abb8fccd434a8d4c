// Package sim is a tick-accurate simulation of the Simon Says circuit: a
// 32-bit feedback shift register for the color sequence, a nine-state game
// controller with a millisecond timebase, a square-wave tone generator and a
// multiplexed two-digit seven-segment score display.
//
// The whole circuit advances as one synchronous unit. Each Tick call samples
// the input pins once, evaluates every component against the state left by
// the previous tick, and commits the new state before returning the output
// pins. There is no other way to mutate the simulation.
package sim

// Inputs are the circuit's input pins, sampled once per tick.
type Inputs struct {
	Button    uint8 // 4-bit, one-hot button lines
	SegInvert bool  // segment/digit-select polarity
}

// Outputs are the circuit's output pins as of the completed tick.
type Outputs struct {
	LED         uint8 // 4-bit, one-hot lit color
	Sound       bool  // 1-bit square-wave audio line
	Segments    uint8 // 7-bit segment pattern
	DigitSelect uint8 // 2-bit digit select
}

// Circuit wires the controller to the generator, tone and display and steps
// them in lockstep.
type Circuit struct {
	ticksPerMilli uint16

	ctrl    *Controller
	lfsr    *LFSR
	tone    *ToneGenerator
	display *ScoreDisplay

	ticks uint64
}

// NewCircuit returns a freshly reset circuit with the given timebase.
// A ticksPerMilli of zero is treated as one tick per millisecond.
func NewCircuit(ticksPerMilli uint16) *Circuit {
	c := &Circuit{
		ctrl:    NewController(),
		lfsr:    NewLFSR(),
		tone:    NewToneGenerator(),
		display: NewScoreDisplay(),
	}
	c.SetTicksPerMilli(ticksPerMilli)
	return c
}

// SetTicksPerMilli changes the timebase. Takes effect on the next tick.
func (c *Circuit) SetTicksPerMilli(tpm uint16) {
	if tpm == 0 {
		tpm = 1
	}
	c.ticksPerMilli = tpm
}

// TicksPerMilli returns the configured timebase.
func (c *Circuit) TicksPerMilli() uint16 { return c.ticksPerMilli }

// Ticks returns the number of ticks since the last reset.
func (c *Circuit) Ticks() uint64 { return c.ticks }

// Controller exposes the game controller for observation.
func (c *Circuit) Controller() *Controller { return c.ctrl }

// Generator exposes the sequence generator for observation.
func (c *Circuit) Generator() *LFSR { return c.lfsr }

// Score returns the displayed score 0-99.
func (c *Circuit) Score() int { return c.display.Score() }

// Reset asserts the synchronous reset line: every component returns to its
// fixed initial value, overriding all other logic.
func (c *Circuit) Reset() {
	c.ctrl.Reset()
	c.lfsr.Reset()
	c.tone.Reset()
	c.display.Reset()
	c.ticks = 0
}

// Tick advances the circuit by one clock and returns the output pins.
//
// The controller computes its control lines from the generator value of the
// previous tick, then every component commits. No component observes a
// sibling's freshly written state within the same tick.
func (c *Circuit) Tick(in Inputs) Outputs {
	lctl, dctl := c.ctrl.Tick(in.Button, c.ticksPerMilli, c.lfsr.Value())
	dctl.Invert = in.SegInvert

	c.lfsr.Tick(lctl)
	c.tone.SetFreq(uint32(c.ctrl.ToneFreq()))
	c.tone.Tick(c.ticksPerMilli)
	c.display.Tick(dctl)

	c.ticks++
	return Outputs{
		LED:         c.ctrl.LED(),
		Sound:       c.tone.Out(),
		Segments:    c.display.Segments(),
		DigitSelect: c.display.DigitSelect(),
	}
}

// Run advances the circuit by n ticks with the same input held stable,
// returning the outputs of the final tick.
func (c *Circuit) Run(n int, in Inputs) Outputs {
	var out Outputs
	for range n {
		out = c.Tick(in)
	}
	return out
}

// RunMillis advances the circuit by ms simulated milliseconds.
func (c *Circuit) RunMillis(ms int, in Inputs) Outputs {
	return c.Run(ms*int(c.ticksPerMilli), in)
}
