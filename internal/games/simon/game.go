// Package simon adapts the simulated Simon Says circuit to the platform's
// Game interface. The circuit is the only source of game behavior; this
// package just clocks it, feeds it button presses and draws its pins.
package simon

import (
	"github.com/arcadeworks/simon-tui/internal/core"
	"github.com/arcadeworks/simon-tui/internal/registry"
	"github.com/arcadeworks/simon-tui/internal/sim"
)

// Game drives one Circuit instance at real-time speed: every host frame it
// advances the simulation by ticksPerFrame clock ticks.
type Game struct {
	cfg     core.RuntimeConfig
	circuit *sim.Circuit

	ticksPerFrame int

	// Terminals report key presses but never releases, so a press asserts
	// the button lines for a fixed number of simulated ticks and then
	// lets go.
	heldButton uint8
	holdTicks  int

	// Persistence-of-vision latch: the display drives one digit per tick,
	// the renderer shows the last pattern seen on each.
	segLatch [2]uint8

	led   uint8
	sound bool
}

func init() {
	registry.Register("simon", func() registry.Game {
		return New()
	})
}

// New creates a simon game. Reset must be called before stepping.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "simon"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Simon Says"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.TicksPerMilli == 0 {
		cfg.TicksPerMilli = 50
	}
	if cfg.HoldMillis <= 0 {
		cfg.HoldMillis = 150
	}
	g.cfg = cfg
	g.circuit = sim.NewCircuit(cfg.TicksPerMilli)
	g.ticksPerFrame = int(cfg.TicksPerMilli) * 1000 / cfg.TickRate
	if g.ticksPerFrame < 1 {
		g.ticksPerFrame = 1
	}
	g.heldButton = 0
	g.holdTicks = 0
	g.segLatch = [2]uint8{}
	g.led = 0
	g.sound = false
}

// Circuit exposes the simulated circuit for observation.
func (g *Game) Circuit() *sim.Circuit {
	return g.circuit
}

// Step advances the circuit by one host frame's worth of clock ticks.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.circuit.Reset()
		g.heldButton = 0
		g.holdTicks = 0
		g.segLatch = [2]uint8{}
	}

	for a := core.ActionButton0; a <= core.ActionButton3; a++ {
		if in.Has(a) {
			idx, _ := a.ButtonIndex()
			g.heldButton = 1 << idx
			g.holdTicks = g.cfg.HoldMillis * int(g.cfg.TicksPerMilli)
			break
		}
	}

	for range g.ticksPerFrame {
		var btn uint8
		if g.holdTicks > 0 {
			btn = g.heldButton
			g.holdTicks--
		}
		out := g.circuit.Tick(sim.Inputs{Button: btn, SegInvert: g.cfg.SegInvert})
		g.latchDigits(out)
		g.led = out.LED
		g.sound = out.Sound
	}

	return core.StepResult{State: g.State()}
}

// latchDigits records the most recent segment pattern per digit. The select
// and segment lines flip polarity together under SegInvert; the latch keys
// off the physical active level either way.
func (g *Game) latchDigits(out sim.Outputs) {
	sel := out.DigitSelect
	if g.cfg.SegInvert {
		sel ^= 0b11
	}
	if sel&0b01 != 0 {
		g.segLatch[0] = out.Segments
	}
	if sel&0b10 != 0 {
		g.segLatch[1] = out.Segments
	}
}

// Seed returns the sequence seed of the current run, for score records.
func (g *Game) Seed() uint32 {
	return g.circuit.Controller().Seed()
}

// State returns the current game state as seen on the circuit's pins.
func (g *Game) State() core.GameState {
	ctrl := g.circuit.Controller()
	return core.GameState{
		Score:    g.circuit.Score(),
		GameOver: ctrl.State() == sim.StateGameOver,
		Phase:    ctrl.State().String(),
		ToneHz:   int(ctrl.ToneFreq()),
	}
}
