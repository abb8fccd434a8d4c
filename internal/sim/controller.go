package sim

// State identifies the controller's current phase.
type State uint8

const (
	StatePowerOn State = iota
	StateInit
	StatePlay
	StatePlayWait
	StateUserWait
	StateWaitButtonRelease
	StateUserInput
	StateNextLevel
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StatePowerOn:
		return "power-on"
	case StateInit:
		return "init"
	case StatePlay:
		return "play"
	case StatePlayWait:
		return "play-wait"
	case StateUserWait:
		return "user-wait"
	case StateWaitButtonRelease:
		return "wait-release"
	case StateUserInput:
		return "user-input"
	case StateNextLevel:
		return "next-level"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// MaxGameLen is the nominal sequence length cap. The original design never
// enforces it with a transition guard; seqLength simply keeps growing until
// its 8-bit register wraps, and that behavior is kept.
const MaxGameLen = 100

// GameTones maps a color index to its tone frequency in Hz.
var GameTones = [4]uint16{196, 262, 330, 392}

// SuccessTones is the round-cleared jingle, one entry per 150 ms. The final
// entry is silence.
var SuccessTones = [7]uint16{523, 587, 659, 698, 784, 880, 0}

// GameOverTones is the descending alarm, one entry per 300 ms, followed by a
// one-second warble.
var GameOverTones = [4]uint16{392, 330, 262, 196}

// Warble frequencies for the game-over trembling tone, alternating on bit 7
// of the millisecond counter.
const (
	warbleLow  = 180
	warbleHigh = 240
)

const debounceTicks = 10

// Controller is the game's finite-state machine. On every tick it samples
// the button input, advances the shared millisecond timer and drives the
// generator, tone and score-display control lines.
//
// A single millisecond counter is shared across states; every timed guard
// zeroes it when it fires, which is exactly how the observed timing arises.
type Controller struct {
	state State

	// Millisecond timebase: prescale counts ticks up to ticksPerMilli, then
	// millis advances by one.
	prescale uint16
	millis   uint32

	seqLength  uint8
	seqCounter uint8

	userInput      uint8 // decoded button index 0-3
	prevBtn        uint8 // raw button value latched at press
	buttonReleased bool
	debounce       uint8

	toneIndex  uint8
	lfsrCycles uint8 // extra ticks to keep the generator's enable asserted
	freeRun    bool  // generator shifts on every tick (PowerOn, GameOver)
	seed       uint32

	led           uint8
	toneFreq      uint16
	displayEnable bool
}

// NewController returns a controller in the power-on state.
func NewController() *Controller {
	c := &Controller{}
	c.Reset()
	return c
}

// Reset forces the fixed reset vector: PowerOn with the generator
// free-running and the display blanked.
func (c *Controller) Reset() {
	*c = Controller{
		state:     StatePowerOn,
		seqLength: 1,
		freeRun:   true,
	}
}

// State returns the active state.
func (c *Controller) State() State { return c.state }

// LED returns the 4-bit LED output as of the last tick.
func (c *Controller) LED() uint8 { return c.led }

// ToneFreq returns the frequency currently requested from the tone
// generator, 0 when silent.
func (c *Controller) ToneFreq() uint16 { return c.toneFreq }

// SeqLength returns the current target sequence length.
func (c *Controller) SeqLength() uint8 { return c.seqLength }

// DisplayEnabled reports whether the score display is driven.
func (c *Controller) DisplayEnabled() bool { return c.displayEnable }

// Seed returns the generator value captured when the current game started.
// Zero until the first game begins.
func (c *Controller) Seed() uint32 { return c.seed }

// resetTimer zeroes the shared millisecond counter and its prescaler, the
// action every state-entry point performs.
func (c *Controller) resetTimer() {
	c.prescale = 0
	c.millis = 0
}

// decodeButton maps a one-hot button pattern to its index. Any other nonzero
// pattern is rejected.
func decodeButton(btn uint8) (uint8, bool) {
	switch btn {
	case 0b0001:
		return 0, true
	case 0b0010:
		return 1, true
	case 0b0100:
		return 2, true
	case 0b1000:
		return 3, true
	}
	return 0, false
}

// Tick advances the controller by one clock. lfsrValue is the generator's
// value as of the previous tick; button is the sampled 4-bit input. The
// returned control lines are applied to the generator and display on this
// same tick.
func (c *Controller) Tick(button uint8, ticksPerMilli uint16, lfsrValue uint32) (LFSRControl, DisplayControl) {
	if ticksPerMilli == 0 {
		ticksPerMilli = 1
	}

	// Millisecond timebase.
	if c.prescale >= ticksPerMilli-1 {
		c.prescale = 0
		c.millis++
	} else {
		c.prescale++
	}

	var lctl LFSRControl
	var dctl DisplayControl

	if c.freeRun {
		lctl.Enable = true
	}
	if c.lfsrCycles > 0 {
		lctl.Enable = true
		c.lfsrCycles--
	}

	switch c.state {
	case StatePowerOn:
		// Rotating wait pattern, one step every 256 ms.
		c.led = 1 << ((c.millis >> 8) & 3)
		if button != 0 {
			c.led = 0
			c.displayEnable = true
			c.freeRun = false
			c.enterInit()
		}

	case StateInit:
		if c.millis == 500 {
			dctl.Reset = true
			c.seed = lfsrValue
			c.resetTimer()
			c.state = StatePlay
		}

	case StatePlay:
		color := uint8(lfsrValue & 3)
		c.led = 1 << color
		c.toneFreq = GameTones[color]
		// Advance two positions worth of generator state for the next color.
		lctl.Enable = true
		c.lfsrCycles = 1
		c.resetTimer()
		c.state = StatePlayWait

	case StatePlayWait:
		if c.millis == 300 {
			c.toneFreq = 0
			c.led = 0
		}
		if c.millis == 400 {
			if c.seqCounter+1 == c.seqLength {
				lctl.LoadEnable = true
				lctl.LoadValue = c.seed
				c.seqCounter = 0
				c.resetTimer()
				c.state = StateUserWait
			} else {
				c.seqCounter++
				c.resetTimer()
				c.state = StatePlay
			}
		}

	case StateUserWait:
		c.led = 0
		if button != 0 {
			if idx, ok := decodeButton(button); ok {
				c.userInput = idx
				c.prevBtn = button
				c.buttonReleased = false
				c.resetTimer()
				c.state = StateUserInput
			}
		}

	case StateUserInput:
		c.led = 1 << c.userInput
		c.toneFreq = GameTones[c.userInput]
		if c.millis > 50 && button != c.prevBtn {
			c.buttonReleased = true
		}
		if c.millis == 300 {
			c.toneFreq = 0
			c.led = 0
			expected := uint8(lfsrValue & 3)
			switch {
			case c.userInput != expected:
				c.freeRun = true
				c.toneIndex = 0
				c.resetTimer()
				c.state = StateGameOver
			case c.seqCounter+1 == c.seqLength:
				dctl.Increment = true
				c.seqLength++
				lctl.LoadEnable = true
				lctl.LoadValue = c.seed
				c.seqCounter = 0
				c.toneIndex = 0
				c.resetTimer()
				c.state = StateNextLevel
			default:
				lctl.Enable = true
				c.lfsrCycles = 1
				c.seqCounter++
				c.resetTimer()
				if c.buttonReleased && button == 0 {
					c.state = StateUserWait
				} else {
					c.debounce = 0
					c.state = StateWaitButtonRelease
				}
			}
		}

	case StateWaitButtonRelease:
		if button != c.prevBtn {
			c.debounce++
			if c.debounce >= debounceTicks {
				c.resetTimer()
				c.state = StateUserWait
			}
		} else {
			c.debounce = 0
		}

	case StateNextLevel:
		if c.toneIndex < uint8(len(SuccessTones)) {
			c.toneFreq = SuccessTones[c.toneIndex]
		}
		if c.millis == 150 {
			c.resetTimer()
			c.toneIndex++
			if c.toneIndex == 7 {
				c.toneFreq = 0
				c.seqCounter = 0
				c.state = StatePlay
			}
		}

	case StateGameOver:
		// Blink the offending LED off and on every 128 ms.
		if (c.millis>>7)&1 == 0 {
			c.led = 1 << c.userInput
		} else {
			c.led = 0
		}
		switch {
		case c.toneIndex < 4:
			c.toneFreq = GameOverTones[c.toneIndex]
			if c.millis == 300 {
				c.resetTimer()
				c.toneIndex++
			}
		case c.toneIndex == 4:
			// One second of trembling tone.
			if (c.millis>>7)&1 == 0 {
				c.toneFreq = warbleHigh
			} else {
				c.toneFreq = warbleLow
			}
			if c.millis == 1000 {
				c.resetTimer()
				c.toneFreq = 0
				c.toneIndex = 7
			}
		default:
			c.toneFreq = 0
			if button != 0 {
				c.led = 0
				c.freeRun = false
				c.enterInit()
			}
		}
	}

	dctl.Enable = c.displayEnable
	return lctl, dctl
}

// enterInit resets the round registers and moves to Init. Shared by the
// PowerOn and GameOver exits.
func (c *Controller) enterInit() {
	c.seqLength = 1
	c.seqCounter = 0
	c.toneIndex = 0
	c.toneFreq = 0
	c.resetTimer()
	c.state = StateInit
}
