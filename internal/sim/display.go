package sim

// Seven-segment encodings, bit 0 = segment a through bit 6 = segment g.
// Any index outside 0-9 renders blank; index 15 is the explicit "display
// disabled" sentinel.
var segDigits = [16]uint8{
	0x3F, // 0
	0x06, // 1
	0x5B, // 2
	0x4F, // 3
	0x66, // 4
	0x6D, // 5
	0x7D, // 6
	0x07, // 7
	0x7F, // 8
	0x6F, // 9
}

const blankDigit = 15

// Digit select lines, active high unless inverted.
const (
	selOnes = 0b01
	selTens = 0b10
)

// ScoreDisplay is the two-digit decimal score counter and its time-division
// multiplexed seven-segment driver. The two digits alternate on every tick;
// a real display refreshed this fast shows both at once.
type ScoreDisplay struct {
	ones uint8
	tens uint8

	tensActive bool

	segments    uint8
	digitSelect uint8
}

// NewScoreDisplay returns a display at zero, ones digit active first.
func NewScoreDisplay() *ScoreDisplay {
	return &ScoreDisplay{}
}

// DisplayControl carries the control lines the controller drives each tick.
type DisplayControl struct {
	Reset     bool // clear the score to 00
	Enable    bool // drive digits; blank when false
	Increment bool // one-tick pulse, add 1 to the score
	Invert    bool // flip segment and digit-select polarity
}

// Score returns the displayed value 0-99.
func (d *ScoreDisplay) Score() int {
	return int(d.tens)*10 + int(d.ones)
}

// Segments returns the 7-bit segment pattern as of the last tick.
func (d *ScoreDisplay) Segments() uint8 {
	return d.segments
}

// DigitSelect returns the 2-bit digit select code as of the last tick.
// Bit 0 selects the ones digit, bit 1 the tens digit.
func (d *ScoreDisplay) DigitSelect() uint8 {
	return d.digitSelect
}

// Reset clears the counter and output registers.
func (d *ScoreDisplay) Reset() {
	*d = ScoreDisplay{}
}

// Tick advances the display by one clock: applies reset/increment, flips the
// active digit and refreshes the output registers.
func (d *ScoreDisplay) Tick(ctl DisplayControl) {
	switch {
	case ctl.Reset:
		d.ones = 0
		d.tens = 0
	case ctl.Increment:
		if d.ones == 9 {
			d.ones = 0
			if d.tens == 9 {
				d.tens = 0 // 99 wraps to 00, silently
			} else {
				d.tens++
			}
		} else {
			d.ones++
		}
	}

	d.tensActive = !d.tensActive

	value := uint8(blankDigit)
	sel := uint8(selOnes)
	if ctl.Enable {
		if d.tensActive {
			value = d.tens
			sel = selTens
		} else {
			value = d.ones
		}
	} else if d.tensActive {
		sel = selTens
	}

	seg := segDigits[value&0x0F]
	if ctl.Invert {
		seg ^= 0x7F
		sel ^= 0b11
	}
	d.segments = seg
	d.digitSelect = sel
}
