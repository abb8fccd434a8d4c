package sim

import "testing"

func TestDisplayScoreWrap(t *testing.T) {
	d := NewScoreDisplay()
	for i := 1; i <= 99; i++ {
		d.Tick(DisplayControl{Enable: true, Increment: true})
		if d.Score() != i {
			t.Fatalf("after %d increments score = %d", i, d.Score())
		}
	}
	// The hundredth increment wraps both digits through 9->0.
	d.Tick(DisplayControl{Enable: true, Increment: true})
	if d.Score() != 0 {
		t.Fatalf("score after 100 increments = %d, want 0", d.Score())
	}
}

func TestDisplayMultiplexing(t *testing.T) {
	d := NewScoreDisplay()
	// Bring the score to 42.
	for i := 0; i < 42; i++ {
		d.Tick(DisplayControl{Enable: true, Increment: true})
	}

	var ones, tens uint8
	seen := 0
	for i := 0; i < 4; i++ {
		d.Tick(DisplayControl{Enable: true})
		switch d.DigitSelect() {
		case selOnes:
			ones = d.Segments()
			seen++
		case selTens:
			tens = d.Segments()
			seen++
		default:
			t.Fatalf("digit select = %#02b, want one-hot", d.DigitSelect())
		}
	}
	if seen != 4 {
		t.Fatalf("expected a digit selected on every tick, got %d/4", seen)
	}
	if ones != segDigits[2] {
		t.Errorf("ones segments = %#02x, want %#02x", ones, segDigits[2])
	}
	if tens != segDigits[4] {
		t.Errorf("tens segments = %#02x, want %#02x", tens, segDigits[4])
	}
}

func TestDisplayAlternatesEveryTick(t *testing.T) {
	d := NewScoreDisplay()
	d.Tick(DisplayControl{Enable: true})
	prev := d.DigitSelect()
	for i := 0; i < 10; i++ {
		d.Tick(DisplayControl{Enable: true})
		if d.DigitSelect() == prev {
			t.Fatalf("tick %d: digit select did not alternate", i)
		}
		prev = d.DigitSelect()
	}
}

func TestDisplayBlankWhenDisabled(t *testing.T) {
	d := NewScoreDisplay()
	d.Tick(DisplayControl{Enable: true, Increment: true})
	for i := 0; i < 4; i++ {
		d.Tick(DisplayControl{Enable: false})
		if d.Segments() != 0x00 {
			t.Fatalf("disabled display segments = %#02x, want blank", d.Segments())
		}
	}
}

func TestDisplayInvert(t *testing.T) {
	d := NewScoreDisplay()
	for i := 0; i < 4; i++ {
		d.Tick(DisplayControl{Enable: true, Invert: true})
		seg := d.Segments() ^ 0x7F
		if seg != segDigits[0] {
			t.Fatalf("inverted segments decode to %#02x, want %#02x", seg, segDigits[0])
		}
		sel := d.DigitSelect() ^ 0b11
		if sel != selOnes && sel != selTens {
			t.Fatalf("inverted digit select = %#02b", d.DigitSelect())
		}
	}
}

func TestDisplayResetBeatsIncrement(t *testing.T) {
	d := NewScoreDisplay()
	for i := 0; i < 7; i++ {
		d.Tick(DisplayControl{Enable: true, Increment: true})
	}
	d.Tick(DisplayControl{Enable: true, Increment: true, Reset: true})
	if d.Score() != 0 {
		t.Fatalf("score after reset = %d, want 0", d.Score())
	}
}
