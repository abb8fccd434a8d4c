package simon

import (
	"fmt"

	"github.com/arcadeworks/simon-tui/internal/core"
)

// Pad layout constants.
const (
	padW   = 9
	padH   = 4
	padGap = 2
	padY   = 4
)

var padColors = [4]struct {
	lit, dim core.Color
	label    string
}{
	{core.ColorBrightGreen, core.ColorGreen, "1"},
	{core.ColorBrightRed, core.ColorRed, "2"},
	{core.ColorBrightYellow, core.ColorYellow, "3"},
	{core.ColorBrightBlue, core.ColorBlue, "4"},
}

// Render draws the pads, the score display and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextCentered(1, "S I M O N")

	totalW := 4*padW + 3*padGap
	startX := core.Max(0, (dst.Width()-totalW)/2)

	for i := 0; i < 4; i++ {
		x := startX + i*(padW+padGap)
		g.drawPad(dst, x, padY, i)
	}

	g.drawScore(dst, startX, padY+padH+2)
	g.drawHUD(dst, startX)
}

// drawPad draws one colored pad, filled when its LED line is high.
func (g *Game) drawPad(dst *core.Screen, x, y, idx int) {
	p := padColors[idx]
	lit := g.led&(1<<idx) != 0

	fill := '░'
	color := p.dim
	if lit {
		fill = '█'
		color = p.lit
	}
	r := core.NewRect(x, y, padW, padH)
	dst.DrawRect(r, fill, color)
	cx, _ := r.Center()
	dst.DrawTextColor(cx, y+padH, p.label, p.dim)
}

// drawScore renders the two-digit display from the latched segment
// patterns, one glyph per digit, tens on the left.
func (g *Game) drawScore(dst *core.Screen, x, y int) {
	dst.DrawTextColor(x, y+1, "SCORE", core.ColorGray)

	dst.DrawBox(core.NewRect(x+6, y-1, 13, 5))

	tens, ones := g.segLatch[1], g.segLatch[0]
	if g.cfg.SegInvert {
		tens ^= 0x7F
		ones ^= 0x7F
	}
	drawSegments(dst, x+8, y, tens)
	drawSegments(dst, x+14, y, ones)

	if g.sound {
		dst.DrawTextColor(x+21, y+1, "♪", core.ColorBrightWhite)
	}
}

// drawSegments renders a single seven-segment pattern as a 4x3 glyph.
// Bit order follows the pins: a b c d e f g from bit 0 up.
func drawSegments(dst *core.Screen, x, y int, seg uint8) {
	if seg&0x01 != 0 { // a
		dst.DrawText(x+1, y, "__")
	}
	if seg&0x20 != 0 { // f
		dst.Set(x, y+1, '|')
	}
	if seg&0x40 != 0 { // g
		dst.DrawText(x+1, y+1, "__")
	}
	if seg&0x02 != 0 { // b
		dst.Set(x+3, y+1, '|')
	}
	if seg&0x10 != 0 { // e
		dst.Set(x, y+2, '|')
	}
	if seg&0x08 != 0 { // d
		dst.DrawText(x+1, y+2, "__")
	}
	if seg&0x04 != 0 { // c
		dst.Set(x+3, y+2, '|')
	}
}

// drawHUD writes the phase line and contextual key hints.
func (g *Game) drawHUD(dst *core.Screen, x int) {
	st := g.State()
	y := dst.Height() - 3

	dst.DrawTextColor(x, y, fmt.Sprintf("phase: %s", st.Phase), core.ColorGray)

	var hint string
	switch {
	case st.GameOver:
		hint = "game over. any pad: play again  r: reset  q: quit"
	case st.Phase == "power-on":
		hint = "press any pad to start"
	default:
		hint = "pads: 1-4 / hjkl  r: reset  m: mute  q: quit"
	}
	dst.DrawTextColor(x, y+1, hint, core.ColorGray)
}
