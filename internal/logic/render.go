package logic

var (
	// PulseColor is added on top of a cell during its warning pulse.
	PulseColor = RGB{80, 80, 80}
	// FeedbackColor is added to every cell right after a countdown reset.
	FeedbackColor = RGB{50, 50, 50}

	cursorOn  = Gray(200)
	cursorDim = Gray(24)
)

const (
	// NotifyFloor is the pulse depth at the notify threshold. The depth grows
	// to 255 as the interval approaches its end.
	NotifyFloor = 32
	// pulseDivisor sets the warning pulse period to 256*pulseDivisor ms.
	pulseDivisor = 10
	// swatchDim darkens unselected pattern swatches.
	swatchDim = 224
)

// RenderCountDown computes the countdown frame for elapsed time t.
// feedback is the length of the reset flash in milliseconds.
func RenderCountDown(table [NumCells]Interval, t, feedback uint32) Frame {
	var f Frame
	for i, sq := range table {
		f[i] = renderSquare(sq, t)
	}

	if t < feedback {
		amount := HalfWave8(uint8(128 * uint64(t) / uint64(feedback)))
		for i := range f {
			f[i] = Blend(f[i], f[i].Add(FeedbackColor), amount)
		}
	}
	return f
}

func renderSquare(sq Interval, t uint32) RGB {
	switch {
	case t >= sq.End:
		return Black
	case t < sq.Start:
		return sq.Color
	}

	c := sq.Color.FadeToBlackBy(FadeAmount(sq, t))
	if sq.HasNotify() && t >= sq.Notify {
		depth := Lerp8by8(NotifyFloor, 255, Fract8(t, sq.Notify, sq.End))
		c = c.Lerp8(c.Add(PulseColor), Scale8(Sin8(uint8(t/pulseDivisor)), depth))
	}
	return c
}

// FadeAmount is how far toward black the interval has faded at t, 0 before
// the interval starts and 255 from its end on.
func FadeAmount(sq Interval, t uint32) uint8 {
	switch {
	case t < sq.Start:
		return 0
	case t >= sq.End:
		return 255
	}
	return Lerp8by8(0, 255, Fract8(t, sq.Start, sq.End))
}

// RenderConfig computes the configuration frame. Cells 0 and 1 are the
// cursors of the brightness and pattern fields; the active one blinks. The
// remaining cells show the values of the active field. t is the time since
// the last configuration input.
func RenderConfig(s Settings, field Field, t, blink uint32) Frame {
	var f Frame

	f[0], f[1] = cursorDim, cursorDim
	cursor := 0
	if field == FieldPattern {
		cursor = 1
	}
	if blink == 0 || (t/blink)%2 == 0 {
		f[cursor] = cursorOn
	}

	switch field {
	case FieldBrightness:
		f[2], f[3], f[4] = Gray(85), Gray(170), Gray(255)
	case FieldPattern:
		for k, p := range Patterns {
			cell := 2 + k
			if cell >= NumCells {
				break
			}
			c := p.Swatch
			if k != int(s.Pattern) {
				c = c.FadeToBlackBy(swatchDim)
			}
			f[cell] = c
		}
	}
	return f
}
