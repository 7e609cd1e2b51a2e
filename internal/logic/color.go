package logic

import colorful "github.com/lucasb-eyer/go-colorful"

// All helpers in this file work in the 8-bit domain [0,255]. A fraction f
// represents f/256, so 0 is "none" and 255 is "almost all".

var (
	Black  = RGB{}
	White  = RGB{255, 255, 255}
	Green  = RGB{0, 128, 0}
	Yellow = RGB{255, 255, 0}
)

// Scale8 scales i by s/256, mapping 255*255 back to 255.
func Scale8(i, s uint8) uint8 {
	return uint8((uint16(i) * (1 + uint16(s))) >> 8)
}

// QAdd8 adds with saturation at 255.
func QAdd8(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Lerp8by8 interpolates between a and b by frac.
func Lerp8by8(a, b, frac uint8) uint8 {
	if b > a {
		return a + Scale8(b-a, frac)
	}
	return a - Scale8(a-b, frac)
}

// Map8 maps in from [0,255] onto [lo,hi].
func Map8(in, lo, hi uint8) uint8 {
	return lo + Scale8(in, hi-lo)
}

// sin8 segment table: interleaved base and slope (x16) per 16-step section.
var sinSegments = [8]uint8{0, 49, 49, 41, 90, 27, 117, 10}

// Sin8 approximates 128 + 127*sin(2*pi*theta/256) with a piecewise-linear table.
// Sin8(0) = 128, Sin8(64) = 255, Sin8(128) = 128, Sin8(192) = 1.
func Sin8(theta uint8) uint8 {
	offset := theta
	if theta&0x40 != 0 {
		offset = 255 - offset
	}
	offset &= 0x3f

	sec := offset & 0x0f
	if theta&0x40 != 0 {
		sec++
	}

	section := offset >> 4
	b := int(sinSegments[section*2])
	m16 := int(sinSegments[section*2+1])
	y := (m16*int(sec))>>4 + b
	if theta&0x80 != 0 {
		y = -y
	}
	return uint8(y + 128)
}

// HalfWave8 returns one positive half-cycle of a sine over theta in [0,128),
// rising from 0 to ~255 and back to 0.
func HalfWave8(theta uint8) uint8 {
	if theta >= 128 {
		return 0
	}
	v := (int(Sin8(theta)) - 128) * 2
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// Fract8 returns 256*(t-a)/(b-a) truncated. Callers must ensure a <= t < b.
func Fract8(t, a, b uint32) uint8 {
	return uint8(256 * uint64(t-a) / uint64(b-a))
}

// FadeToBlackBy dims c by amount/256.
func (c RGB) FadeToBlackBy(amount uint8) RGB {
	keep := 255 - amount
	return RGB{Scale8(c.R, keep), Scale8(c.G, keep), Scale8(c.B, keep)}
}

// Add is a per-channel saturating add.
func (c RGB) Add(o RGB) RGB {
	return RGB{QAdd8(c.R, o.R), QAdd8(c.G, o.G), QAdd8(c.B, o.B)}
}

// Lerp8 moves c toward o by frac.
func (c RGB) Lerp8(o RGB, frac uint8) RGB {
	return RGB{
		Lerp8by8(c.R, o.R, frac),
		Lerp8by8(c.G, o.G, frac),
		Lerp8by8(c.B, o.B, frac),
	}
}

// Luma is a cheap brightness estimate used for ordering colors.
func (c RGB) Luma() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// Blend mixes a and b, with amount 0 giving a and 255 giving almost b.
func Blend(a, b RGB, amount uint8) RGB {
	return a.Lerp8(b, amount)
}

// Gray returns an uncolored cell of the given value.
func Gray(v uint8) RGB {
	return RGB{v, v, v}
}

// Hue returns a fully saturated color for an 8-bit hue.
func Hue(h uint8) RGB {
	r, g, b := colorful.Hsv(float64(h)*360/256, 1, 1).RGB255()
	return RGB{r, g, b}
}
