package logic

import "math/rand"

// Pattern is an idle animation. Step renders the next frame and advances the
// pattern's own continuation state.
type Pattern interface {
	Step(f *Frame)
}

// PatternInfo describes a selectable idle animation.
type PatternInfo struct {
	Name string
	// Period is the frame interval in milliseconds.
	Period uint32
	// Swatch is shown in configuration mode to represent the pattern.
	Swatch RGB
	New    func(r *rand.Rand) Pattern
}

// Patterns are the selectable idle animations, indexed by Settings.Pattern.
var Patterns = [...]PatternInfo{
	{Name: "rainbow", Period: 64, Swatch: Hue(0), New: func(*rand.Rand) Pattern { return &Rainbow{Delta: 25} }},
	{Name: "mirror", Period: 64, Swatch: Hue(96), New: func(*rand.Rand) Pattern { return &Mirror{Delta: 40} }},
	{Name: "pop", Period: 16, Swatch: Hue(160), New: func(r *rand.Rand) Pattern { return NewPop(r) }},
}

// Rainbow sweeps the hue wheel across the strip.
type Rainbow struct {
	Hue   uint8
	Delta uint8
}

func (p *Rainbow) Step(f *Frame) {
	for i := range f {
		f[i] = Hue(p.Hue + uint8(i)*p.Delta)
	}
	p.Hue++
}

// Mirror sweeps the hue wheel outward from the center cell, so cells at the
// same distance from the center share a color.
type Mirror struct {
	Hue   uint8
	Delta uint8
}

func (p *Mirror) Step(f *Frame) {
	center := (NumCells - 1) / 2
	for i := range f {
		d := i - center
		if d < 0 {
			d = -d
		}
		f[i] = Hue(p.Hue + uint8(d)*p.Delta)
	}
	p.Hue++
}

// Pop lights one random cell with a random color, fades it out over 255
// steps, then moves to a different cell.
type Pop struct {
	Cell  int
	Color RGB
	Fade  uint8

	rnd    *rand.Rand
	placed bool
}

// NewPop returns a Pop pattern drawing from r.
func NewPop(r *rand.Rand) *Pop {
	return &Pop{rnd: r}
}

func (p *Pop) Step(f *Frame) {
	if !p.placed || p.Fade == 255 {
		p.relocate()
	}
	for i := range f {
		f[i] = Black
	}
	f[p.Cell] = p.Color.FadeToBlackBy(p.Fade)
	p.Fade++
}

func (p *Pop) relocate() {
	if p.placed {
		p.Cell = (p.Cell + 1 + p.rnd.Intn(NumCells-1)) % NumCells
	} else {
		p.Cell = p.rnd.Intn(NumCells)
	}
	p.Color = Hue(uint8(p.rnd.Intn(256)))
	p.Fade = 0
	p.placed = true
}
