package strip

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sweeney/square-timer/internal/logic"
)

const cellGlyph = "██"

// TermStrip draws the strip as one line of colored blocks, redrawn in place.
type TermStrip struct {
	out        io.Writer
	frame      logic.Frame
	brightness uint8
	last       string
}

// NewTermStrip draws on out, usually os.Stdout.
func NewTermStrip(out io.Writer) *TermStrip {
	return &TermStrip{out: out, brightness: 255}
}

// SetFrame stores the pending frame.
func (s *TermStrip) SetFrame(f logic.Frame) {
	s.frame = f
}

// Show redraws the line if the visible output changed.
func (s *TermStrip) Show() error {
	line := s.render()
	if line == s.last {
		return nil
	}
	s.last = line
	if _, err := fmt.Fprint(s.out, "\r"+line); err != nil {
		return fmt.Errorf("draw strip: %w", err)
	}
	return nil
}

func (s *TermStrip) render() string {
	var b strings.Builder
	for _, c := range s.frame {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hexColor(c, s.brightness)))
		b.WriteString(style.Render(cellGlyph))
		b.WriteByte(' ')
	}
	return b.String()
}

// hexColor formats c scaled by brightness as #rrggbb.
func hexColor(c logic.RGB, brightness uint8) string {
	return fmt.Sprintf("#%02x%02x%02x",
		logic.Scale8(c.R, brightness),
		logic.Scale8(c.G, brightness),
		logic.Scale8(c.B, brightness))
}

// SetBrightness scales every drawn color.
func (s *TermStrip) SetBrightness(level uint8) {
	s.brightness = level
}

// Clear draws an all-black strip.
func (s *TermStrip) Clear() error {
	s.frame = logic.Frame{}
	s.last = ""
	return s.Show()
}

// Close moves the cursor past the strip line.
func (s *TermStrip) Close() error {
	_, err := fmt.Fprint(s.out, "\r\n")
	return err
}
