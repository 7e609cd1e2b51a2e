package strip

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sweeney/square-timer/internal/logic"
)

func TestPackAppliesBrightness(t *testing.T) {
	f := logic.Frame{{R: 255}, {G: 255}, {B: 255}, logic.Gray(128), logic.Black}

	got := pack(nil, f, 255)
	if len(got) != 3*logic.NumCells {
		t.Fatalf("expected %d bytes, got %d", 3*logic.NumCells, len(got))
	}
	if !bytes.Equal(got[:9], []byte{255, 0, 0, 0, 255, 0, 0, 0, 255}) {
		t.Errorf("unexpected packing at full brightness: %v", got[:9])
	}

	got = pack(got, f, 128)
	if got[0] != 128 || got[9] != 64 {
		t.Errorf("expected halved channels, got r0=%d gray=%d", got[0], got[9])
	}
}

func TestFakeStripRecordsFrames(t *testing.T) {
	s := NewFakeStrip()
	if _, ok := s.Last(); ok {
		t.Error("expected no frames initially")
	}

	f := logic.Frame{logic.Green}
	s.SetFrame(f)
	if len(s.Shown) != 0 {
		t.Error("SetFrame must not flush")
	}
	if err := s.Show(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last, _ := s.Last(); last != f {
		t.Errorf("expected %+v, got %+v", f, last)
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if last, _ := s.Last(); last != (logic.Frame{}) || s.Clears != 1 {
		t.Errorf("expected blank frame after clear, got %+v clears=%d", last, s.Clears)
	}

	s.ShowError = errors.New("spi gone")
	if err := s.Show(); err == nil {
		t.Error("expected show error")
	}

	s.Reset()
	if len(s.Shown) != 0 || s.Brightness != 255 {
		t.Errorf("expected reset state, got %+v", s)
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		c          logic.RGB
		brightness uint8
		want       string
	}{
		{logic.RGB{R: 255}, 255, "#ff0000"},
		{logic.RGB{R: 255}, 128, "#800000"},
		{logic.Yellow, 255, "#ffff00"},
		{logic.Green, 0, "#000000"},
	}
	for _, tt := range tests {
		if got := hexColor(tt.c, tt.brightness); got != tt.want {
			t.Errorf("hexColor(%+v, %d): expected %s, got %s", tt.c, tt.brightness, tt.want, got)
		}
	}
}

func TestTermStripRedrawsOnlyOnChange(t *testing.T) {
	var out bytes.Buffer
	s := NewTermStrip(&out)

	s.SetFrame(logic.Frame{logic.Green})
	if err := s.Show(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first := out.Len()
	if first == 0 || !strings.HasPrefix(out.String(), "\r") {
		t.Fatalf("expected a redrawn line, got %q", out.String())
	}
	if n := strings.Count(out.String(), cellGlyph); n != logic.NumCells {
		t.Errorf("expected %d cells drawn, got %d", logic.NumCells, n)
	}

	s.Show()
	if out.Len() != first {
		t.Error("identical frame should not be redrawn")
	}

	if err := s.Clear(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Len() == first {
		t.Error("clear should always redraw")
	}

	if err := s.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(out.String(), "\r\n") {
		t.Error("close should end the line")
	}
}
